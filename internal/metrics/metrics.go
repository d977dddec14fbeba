// Package metrics exposes solver progress as Prometheus metrics on a private
// registry, suitable for the node_exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
)

const namespace = "aco"

// Recorder collects per-iteration statistics for one or more runs.
// Its Observe method is an aco iteration hook.
type Recorder struct {
	registry *prometheus.Registry

	iterations    prometheus.Counter
	improvements  prometheus.Counter
	bestCost      prometheus.Gauge
	iterationCost prometheus.Histogram
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
}

// NewRecorder builds a Recorder with every collector registered on a fresh
// registry. instance is attached as a constant label.
func NewRecorder(instance string) *Recorder {
	labels := prometheus.Labels{"instance": instance}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "iterations_total",
			Help:        "Colony iterations completed.",
			ConstLabels: labels,
		}),
		improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "improvements_total",
			Help:        "Iterations that strictly improved the best-so-far tour.",
			ConstLabels: labels,
		}),
		bestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "best_cost",
			Help:        "Cost of the best tour found so far.",
			ConstLabels: labels,
		}),
		iterationCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "iteration_best_cost",
			Help:        "Cost of each iteration's cheapest tour.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 16),
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "runs_total",
			Help:        "Completed runs by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "run_duration_seconds",
			Help:        "Wall time of a full run.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
	}
	r.registry.MustRegister(r.iterations, r.improvements, r.bestCost,
		r.iterationCost, r.runs, r.runDuration)

	return r
}

// Observe records one iteration.
func (r *Recorder) Observe(s aco.IterationStats) {
	r.iterations.Inc()
	if s.Improved {
		r.improvements.Inc()
	}
	r.bestCost.Set(s.BestCost)
	r.iterationCost.Observe(s.IterationBestCost)
}

// Hook returns an iteration hook that records into r and then calls next
// (which may be nil).
func (r *Recorder) Hook(next func(aco.IterationStats)) func(aco.IterationStats) {
	return func(s aco.IterationStats) {
		r.Observe(s)
		if next != nil {
			next(s)
		}
	}
}

// RunFinished records the outcome and duration of a run.
func (r *Recorder) RunFinished(elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.runs.WithLabelValues(outcome).Inc()
	r.runDuration.Observe(elapsed.Seconds())
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile atomically writes the current metrics to path in the text
// exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
