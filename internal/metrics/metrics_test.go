package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/internal/metrics"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder("unit")
	r.Observe(aco.IterationStats{Iteration: 0, IterationBestCost: 12, BestCost: 12, Improved: true})
	r.Observe(aco.IterationStats{Iteration: 1, IterationBestCost: 14, BestCost: 12})
	r.Observe(aco.IterationStats{Iteration: 2, IterationBestCost: 9, BestCost: 9, Improved: true})

	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range mfs {
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			got[mf.GetName()] = m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			got[mf.GetName()] = m.GetGauge().GetValue()
		case m.GetHistogram() != nil:
			got[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
		}
	}
	assert.Equal(t, 3.0, got["aco_iterations_total"])
	assert.Equal(t, 2.0, got["aco_improvements_total"])
	assert.Equal(t, 9.0, got["aco_best_cost"])
	assert.Equal(t, 3.0, got["aco_iteration_best_cost"])
}

func TestRecorder_HookDuringSolve(t *testing.T) {
	dist, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 9, 10},
		{2, 0, 6, 4},
		{9, 6, 0, 3},
		{10, 4, 3, 0},
	})
	require.NoError(t, err)

	r := metrics.NewRecorder("square")
	var calls int
	res, err := aco.Solve(dist, aco.WithIterations(25), aco.WithSeed(7),
		aco.WithIterationHook(r.Hook(func(aco.IterationStats) { calls++ })))
	require.NoError(t, err)
	r.RunFinished(time.Millisecond, nil)
	r.RunFinished(time.Millisecond, errors.New("boom"))

	assert.Equal(t, 25, calls)
	assert.Equal(t, 1, testutil.CollectAndCount(r.Registry(), "aco_iterations_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(r.Registry(), "aco_runs_total"))

	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		switch mf.GetName() {
		case "aco_iterations_total":
			assert.Equal(t, 25.0, mf.GetMetric()[0].GetCounter().GetValue())
		case "aco_best_cost":
			assert.Equal(t, res.Cost, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder("ref5")
	r.Observe(aco.IterationStats{IterationBestCost: 9, BestCost: 9, Improved: true})

	file := filepath.Join(t.TempDir(), "aco.prom")
	require.NoError(t, r.WriteTextfile(file))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `aco_best_cost{instance="ref5"} 9`)
	assert.Contains(t, string(data), "# TYPE aco_iterations_total counter")

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "aco.prom"))
	require.Error(t, err)
}
