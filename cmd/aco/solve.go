package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/instance"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/internal/config"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/internal/exact"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/internal/metrics"
)

// flagKeys maps solve flags onto config keys. Only flags set on the command
// line are applied, on top of defaults and the --config file.
var flagKeys = map[string]string{
	"ants":       "ants",
	"iterations": "iterations",
	"alpha":      "alpha",
	"beta":       "beta",
	"rho":        "rho",
	"q":          "q",
	"start":      "start",
	"seed":       "seed",
	"workers":    "workers",
	"log-level":  "log_level",
	"log-format": "log_format",
}

type solveFlags struct {
	instanceFile string
	preset       string
	configFile   string
	format       string
	metricsFile  string
	exact        bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a short tour through an instance",
		Long: `Runs the Ant System on a distance matrix and prints the best closed tour.

The instance comes from --instance (YAML or JSON file) or --preset (see
"aco instances"). Parameters are read from defaults, then --config, then
flags. Without --start the node is asked for when stdin is a terminal, and
taken from the instance otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f)
		},
	}

	def := config.Default()
	fl := cmd.Flags()
	fl.StringVarP(&f.instanceFile, "instance", "i", "", "Instance file (YAML or JSON)")
	fl.StringVarP(&f.preset, "preset", "p", "ref5", "Built-in instance name")
	fl.StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	fl.StringVar(&f.format, "format", "text", "Output format: text or json")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	fl.BoolVar(&f.exact, "exact", false, fmt.Sprintf("Also compute the optimum with Held-Karp (up to %d nodes)", exact.MaxNodes))
	// Only consulted when set; the zero value keeps pflag from printing a default.
	fl.IntP("start", "s", 0, "Start node (default: prompt on a terminal, else the instance start)")
	fl.IntP("ants", "a", def.Ants, "Ants per iteration")
	fl.IntP("iterations", "n", def.Iterations, "Number of iterations")
	fl.Float64("alpha", def.Alpha, "Pheromone exponent")
	fl.Float64("beta", def.Beta, "Heuristic (1/distance) exponent")
	fl.Float64("rho", def.Rho, "Evaporation rate in [0, 1)")
	fl.Float64("q", def.Q, "Deposit constant")
	fl.Int64("seed", def.Seed, "Random seed")
	fl.IntP("workers", "w", def.Workers, "Goroutines building tours (0 or 1: serial)")
	cmd.MarkFlagsMutuallyExclusive("instance", "preset")

	return cmd
}

func runSolve(cmd *cobra.Command, f solveFlags) error {
	if f.format != "text" && f.format != "json" {
		return fmt.Errorf("unknown --format %q (want text or json)", f.format)
	}

	cfg, err := resolveConfig(cmd.Flags(), f.configFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	inst, err := loadInstance(f)
	if err != nil {
		return err
	}
	if cfg.Start == config.StartFromInstance && isTerminal(cmd.InOrStdin()) {
		if cfg.Start, err = promptStart(cmd.InOrStdin(), cmd.OutOrStdout(), inst.Size()); err != nil {
			return err
		}
	}

	var recorder *metrics.Recorder
	hook := logIterations(logger)
	if f.metricsFile != "" {
		recorder = metrics.NewRecorder(inst.Name)
		hook = recorder.Hook(hook)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	opts := append(cfg.Options(inst.Start), aco.WithIterationHook(hook))
	logger.Info("solving",
		"instance", inst.Name, "nodes", inst.Size(),
		"ants", cfg.Ants, "iterations", cfg.Iterations,
		"alpha", cfg.Alpha, "beta", cfg.Beta, "rho", cfg.Rho, "q", cfg.Q,
		"seed", cfg.Seed, "workers", cfg.Workers)

	began := time.Now()
	res, err := aco.SolveContext(ctx, inst.Distances, opts...)
	elapsed := time.Since(began)
	if recorder != nil {
		recorder.RunFinished(elapsed, err)
		if werr := recorder.WriteTextfile(f.metricsFile); werr != nil {
			logger.Error("metrics not written", "err", werr)
		}
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted", "elapsed", elapsed)
		}

		return err
	}
	logger.Info("done", "cost", res.Cost, "best_iteration", res.BestIteration, "elapsed", elapsed)

	rep := newReport(inst, res, elapsed)
	if f.exact {
		opt, err := exact.HeldKarp(inst.Distances, res.Tour[0])
		if err != nil {
			return err
		}
		rep.setOptimum(opt.Cost)
		logger.Info("exact optimum", "cost", opt.Cost, "tour", aco.FormatTour(opt.Tour))
	}
	if f.format == "json" {
		return rep.writeJSON(cmd.OutOrStdout())
	}

	return rep.writeText(cmd.OutOrStdout())
}

// resolveConfig layers defaults, the optional config file and the flags the
// user actually set.
func resolveConfig(fl *pflag.FlagSet, file string) (config.Config, error) {
	cfg := config.Default()
	var err error
	if file != "" {
		if cfg, err = config.Load(file); err != nil {
			return cfg, err
		}
	}

	raw := map[string]any{}
	fl.Visit(func(flag *pflag.Flag) {
		if key, ok := flagKeys[flag.Name]; ok {
			raw[key] = flag.Value.String()
		}
	})
	if err = config.Decode(raw, &cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func loadInstance(f solveFlags) (*instance.Instance, error) {
	if f.instanceFile != "" {
		return instance.Load(f.instanceFile)
	}

	return instance.Builtin(f.preset)
}

// logIterations logs every iteration at debug level and improvements at info.
func logIterations(logger *slog.Logger) func(aco.IterationStats) {
	return func(s aco.IterationStats) {
		if s.Improved {
			logger.Info("improved", "iteration", s.Iteration, "cost", s.BestCost,
				"tour", aco.FormatTour(s.IterationBestTour))
			return
		}
		logger.Debug("iteration", "iteration", s.Iteration,
			"iteration_best", s.IterationBestCost, "best", s.BestCost)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
