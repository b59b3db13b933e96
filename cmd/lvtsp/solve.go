package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtsp/config"
	"github.com/katalvlaran/lvtsp/costmodel"
	"github.com/katalvlaran/lvtsp/logging"
	"github.com/katalvlaran/lvtsp/telemetry"
	"github.com/katalvlaran/lvtsp/tsp"
)

var errNoInstance = errors.New("no instance file: pass --instance or set " + config.EnvInstance)

type solveFlags struct {
	configPath     string
	instance       string
	algo           string
	timeLimit      time.Duration
	maxFrontier    int
	seed           int64
	randomAttempts int
	logLevel       string
	logFormat      string
	metrics        bool
	json           bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance with one or all strategies",
		Long: `Solve loads an instance file and runs the selected strategy.

Settings are layered: defaults, then the --config file, then LVTSP_*
environment variables, then flags given on the command line.

With --algo all the random baseline, greedy, cheapest insertion and
branch-and-bound run concurrently on the same instance, each with its own
budget.

Examples:
  lvtsp solve --instance four.yaml
  lvtsp solve --instance four.yaml --algo greedy --seed 7
  lvtsp solve --instance four.yaml --algo insertion
  lvtsp solve --instance four.yaml --algo all --time-limit 2s --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return runSolve(cmd, cfg, f.json)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML run configuration file")
	fl.StringVarP(&f.instance, "instance", "i", "", "YAML instance file")
	fl.StringVarP(&f.algo, "algo", "a", "", "strategy: random, greedy, insertion, bnb or all")
	fl.DurationVarP(&f.timeLimit, "time-limit", "t", 0, "wall-clock budget per strategy")
	fl.IntVar(&f.maxFrontier, "max-frontier", 0, "branch-and-bound frontier capacity")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0 selects the fixed default)")
	fl.IntVar(&f.randomAttempts, "random-attempts", 0, "permutations tried by the random baseline")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "", "text or json")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the results")
	fl.BoolVar(&f.json, "json", false, "print results as JSON")

	return cmd
}

// resolve loads the layered configuration and applies the flags the user
// actually set.
func (f *solveFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	if fl.Changed("instance") {
		cfg.Instance = f.instance
	}
	if fl.Changed("algo") {
		cfg.Algorithm = f.algo
	}
	if fl.Changed("time-limit") {
		cfg.TimeLimit = f.timeLimit
	}
	if fl.Changed("max-frontier") {
		cfg.MaxFrontier = f.maxFrontier
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("random-attempts") {
		cfg.RandomAttempts = f.randomAttempts
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fl.Changed("metrics") {
		cfg.Metrics = f.metrics
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Instance == "" {
		return cfg, errNoInstance
	}

	return cfg, nil
}

func runSolve(cmd *cobra.Command, cfg config.Config, asJSON bool) error {
	model, err := costmodel.LoadFile(cfg.Instance)
	if err != nil {
		return err
	}
	algos, err := cfg.Algorithms()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger, runID := logging.WithRunID(logger)
	logger.Info("solve started",
		slog.String("instance", cfg.Instance),
		slog.Int("locations", model.Len()),
		slog.String("algorithm", cfg.Algorithm),
		slog.Duration("time_limit", cfg.TimeLimit),
	)

	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(reg)
	if err != nil {
		return err
	}

	results, err := solveAll(cmd.Context(), model, cfg, algos, logger, rec, telemetry.NewTracer(nil))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		err = writeJSON(out, runID, model, results)
	} else {
		err = writeTable(out, model, results)
	}
	if err != nil {
		return err
	}
	if cfg.Metrics {
		return writeMetrics(out, reg)
	}

	return nil
}

// solveAll runs each algorithm in its own goroutine. Runs share nothing but
// the read-only model, the logger and the metric recorder.
func solveAll(
	ctx context.Context,
	model costmodel.Model,
	cfg config.Config,
	algos []tsp.Algorithm,
	logger *slog.Logger,
	rec *telemetry.Recorder,
	tracer *telemetry.Tracer,
) ([]tsp.Result, error) {
	results := make([]tsp.Result, len(algos))
	g, gctx := errgroup.WithContext(ctx)

	for i, algo := range algos {
		g.Go(func() error {
			opts := cfg.Options(algo)
			opts.Logger = logger
			opts.Hooks = rec.Hooks(tsp.Hooks{})

			res, err := tracer.Run(gctx, algo, model.Len(), func(ctx context.Context) (tsp.Result, error) {
				return tsp.Solve(ctx, model, opts)
			})
			if err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			rec.Observe(res)
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
