// Command daccost evaluates Direct Air Capture cost scenarios and reports the
// levelized cost of capture. Scenarios come from a YAML document (or the
// built-in natural gas baseline); parameters default to the embedded table
// with per-scenario overrides.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
	"github.com/rshade/daccost/internal/sweep"
)

func main() {
	var (
		scenarioPath = flag.String("scenarios", "", "path to a YAML scenario document (default: built-in natural gas baseline)")
		output       = flag.String("output", "table", "report format: table or json")
		uncertainty  = flag.Float64("uncertainty", 0, "relative stddev applied to every parameter; > 0 switches to uncertainty propagation")
		workers      = flag.Int("workers", 0, "evaluation concurrency (0 = one per CPU)")
		logLevel     = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	)
	flag.Parse()

	logger := newLogger(*logLevel)

	if err := run(logger, *scenarioPath, *output, *uncertainty, *workers); err != nil {
		logger.Error().Err(err).Msg("daccost failed")
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

func run(logger zerolog.Logger, scenarioPath, output string, uncertainty float64, workers int) error {
	defaults, err := params.Defaults()
	if err != nil {
		return err
	}

	scenarios, err := loadScenarios(scenarioPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if uncertainty > 0 {
		return runUncertain(logger, defaults, scenarios, uncertainty, output)
	}

	runner := &sweep.Runner{Params: defaults, Workers: workers, Logger: logger}
	results := runner.Run(ctx, scenarios)

	reports := make([]report, 0, len(results))
	var failed int
	for _, res := range results {
		if res.Err != nil {
			logger.Error().Str("scenario", res.Name).Err(res.Err).Msg("skipping failed scenario")
			failed++
			continue
		}
		reports = append(reports, report{Scenario: res.Name, Rows: floatRows(res.Values)})
	}

	if err := render(output, reports); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

// runUncertain reruns every scenario on the uncertainty-propagating numeric
// type, reporting each metric as value +/- stddev. Evaluation is serial: the
// point of an uncertainty run is the error bars, not throughput.
func runUncertain(logger zerolog.Logger, defaults *params.Set[numeric.Float], scenarios []sweep.Scenario, rel float64, output string) error {
	lifted := params.WithUncertainty(defaults, rel)

	reports := make([]report, 0, len(scenarios))
	for _, sc := range scenarios {
		values, err := sweep.Evaluate(lifted, sc)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		logger.Info().
			Str("scenario", sc.Name).
			Float64("relative_stddev", rel).
			Msg("scenario evaluated with uncertainty propagation")
		reports = append(reports, report{Scenario: sc.Name, Rows: uncertainRows(values)})
	}

	return render(output, reports)
}

func render(output string, reports []report) error {
	switch output {
	case "json":
		return renderJSON(os.Stdout, reports)
	case "table":
		for _, rep := range reports {
			if err := renderTable(os.Stdout, rep); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected table or json", output)
	}
}
