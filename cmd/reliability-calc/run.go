package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/reliability-calc/internal/input"
	"github.com/rshade/reliability-calc/internal/metrics"
	"github.com/rshade/reliability-calc/internal/reliability"
	"github.com/rshade/reliability-calc/internal/report"
	"github.com/rshade/reliability-calc/internal/scenario"
)

// run computes every requested input set, renders the report to stdout and
// writes the optional metrics file.
func run(cfg *Config, calc reliability.Calculator, stdout io.Writer, logger zerolog.Logger, now time.Time) error {
	named, err := collectInputs(cfg, logger)
	if err != nil {
		return err
	}

	entries := make([]report.Entry, 0, len(named))
	for _, n := range named {
		result := calc.Calculate(n.Input)
		if result.HasNonFinite() {
			logger.Warn().
				Str("scenario", n.Name).
				Float32("connections", n.Input.Connections).
				Msg("failure frequency is zero, restoration time and downtime are not finite")
		}
		logger.Debug().
			Str("scenario", n.Name).
			Float32("connections", n.Input.Connections).
			Float32("accident_price", n.Input.AccidentPrice).
			Float32("planned_price", n.Input.PlannedPrice).
			Float32("math_loses", result.MathLoses).
			Msg("calculated")
		entries = append(entries, report.Entry{Name: n.Name, Input: n.Input, Result: result})
	}

	doc := report.Document{RunID: cfg.RunID, GeneratedAt: now, Entries: entries}
	if err := report.Write(stdout, cfg.Format, doc); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, entries, cfg.RunID); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.MetricsFile).Int("entries", len(entries)).Msg("metrics written")
	}
	return nil
}

func collectInputs(cfg *Config, logger zerolog.Logger) ([]scenario.Named, error) {
	if cfg.ScenarioFile == "" {
		in := input.Parse(input.Raw{
			Connections:   cfg.Connections,
			AccidentPrice: cfg.AccidentPrice,
			PlannedPrice:  cfg.PlannedPrice,
		}, logger)
		return []scenario.Named{{Input: in}}, nil
	}

	file, err := scenario.Load(cfg.ScenarioFile)
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario file %s: %w", cfg.ScenarioFile, err)
	}
	named := file.Inputs()
	logger.Debug().Str("path", cfg.ScenarioFile).Int("scenarios", len(named)).Msg("scenario file loaded")
	return named, nil
}
