package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/reliability-calc/internal/report"
)

// Environment variables read at startup.
const (
	envLogLevel  = "RELIABILITY_LOG_LEVEL"
	envLogFormat = "RELIABILITY_LOG_FORMAT"
	envRunID     = "RELIABILITY_RUN_ID"
)

const (
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

// Config holds the settings of one invocation.
type Config struct {
	// Raw single-calculation inputs; parsed with fallbacks by package input.
	Connections   string
	AccidentPrice string
	PlannedPrice  string

	// ScenarioFile selects batch mode and takes precedence over the single inputs.
	ScenarioFile string

	Format      report.Format
	MetricsFile string
	RunID       string

	LogLevel  zerolog.Level
	LogFormat string

	// warnings collected while parsing, logged once the logger exists.
	warnings []configWarning
}

type configWarning struct {
	key   string
	value string
	msg   string
}

// parseConfig reads flags from args and settings from getenv.
// It returns flag.ErrHelp when -h or -help is given.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	var format string

	fs := flag.NewFlagSet("reliability-calc", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Connections, "connections", "6", "number of 10 kV connections")
	fs.StringVar(&cfg.AccidentPrice, "accident-price", "23.6", "price per kWh not supplied during an unplanned outage")
	fs.StringVar(&cfg.PlannedPrice, "planned-price", "17.6", "price per kWh not supplied during a planned outage")
	fs.StringVar(&cfg.ScenarioFile, "scenarios", "", "YAML file with named scenarios (overrides the single inputs)")
	fs.StringVar(&format, "format", string(report.FormatText), "output format: text, json or markdown")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "also write results as Prometheus gauges to this file")
	fs.StringVar(&cfg.RunID, "run-id", "", "identifier attached to logs and output (default: "+envRunID+" or a new UUID)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	cfg.Format = f

	if cfg.ScenarioFile != "" {
		fs.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "connections", "accident-price", "planned-price":
				cfg.warnings = append(cfg.warnings, configWarning{
					key:   fl.Name,
					value: fl.Value.String(),
					msg:   "flag ignored in scenario mode",
				})
			}
		})
	}

	if cfg.RunID == "" {
		cfg.RunID = strings.TrimSpace(getenv(envRunID))
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.New().String()
	}

	cfg.LogLevel = zerolog.InfoLevel
	if raw := strings.TrimSpace(getenv(envLogLevel)); raw != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil || level == zerolog.NoLevel {
			cfg.warnings = append(cfg.warnings, configWarning{
				key:   envLogLevel,
				value: raw,
				msg:   "invalid " + envLogLevel + ", using info",
			})
		} else {
			cfg.LogLevel = level
		}
	}

	cfg.LogFormat = logFormatJSON
	switch raw := strings.ToLower(strings.TrimSpace(getenv(envLogFormat))); raw {
	case "", logFormatJSON:
	case logFormatConsole:
		cfg.LogFormat = logFormatConsole
	default:
		cfg.warnings = append(cfg.warnings, configWarning{
			key:   envLogFormat,
			value: raw,
			msg:   "invalid " + envLogFormat + ", using json",
		})
	}

	return cfg, nil
}

// newLogger builds the process logger. Every entry carries the run ID.
func newLogger(cfg *Config, w io.Writer) zerolog.Logger {
	out := w
	if cfg.LogFormat == logFormatConsole {
		out = zerolog.ConsoleWriter{Out: w}
	}
	logger := zerolog.New(out).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str("run_id", cfg.RunID).
		Logger()

	for _, warn := range cfg.warnings {
		logger.Warn().Str("key", warn.key).Str("value", warn.value).Msg(warn.msg)
	}
	return logger
}
