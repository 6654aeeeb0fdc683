// Package input turns raw text fields into reliability inputs, falling back to
// per-field defaults when a field is empty or not a finite number.
package input

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/reliability-calc/internal/reliability"
)

// Default field values used when the raw text cannot be parsed.
const (
	DefaultConnections   float32 = 6
	DefaultAccidentPrice float32 = 23.6
	DefaultPlannedPrice  float32 = 17.6
)

// Field names used in log entries.
const (
	FieldConnections   = "connections"
	FieldAccidentPrice = "accident_price"
	FieldPlannedPrice  = "planned_price"
)

// Raw holds the unparsed text of the three input fields.
type Raw struct {
	Connections   string
	AccidentPrice string
	PlannedPrice  string
}

// Defaults returns the input used when every field falls back.
func Defaults() reliability.Input {
	return reliability.Input{
		Connections:   DefaultConnections,
		AccidentPrice: DefaultAccidentPrice,
		PlannedPrice:  DefaultPlannedPrice,
	}
}

// ParseFloat parses raw as a 32-bit float after trimming surrounding whitespace.
// It returns (fallback, false) for empty text, malformed text, out-of-range
// values and the textual infinities and NaN.
func ParseFloat(raw string, fallback float32) (float32, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback, false
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return fallback, false
	}
	return float32(v), true
}

// Parse converts raw into an Input. Each field that cannot be parsed takes its
// default, and a warning naming the field is written to logger.
func Parse(raw Raw, logger zerolog.Logger) reliability.Input {
	return reliability.Input{
		Connections:   parseField(logger, FieldConnections, raw.Connections, DefaultConnections),
		AccidentPrice: parseField(logger, FieldAccidentPrice, raw.AccidentPrice, DefaultAccidentPrice),
		PlannedPrice:  parseField(logger, FieldPlannedPrice, raw.PlannedPrice, DefaultPlannedPrice),
	}
}

func parseField(logger zerolog.Logger, field, raw string, fallback float32) float32 {
	v, ok := ParseFloat(raw, fallback)
	if !ok {
		logger.Warn().
			Str("field", field).
			Str("value", raw).
			Float32("default", fallback).
			Msg("invalid numeric input, using default")
	}
	return v
}
