package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rshade/reliability-calc/internal/reliability"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects a renderer.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w %q (want text, json or markdown)", ErrUnknownFormat, name)
	}
}

// Entry is one labelled calculation.
type Entry struct {
	// Name identifies the scenario. It is empty for a single ad-hoc calculation.
	Name   string
	Input  reliability.Input
	Result reliability.CalculationResult
}

// Document is the full output of one run.
type Document struct {
	RunID       string
	GeneratedAt time.Time
	Entries     []Entry
}

// Write renders doc to w in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatText:
		return WriteText(w, doc)
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatMarkdown:
		return WriteMarkdown(w, doc)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func formatInput(v float32) string {
	return fmt.Sprintf("%g", v)
}
