// Package scenario loads batch calculation files.
//
// A scenario file lists named input sets:
//
//	scenarios:
//	  - name: baseline
//	    connections: 6
//	    accident_price: 23.6
//	    planned_price: 17.6
//
// Omitted numeric fields take the defaults of package input.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/reliability-calc/internal/input"
	"github.com/rshade/reliability-calc/internal/reliability"
)

var (
	// ErrNoScenarios is returned when a file lists no scenarios.
	ErrNoScenarios = errors.New("no scenarios defined")

	// ErrDuplicateName is returned when two scenarios share a name.
	ErrDuplicateName = errors.New("duplicate scenario name")
)

// File is the decoded scenario document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one named input set. Nil fields fall back to defaults.
type Scenario struct {
	Name          string   `yaml:"name"`
	Connections   *float32 `yaml:"connections"`
	AccidentPrice *float32 `yaml:"accident_price"`
	PlannedPrice  *float32 `yaml:"planned_price"`
}

// Named pairs a scenario name with its resolved input.
type Named struct {
	Name  string
	Input reliability.Input
}

// Load reads and parses the scenario file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, ErrNoScenarios
		}
		return File{}, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return f, nil
}

// Validate checks names and values.
func (f File) Validate() error {
	if len(f.Scenarios) == 0 {
		return ErrNoScenarios
	}
	seen := make(map[string]struct{}, len(f.Scenarios))
	for i, s := range f.Scenarios {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("scenarios[%d]: name is required", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("scenarios[%d]: %w %q", i, ErrDuplicateName, name)
		}
		seen[name] = struct{}{}

		for _, field := range []struct {
			name  string
			value *float32
		}{
			{input.FieldConnections, s.Connections},
			{input.FieldAccidentPrice, s.AccidentPrice},
			{input.FieldPlannedPrice, s.PlannedPrice},
		} {
			if field.value == nil {
				continue
			}
			if v := float64(*field.value); math.IsInf(v, 0) || math.IsNaN(v) {
				return fmt.Errorf("scenario %q: %s must be a finite number", name, field.name)
			}
		}
	}
	return nil
}

// Inputs resolves every scenario, in file order.
func (f File) Inputs() []Named {
	out := make([]Named, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		out = append(out, Named{Name: strings.TrimSpace(s.Name), Input: s.Input()})
	}
	return out
}

// Input returns the scenario's input with defaults applied.
func (s Scenario) Input() reliability.Input {
	in := input.Defaults()
	if s.Connections != nil {
		in.Connections = *s.Connections
	}
	if s.AccidentPrice != nil {
		in.AccidentPrice = *s.AccidentPrice
	}
	if s.PlannedPrice != nil {
		in.PlannedPrice = *s.PlannedPrice
	}
	return in
}
