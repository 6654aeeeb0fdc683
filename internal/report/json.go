package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/goccy/go-json"
)

type jsonDocument struct {
	RunID       string      `json:"run_id,omitempty"`
	GeneratedAt string      `json:"generated_at,omitempty"`
	Entries     []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Name    string      `json:"name,omitempty"`
	Input   jsonInput   `json:"input"`
	Results []jsonField `json:"results"`
}

type jsonInput struct {
	Connections   float32 `json:"connections"`
	AccidentPrice float32 `json:"accident_price"`
	PlannedPrice  float32 `json:"planned_price"`
}

// jsonField carries Value as null when it is not finite, since JSON has no
// encoding for infinities or NaN. Display always holds the formatted value.
type jsonField struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Unit    string   `json:"unit,omitempty"`
	Value   *float32 `json:"value"`
	Display string   `json:"display"`
}

// WriteJSON writes doc as indented JSON followed by a newline.
func WriteJSON(w io.Writer, doc Document) error {
	out := jsonDocument{
		RunID:   doc.RunID,
		Entries: make([]jsonEntry, 0, len(doc.Entries)),
	}
	if !doc.GeneratedAt.IsZero() {
		out.GeneratedAt = doc.GeneratedAt.UTC().Format(time.RFC3339)
	}

	for _, e := range doc.Entries {
		entry := jsonEntry{
			Name: e.Name,
			Input: jsonInput{
				Connections:   e.Input.Connections,
				AccidentPrice: e.Input.AccidentPrice,
				PlannedPrice:  e.Input.PlannedPrice,
			},
		}
		for _, row := range Rows(e.Result) {
			field := jsonField{
				Key:     row.Key,
				Label:   row.Label,
				Unit:    row.Unit,
				Display: FormatValue(row.Value),
			}
			if f := float64(row.Value); !math.IsInf(f, 0) && !math.IsNaN(f) {
				v := row.Value
				field.Value = &v
			}
			entry.Results = append(entry.Results, field)
		}
		out.Entries = append(out.Entries, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
