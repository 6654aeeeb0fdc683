package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteMarkdown writes one table per entry.
func WriteMarkdown(w io.Writer, doc Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Reliability report\n\n")
	if doc.RunID != "" {
		fmt.Fprintf(&b, "- Run: %s\n", doc.RunID)
	}
	if !doc.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- Generated: %s\n", doc.GeneratedAt.UTC().Format(time.RFC3339))
	}

	for _, e := range doc.Entries {
		title := e.Name
		if title == "" {
			title = "calculation"
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		fmt.Fprintf(&b, "- %s: %s\n", LabelConnections, formatInput(e.Input.Connections))
		fmt.Fprintf(&b, "- %s: %s\n", LabelAccidentPrice, formatInput(e.Input.AccidentPrice))
		fmt.Fprintf(&b, "- %s: %s\n\n", LabelPlannedPrice, formatInput(e.Input.PlannedPrice))

		fmt.Fprintf(&b, "| Показник | Значення | Одиниці |\n")
		fmt.Fprintf(&b, "| --- | ---: | --- |\n")
		for _, row := range Rows(e.Result) {
			label := row.Label
			if row.Expectation {
				label = ExpectationsHeading + " " + label
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", label, FormatValue(row.Value), row.Unit)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
