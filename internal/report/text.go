package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText writes an aligned listing of every entry: inputs, then one line
// per result field with its value and unit.
func WriteText(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, e := range doc.Entries {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if e.Name != "" {
			fmt.Fprintf(tw, "== %s ==\n", e.Name)
		}
		fmt.Fprintf(tw, "%s: %s | %s: %s | %s: %s\n",
			LabelConnections, formatInput(e.Input.Connections),
			LabelAccidentPrice, formatInput(e.Input.AccidentPrice),
			LabelPlannedPrice, formatInput(e.Input.PlannedPrice))

		heading := false
		for _, row := range Rows(e.Result) {
			indent := "  "
			if row.Expectation {
				if !heading {
					fmt.Fprintf(tw, "  %s\t\n", ExpectationsHeading)
					heading = true
				}
				indent = "    "
			}
			fmt.Fprintf(tw, "%s%s\t%s\n", indent, row.Label, row.display())
		}
	}
	if len(doc.Entries) > 0 && strings.TrimSpace(doc.RunID) != "" {
		fmt.Fprintf(tw, "\nrun: %s\n", doc.RunID)
	}
	return tw.Flush()
}
