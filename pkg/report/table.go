package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"sentigo/pkg/core"
)

// TableReporter renders bordered per-row and summary tables.
type TableReporter struct {
	Writer     io.Writer
	InputWidth int
}

func (r TableReporter) Report(rows []core.Row, summary core.Summary) error {
	width := r.InputWidth
	if width <= 0 {
		width = DefaultInputWidth
	}

	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Review", "Expected", "Predicted", "Match"})
	for _, row := range rows {
		glyph := mismatchGlyph
		if row.Match {
			glyph = matchGlyph
		}
		table.Append([]string{
			Truncate(row.Example.Input, width),
			row.Example.Label,
			row.Prediction.Label,
			glyph,
		})
	}
	table.Render()

	_, err := fmt.Fprintf(r.Writer, "Accuracy: %d/%d (%.2f%%)\n", summary.Correct, summary.Total, summary.Accuracy*100)
	return err
}
