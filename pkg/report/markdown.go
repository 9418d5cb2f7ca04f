package report

import (
	"fmt"
	"io"

	"sentigo/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(rows []core.Row, summary core.Summary) error {
	if _, err := fmt.Fprintf(r.Writer, "# Evaluation Results\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Review | Expected | Predicted | Match |\n|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, row := range rows {
		glyph := mismatchGlyph
		if row.Match {
			glyph = matchGlyph
		}
		if _, err := fmt.Fprintf(
			r.Writer,
			"| %s | %s | %s | %s |\n",
			escapePipe(row.Example.Input),
			escapePipe(row.Example.Label),
			escapePipe(row.Prediction.Label),
			glyph,
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.Writer, "\nAccuracy: %d/%d (%.2f%%)\n", summary.Correct, summary.Total, summary.Accuracy*100)
	return err
}

func escapePipe(input string) string {
	if input == "" {
		return ""
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		switch r {
		case '|':
			out = append(out, '\\', r)
		case '\n', '\r':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
