package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"sentigo/pkg/core"
)

// DefaultInputWidth is the display width of the review column.
const DefaultInputWidth = 50

const (
	labelWidth    = 10
	ellipsis      = "..."
	matchGlyph    = "✓"
	mismatchGlyph = "✗"
)

// Truncate shortens text to at most width display cells, replacing the tail
// with a three-character ellipsis marker. Text at or under the width is
// returned unchanged.
func Truncate(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, ellipsis)
}

// Render produces the fixed-width comparison table with a trailing accuracy
// line. It is pure: the same rows and summary yield byte-identical text, and
// rows appear in the order given.
func Render(rows []core.Row, summary core.Summary, inputWidth int) string {
	if inputWidth <= 0 {
		inputWidth = DefaultInputWidth
	}
	rule := strings.Repeat("-", inputWidth+2*labelWidth+10)

	var b strings.Builder
	b.WriteString(rule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s | %s | %s\n", pad("Review", inputWidth), pad("Expected", labelWidth), pad("Predicted", labelWidth))
	b.WriteString(rule)
	b.WriteByte('\n')

	for _, row := range rows {
		glyph := mismatchGlyph
		if row.Match {
			glyph = matchGlyph
		}
		fmt.Fprintf(&b, "%s | %s | %s %s\n",
			pad(Truncate(row.Example.Input, inputWidth), inputWidth),
			pad(row.Example.Label, labelWidth),
			pad(row.Prediction.Label, labelWidth),
			glyph)
	}

	b.WriteString(rule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Accuracy: %d/%d (%.2f%%)\n", summary.Correct, summary.Total, summary.Accuracy*100)
	return b.String()
}

// pad fills with spaces up to width display cells; runewidth keeps columns
// aligned for non-ASCII reviews.
func pad(text string, width int) string {
	return runewidth.FillRight(text, width)
}
