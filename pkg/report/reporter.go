// Package report renders evaluation rows and their summary: a deterministic
// fixed-width text table for the terminal, plus machine-readable formats.
package report

import (
	"io"

	"sentigo/pkg/core"
)

// Reporter writes rows and their summary to a sink.
type Reporter interface {
	Report(rows []core.Row, summary core.Summary) error
}

const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// TextReporter writes the fixed-width comparison table.
type TextReporter struct {
	Writer     io.Writer
	InputWidth int
}

func (r TextReporter) Report(rows []core.Row, summary core.Summary) error {
	_, err := io.WriteString(r.Writer, Render(rows, summary, r.InputWidth))
	return err
}
