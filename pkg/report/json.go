package report

import (
	"encoding/json"
	"io"

	"sentigo/pkg/core"
)

// Document is the machine-readable shape of an evaluation run.
type Document struct {
	Rows    []core.Row   `json:"rows"`
	Summary core.Summary `json:"summary"`
}

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(rows []core.Row, summary core.Summary) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(Document{Rows: rows, Summary: summary})
}
