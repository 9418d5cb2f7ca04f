package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"sentigo/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(rows []core.Row, _ core.Summary) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{"input", "expected", "predicted", "match", "error", "latency_seconds", "total_tokens"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Example.Input,
			row.Example.Label,
			row.Prediction.Label,
			strconv.FormatBool(row.Match),
			row.Error,
			strconv.FormatFloat(row.Response.Latency.Seconds(), 'f', 6, 64),
			strconv.Itoa(row.Response.TokenUsage.TotalTokens),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
