package report

import (
	"html/template"
	"io"

	"sentigo/pkg/core"
)

type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

func (r HTMLReporter) Report(rows []core.Row, summary core.Summary) error {
	title := r.Title
	if title == "" {
		title = "Evaluation Results"
	}

	data := struct {
		Title   string
		Rows    []core.Row
		Summary core.Summary
		Percent float64
	}{
		Title:   title,
		Rows:    rows,
		Summary: summary,
		Percent: summary.Accuracy * 100,
	}

	tpl := template.Must(template.New("report").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
    .match { color: #2e7d32; }
    .mismatch { color: #c62828; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <table>
    <tr><th>Review</th><th>Expected</th><th>Predicted</th><th>Match</th></tr>
    {{ range .Rows }}
    <tr>
      <td>{{ .Example.Input }}</td>
      <td>{{ .Example.Label }}</td>
      <td>{{ .Prediction.Label }}</td>
      {{ if .Match }}<td class="match">yes</td>{{ else }}<td class="mismatch">no</td>{{ end }}
    </tr>
    {{ end }}
  </table>
  <p>Accuracy: {{ .Summary.Correct }}/{{ .Summary.Total }} ({{ printf "%.2f" .Percent }}%)</p>
</body>
</html>
`
