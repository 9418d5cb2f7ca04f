package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sentigo/pkg/dataset"
	"sentigo/pkg/report"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported providers and report formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			providers := tablewriter.NewWriter(out)
			providers.Header([]string{"Provider", "Default model"})
			providers.Append([]string{"mock", "echoes the prompt or a fixed response"})
			providers.Append([]string{"openai", "gpt-4o-mini"})
			providers.Append([]string{"anthropic", "claude-3-5-haiku-latest"})
			providers.Append([]string{"gemini", "gemini-2.0-flash"})
			providers.Append([]string{"ollama", "llama3"})
			providers.Render()

			formats := tablewriter.NewWriter(out)
			formats.Header([]string{"Format", "Description"})
			formats.Append([]string{report.FormatText, "fixed-width comparison table"})
			formats.Append([]string{report.FormatTable, "bordered table"})
			formats.Append([]string{report.FormatJSON, "rows and summary as JSON"})
			formats.Append([]string{report.FormatCSV, "one record per row"})
			formats.Append([]string{report.FormatMarkdown, "Markdown table"})
			formats.Append([]string{report.FormatHTML, "standalone HTML page"})
			formats.Render()

			fmt.Fprintf(out, "Default dataset fields: input=%q label=%q\n", dataset.DefaultInputField, dataset.DefaultLabelField)
			return nil
		},
	}
}
