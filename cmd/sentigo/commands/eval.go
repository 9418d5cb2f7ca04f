package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sentigo/pkg/core"
	"sentigo/pkg/dataset"
	"sentigo/pkg/report"
)

type evalFlags struct {
	train        string
	test         string
	inputField   string
	labelField   string
	provider     string
	model        string
	mockResponse string
	format       string
	output       string
	width        int
	fewShot      int
	rps          float64
}

func newEvalCommand() *cobra.Command {
	flags := evalFlags{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the classifier against a labeled test set",
		RunE: func(cmd *cobra.Command, args []string) error {
			testPath := resolveString(flags.test, appConfig.Test)
			if testPath == "" {
				return errors.New("a test set is required (--test)")
			}

			loadOpts := dataset.LoadOptions{
				InputField: resolveString(flags.inputField, appConfig.InputField),
				LabelField: resolveString(flags.labelField, appConfig.LabelField),
			}

			testSet, err := dataset.Load(testPath, loadOpts)
			if err != nil {
				return err
			}
			logger.Info("loaded test set", zap.String("path", testPath), zap.Int("examples", len(testSet)))

			var trainSet []core.Example
			trainPath := resolveString(flags.train, appConfig.Train)
			if trainPath != "" {
				trainSet, err = dataset.Load(trainPath, loadOpts)
				if err != nil {
					return err
				}
				logger.Info("loaded training set", zap.String("path", trainPath), zap.Int("examples", len(trainSet)))
			}

			predictor, err := buildPredictor(
				resolveString(flags.provider, appConfig.Provider),
				resolveString(flags.model, appConfig.Model.Name),
				resolveString(flags.mockResponse, appConfig.Model.MockResponse),
				resolveInt(flags.fewShot, appConfig.FewShot),
				trainSet,
			)
			if err != nil {
				return err
			}

			evaluator := core.Evaluator{Predictor: predictor}
			if rps := resolveFloat(flags.rps, appConfig.RPS); rps > 0 {
				limiter, err := core.NewRateLimiter(rps)
				if err != nil {
					return err
				}
				evaluator.Limiter = limiter
			}

			progress := newProgressBar(cmd.OutOrStdout(), len(testSet))
			evaluator.Progress = progress.update

			logger.Info("starting evaluation",
				zap.String("predictor", predictor.Name()),
				zap.Int("examples", len(testSet)))

			rows, err := evaluator.Run(cmd.Context(), testSet)
			progress.finish()
			if err != nil {
				return err
			}
			summary := core.Summarize(rows)
			logger.Info("evaluation complete",
				zap.Int("total", summary.Total),
				zap.Int("correct", summary.Correct),
				zap.Float64("accuracy", summary.Accuracy))

			writer := cmd.OutOrStdout()
			if output := resolveString(flags.output, appConfig.Output); output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			reporter, err := buildReporter(resolveString(flags.format, appConfig.Format), writer, resolveInt(flags.width, appConfig.Width))
			if err != nil {
				return err
			}
			return reporter.Report(rows, summary)
		},
	}

	cmd.Flags().StringVar(&flags.train, "train", "", "training set file (JSON or JSONL)")
	cmd.Flags().StringVar(&flags.test, "test", "", "test set file (JSON or JSONL)")
	cmd.Flags().StringVar(&flags.inputField, "input-field", "", "record field holding the input text")
	cmd.Flags().StringVar(&flags.labelField, "label-field", "", "record field holding the expected label")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "model provider (mock, openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&flags.model, "model", "", "model name, provider default when empty")
	cmd.Flags().StringVar(&flags.mockResponse, "mock-response", "", "fixed response for the mock provider")
	cmd.Flags().StringVar(&flags.format, "format", "", "report format (text, table, json, csv, markdown, html)")
	cmd.Flags().StringVar(&flags.output, "output", "", "write the report to a file instead of stdout")
	cmd.Flags().IntVar(&flags.width, "width", 0, "input column width in the text report")
	cmd.Flags().IntVar(&flags.fewShot, "few-shot", 0, "number of training examples to use as demonstrations")
	cmd.Flags().Float64Var(&flags.rps, "rps", 0, "max model requests per second, 0 disables throttling")

	return cmd
}

func buildReporter(format string, writer io.Writer, width int) (report.Reporter, error) {
	switch format {
	case "", report.FormatText:
		return report.TextReporter{Writer: writer, InputWidth: width}, nil
	case report.FormatTable:
		return report.TableReporter{Writer: writer, InputWidth: width}, nil
	case report.FormatJSON:
		return report.JSONReporter{Writer: writer, Pretty: true}, nil
	case report.FormatCSV:
		return report.CSVReporter{Writer: writer}, nil
	case report.FormatMarkdown:
		return report.MarkdownReporter{Writer: writer}, nil
	case report.FormatHTML:
		return report.HTMLReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Flag values beat config file values; zero means unset.

func resolveString(flag, config string) string {
	if flag != "" {
		return flag
	}
	return config
}

func resolveInt(flag, config int) int {
	if flag != 0 {
		return flag
	}
	return config
}

func resolveFloat(flag, config float64) float64 {
	if flag != 0 {
		return flag
	}
	return config
}

var progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

type progressBar struct {
	writer io.Writer
	total  int
	tty    bool
	drawn  bool
}

func newProgressBar(writer io.Writer, total int) *progressBar {
	tty := false
	if file, ok := writer.(*os.File); ok {
		tty = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &progressBar{writer: writer, total: total, tty: tty}
}

func (p *progressBar) update(completed, total int) {
	if !p.tty || total <= 0 {
		return
	}
	const cells = 30
	filled := completed * cells / total
	bar := progressStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", cells-filled)
	fmt.Fprintf(p.writer, "\r%s %d/%d", bar, completed, total)
	p.drawn = true
}

func (p *progressBar) finish() {
	if p.drawn {
		fmt.Fprint(p.writer, "\n")
	}
}
