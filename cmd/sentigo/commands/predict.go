package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sentigo/pkg/core"
	"sentigo/pkg/dataset"
)

func newPredictCommand() *cobra.Command {
	var (
		train        string
		inputField   string
		labelField   string
		provider     string
		modelName    string
		mockResponse string
		fewShot      int
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Classify reviews interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			var demos []core.Example
			trainPath := resolveString(train, appConfig.Train)
			if trainPath != "" {
				loaded, err := dataset.Load(trainPath, dataset.LoadOptions{
					InputField: resolveString(inputField, appConfig.InputField),
					LabelField: resolveString(labelField, appConfig.LabelField),
				})
				if err != nil {
					return err
				}
				demos = loaded
			}

			predictor, err := buildPredictor(
				resolveString(provider, appConfig.Provider),
				resolveString(modelName, appConfig.Model.Name),
				resolveString(mockResponse, appConfig.Model.MockResponse),
				resolveInt(fewShot, appConfig.FewShot),
				demos,
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "Enter a movie review: ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if input == "quit" {
					return nil
				}

				response, err := predictor.Predict(cmd.Context(), input)
				if err != nil {
					logger.Warn("prediction failed", zap.Error(err))
					fmt.Fprintf(out, "Prediction failed: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "Predicted Sentiment: %s\n", response.Content)
			}
		},
	}

	cmd.Flags().StringVar(&train, "train", "", "training set file for few-shot demonstrations")
	cmd.Flags().StringVar(&inputField, "input-field", "", "record field holding the input text")
	cmd.Flags().StringVar(&labelField, "label-field", "", "record field holding the expected label")
	cmd.Flags().StringVar(&provider, "provider", "", "model provider (mock, openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name, provider default when empty")
	cmd.Flags().StringVar(&mockResponse, "mock-response", "", "fixed response for the mock provider")
	cmd.Flags().IntVar(&fewShot, "few-shot", 0, "number of training examples to use as demonstrations")

	return cmd
}
