package core

import (
	"context"
	"errors"
)

// FailedLabel is the reserved prediction label for examples whose predictor
// call failed. It never equals a real ground-truth label, so failed rows
// count as incorrect rather than aborting the run.
const FailedLabel = "<prediction failed>"

// Evaluator drives a predictor over an example set, one example at a time.
type Evaluator struct {
	Predictor Predictor
	Limiter   RateLimiter
	Progress  func(completed, total int)
}

// Run invokes the predictor for each example in source order and returns one
// row per example, in the same order. A failed prediction is recorded under
// FailedLabel and the run continues; Run itself fails only when the context
// is cancelled.
func (e Evaluator) Run(ctx context.Context, examples []Example) ([]Row, error) {
	if e.Predictor == nil {
		return nil, errors.New("evaluator: predictor is required")
	}

	rows := make([]Row, 0, len(examples))
	for _, example := range examples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.Limiter != nil {
			if err := e.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		row := Row{Example: example}
		response, err := e.Predictor.Predict(ctx, example.Input)
		if err != nil {
			row.Prediction = Prediction{Label: FailedLabel}
			row.Error = err.Error()
		} else {
			row.Prediction = Prediction{Label: response.Content}
			row.Response = response
			row.Match = example.Label == row.Prediction.Label
		}
		rows = append(rows, row)
		if e.Progress != nil {
			e.Progress(len(rows), len(examples))
		}
	}
	return rows, nil
}

// Summarize computes aggregate accuracy over rows. Matching is exact string
// equality, case- and whitespace-sensitive; the accuracy of an empty run
// is 0, not a division fault.
func Summarize(rows []Row) Summary {
	summary := Summary{Total: len(rows)}
	for _, row := range rows {
		if row.Match {
			summary.Correct++
		}
	}
	if summary.Total > 0 {
		summary.Accuracy = float64(summary.Correct) / float64(summary.Total)
	}
	return summary
}
