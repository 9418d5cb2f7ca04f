package core

import "context"

// Predictor classifies one input text. The response content is the predicted
// label, verbatim.
type Predictor interface {
	Name() string
	Predict(ctx context.Context, input string) (Response, error)
}
