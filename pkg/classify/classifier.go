// Package classify implements the sentiment predictor: prompt construction
// around a model, with every call bracketed by observer hooks.
package classify

import (
	"context"
	"errors"
	"fmt"

	"sentigo/pkg/core"
	"sentigo/pkg/observe"
)

// DefaultPromptTemplate instructs the model to answer with the bare label.
// The response content is used verbatim as the prediction.
const DefaultPromptTemplate = "Classify the sentiment of a movie review as Positive, Negative, or Mixed. Return only the label.\nReview: {{input}}\nSentiment:"

// Classifier is a single-shot predictor over a model.
type Classifier struct {
	Model          core.Model
	Observer       observe.Observer
	Options        core.GenerateOptions
	PromptTemplate string
}

func (c Classifier) Name() string {
	if c.Model == nil {
		return "classifier"
	}
	return c.Model.Name()
}

// Predict builds the classification prompt, invokes the model once, and
// returns the raw response. The observer sees the provider-shaped request
// before the call and exactly one terminal outcome after it. The response
// content is not trimmed or normalized; label matching is exact.
func (c Classifier) Predict(ctx context.Context, input string) (core.Response, error) {
	if c.Model == nil {
		return core.Response{}, errors.New("classify: model is required")
	}
	observer := c.Observer
	if observer == nil {
		observer = observe.NopObserver{}
	}

	prompt := c.buildPrompt(input)
	callID := newCallID()
	observer.OnCallStart(callID, c.Model.RawRequest(prompt, c.Options))

	response, err := c.Model.Generate(ctx, prompt, c.Options)
	if err != nil {
		observer.OnCallEnd(callID, "", err)
		return core.Response{}, fmt.Errorf("classify: %w", err)
	}
	observer.OnCallEnd(callID, response.Content, nil)
	return response, nil
}

func (c Classifier) buildPrompt(input string) string {
	template := c.PromptTemplate
	if template == "" {
		template = DefaultPromptTemplate
	}
	return applyTemplate(template, map[string]string{"input": input})
}
