package classify

import (
	"context"
	"strings"

	"sentigo/pkg/core"
	"sentigo/pkg/observe"
)

// FewShot prepends labeled demonstrations to the classification prompt.
// Demos are supplied as-is; nothing here selects or optimizes them.
type FewShot struct {
	Model          core.Model
	Observer       observe.Observer
	Options        core.GenerateOptions
	Demos          []core.Example
	PromptTemplate string
	DemoTemplate   string
	Separator      string
}

func (f FewShot) Name() string {
	if f.Model == nil {
		return "few-shot"
	}
	return f.Model.Name()
}

// Predict formats the demos in order before the query, then delegates the
// single model call, observer bracketing included, to Classifier.
func (f FewShot) Predict(ctx context.Context, input string) (core.Response, error) {
	separator := f.Separator
	if separator == "" {
		separator = "\n\n"
	}
	demoTemplate := f.DemoTemplate
	if demoTemplate == "" {
		demoTemplate = "Review: {{input}}\nSentiment: {{label}}"
	}
	promptTemplate := f.PromptTemplate
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}

	parts := make([]string, 0, len(f.Demos)+1)
	for _, demo := range f.Demos {
		parts = append(parts, applyTemplate(demoTemplate, map[string]string{
			"input": demo.Input,
			"label": demo.Label,
		}))
	}
	parts = append(parts, applyTemplate(promptTemplate, map[string]string{"input": input}))

	inner := Classifier{
		Model:          f.Model,
		Observer:       f.Observer,
		Options:        f.Options,
		PromptTemplate: "{{input}}",
	}
	return inner.Predict(ctx, strings.Join(parts, separator))
}
