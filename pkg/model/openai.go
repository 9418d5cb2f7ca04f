package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"sentigo/pkg/core"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIModel classifies via the OpenAI Responses API. Its wire request is a
// flat prompt string.
type OpenAIModel struct {
	Client     openai.Client
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

func NewOpenAIModelFromEnv(modelName string) (*OpenAIModel, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("openai: OPENAI_API_KEY is required")
	}
	if modelName == "" {
		modelName = defaultOpenAIModel
	}
	return &OpenAIModel{
		Client:     openai.NewClient(option.WithAPIKey(apiKey)),
		Model:      modelName,
		Timeout:    30 * time.Second,
		MaxRetries: 2,
		Backoff:    defaultBackoff,
	}, nil
}

func (o OpenAIModel) Name() string {
	if o.Model == "" {
		return defaultOpenAIModel
	}
	return o.Model
}

func (o OpenAIModel) RawRequest(prompt string, opts core.GenerateOptions) map[string]any {
	raw := map[string]any{
		"model":  o.Name(),
		"prompt": prompt,
	}
	if opts.SystemPrompt != "" {
		raw["instructions"] = opts.SystemPrompt
	}
	return raw
}

func (o OpenAIModel) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (core.Response, error) {
	params := responses.ResponseNewParams{
		Model: openai.ChatModel(o.Name()),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
		Store: openai.Bool(false),
	}
	if opts.SystemPrompt != "" {
		params.Instructions = openai.String(opts.SystemPrompt)
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(float64(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		params.MaxOutputTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.TopP > 0 {
		params.TopP = openai.Float(float64(opts.TopP))
	}

	policy := retryPolicy{timeout: o.Timeout, maxRetries: o.MaxRetries, backoff: o.Backoff}.withDefaults(30 * time.Second)
	response, err := generateWithRetries(ctx, policy, func(ctx context.Context) (core.Response, error) {
		start := time.Now()
		resp, err := o.Client.Responses.New(ctx, params)
		if err != nil {
			return core.Response{}, err
		}
		content := resp.OutputText()
		if content == "" {
			return core.Response{}, errors.New("empty response")
		}
		return core.Response{
			Content: content,
			TokenUsage: core.TokenUsage{
				PromptTokens:     int(resp.Usage.InputTokens),
				CompletionTokens: int(resp.Usage.OutputTokens),
				TotalTokens:      int(resp.Usage.TotalTokens),
			},
			Latency: time.Since(start),
		}, nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		return core.Response{}, fmt.Errorf("openai: request failed: %w", err)
	}
	return response, nil
}
