package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"sentigo/pkg/core"
)

const defaultOllamaBaseURL = "http://localhost:11434/v1"
const defaultOllamaModel = "llama3"

// OllamaModel classifies via a local Ollama server speaking the
// OpenAI-compatible chat API. Its wire request is a message list.
type OllamaModel struct {
	Client     openai.Client
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

func NewOllamaModel(baseURL, modelName string) (*OllamaModel, error) {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	if modelName == "" {
		modelName = defaultOllamaModel
	}
	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey("ollama"),
	}
	return &OllamaModel{
		Client:     openai.NewClient(opts...),
		Model:      modelName,
		BaseURL:    baseURL,
		Timeout:    60 * time.Second,
		MaxRetries: 2,
		Backoff:    defaultBackoff,
	}, nil
}

func (o OllamaModel) Name() string {
	if o.Model == "" {
		return defaultOllamaModel
	}
	return o.Model
}

func (o OllamaModel) RawRequest(prompt string, opts core.GenerateOptions) map[string]any {
	messages := make([]any, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, map[string]any{"role": "system", "content": opts.SystemPrompt})
	}
	messages = append(messages, map[string]any{"role": "user", "content": prompt})
	return map[string]any{
		"model":    o.Name(),
		"messages": messages,
	}
}

func (o OllamaModel) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (core.Response, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if opts.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(opts.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Name()),
		Messages: messages,
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(float64(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.TopP > 0 {
		params.TopP = openai.Float(float64(opts.TopP))
	}

	policy := retryPolicy{timeout: o.Timeout, maxRetries: o.MaxRetries, backoff: o.Backoff}.withDefaults(60 * time.Second)
	response, err := generateWithRetries(ctx, policy, func(ctx context.Context) (core.Response, error) {
		start := time.Now()
		completion, err := o.Client.Chat.Completions.New(ctx, params)
		if err != nil {
			return core.Response{}, err
		}
		if len(completion.Choices) == 0 {
			return core.Response{}, errors.New("empty response")
		}
		return core.Response{
			Content: completion.Choices[0].Message.Content,
			TokenUsage: core.TokenUsage{
				PromptTokens:     int(completion.Usage.PromptTokens),
				CompletionTokens: int(completion.Usage.CompletionTokens),
				TotalTokens:      int(completion.Usage.TotalTokens),
			},
			Latency: time.Since(start),
		}, nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		return core.Response{}, fmt.Errorf("ollama: request failed: %w", err)
	}
	return response, nil
}
