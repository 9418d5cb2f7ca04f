package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"sentigo/pkg/core"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicModel classifies via the Anthropic Messages API. Its wire request
// is a role-tagged message list.
type AnthropicModel struct {
	Client     anthropic.Client
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
	MaxTokens  int
}

func NewAnthropicModelFromEnv(modelName string) (*AnthropicModel, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, errors.New("anthropic: ANTHROPIC_API_KEY is required")
	}
	if modelName == "" {
		modelName = defaultAnthropicModel
	}
	return &AnthropicModel{
		Client:     anthropic.NewClient(option.WithAPIKey(apiKey)),
		Model:      modelName,
		Timeout:    30 * time.Second,
		MaxRetries: 2,
		Backoff:    defaultBackoff,
		MaxTokens:  1024,
	}, nil
}

func (a AnthropicModel) Name() string {
	if a.Model == "" {
		return defaultAnthropicModel
	}
	return a.Model
}

func (a AnthropicModel) RawRequest(prompt string, opts core.GenerateOptions) map[string]any {
	messages := make([]any, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, map[string]any{"role": "system", "content": opts.SystemPrompt})
	}
	messages = append(messages, map[string]any{"role": "user", "content": prompt})
	return map[string]any{
		"model":    a.Name(),
		"messages": messages,
	}
}

func (a AnthropicModel) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (core.Response, error) {
	maxTokens := a.MaxTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.Name()),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if opts.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: opts.SystemPrompt},
		}
	}
	if opts.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(opts.Temperature))
	}
	if opts.TopP > 0 {
		params.TopP = anthropic.Float(float64(opts.TopP))
	}
	if len(opts.Stop) > 0 {
		params.StopSequences = opts.Stop
	}

	policy := retryPolicy{timeout: a.Timeout, maxRetries: a.MaxRetries, backoff: a.Backoff}.withDefaults(30 * time.Second)
	response, err := generateWithRetries(ctx, policy, func(ctx context.Context) (core.Response, error) {
		start := time.Now()
		message, err := a.Client.Messages.New(ctx, params)
		if err != nil {
			return core.Response{}, err
		}
		usage := core.TokenUsage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
		}
		usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
		return core.Response{
			Content:    extractAnthropicText(message.Content),
			TokenUsage: usage,
			Latency:    time.Since(start),
		}, nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		return core.Response{}, fmt.Errorf("anthropic: request failed: %w", err)
	}
	return response, nil
}

func extractAnthropicText(blocks []anthropic.ContentBlockUnion) string {
	if len(blocks) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, block := range blocks {
		if block.Type == "text" {
			builder.WriteString(block.Text)
		}
	}
	return builder.String()
}
