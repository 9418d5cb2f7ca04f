package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"sentigo/pkg/core"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiModel classifies via the Gemini API. Its wire request is a
// role-tagged message list.
type GeminiModel struct {
	Client     *genai.Client
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

func NewGeminiModelFromEnv(modelName string) (*GeminiModel, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("gemini: GEMINI_API_KEY or GOOGLE_API_KEY is required")
	}
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiModel{
		Client:     client,
		Model:      modelName,
		Timeout:    60 * time.Second,
		MaxRetries: 2,
		Backoff:    defaultBackoff,
	}, nil
}

func (g *GeminiModel) Name() string {
	if g.Model == "" {
		return defaultGeminiModel
	}
	return g.Model
}

func (g *GeminiModel) RawRequest(prompt string, opts core.GenerateOptions) map[string]any {
	messages := make([]any, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, map[string]any{"role": "system", "content": opts.SystemPrompt})
	}
	messages = append(messages, map[string]any{"role": "user", "content": prompt})
	return map[string]any{
		"model":    g.Name(),
		"messages": messages,
	}
}

func (g *GeminiModel) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (core.Response, error) {
	config := &genai.GenerateContentConfig{}
	if opts.SystemPrompt != "" {
		parts := genai.Text(opts.SystemPrompt)
		if len(parts) > 0 && parts[0] != nil {
			config.SystemInstruction = parts[0]
		}
	}
	if opts.Temperature > 0 {
		config.Temperature = ptrFloat32(float32(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}
	if opts.TopP > 0 {
		config.TopP = ptrFloat32(float32(opts.TopP))
	}

	policy := retryPolicy{timeout: g.Timeout, maxRetries: g.MaxRetries, backoff: g.Backoff}.withDefaults(60 * time.Second)
	response, err := generateWithRetries(ctx, policy, func(ctx context.Context) (core.Response, error) {
		start := time.Now()
		result, err := g.Client.Models.GenerateContent(ctx, g.Name(), genai.Text(prompt), config)
		if err != nil {
			return core.Response{}, err
		}
		content := result.Text()
		if content == "" {
			return core.Response{}, errors.New("empty response")
		}
		usage := core.TokenUsage{}
		if result.UsageMetadata != nil {
			usage.PromptTokens = int(result.UsageMetadata.PromptTokenCount)
			usage.CompletionTokens = int(result.UsageMetadata.CandidatesTokenCount)
			usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
		}
		return core.Response{
			Content:    content,
			TokenUsage: usage,
			Latency:    time.Since(start),
		}, nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		return core.Response{}, fmt.Errorf("gemini: request failed: %w", err)
	}
	return response, nil
}

func ptrFloat32(x float32) *float32 { return &x }
