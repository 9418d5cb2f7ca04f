package core

import "time"

// Example is one labeled input/ground-truth pair used for evaluation.
// The label is opaque text; membership in a sentiment vocabulary such as
// Positive/Negative/Mixed is not enforced.
type Example struct {
	Input string `json:"input" yaml:"input"`
	Label string `json:"label" yaml:"label"`
}

// Prediction is the label produced for one example.
type Prediction struct {
	Label string `json:"label" yaml:"label"`
}

// Response is a model response plus basic telemetry.
type Response struct {
	Content    string        `json:"content" yaml:"content"`
	TokenUsage TokenUsage    `json:"token_usage" yaml:"token_usage"`
	Latency    time.Duration `json:"latency" yaml:"latency"`
}

// TokenUsage captures token accounting for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens" yaml:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens" yaml:"completion_tokens"`
	TotalTokens      int `json:"total_tokens" yaml:"total_tokens"`
}

// Row captures the outcome for one example.
type Row struct {
	Example    Example    `json:"example" yaml:"example"`
	Prediction Prediction `json:"prediction" yaml:"prediction"`
	Response   Response   `json:"response" yaml:"response"`
	Match      bool       `json:"match" yaml:"match"`
	Error      string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates an evaluation run.
type Summary struct {
	Total    int     `json:"total" yaml:"total"`
	Correct  int     `json:"correct" yaml:"correct"`
	Accuracy float64 `json:"accuracy" yaml:"accuracy"`
}

// GenerateOptions controls model generation behavior.
type GenerateOptions struct {
	Temperature  float32  `json:"temperature" yaml:"temperature"`
	MaxTokens    int      `json:"max_tokens" yaml:"max_tokens"`
	TopP         float32  `json:"top_p" yaml:"top_p"`
	Stop         []string `json:"stop" yaml:"stop"`
	SystemPrompt string   `json:"system_prompt,omitempty" yaml:"system_prompt,omitempty"`
}
