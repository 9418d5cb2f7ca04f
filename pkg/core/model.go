package core

import "context"

// Model generates responses for prompts.
type Model interface {
	Name() string
	// RawRequest reports the provider-shaped payload for a prompt as it will
	// go on the wire: a flat prompt string or a role-tagged message list.
	// The call observer normalizes and logs it.
	RawRequest(prompt string, opts GenerateOptions) map[string]any
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (Response, error)
}
