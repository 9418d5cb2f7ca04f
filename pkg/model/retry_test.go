package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sentigo/pkg/core"
)

func TestGenerateWithRetriesSucceedsAfterTransientFailure(t *testing.T) {
	calls := 0
	policy := retryPolicy{maxRetries: 2, backoff: time.Millisecond}.withDefaults(time.Second)

	response, err := generateWithRetries(context.Background(), policy, func(ctx context.Context) (core.Response, error) {
		calls++
		if calls < 3 {
			return core.Response{}, errors.New("transient")
		}
		return core.Response{Content: "Positive"}, nil
	})
	require.NoError(t, err)
	require.Equal(t, "Positive", response.Content)
	require.Equal(t, 3, calls)
}

func TestGenerateWithRetriesExhaustsAttempts(t *testing.T) {
	calls := 0
	policy := retryPolicy{maxRetries: 1, backoff: time.Millisecond}.withDefaults(time.Second)

	_, err := generateWithRetries(context.Background(), policy, func(ctx context.Context) (core.Response, error) {
		calls++
		return core.Response{}, errors.New("still down")
	})
	require.EqualError(t, err, "still down")
	require.Equal(t, 2, calls)
}

func TestGenerateWithRetriesCancellationIsTerminal(t *testing.T) {
	calls := 0
	policy := retryPolicy{maxRetries: 5, backoff: time.Millisecond}.withDefaults(time.Second)

	_, err := generateWithRetries(context.Background(), policy, func(ctx context.Context) (core.Response, error) {
		calls++
		return core.Response{}, context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}

func TestGenerateWithRetriesAppliesAttemptTimeout(t *testing.T) {
	policy := retryPolicy{timeout: 10 * time.Millisecond, maxRetries: 3, backoff: time.Millisecond}.withDefaults(time.Second)

	_, err := generateWithRetries(context.Background(), policy, func(ctx context.Context) (core.Response, error) {
		<-ctx.Done()
		return core.Response{}, ctx.Err()
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryPolicyDefaults(t *testing.T) {
	policy := retryPolicy{maxRetries: -1}.withDefaults(30 * time.Second)
	require.Equal(t, 30*time.Second, policy.timeout)
	require.Equal(t, 0, policy.maxRetries)
	require.Equal(t, defaultBackoff, policy.backoff)
}

func TestMockModelEchoesPrompt(t *testing.T) {
	m := MockModel{}
	response, err := m.Generate(context.Background(), "Amazing film", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "Amazing film", response.Content)
}

func TestMockModelFixedResponse(t *testing.T) {
	m := MockModel{ResponseText: "Positive"}
	response, err := m.Generate(context.Background(), "anything", core.GenerateOptions{})
	require.NoError(t, err)
	require.Equal(t, "Positive", response.Content)
}

func TestMockModelRawRequestIsFlat(t *testing.T) {
	raw := MockModel{}.RawRequest("Amazing film", core.GenerateOptions{})
	require.Equal(t, "Amazing film", raw["prompt"])
	require.NotContains(t, raw, "messages")
}

func TestProviderRawRequestShapes(t *testing.T) {
	opts := core.GenerateOptions{SystemPrompt: "Answer with the bare label."}

	anthropic := AnthropicModel{}.RawRequest("Amazing film", opts)
	messages, ok := anthropic["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)

	openai := OpenAIModel{}.RawRequest("Amazing film", opts)
	require.Equal(t, "Amazing film", openai["prompt"])
	require.Equal(t, "Answer with the bare label.", openai["instructions"])

	ollama := OllamaModel{}.RawRequest("Amazing film", core.GenerateOptions{})
	messages, ok = ollama["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
}
