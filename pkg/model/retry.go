package model

import (
	"context"
	"errors"
	"time"

	"sentigo/pkg/core"
)

const defaultBackoff = 500 * time.Millisecond

type retryPolicy struct {
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
}

func (p retryPolicy) withDefaults(timeout time.Duration) retryPolicy {
	out := p
	if out.timeout <= 0 {
		out.timeout = timeout
	}
	if out.maxRetries < 0 {
		out.maxRetries = 0
	}
	if out.backoff <= 0 {
		out.backoff = defaultBackoff
	}
	return out
}

// generateWithRetries runs one provider call per attempt under a per-attempt
// timeout, with linear backoff between attempts. Context cancellation is
// terminal, never retried.
func generateWithRetries(ctx context.Context, policy retryPolicy, call func(ctx context.Context) (core.Response, error)) (core.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= policy.maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, policy.timeout)
		response, err := call(attemptCtx)
		cancel()
		if err == nil {
			return response, nil
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		lastErr = err

		if attempt < policy.maxRetries {
			select {
			case <-ctx.Done():
				return core.Response{}, ctx.Err()
			case <-time.After(policy.backoff * time.Duration(attempt+1)):
			}
		}
	}
	return core.Response{}, lastErr
}
