package core

import (
	"context"
	"errors"
	"math"
	"time"
)

// RateLimiter paces successive predictor calls.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

type intervalLimiter struct {
	interval time.Duration
	last     time.Time
}

// NewRateLimiter returns a limiter that spaces calls at least 1/rps apart.
// Evaluation is single-threaded, so a timestamp check suffices.
func NewRateLimiter(rps float64) (RateLimiter, error) {
	if rps <= 0 {
		return nil, errors.New("rate limiter: rps must be > 0")
	}
	interval := time.Duration(math.Round(float64(time.Second) / rps))
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return &intervalLimiter{interval: interval}, nil
}

func (l *intervalLimiter) Wait(ctx context.Context) error {
	if !l.last.IsZero() {
		wait := l.interval - time.Since(l.last)
		if wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	l.last = time.Now()
	return nil
}
