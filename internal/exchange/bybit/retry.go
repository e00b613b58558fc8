package bybit

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig controls the exponential backoff applied to market-data calls.
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns the backoff used for kline and ticker requests.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Second,
		MaxDelay:      time.Minute,
		BackoffFactor: 2.0,
	}
}

// withRetry runs fn, retrying transient failures with exponential backoff
// plus jitter. Non-retryable errors and context cancellation return
// immediately.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	return c.withRetryConfig(ctx, DefaultRetryConfig(), fn)
}

func (c *Client) withRetryConfig(ctx context.Context, config RetryConfig, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == config.MaxRetries || !IsRetryableError(lastErr) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoffDelay(attempt, config)):
		}
	}
	return lastErr
}

func backoffDelay(attempt int, config RetryConfig) time.Duration {
	delay := time.Duration(float64(config.InitialDelay) * math.Pow(config.BackoffFactor, float64(attempt)))
	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}
	// ±10% jitter keeps concurrent callers from retrying in lockstep
	jitter := time.Duration(float64(delay) * 0.1 * (2*rand.Float64() - 1))
	return delay + jitter
}
