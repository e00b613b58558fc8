package bybit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestClient_WithRetry_SucceedsFirstAttempt(t *testing.T) {
	c := &Client{}
	calls := 0

	err := c.withRetryConfig(context.Background(), fastRetryConfig(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestClient_WithRetry_RetriesTransientErrors(t *testing.T) {
	c := &Client{}
	calls := 0

	err := c.withRetryConfig(context.Background(), fastRetryConfig(), func() error {
		calls++
		if calls < 3 {
			return ParseAPIError(ErrCodeRateLimitExceeded, "rate limited")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestClient_WithRetry_ExhaustsRetries(t *testing.T) {
	c := &Client{}
	calls := 0

	err := c.withRetryConfig(context.Background(), fastRetryConfig(), func() error {
		calls++
		return ParseAPIError(503, "unavailable")
	})

	require.Error(t, err)
	assert.Equal(t, 4, calls) // initial attempt + 3 retries

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestClient_WithRetry_StopsOnNonRetryableError(t *testing.T) {
	c := &Client{}
	calls := 0
	fatal := errors.New("bad request")

	err := c.withRetryConfig(context.Background(), fastRetryConfig(), func() error {
		calls++
		return fatal
	})

	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestClient_WithRetry_HonorsContextCancellation(t *testing.T) {
	c := &Client{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.withRetryConfig(ctx, fastRetryConfig(), func() error {
		return ParseAPIError(503, "unavailable")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
