package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient")

func fastRetry(attempts uint) RetryConfig {
	return RetryConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxAttempts:     attempts,
	}
}

func TestRetry(t *testing.T) {
	t.Run("should return the first success", func(t *testing.T) {
		calls := 0
		res, err := Retry(context.Background(), fastRetry(5), func(ctx context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errTransient
			}
			return "ok", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "ok", res)
		assert.Equal(t, 3, calls)
	})

	t.Run("should give up after the configured attempts", func(t *testing.T) {
		calls := 0
		var retried []uint
		cfg := fastRetry(4)
		cfg.OnRetry = func(attempt uint, err error, next time.Duration) {
			retried = append(retried, attempt)
		}
		_, err := Retry(context.Background(), cfg, func(ctx context.Context) (int, error) {
			calls++
			return 0, errTransient
		})
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 4, calls)
		assert.Equal(t, []uint{1, 2, 3}, retried)
	})

	t.Run("should not retry errors which are not retryable", func(t *testing.T) {
		calls := 0
		permanent := errors.New("bad request")
		cfg := fastRetry(5)
		cfg.Retryable = func(err error) bool { return errors.Is(err, errTransient) }

		_, err := Retry(context.Background(), cfg, func(ctx context.Context) (int, error) {
			calls++
			return 0, permanent
		})
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})
}
