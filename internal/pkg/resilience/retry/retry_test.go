package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_Execute(t *testing.T) {
	t.Run("successful operation", func(t *testing.T) {
		r := New()
		callCount := 0

		err := r.Execute(t.Context(), func() error {
			callCount++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, callCount, "Operation should be called exactly once")
	})

	t.Run("retry until success", func(t *testing.T) {
		r := New(WithAttempts(3), WithDelay(time.Millisecond))
		callCount := 0

		err := r.Execute(t.Context(), func() error {
			callCount++
			if callCount < 2 {
				return errors.New("temporary error")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, callCount)
	})

	t.Run("retry exhausted returns the last error", func(t *testing.T) {
		r := New(
			WithAttempts(3),
			WithDelay(time.Millisecond),
			WithMaxDelay(5*time.Millisecond),
		)
		callCount := 0
		expectedErr := errors.New("persistent error")

		err := r.Execute(t.Context(), func() error {
			callCount++
			return expectedErr
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Equal(t, 3, callCount)
	})

	t.Run("non retryable error stops immediately", func(t *testing.T) {
		conflict := errors.New("conflict")
		fatal := errors.New("fatal")

		r := New(
			WithAttempts(5),
			WithDelay(time.Millisecond),
			WithRetryIf(func(err error) bool { return errors.Is(err, conflict) }),
		)
		callCount := 0

		err := r.Execute(t.Context(), func() error {
			callCount++
			if callCount == 1 {
				return conflict
			}
			return fatal
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 2, callCount)
	})

	t.Run("context cancellation stops retrying", func(t *testing.T) {
		r := New(
			WithAttempts(5),
			WithDelay(100*time.Millisecond),
		)
		callCount := 0

		ctx, cancel := context.WithCancel(t.Context())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := r.Execute(ctx, func() error {
			callCount++
			return errors.New("error that would normally trigger retry")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, callCount)
	})
}

func TestRetry_Options(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		r := New()
		retrier, ok := r.(*retrier)
		require.True(t, ok)

		assert.Equal(t, uint(3), retrier.cfg.attempts)
		assert.Equal(t, 1*time.Second, retrier.cfg.delay)
		assert.Equal(t, 5*time.Second, retrier.cfg.maxDelay)
		assert.True(t, retrier.cfg.lastErrOnly)
		assert.True(t, retrier.cfg.retryIf(errors.New("any")))
	})

	t.Run("custom options", func(t *testing.T) {
		r := New(
			WithAttempts(5),
			WithDelay(2*time.Second),
			WithMaxDelay(10*time.Second),
			WithLastErrorOnly(false),
			WithRetryIf(func(error) bool { return false }),
		)
		retrier, ok := r.(*retrier)
		require.True(t, ok)

		assert.Equal(t, uint(5), retrier.cfg.attempts)
		assert.Equal(t, 2*time.Second, retrier.cfg.delay)
		assert.Equal(t, 10*time.Second, retrier.cfg.maxDelay)
		assert.False(t, retrier.cfg.lastErrOnly)
		assert.False(t, retrier.cfg.retryIf(errors.New("any")))
	})

	t.Run("nil retryIf keeps the default", func(t *testing.T) {
		r := New(WithRetryIf(nil))
		retrier := r.(*retrier)
		assert.True(t, retrier.cfg.retryIf(errors.New("any")))
	})
}
