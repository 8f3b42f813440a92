package optimistic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConflict(t *testing.T) {
	t.Run("matches wrapped conflicts", func(t *testing.T) {
		assert.True(t, IsConflict(fmt.Errorf("wallet w-1: %w", ErrVersionConflict)))
	})

	t.Run("ignores other errors", func(t *testing.T) {
		assert.False(t, IsConflict(errors.New("boom")))
		assert.False(t, IsConflict(nil))
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replays the cycle while it conflicts", func(t *testing.T) {
		calls := 0
		err := Update(t.Context(), NewRetry(5), func() error {
			calls++
			if calls < 3 {
				return ErrVersionConflict
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns other errors without replaying", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := Update(t.Context(), NewRetry(5), func() error {
			calls++
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		calls := 0
		err := Update(t.Context(), NewRetry(2), func() error {
			calls++
			return ErrVersionConflict
		})

		assert.ErrorIs(t, err, ErrVersionConflict)
		assert.Equal(t, 2, calls)
	})
}
