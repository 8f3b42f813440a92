// Package optimistic holds the building blocks of optimistic concurrency control
// shared by every versioned record: the conflict sentinel returned by storage
// adapters and a retry policy that only replays conflicting read-modify-write cycles.
package optimistic

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/multisig/internal/pkg/resilience/retry"
)

// ErrVersionConflict is returned by storage adapters when a compare-and-swap
// finds a stored version different from the one the caller read.
var ErrVersionConflict = errors.New("version conflict")

// IsConflict reports whether err is, or wraps, ErrVersionConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// NewRetry returns a retry policy that replays an operation only while it keeps
// failing with ErrVersionConflict. Every other error is returned at once.
func NewRetry(attempts uint) retry.Retry {
	return retry.New(
		retry.WithAttempts(attempts),
		retry.WithDelay(2*time.Millisecond),
		retry.WithMaxDelay(50*time.Millisecond),
		retry.WithRetryIf(IsConflict),
	)
}

// Update runs a read-modify-write cycle under r. The cycle is replayed from
// the read whenever the write loses a compare-and-swap race.
func Update(ctx context.Context, r retry.Retry, cycle func() error) error {
	return r.Execute(ctx, cycle)
}
