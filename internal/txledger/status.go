package txledger

import "fmt"

// Status is the lifecycle state of a transaction.
//
//	Pending ⇄ Confirmed → Executing → Executed | Failed
//
// Executing is an internal guard held while the side effect runs; it is
// reported as Confirmed to every external reader.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusExecuting Status = "executing"
	StatusExecuted  Status = "executed"
	StatusFailed    Status = "failed"
)

// IsFinal reports whether the status is terminal.
func (s Status) IsFinal() bool {
	return s == StatusExecuted || s == StatusFailed
}

// IsLocked reports whether the transaction no longer accepts confirm, revoke
// or execute calls.
func (s Status) IsLocked() bool {
	return s.IsFinal() || s == StatusExecuting
}

// Public returns the status as exposed outside the engine.
func (s Status) Public() Status {
	if s == StatusExecuting {
		return StatusConfirmed
	}
	return s
}

// ParseStatus parses a public status name.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusExecuted, StatusFailed:
		return st, nil
	}

	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, s)
}
