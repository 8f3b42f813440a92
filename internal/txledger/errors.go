package txledger

import (
	"errors"
	"fmt"

	"github.com/gabapcia/multisig/internal/pkg/validator"
)

var (
	// ErrTransactionNotFound is returned when no transaction exists with the given id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPrecondition groups the failures of operations that are not valid in
	// the current transaction state.
	ErrPrecondition = errors.New("precondition failed")

	// ErrQuorumNotMet is returned when executing a transaction that lacks confirmations.
	ErrQuorumNotMet = fmt.Errorf("%w: quorum not met", ErrPrecondition)

	// ErrAlreadyExecuted is returned when touching a transaction that is executing,
	// executed or failed.
	ErrAlreadyExecuted = fmt.Errorf("%w: transaction already executed", ErrPrecondition)

	// ErrInvalidValue is returned for a missing or negative value.
	ErrInvalidValue = fmt.Errorf("%w: value must be zero or positive", validator.ErrValidation)

	// ErrInvalidPayload is returned for a missing or malformed payload.
	ErrInvalidPayload = fmt.Errorf("%w: invalid payload", validator.ErrValidation)

	// ErrInvalidFilter is returned for an unknown status or type in a list filter.
	ErrInvalidFilter = fmt.Errorf("%w: invalid filter", validator.ErrValidation)
)
