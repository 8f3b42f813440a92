package ownerregistry

import (
	"errors"
	"fmt"

	"github.com/gabapcia/multisig/internal/pkg/validator"
)

var (
	// ErrWalletNotFound is returned when no wallet exists with the given id.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletAlreadyExists is returned by storage when a wallet id is reused.
	ErrWalletAlreadyExists = errors.New("wallet already exists")

	// ErrNotAnOwner is the authorization failure returned when the caller is
	// not a current owner of the wallet.
	ErrNotAnOwner = errors.New("caller is not an owner of the wallet")

	// ErrInvalidRequirement is returned when required confirmations would fall
	// outside [1, number of owners].
	ErrInvalidRequirement = fmt.Errorf("%w: required confirmations must be between 1 and the number of owners", validator.ErrValidation)

	// ErrOwnerAlreadyExists is returned when adding an address that already owns the wallet.
	ErrOwnerAlreadyExists = fmt.Errorf("%w: address is already an owner", validator.ErrValidation)

	// ErrOwnerNotFound is returned when removing an address that does not own the wallet.
	ErrOwnerNotFound = fmt.Errorf("%w: address is not an owner", validator.ErrValidation)

	// ErrDuplicateOwner is returned when a wallet is created with the same owner twice.
	ErrDuplicateOwner = fmt.Errorf("%w: owner listed more than once", validator.ErrValidation)
)
