// Package ownerregistry is the single source of truth for the owners of a
// multisig wallet and the number of confirmations a transaction needs.
package ownerregistry

import (
	"context"

	"github.com/gabapcia/multisig/internal/pkg/resilience/retry"
)

// Service defines the operations of the owner registry.
type Service interface {
	// CreateWallet registers a new wallet for the on-chain account address,
	// owned by owners and requiring required confirmations per transaction.
	//
	// Returns a validation error if an address is malformed, an owner is
	// listed twice, or required is outside [1, len(owners)].
	CreateWallet(ctx context.Context, address string, owners []string, required int) (WalletState, error)

	// Wallet returns the current state of the wallet.
	//
	// Returns ErrWalletNotFound if the wallet does not exist.
	Wallet(ctx context.Context, walletID string) (WalletState, error)

	// IsOwner reports whether address currently owns the wallet.
	IsOwner(ctx context.Context, walletID, address string) (bool, error)

	// CurrentThreshold returns the number of confirmations currently required.
	CurrentThreshold(ctx context.Context, walletID string) (int, error)

	// ApplyGovernanceChange validates change against the current wallet state
	// and commits it atomically. It is reserved for the execution engine.
	//
	// If validation fails nothing is written and the validation error is returned.
	ApplyGovernanceChange(ctx context.Context, walletID string, change Change) (WalletState, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	walletStorage WalletStorage
	retry         retry.Retry // replays governance writes that lose a version race
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a registry backed by ws. Concurrent governance writes that
// conflict are replayed according to r.
func New(ws WalletStorage, r retry.Retry) *service {
	return &service{
		walletStorage: ws,
		retry:         r,
	}
}
