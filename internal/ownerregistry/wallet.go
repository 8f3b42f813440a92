package ownerregistry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/pkg/types"
	"github.com/gabapcia/multisig/internal/pkg/validator"

	"github.com/google/uuid"
)

// WalletState is the versioned record holding the owner set and the approval
// threshold of a wallet.
//
// Invariant: 1 <= RequiredConfirmations <= Owners.Len() after every committed write.
type WalletState struct {
	ID                    string
	Address               string            // on-chain account that holds the funds
	Owners                types.Set[string] // normalized owner addresses
	RequiredConfirmations int
	TransactionCount      uint64 // ids handed out so far; maintained by the ledger storage
	Version               uint64 // incremented on every committed write
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// WalletStorage defines the persistence of wallet records.
type WalletStorage interface {
	// CreateWallet stores a new wallet at version 1.
	//
	// Returns ErrWalletAlreadyExists if the id is taken.
	CreateWallet(ctx context.Context, w WalletState) error

	// LoadWallet returns the stored wallet, including its transaction counter.
	//
	// Returns ErrWalletNotFound if it does not exist.
	LoadWallet(ctx context.Context, walletID string) (WalletState, error)

	// UpdateWallet replaces the owners and threshold of w.ID only if the
	// stored version still equals expectedVersion, writing w.Version.
	//
	// Returns optimistic.ErrVersionConflict if another writer got there first.
	UpdateWallet(ctx context.Context, w WalletState, expectedVersion uint64) error
}

// NormalizeAddress returns the canonical form of an address used as a set key.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// IsOwner reports whether address belongs to the owner set.
func (w WalletState) IsOwner(address string) bool {
	return w.Owners.Has(NormalizeAddress(address))
}

// Clone returns a deep copy whose owner set can be mutated independently.
func (w WalletState) Clone() WalletState {
	w.Owners = w.Owners.Clone()
	return w
}

// Validate checks the wallet invariant.
func (w WalletState) Validate() error {
	if w.RequiredConfirmations < 1 || w.RequiredConfirmations > w.Owners.Len() {
		return fmt.Errorf("%w: got %d with %d owners", ErrInvalidRequirement, w.RequiredConfirmations, w.Owners.Len())
	}

	return nil
}

// newWalletRequest is the validated input of CreateWallet.
type newWalletRequest struct {
	Address  string   `validate:"required,eth_addr"`
	Owners   []string `validate:"required,min=1,dive,required,eth_addr"`
	Required int      `validate:"min=1"`
}

// buildWallet validates the creation input and assembles a version 1 wallet.
func buildWallet(address string, owners []string, required int) (WalletState, error) {
	req := newWalletRequest{
		Address:  address,
		Owners:   owners,
		Required: required,
	}
	if err := validator.Validate(req); err != nil {
		return WalletState{}, err
	}

	set := types.NewSet[string]()
	for _, owner := range owners {
		normalized := NormalizeAddress(owner)
		if set.Has(normalized) {
			return WalletState{}, fmt.Errorf("%w: %s", ErrDuplicateOwner, normalized)
		}
		set.Add(normalized)
	}

	now := time.Now().UTC()
	w := WalletState{
		ID:                    uuid.Must(uuid.NewV7()).String(),
		Address:               NormalizeAddress(address),
		Owners:                set,
		RequiredConfirmations: required,
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	return w, w.Validate()
}

// CreateWallet implements Service.
func (s *service) CreateWallet(ctx context.Context, address string, owners []string, required int) (WalletState, error) {
	w, err := buildWallet(address, owners, required)
	if err != nil {
		return WalletState{}, err
	}

	if err := s.walletStorage.CreateWallet(ctx, w); err != nil {
		return WalletState{}, err
	}

	logger.Info(ctx, "wallet created",
		"wallet_id", w.ID,
		"owners", w.Owners.Len(),
		"required_confirmations", w.RequiredConfirmations,
	)

	return w, nil
}

// Wallet implements Service.
func (s *service) Wallet(ctx context.Context, walletID string) (WalletState, error) {
	return s.walletStorage.LoadWallet(ctx, walletID)
}

// IsOwner implements Service.
func (s *service) IsOwner(ctx context.Context, walletID, address string) (bool, error) {
	w, err := s.walletStorage.LoadWallet(ctx, walletID)
	if err != nil {
		return false, err
	}

	return w.IsOwner(address), nil
}

// CurrentThreshold implements Service.
func (s *service) CurrentThreshold(ctx context.Context, walletID string) (int, error) {
	w, err := s.walletStorage.LoadWallet(ctx, walletID)
	if err != nil {
		return 0, err
	}

	return w.RequiredConfirmations, nil
}
