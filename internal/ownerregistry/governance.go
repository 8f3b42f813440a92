package ownerregistry

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/pkg/validator"
)

// Change is a governance mutation of the owner set or threshold.
//
// The set of implementations is closed: AddOwner, RemoveOwner and
// ChangeRequirement.
type Change interface {
	// apply mutates w in place. Callers must pass a clone.
	apply(w *WalletState) error
	String() string
}

// AddOwner adds a new owner to the wallet.
type AddOwner struct {
	Owner string `validate:"required,eth_addr"`
}

// RemoveOwner removes an existing owner from the wallet.
type RemoveOwner struct {
	Owner string `validate:"required,eth_addr"`
}

// ChangeRequirement sets the number of confirmations required per transaction.
type ChangeRequirement struct {
	Required int
}

func (c AddOwner) apply(w *WalletState) error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	owner := NormalizeAddress(c.Owner)
	if w.Owners.Has(owner) {
		return fmt.Errorf("%w: %s", ErrOwnerAlreadyExists, owner)
	}

	w.Owners.Add(owner)
	return nil
}

func (c AddOwner) String() string { return "add_owner(" + NormalizeAddress(c.Owner) + ")" }

func (c RemoveOwner) apply(w *WalletState) error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	owner := NormalizeAddress(c.Owner)
	if !w.Owners.Has(owner) {
		return fmt.Errorf("%w: %s", ErrOwnerNotFound, owner)
	}

	if w.RequiredConfirmations > w.Owners.Len()-1 {
		return fmt.Errorf("%w: removing %s leaves %d owners for %d required confirmations",
			ErrInvalidRequirement, owner, w.Owners.Len()-1, w.RequiredConfirmations)
	}

	w.Owners.Delete(owner)
	return nil
}

func (c RemoveOwner) String() string { return "remove_owner(" + NormalizeAddress(c.Owner) + ")" }

func (c ChangeRequirement) apply(w *WalletState) error {
	w.RequiredConfirmations = c.Required
	return nil
}

func (c ChangeRequirement) String() string { return fmt.Sprintf("change_requirement(%d)", c.Required) }

// Apply returns the wallet that results from applying change to w.
// w itself is never modified, and the result always satisfies the wallet invariant.
func (w WalletState) Apply(change Change) (WalletState, error) {
	if change == nil {
		return WalletState{}, fmt.Errorf("%w: missing governance change", validator.ErrValidation)
	}

	next := w.Clone()
	if err := change.apply(&next); err != nil {
		return WalletState{}, err
	}

	if err := next.Validate(); err != nil {
		return WalletState{}, err
	}

	next.Version = w.Version + 1
	next.UpdatedAt = time.Now().UTC()
	return next, nil
}

// ApplyGovernanceChange implements Service.
//
// The wallet is re-read on every attempt so a change is always validated
// against the state it is committed over.
func (s *service) ApplyGovernanceChange(ctx context.Context, walletID string, change Change) (WalletState, error) {
	var committed WalletState

	err := optimistic.Update(ctx, s.retry, func() error {
		current, err := s.walletStorage.LoadWallet(ctx, walletID)
		if err != nil {
			return err
		}

		next, err := current.Apply(change)
		if err != nil {
			return err
		}

		if err := s.walletStorage.UpdateWallet(ctx, next, current.Version); err != nil {
			return err
		}

		committed = next
		return nil
	})
	if err != nil {
		logger.Warn(ctx, "governance change rejected",
			"wallet_id", walletID,
			"change", change,
			"error", err,
		)
		return WalletState{}, err
	}

	logger.Info(ctx, "governance change applied",
		"wallet_id", walletID,
		"change", change,
		"owners", committed.Owners.Len(),
		"required_confirmations", committed.RequiredConfirmations,
		"version", committed.Version,
	)

	return committed, nil
}
