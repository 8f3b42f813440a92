package confirmation

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/txledger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// errUnchanged aborts a ledger update that would not modify the transaction.
var errUnchanged = errors.New("transaction unchanged")

// action is the kind of change applied to the confirmation set.
type action string

const (
	actionConfirm action = "confirm"
	actionRevoke  action = "revoke"
)

// Confirm implements Service.
func (s *service) Confirm(ctx context.Context, walletID string, id uint64, owner string) (txledger.Transaction, error) {
	return s.change(ctx, walletID, id, owner, actionConfirm)
}

// Revoke implements Service.
func (s *service) Revoke(ctx context.Context, walletID string, id uint64, owner string) (txledger.Transaction, error) {
	return s.change(ctx, walletID, id, owner, actionRevoke)
}

// change adds or removes owner from the confirmation set of a transaction
// and settles its status against the wallet state. When the wallet moved on
// while the update ran, the transaction is settled again.
func (s *service) change(ctx context.Context, walletID string, id uint64, owner string, act action) (txledger.Transaction, error) {
	ctx = logger.Derive(ctx, "wallet_id", walletID, "tx_id", id)

	wallet, err := s.registry.Wallet(ctx, walletID)
	if err != nil {
		return txledger.Transaction{}, err
	}

	owner = ownerregistry.NormalizeAddress(owner)
	if !wallet.IsOwner(owner) {
		return txledger.Transaction{}, fmt.Errorf("%w: %s", ownerregistry.ErrNotAnOwner, owner)
	}

	var previous txledger.Status
	tx, err := s.ledger.Update(ctx, walletID, id, func(tx *txledger.Transaction) error {
		if tx.Status.IsLocked() {
			return txledger.ErrAlreadyExecuted
		}

		previous = tx.Status
		present := tx.Confirmations.Has(owner)
		switch act {
		case actionConfirm:
			tx.Confirmations.Add(owner)
		case actionRevoke:
			tx.Confirmations.Delete(owner)
		}

		statusChanged := settle(tx, wallet)
		setChanged := present != tx.Confirmations.Has(owner)
		if !setChanged && !statusChanged {
			return errUnchanged
		}

		return nil
	})
	if errors.Is(err, errUnchanged) {
		return s.ledger.Get(ctx, walletID, id)
	}
	if err != nil {
		return txledger.Transaction{}, err
	}

	// A governance change may have committed between the wallet read and the
	// write above; settle again against the wallet as it is now.
	latest, err := s.registry.Wallet(ctx, walletID)
	switch {
	case err != nil:
		logger.Warn(ctx, "failed to reload wallet after confirmation update", "error", err)
	case latest.Version != wallet.Version:
		settled, err := s.reconcileTransaction(ctx, latest, id)
		switch {
		case err == nil:
			tx = settled
		case !errors.Is(err, errUnchanged):
			logger.Warn(ctx, "failed to settle transaction against the current wallet", "error", err)
		}
		wallet = latest
	}

	s.confirmations.Add(ctx, 1, metric.WithAttributes(attribute.String("action", string(act))))
	logger.Info(ctx, "confirmation updated",
		"action", act,
		"owner", owner,
		"approvals", Approvals(tx, wallet),
		"required", wallet.RequiredConfirmations,
	)

	if previous != tx.Status {
		logger.Info(ctx, "transaction status changed", "from", previous, "to", tx.Status)
	}

	return tx, nil
}

// Reconcile implements Service.
func (s *service) Reconcile(ctx context.Context, wallet ownerregistry.WalletState) error {
	open, err := s.ledger.List(ctx, wallet.ID, txledger.Filter{
		Statuses: []txledger.Status{txledger.StatusPending, txledger.StatusConfirmed},
	})
	if err != nil {
		return err
	}

	var errs []error
	for _, candidate := range open {
		_, err := s.reconcileTransaction(ctx, wallet, candidate.ID)
		if err != nil && !errors.Is(err, errUnchanged) {
			errs = append(errs, fmt.Errorf("reconcile transaction %d: %w", candidate.ID, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info(ctx, "open transactions reconciled", "wallet_id", wallet.ID, "count", len(open))
	return nil
}

// reconcileTransaction drops approvals of non-owners from an open transaction
// and settles its status against wallet. It returns errUnchanged when nothing
// had to be written.
func (s *service) reconcileTransaction(ctx context.Context, wallet ownerregistry.WalletState, id uint64) (txledger.Transaction, error) {
	return s.ledger.Update(ctx, wallet.ID, id, func(tx *txledger.Transaction) error {
		if tx.Status.IsLocked() {
			return errUnchanged
		}

		before := tx.Confirmations.Len()
		tx.Confirmations = tx.Confirmations.Intersect(wallet.Owners)
		statusChanged := settle(tx, wallet)
		if before == tx.Confirmations.Len() && !statusChanged {
			return errUnchanged
		}

		return nil
	})
}
