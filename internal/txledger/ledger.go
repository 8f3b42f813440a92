package txledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/pkg/types"
	"github.com/gabapcia/multisig/internal/pkg/validator"
)

// SubmitRequest is the proposal of a new transaction. Its type is the type of
// the payload.
type SubmitRequest struct {
	Destination string   `validate:"required,eth_addr"`
	Value       *big.Int `validate:"-"`
	Payload     Payload  `validate:"-"`
	Description string   `validate:"max=1024"`
}

// validate checks every static constraint of the request.
func (r SubmitRequest) validate() error {
	if err := validator.Validate(r); err != nil {
		return err
	}

	if r.Value == nil || r.Value.Sign() < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidValue, r.Value)
	}

	return validatePayload(r.Payload)
}

// Submit implements Service.
func (s *service) Submit(ctx context.Context, walletID string, req SubmitRequest, proposer string) (Transaction, error) {
	if err := req.validate(); err != nil {
		return Transaction{}, err
	}

	isOwner, err := s.registry.IsOwner(ctx, walletID, proposer)
	if err != nil {
		return Transaction{}, err
	}
	if !isOwner {
		return Transaction{}, fmt.Errorf("%w: %s", ownerregistry.ErrNotAnOwner, proposer)
	}

	now := time.Now().UTC()
	tx, err := s.transactionStorage.CreateTransaction(ctx, Transaction{
		WalletID:      walletID,
		Type:          req.Payload.Type(),
		Destination:   ownerregistry.NormalizeAddress(req.Destination),
		Value:         new(big.Int).Set(req.Value),
		Payload:       req.Payload,
		Description:   req.Description,
		Proposer:      ownerregistry.NormalizeAddress(proposer),
		Status:        StatusPending,
		Confirmations: types.NewSet[string](),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return Transaction{}, err
	}

	logger.Info(ctx, "transaction submitted",
		"wallet_id", walletID,
		"tx_id", tx.ID,
		"type", tx.Type,
		"proposer", tx.Proposer,
	)

	return tx, nil
}

// Get implements Service.
func (s *service) Get(ctx context.Context, walletID string, id uint64) (Transaction, error) {
	return s.transactionStorage.LoadTransaction(ctx, walletID, id)
}

// List implements Service.
func (s *service) List(ctx context.Context, walletID string, filter Filter) ([]Transaction, error) {
	txs, err := s.transactionStorage.ListTransactions(ctx, walletID)
	if err != nil {
		return nil, err
	}

	return filter.Apply(txs), nil
}

// Update implements Service.
func (s *service) Update(ctx context.Context, walletID string, id uint64, mutate func(*Transaction) error) (Transaction, error) {
	var updated Transaction
	err := optimistic.Update(ctx, s.retry, func() error {
		current, err := s.transactionStorage.LoadTransaction(ctx, walletID, id)
		if err != nil {
			return err
		}

		next := current.Clone()
		if err := mutate(&next); err != nil {
			return err
		}

		next.Version = current.Version + 1
		next.UpdatedAt = time.Now().UTC()
		if err := s.transactionStorage.UpdateTransaction(ctx, next, current.Version); err != nil {
			return err
		}

		updated = next
		return nil
	})
	if err != nil {
		return Transaction{}, err
	}

	return updated, nil
}
