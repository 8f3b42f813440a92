// Package txledger is the append-only record of proposed wallet transactions
// and their lifecycle state. Transactions are created by Submit, mutated only
// through Update by the confirmation and execution workflows, and never deleted.
package txledger

import (
	"context"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/resilience/retry"
)

// Service defines the transaction ledger.
type Service interface {
	// Submit records a new Pending transaction proposed by proposer.
	//
	// Returns ownerregistry.ErrNotAnOwner if proposer does not own the wallet,
	// or a validation error for a malformed destination, negative value or
	// invalid payload. Rejected submissions are never persisted.
	Submit(ctx context.Context, walletID string, req SubmitRequest, proposer string) (Transaction, error)

	// Get returns a single transaction.
	//
	// Returns ErrTransactionNotFound if it does not exist.
	Get(ctx context.Context, walletID string, id uint64) (Transaction, error)

	// List returns the wallet transactions selected by filter, in creation
	// order unless filter asks for descending order.
	List(ctx context.Context, walletID string, filter Filter) ([]Transaction, error)

	// Update performs a guarded read-modify-write on one transaction.
	//
	// mutate receives a private copy of the stored transaction. Returning an
	// error aborts the update without writing anything. The write is a
	// compare-and-swap on the row version and the whole cycle is replayed
	// when another writer wins the race.
	Update(ctx context.Context, walletID string, id uint64, mutate func(*Transaction) error) (Transaction, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	transactionStorage TransactionStorage
	registry           ownerregistry.Service
	retry              retry.Retry
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a ledger persisting into ts, checking proposers against registry
// and replaying conflicting updates according to r.
func New(ts TransactionStorage, registry ownerregistry.Service, r retry.Retry) *service {
	return &service{
		transactionStorage: ts,
		registry:           registry,
		retry:              r,
	}
}
