// Package confirmation records owner approvals on pending transactions and
// keeps each transaction's status in line with the wallet quorum.
package confirmation

import (
	"context"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/telemetry"
	"github.com/gabapcia/multisig/internal/txledger"

	"go.opentelemetry.io/otel/metric"
)

const scope = "github.com/gabapcia/multisig/internal/confirmation"

// Service defines the confirmation tracker.
type Service interface {
	// Confirm records owner's approval of a transaction. Confirming twice is a
	// no-op. The status moves to Confirmed once the quorum is reached.
	//
	// Returns ownerregistry.ErrNotAnOwner if owner does not own the wallet and
	// txledger.ErrAlreadyExecuted if the transaction is executing or final.
	Confirm(ctx context.Context, walletID string, id uint64, owner string) (txledger.Transaction, error)

	// Revoke withdraws owner's approval. Revoking an absent approval is a
	// no-op. The status falls back to Pending when the quorum is lost.
	//
	// Returns the same errors as Confirm.
	Revoke(ctx context.Context, walletID string, id uint64, owner string) (txledger.Transaction, error)

	// Reconcile drops approvals of former owners from every open transaction
	// of the wallet and settles their status against the current wallet state.
	// It runs after governance changes to the owner set or threshold.
	Reconcile(ctx context.Context, wallet ownerregistry.WalletState) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	ledger        txledger.Service
	registry      ownerregistry.Service
	confirmations metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a tracker writing through ledger and reading owners from registry.
func New(ledger txledger.Service, registry ownerregistry.Service) *service {
	return &service{
		ledger:        ledger,
		registry:      registry,
		confirmations: telemetry.Counter(scope, "multisig.confirmations", "Approvals recorded or withdrawn"),
	}
}
