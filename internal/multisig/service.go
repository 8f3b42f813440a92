// Package multisig is the external surface of the engine. It exposes the
// wallet operations to callers that already authenticated the caller address.
package multisig

import (
	"context"
	"math/big"

	"github.com/gabapcia/multisig/internal/confirmation"
	"github.com/gabapcia/multisig/internal/execution"
	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/txledger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const scope = "github.com/gabapcia/multisig/internal/multisig"

// BalanceProvider reads the on-chain balance of an account.
type BalanceProvider interface {
	Balance(ctx context.Context, address string) (*big.Int, error)
}

// Service defines the operations offered to wallet owners. Every mutating
// call takes the authenticated caller address; the engine only checks that it
// belongs to the owner set.
//
// Transactions are returned with their public status.
type Service interface {
	// CreateWallet registers a wallet for the on-chain account address.
	CreateWallet(ctx context.Context, address string, owners []string, required int) (ownerregistry.WalletState, error)

	// GetInfo returns the owners, balance, threshold and transaction count.
	GetInfo(ctx context.Context, walletID string) (Info, error)

	// ListTransactions returns the wallet transactions selected by filter.
	ListTransactions(ctx context.Context, walletID string, filter txledger.Filter) ([]txledger.Transaction, error)

	// GetTransaction returns a single transaction.
	GetTransaction(ctx context.Context, walletID string, id uint64) (txledger.Transaction, error)

	// SubmitTransaction proposes a transaction and returns its id.
	SubmitTransaction(ctx context.Context, walletID, caller string, req txledger.SubmitRequest) (uint64, error)

	// ConfirmTransaction records the caller's approval.
	ConfirmTransaction(ctx context.Context, walletID string, id uint64, caller string) (txledger.Transaction, error)

	// RevokeConfirmation withdraws the caller's approval.
	RevokeConfirmation(ctx context.Context, walletID string, id uint64, caller string) (txledger.Transaction, error)

	// ExecuteTransaction runs a transaction that reached its quorum.
	ExecuteTransaction(ctx context.Context, walletID string, id uint64, caller string) (txledger.Transaction, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	registry ownerregistry.Service
	ledger   txledger.Service
	tracker  confirmation.Service
	engine   execution.Service
	balances BalanceProvider
	tracer   trace.Tracer
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New assembles the engine surface from its components.
func New(
	registry ownerregistry.Service,
	ledger txledger.Service,
	tracker confirmation.Service,
	engine execution.Service,
	balances BalanceProvider,
) *service {
	return &service{
		registry: registry,
		ledger:   ledger,
		tracker:  tracker,
		engine:   engine,
		balances: balances,
		tracer:   otel.Tracer(scope),
	}
}
