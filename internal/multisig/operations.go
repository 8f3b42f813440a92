package multisig

import (
	"context"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/x/chflow"
	"github.com/gabapcia/multisig/internal/txledger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// recordError marks span as failed and returns err unchanged.
func recordError(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// public hides internal statuses from callers.
func public(tx txledger.Transaction) txledger.Transaction {
	tx.Status = tx.Status.Public()
	return tx
}

func (s *service) start(ctx context.Context, name, walletID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("wallet.id", walletID))
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// CreateWallet implements Service.
func (s *service) CreateWallet(ctx context.Context, address string, owners []string, required int) (ownerregistry.WalletState, error) {
	ctx, span := s.tracer.Start(ctx, "multisig.CreateWallet")
	defer span.End()

	w, err := s.registry.CreateWallet(ctx, address, owners, required)
	return w, recordError(span, err)
}

// ListTransactions implements Service.
func (s *service) ListTransactions(ctx context.Context, walletID string, filter txledger.Filter) ([]txledger.Transaction, error) {
	ctx, span := s.start(ctx, "multisig.ListTransactions", walletID)
	defer span.End()

	txs, err := s.ledger.List(ctx, walletID, filter)
	if err != nil {
		return nil, recordError(span, err)
	}

	for i := range txs {
		txs[i] = public(txs[i])
	}
	return txs, nil
}

// GetTransaction implements Service.
func (s *service) GetTransaction(ctx context.Context, walletID string, id uint64) (txledger.Transaction, error) {
	ctx, span := s.start(ctx, "multisig.GetTransaction", walletID, attribute.Int64("tx.id", int64(id)))
	defer span.End()

	tx, err := s.ledger.Get(ctx, walletID, id)
	if err != nil {
		return txledger.Transaction{}, recordError(span, err)
	}
	return public(tx), nil
}

// SubmitTransaction implements Service.
func (s *service) SubmitTransaction(ctx context.Context, walletID, caller string, req txledger.SubmitRequest) (uint64, error) {
	ctx, span := s.start(ctx, "multisig.SubmitTransaction", walletID)
	defer span.End()

	tx, err := s.ledger.Submit(ctx, walletID, req, caller)
	if err != nil {
		return 0, recordError(span, err)
	}

	span.SetAttributes(attribute.Int64("tx.id", int64(tx.ID)))
	return tx.ID, nil
}

// ConfirmTransaction implements Service.
func (s *service) ConfirmTransaction(ctx context.Context, walletID string, id uint64, caller string) (txledger.Transaction, error) {
	ctx, span := s.start(ctx, "multisig.ConfirmTransaction", walletID, attribute.Int64("tx.id", int64(id)))
	defer span.End()

	tx, err := s.tracker.Confirm(ctx, walletID, id, caller)
	if err != nil {
		return txledger.Transaction{}, recordError(span, err)
	}
	return public(tx), nil
}

// RevokeConfirmation implements Service.
func (s *service) RevokeConfirmation(ctx context.Context, walletID string, id uint64, caller string) (txledger.Transaction, error) {
	ctx, span := s.start(ctx, "multisig.RevokeConfirmation", walletID, attribute.Int64("tx.id", int64(id)))
	defer span.End()

	tx, err := s.tracker.Revoke(ctx, walletID, id, caller)
	if err != nil {
		return txledger.Transaction{}, recordError(span, err)
	}
	return public(tx), nil
}

// ExecuteTransaction implements Service. A failed execution returns the
// Failed transaction together with the error. If ctx ends before the outcome
// is known the execution keeps running and ctx.Err() is returned.
func (s *service) ExecuteTransaction(ctx context.Context, walletID string, id uint64, caller string) (txledger.Transaction, error) {
	ctx, span := s.start(ctx, "multisig.ExecuteTransaction", walletID, attribute.Int64("tx.id", int64(id)))
	defer span.End()

	outcome, ok := chflow.Receive(ctx, s.engine.ExecuteAsync(ctx, walletID, id, caller))
	if !ok {
		return txledger.Transaction{}, recordError(span, context.Cause(ctx))
	}

	return public(outcome.Transaction), recordError(span, outcome.Err)
}
