package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/multisig/internal/confirmation"
	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/txledger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Execute implements Service.
func (s *service) Execute(ctx context.Context, walletID string, id uint64, executor string) (txledger.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "execution.Execute", trace.WithAttributes(
		attribute.String("wallet.id", walletID),
		attribute.Int64("tx.id", int64(id)),
	))
	defer span.End()

	tx, err := s.execute(ctx, walletID, id, ownerregistry.NormalizeAddress(executor))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return tx, err
}

func (s *service) execute(ctx context.Context, walletID string, id uint64, executor string) (txledger.Transaction, error) {
	ctx = logger.Derive(ctx, "wallet_id", walletID, "tx_id", id)

	wallet, err := s.registry.Wallet(ctx, walletID)
	if err != nil {
		return txledger.Transaction{}, err
	}

	if !wallet.IsOwner(executor) {
		return txledger.Transaction{}, fmt.Errorf("%w: %s", ownerregistry.ErrNotAnOwner, executor)
	}

	claimed, err := s.claim(ctx, wallet, id)
	if err != nil {
		return txledger.Transaction{}, err
	}

	executionID := uuid.Must(uuid.NewV7()).String()
	logger.Info(ctx, "execution claimed", "execution_id", executionID, "executor", executor, "type", claimed.Type)

	txHash, execErr := s.dispatch(ctx, wallet, claimed)

	result := txledger.ExecutionResult{
		ExecutionID: executionID,
		ExecutedBy:  executor,
		TxHash:      txHash,
		FinishedAt:  time.Now().UTC(),
	}
	status := txledger.StatusExecuted
	switch {
	case errors.Is(execErr, ErrOutcomeUnknown):
		// The call may still take effect, so the guard stays in place.
		status = txledger.StatusExecuting
		result.Reason = execErr.Error()
	case execErr != nil:
		status = txledger.StatusFailed
		result.Reason = execErr.Error()
	}

	// The side effect already happened; its outcome must be recorded even if
	// the caller went away.
	done, err := s.finish(context.WithoutCancel(ctx), walletID, id, status, result)
	if err != nil {
		logger.Error(ctx, "failed to record execution outcome",
			"execution_id", executionID,
			"status", status,
			"error", err,
		)
		return txledger.Transaction{}, err
	}

	s.executions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", string(done.Type)),
		attribute.String("status", string(done.Status)),
	))

	if status == txledger.StatusExecuting {
		logger.Error(ctx, "execution outcome unknown, left executing for manual resolution",
			"execution_id", executionID,
			"tx_hash", txHash,
			"reason", result.Reason,
		)
		return done, execErr
	}

	if execErr != nil {
		logger.Warn(ctx, "execution failed", "execution_id", executionID, "reason", result.Reason)
		return done, fmt.Errorf("%w: %w", ErrExecutionFailed, execErr)
	}

	logger.Info(ctx, "execution finished", "execution_id", executionID, "tx_hash", txHash)
	return done, nil
}

// claim moves the transaction into Executing if its quorum holds under wallet.
// The compare-and-swap on the row version makes the claim exclusive.
func (s *service) claim(ctx context.Context, wallet ownerregistry.WalletState, id uint64) (txledger.Transaction, error) {
	return s.ledger.Update(ctx, wallet.ID, id, func(tx *txledger.Transaction) error {
		if tx.Status.IsLocked() {
			return txledger.ErrAlreadyExecuted
		}

		if !confirmation.QuorumMet(*tx, wallet) {
			return fmt.Errorf("%w: %d of %d approvals",
				txledger.ErrQuorumNotMet,
				confirmation.Approvals(*tx, wallet),
				wallet.RequiredConfirmations,
			)
		}

		tx.Status = txledger.StatusExecuting
		return nil
	})
}

// dispatch runs the side effect of tx and returns the on-chain hash, if any.
func (s *service) dispatch(ctx context.Context, wallet ownerregistry.WalletState, tx txledger.Transaction) (string, error) {
	switch p := tx.Payload.(type) {
	case txledger.AddOwner, txledger.RemoveOwner, txledger.ChangeRequirement:
		return "", s.applyGovernance(ctx, wallet.ID, p)
	case txledger.TransferFunds, txledger.UpgradeContract, txledger.ChangeParameter, txledger.Other:
		call, err := buildCall(wallet, tx)
		if err != nil {
			return "", err
		}

		receipt, err := s.target.Call(ctx, call)
		return receipt.TxHash, err
	default:
		return "", fmt.Errorf("%w: %T", txledger.ErrInvalidPayload, p)
	}
}

// finish records the outcome of a claimed transaction. status is its final
// status, or StatusExecuting when the outcome is unknown.
func (s *service) finish(ctx context.Context, walletID string, id uint64, status txledger.Status, result txledger.ExecutionResult) (txledger.Transaction, error) {
	return s.ledger.Update(ctx, walletID, id, func(tx *txledger.Transaction) error {
		if tx.Status != txledger.StatusExecuting {
			return fmt.Errorf("transaction %d left executing state: %s", id, tx.Status)
		}

		tx.Status = status
		tx.Result = &result
		return nil
	})
}
