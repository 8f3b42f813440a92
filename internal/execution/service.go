// Package execution runs confirmed transactions exactly once. Transfers and
// contract calls go to an external target; governance transactions change
// the owner registry.
package execution

import (
	"context"
	"errors"

	"github.com/gabapcia/multisig/internal/confirmation"
	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/telemetry"
	"github.com/gabapcia/multisig/internal/txledger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scope = "github.com/gabapcia/multisig/internal/execution"

var (
	// ErrExecutionFailed is returned when the side effect of a transaction failed.
	// The transaction is recorded as Failed and is never retried.
	ErrExecutionFailed = errors.New("execution failed")

	// ErrOutcomeUnknown is wrapped by a TargetExecutor error when the call was
	// accepted but its result could not be observed, such as a receipt that
	// did not arrive in time. The transaction stays Executing with the call
	// hash recorded so an operator can resolve it; it is neither marked
	// Failed nor executed again.
	ErrOutcomeUnknown = errors.New("execution outcome unknown")
)

// Service defines the execution engine.
type Service interface {
	// Execute claims a transaction whose quorum holds under the current owners
	// and threshold, runs its side effect and records the outcome.
	//
	// Of several concurrent calls on the same transaction only one runs the
	// side effect; the others get txledger.ErrAlreadyExecuted.
	//
	// Returns ownerregistry.ErrNotAnOwner, txledger.ErrQuorumNotMet or
	// txledger.ErrAlreadyExecuted without changing state. When the side effect
	// fails the Failed transaction is returned along with ErrExecutionFailed.
	// When its outcome is unknown the still Executing transaction is returned
	// along with ErrOutcomeUnknown.
	Execute(ctx context.Context, walletID string, id uint64, executor string) (txledger.Transaction, error)

	// ExecuteAsync runs Execute in the background. The returned channel
	// yields exactly one Outcome and is then closed. If ctx ends first the
	// channel may close without an Outcome while the execution still runs to
	// completion and is recorded.
	ExecuteAsync(ctx context.Context, walletID string, id uint64, executor string) <-chan Outcome
}

// service is the concrete implementation of the Service interface.
type service struct {
	ledger     txledger.Service
	registry   ownerregistry.Service
	tracker    confirmation.Service
	target     TargetExecutor
	tracer     trace.Tracer
	executions metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates an engine. Non-governance transactions are sent through target;
// governance changes are committed to registry and followed by a tracker
// reconciliation of the open transactions.
func New(ledger txledger.Service, registry ownerregistry.Service, tracker confirmation.Service, target TargetExecutor) *service {
	return &service{
		ledger:     ledger,
		registry:   registry,
		tracker:    tracker,
		target:     target,
		tracer:     otel.Tracer(scope),
		executions: telemetry.Counter(scope, "multisig.executions", "Transactions executed, by outcome"),
	}
}
