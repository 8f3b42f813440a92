package execution

import (
	"context"

	"github.com/gabapcia/multisig/internal/pkg/x/chflow"
	"github.com/gabapcia/multisig/internal/txledger"
)

// Outcome is the single result of an asynchronous execution.
type Outcome struct {
	Transaction txledger.Transaction
	Err         error
}

// ExecuteAsync implements Service. The execution itself is detached from ctx:
// a caller that stops waiting does not interrupt a side effect in flight.
func (s *service) ExecuteAsync(ctx context.Context, walletID string, id uint64, executor string) <-chan Outcome {
	out := make(chan Outcome, 1)

	go func() {
		defer close(out)

		tx, err := s.Execute(context.WithoutCancel(ctx), walletID, id, executor)
		chflow.Send(ctx, out, Outcome{Transaction: tx, Err: err})
	}()

	return out
}
