// Package ethereum connects the engine to an Ethereum-compatible node over
// JSON-RPC. It reads wallet balances and sends the calls of executed
// transactions from the wallet account, waiting for them to be mined.
package ethereum

import (
	"errors"
	"time"

	"github.com/gabapcia/multisig/internal/execution"
	"github.com/gabapcia/multisig/internal/multisig"
	"github.com/gabapcia/multisig/internal/pkg/resilience/retry"
	"github.com/gabapcia/multisig/internal/pkg/transport/jsonrpc"
)

var (
	// ErrReceiptPending is returned when a sent transaction was not mined
	// within the polling budget.
	ErrReceiptPending = errors.New("transaction receipt not available yet")

	// ErrTransactionReverted is returned when a mined transaction has a failed status.
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrReceiptStatusMissing is returned for a receipt without a status
	// field, as sent by pre-Byzantium chains. Success cannot be told apart
	// from a revert.
	ErrReceiptStatusMissing = errors.New("transaction receipt has no status")
)

// client talks to an Ethereum node through a JSON-RPC connection.
type client struct {
	conn     jsonrpc.Client // underlying JSON-RPC client
	receipts retry.Retry    // polling policy for eth_getTransactionReceipt
}

// Ensure client implements the collaborator interfaces at compile time.
var (
	_ multisig.BalanceProvider = (*client)(nil)
	_ execution.TargetExecutor = (*client)(nil)
)

// NewClient creates an Ethereum client using conn. Receipts of sent
// transactions are polled according to receipts; see NewReceiptRetry.
func NewClient(conn jsonrpc.Client, receipts retry.Retry) *client {
	return &client{
		conn:     conn,
		receipts: receipts,
	}
}

// NewReceiptRetry returns a polling policy that keeps asking for a receipt
// while it is pending, waiting delay between attempts with exponential backoff
// capped at maxDelay. Other errors stop the polling.
func NewReceiptRetry(attempts uint, delay, maxDelay time.Duration) retry.Retry {
	return retry.New(
		retry.WithAttempts(attempts),
		retry.WithDelay(delay),
		retry.WithMaxDelay(maxDelay),
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, ErrReceiptPending) }),
	)
}
