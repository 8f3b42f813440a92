package ethereum

import (
	"context"
	"fmt"

	"github.com/gabapcia/multisig/internal/execution"
	"github.com/gabapcia/multisig/internal/pkg/abi"
	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/multisig/internal/pkg/types"
)

type (
	// TransactionRequest is the eth_sendTransaction argument. The node signs
	// it with the key it holds for From.
	TransactionRequest struct {
		From  string    `json:"from"`
		To    string    `json:"to"`
		Value types.Hex `json:"value"`
		Data  string    `json:"data,omitempty"`
	}

	// ReceiptResponse is the subset of a transaction receipt the engine reads.
	ReceiptResponse struct {
		TransactionHash string    `json:"transactionHash"`
		BlockNumber     types.Hex `json:"blockNumber"`
		GasUsed         types.Hex `json:"gasUsed"`
		Status          types.Hex `json:"status"`
	}
)

// newTransactionRequest converts a target call to its JSON-RPC form.
func newTransactionRequest(call execution.TargetCall) TransactionRequest {
	req := TransactionRequest{
		From:  call.From,
		To:    call.To,
		Value: types.HexFromBig(call.Value),
	}
	if len(call.Data) > 0 {
		req.Data = abi.EncodeHex(call.Data)
	}

	return req
}

// sendTransaction submits req and returns its hash.
func (c *client) sendTransaction(ctx context.Context, req TransactionRequest) (string, error) {
	return jsonrpc.Call[string](ctx, c.conn, "eth_sendTransaction", req)
}

// waitReceipt polls for the receipt of hash until it is mined or the polling
// budget runs out.
func (c *client) waitReceipt(ctx context.Context, hash string) (ReceiptResponse, error) {
	var receipt ReceiptResponse
	err := c.receipts.Execute(ctx, func() error {
		r, err := jsonrpc.Call[*ReceiptResponse](ctx, c.conn, "eth_getTransactionReceipt", hash)
		if err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("%w: %s", ErrReceiptPending, hash)
		}

		receipt = *r
		return nil
	})

	return receipt, err
}

// Call implements execution.TargetExecutor. The call is sent once; a node
// error or a reverted receipt is reported as a failure and never resent.
// Once the node accepted the call, a receipt that cannot be read or that
// carries no status wraps execution.ErrOutcomeUnknown.
func (c *client) Call(ctx context.Context, call execution.TargetCall) (execution.TargetReceipt, error) {
	hash, err := c.sendTransaction(ctx, newTransactionRequest(call))
	if err != nil {
		return execution.TargetReceipt{}, fmt.Errorf("send transaction: %w", err)
	}

	logger.Info(ctx, "transaction sent", "tx_hash", hash, "to", call.To)

	receipt, err := c.waitReceipt(ctx, hash)
	if err != nil {
		return execution.TargetReceipt{TxHash: hash}, fmt.Errorf("%w: %w", execution.ErrOutcomeUnknown, err)
	}

	if receipt.Status == "" {
		return execution.TargetReceipt{TxHash: hash}, fmt.Errorf("%w: %w: %s", execution.ErrOutcomeUnknown, ErrReceiptStatusMissing, hash)
	}

	if receipt.Status.Big().Sign() == 0 {
		return execution.TargetReceipt{TxHash: hash}, fmt.Errorf("%w: %s in block %s", ErrTransactionReverted, hash, receipt.BlockNumber)
	}

	return execution.TargetReceipt{TxHash: hash}, nil
}
