package ethereum

import (
	"context"
	"math/big"

	"github.com/gabapcia/multisig/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/multisig/internal/pkg/types"
)

// Balance implements multisig.BalanceProvider using eth_getBalance at the
// latest block.
func (c *client) Balance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_getBalance", address, "latest")
	if err != nil {
		return nil, err
	}

	return balance.Big(), nil
}
