package multisig

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/multisig/internal/pkg/types"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Info summarizes a wallet.
type Info struct {
	WalletID              string   `json:"wallet_id"`
	Address               string   `json:"address"`
	Owners                []string `json:"owners"`
	Balance               *big.Int `json:"balance"`
	RequiredConfirmations int      `json:"required_confirmations"`
	TransactionCount      uint64   `json:"transaction_count"`
}

// GetInfo implements Service.
func (s *service) GetInfo(ctx context.Context, walletID string) (Info, error) {
	ctx, span := s.tracer.Start(ctx, "multisig.GetInfo", trace.WithAttributes(attribute.String("wallet.id", walletID)))
	defer span.End()

	wallet, err := s.registry.Wallet(ctx, walletID)
	if err != nil {
		return Info{}, recordError(span, err)
	}

	balance, err := s.balances.Balance(ctx, wallet.Address)
	if err != nil {
		return Info{}, recordError(span, fmt.Errorf("failed to read balance of %s: %w", wallet.Address, err))
	}

	return Info{
		WalletID:              wallet.ID,
		Address:               wallet.Address,
		Owners:                types.Sorted(wallet.Owners),
		Balance:               balance,
		RequiredConfirmations: wallet.RequiredConfirmations,
		TransactionCount:      wallet.TransactionCount,
	}, nil
}
