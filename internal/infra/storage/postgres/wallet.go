package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/pkg/types"

	"github.com/lib/pq"
)

const (
	insertWalletQuery = `INSERT INTO wallets (id, address, owners, required_confirmations, tx_counter, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, 0, $5, $6, $7)`

	selectWalletQuery = `SELECT id, address, owners, required_confirmations, tx_counter, version, created_at, updated_at
FROM wallets WHERE id = $1`

	updateWalletQuery = `UPDATE wallets SET owners = $2, required_confirmations = $3, version = $4, updated_at = $5
WHERE id = $1 AND version = $6`

	walletExistsQuery = `SELECT EXISTS (SELECT 1 FROM wallets WHERE id = $1)`
)

// CreateWallet implements ownerregistry.WalletStorage.
func (c *client) CreateWallet(ctx context.Context, w ownerregistry.WalletState) error {
	_, err := c.db.ExecContext(ctx, insertWalletQuery,
		w.ID,
		w.Address,
		pq.Array(types.Sorted(w.Owners)),
		w.RequiredConfirmations,
		w.Version,
		w.CreatedAt,
		w.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ownerregistry.ErrWalletAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert wallet: %w", err)
	}

	return nil
}

// LoadWallet implements ownerregistry.WalletStorage.
func (c *client) LoadWallet(ctx context.Context, walletID string) (ownerregistry.WalletState, error) {
	var (
		w      ownerregistry.WalletState
		owners []string
	)

	err := c.db.QueryRowContext(ctx, selectWalletQuery, walletID).Scan(
		&w.ID,
		&w.Address,
		pq.Array(&owners),
		&w.RequiredConfirmations,
		&w.TransactionCount,
		&w.Version,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ownerregistry.WalletState{}, ownerregistry.ErrWalletNotFound
	}
	if err != nil {
		return ownerregistry.WalletState{}, fmt.Errorf("failed to load wallet: %w", err)
	}

	w.Owners = types.NewSet(owners...)
	return w, nil
}

// UpdateWallet implements ownerregistry.WalletStorage. The transaction counter
// is never written here.
func (c *client) UpdateWallet(ctx context.Context, w ownerregistry.WalletState, expectedVersion uint64) error {
	res, err := c.db.ExecContext(ctx, updateWalletQuery,
		w.ID,
		pq.Array(types.Sorted(w.Owners)),
		w.RequiredConfirmations,
		w.Version,
		w.UpdatedAt,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}

	return c.checkUpdated(ctx, res, ownerregistry.ErrWalletNotFound, walletExistsQuery, w.ID)
}

// checkUpdated turns a conditional update that matched no row into either
// notFound or optimistic.ErrVersionConflict.
func (c *client) checkUpdated(ctx context.Context, res sql.Result, notFound error, existsQuery string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := c.db.QueryRowContext(ctx, existsQuery, args...).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return notFound
	}

	return optimistic.ErrVersionConflict
}
