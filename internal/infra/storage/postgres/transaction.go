package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/txledger"
)

const (
	allocateIDQuery = `UPDATE wallets SET tx_counter = tx_counter + 1 WHERE id = $1 RETURNING tx_counter - 1`

	insertTransactionQuery = `INSERT INTO transactions (wallet_id, id, type, status, document, version)
VALUES ($1, $2, $3, $4, $5, $6)`

	selectTransactionQuery = `SELECT document FROM transactions WHERE wallet_id = $1 AND id = $2`

	listTransactionsQuery = `SELECT document FROM transactions WHERE wallet_id = $1 ORDER BY id ASC`

	updateTransactionQuery = `UPDATE transactions SET status = $3, document = $4, version = $5
WHERE wallet_id = $1 AND id = $2 AND version = $6`

	transactionExistsQuery = `SELECT EXISTS (SELECT 1 FROM transactions WHERE wallet_id = $1 AND id = $2)`
)

// CreateTransaction implements txledger.TransactionStorage. The id allocation
// and the insert share one database transaction, so ids stay dense.
func (c *client) CreateTransaction(ctx context.Context, tx txledger.Transaction) (created txledger.Transaction, err error) {
	dbTx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return txledger.Transaction{}, err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, dbTx.Rollback())
		}
	}()

	if err = dbTx.QueryRowContext(ctx, allocateIDQuery, tx.WalletID).Scan(&tx.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return txledger.Transaction{}, ownerregistry.ErrWalletNotFound
		}
		return txledger.Transaction{}, fmt.Errorf("failed to allocate transaction id: %w", err)
	}

	document, err := json.Marshal(tx)
	if err != nil {
		return txledger.Transaction{}, err
	}

	_, err = dbTx.ExecContext(ctx, insertTransactionQuery,
		tx.WalletID,
		tx.ID,
		string(tx.Type),
		string(tx.Status),
		document,
		tx.Version,
	)
	if err != nil {
		return txledger.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err = dbTx.Commit(); err != nil {
		return txledger.Transaction{}, err
	}

	return tx, nil
}

func decodeTransaction(document []byte) (txledger.Transaction, error) {
	var tx txledger.Transaction
	return tx, json.Unmarshal(document, &tx)
}

// LoadTransaction implements txledger.TransactionStorage.
func (c *client) LoadTransaction(ctx context.Context, walletID string, id uint64) (txledger.Transaction, error) {
	var document []byte
	err := c.db.QueryRowContext(ctx, selectTransactionQuery, walletID, id).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return txledger.Transaction{}, txledger.ErrTransactionNotFound
	}
	if err != nil {
		return txledger.Transaction{}, fmt.Errorf("failed to load transaction: %w", err)
	}

	return decodeTransaction(document)
}

// ListTransactions implements txledger.TransactionStorage.
func (c *client) ListTransactions(ctx context.Context, walletID string) ([]txledger.Transaction, error) {
	rows, err := c.db.QueryContext(ctx, listTransactionsQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]txledger.Transaction, 0)
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, err
		}

		tx, err := decodeTransaction(document)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// UpdateTransaction implements txledger.TransactionStorage.
func (c *client) UpdateTransaction(ctx context.Context, tx txledger.Transaction, expectedVersion uint64) error {
	document, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	res, err := c.db.ExecContext(ctx, updateTransactionQuery,
		tx.WalletID,
		tx.ID,
		string(tx.Status),
		document,
		tx.Version,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return c.checkUpdated(ctx, res, txledger.ErrTransactionNotFound, transactionExistsQuery, tx.WalletID, tx.ID)
}
