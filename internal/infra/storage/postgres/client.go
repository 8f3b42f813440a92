// Package postgres stores wallets and their transactions in PostgreSQL.
// Updates are conditional on the stored version, and transaction ids come
// from a per-wallet counter incremented with UPDATE ... RETURNING.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/txledger"

	"github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// uniqueViolation is the SQLSTATE raised on a duplicate primary key.
const uniqueViolation pq.ErrorCode = "23505"

type client struct {
	db *sql.DB
}

var (
	_ ownerregistry.WalletStorage  = (*client)(nil)
	_ txledger.TransactionStorage = (*client)(nil)
)

func newClient(db *sql.DB) *client {
	return &client{
		db: db,
	}
}

// NewClient opens a connection pool for dsn and checks it is reachable.
func NewClient(ctx context.Context, dsn string) (*client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return newClient(db), nil
}

// Migrate creates the tables and indexes if they do not exist yet.
func (c *client) Migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, schema)
	return err
}

func (c *client) Close() error {
	return c.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
