// Package redis stores wallets and their transactions in Redis. Every record
// is a JSON document carrying its version; updates are compare-and-swap
// writes inside WATCH/MULTI transactions.
package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/txledger"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key written by this package.
const keyPrefix = "multisig"

// walletKey returns the key of a wallet record. The braces keep every key of
// a wallet in the same cluster slot.
//
// Format: "multisig:{<walletID>}:wallet"
func walletKey(walletID string) string {
	return fmt.Sprintf("%s:{%s}:wallet", keyPrefix, walletID)
}

// counterKey returns the key of the transaction id counter of a wallet.
//
// Format: "multisig:{<walletID>}:counter"
func counterKey(walletID string) string {
	return fmt.Sprintf("%s:{%s}:counter", keyPrefix, walletID)
}

// transactionKeyPrefix returns the prefix shared by the transactions of a wallet.
func transactionKeyPrefix(walletID string) string {
	return fmt.Sprintf("%s:{%s}:tx:", keyPrefix, walletID)
}

// transactionKey returns the key of a single transaction.
//
// Format: "multisig:{<walletID>}:tx:<id>"
func transactionKey(walletID string, id uint64) string {
	return fmt.Sprintf("%s%d", transactionKeyPrefix(walletID), id)
}

type client struct {
	conn *redis.Client
}

// Compile-time assertions that client satisfies the storage interfaces.
var (
	_ ownerregistry.WalletStorage  = (*client)(nil)
	_ txledger.TransactionStorage = (*client)(nil)
)

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
