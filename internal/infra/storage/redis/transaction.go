package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/txledger"

	"github.com/redis/go-redis/v9"
)

// createTransactionScript allocates the next id of a wallet and stores the
// transaction under it in one atomic step. It returns -1 when the wallet does
// not exist.
//
// KEYS[1] wallet key, KEYS[2] counter key
// ARGV[1] transaction key prefix, ARGV[2] encoded transaction
//
// The transaction key is only known after INCR, so the script builds it from
// ARGV[1] instead of listing it in KEYS. The prefix carries the same {walletID}
// hash tag as KEYS, which keeps the key in their cluster slot.
var createTransactionScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
local id = redis.call('INCR', KEYS[2]) - 1
redis.call('SET', ARGV[1] .. id, ARGV[2])
return id
`)

// decodeTransaction decodes a stored transaction. The id is taken from the
// key since the document is written before the id is known.
func decodeTransaction(data []byte, id uint64) (txledger.Transaction, error) {
	var tx txledger.Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return txledger.Transaction{}, err
	}

	tx.ID = id
	return tx, nil
}

// CreateTransaction implements txledger.TransactionStorage.
func (c *client) CreateTransaction(ctx context.Context, tx txledger.Transaction) (txledger.Transaction, error) {
	data, err := json.Marshal(tx)
	if err != nil {
		return txledger.Transaction{}, err
	}

	keys := []string{walletKey(tx.WalletID), counterKey(tx.WalletID)}
	id, err := createTransactionScript.Run(ctx, c.conn, keys, transactionKeyPrefix(tx.WalletID), data).Int64()
	if err != nil {
		return txledger.Transaction{}, err
	}
	if id < 0 {
		return txledger.Transaction{}, ownerregistry.ErrWalletNotFound
	}

	tx.ID = uint64(id)
	return tx, nil
}

// LoadTransaction implements txledger.TransactionStorage.
func (c *client) LoadTransaction(ctx context.Context, walletID string, id uint64) (txledger.Transaction, error) {
	data, err := c.conn.Get(ctx, transactionKey(walletID, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return txledger.Transaction{}, txledger.ErrTransactionNotFound
	}
	if err != nil {
		return txledger.Transaction{}, err
	}

	return decodeTransaction(data, id)
}

// ListTransactions implements txledger.TransactionStorage. Ids are dense, so
// the counter bounds a single MGET.
func (c *client) ListTransactions(ctx context.Context, walletID string) ([]txledger.Transaction, error) {
	count, err := c.conn.Get(ctx, counterKey(walletID)).Uint64()
	if errors.Is(err, redis.Nil) {
		return []txledger.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []txledger.Transaction{}, nil
	}

	keys := make([]string, count)
	for id := range count {
		keys[id] = transactionKey(walletID, id)
	}

	values, err := c.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	txs := make([]txledger.Transaction, 0, len(values))
	for id, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		tx, err := decodeTransaction([]byte(raw), uint64(id))
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// UpdateTransaction implements txledger.TransactionStorage with a WATCH on
// the transaction key.
func (c *client) UpdateTransaction(ctx context.Context, tx txledger.Transaction, expectedVersion uint64) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	key := transactionKey(tx.WalletID, tx.ID)
	err = c.conn.Watch(ctx, func(rtx *redis.Tx) error {
		current, err := rtx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return txledger.ErrTransactionNotFound
		}
		if err != nil {
			return err
		}

		stored, err := decodeTransaction(current, tx.ID)
		if err != nil {
			return err
		}
		if stored.Version != expectedVersion {
			return optimistic.ErrVersionConflict
		}

		_, err = rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)

	return conflictError(err)
}
