package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/pkg/types"

	"github.com/redis/go-redis/v9"
)

// walletRecord is the stored form of a wallet. The transaction counter lives
// under its own key so id allocation never conflicts with governance writes.
type walletRecord struct {
	ID                    string    `json:"id"`
	Address               string    `json:"address"`
	Owners                []string  `json:"owners"`
	RequiredConfirmations int       `json:"required_confirmations"`
	Version               uint64    `json:"version"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func newWalletRecord(w ownerregistry.WalletState) walletRecord {
	return walletRecord{
		ID:                    w.ID,
		Address:               w.Address,
		Owners:                types.Sorted(w.Owners),
		RequiredConfirmations: w.RequiredConfirmations,
		Version:               w.Version,
		CreatedAt:             w.CreatedAt,
		UpdatedAt:             w.UpdatedAt,
	}
}

func (r walletRecord) toWalletState(transactionCount uint64) ownerregistry.WalletState {
	return ownerregistry.WalletState{
		ID:                    r.ID,
		Address:               r.Address,
		Owners:                types.NewSet(r.Owners...),
		RequiredConfirmations: r.RequiredConfirmations,
		TransactionCount:      transactionCount,
		Version:               r.Version,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func decodeWalletRecord(data []byte) (walletRecord, error) {
	var r walletRecord
	return r, json.Unmarshal(data, &r)
}

// CreateWallet implements ownerregistry.WalletStorage using SETNX.
func (c *client) CreateWallet(ctx context.Context, w ownerregistry.WalletState) error {
	data, err := json.Marshal(newWalletRecord(w))
	if err != nil {
		return err
	}

	created, err := c.conn.SetNX(ctx, walletKey(w.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !created {
		return ownerregistry.ErrWalletAlreadyExists
	}

	return nil
}

// LoadWallet implements ownerregistry.WalletStorage. The record and the
// transaction counter are read in a single round trip.
func (c *client) LoadWallet(ctx context.Context, walletID string) (ownerregistry.WalletState, error) {
	var (
		recordCmd  *redis.StringCmd
		counterCmd *redis.StringCmd
	)
	_, err := c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		recordCmd = pipe.Get(ctx, walletKey(walletID))
		counterCmd = pipe.Get(ctx, counterKey(walletID))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return ownerregistry.WalletState{}, err
	}

	data, err := recordCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return ownerregistry.WalletState{}, ownerregistry.ErrWalletNotFound
	}
	if err != nil {
		return ownerregistry.WalletState{}, err
	}

	record, err := decodeWalletRecord(data)
	if err != nil {
		return ownerregistry.WalletState{}, err
	}

	count, err := counterCmd.Uint64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return ownerregistry.WalletState{}, err
	}

	return record.toWalletState(count), nil
}

// UpdateWallet implements ownerregistry.WalletStorage with a WATCH on the
// wallet key.
func (c *client) UpdateWallet(ctx context.Context, w ownerregistry.WalletState, expectedVersion uint64) error {
	data, err := json.Marshal(newWalletRecord(w))
	if err != nil {
		return err
	}

	key := walletKey(w.ID)
	err = c.conn.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ownerregistry.ErrWalletNotFound
		}
		if err != nil {
			return err
		}

		record, err := decodeWalletRecord(current)
		if err != nil {
			return err
		}
		if record.Version != expectedVersion {
			return optimistic.ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)

	return conflictError(err)
}

// conflictError maps a lost WATCH race to optimistic.ErrVersionConflict.
func conflictError(err error) error {
	if errors.Is(err, redis.TxFailedErr) {
		return optimistic.ErrVersionConflict
	}
	return err
}
