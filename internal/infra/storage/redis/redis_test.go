package redis

import (
	"context"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/pkg/types"
	"github.com/gabapcia/multisig/internal/txledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	t.Run("should keep every key of a wallet under one hash tag", func(t *testing.T) {
		assert.Equal(t, "multisig:{w1}:wallet", walletKey("w1"))
		assert.Equal(t, "multisig:{w1}:counter", counterKey("w1"))
		assert.Equal(t, "multisig:{w1}:tx:7", transactionKey("w1", 7))
		assert.Equal(t, transactionKeyPrefix("w1")+"7", transactionKey("w1", 7))
	})

	t.Run("should tag the transaction prefix built inside the create script", func(t *testing.T) {
		tag := hashTag(walletKey("w1"))
		assert.Equal(t, "w1", tag)
		assert.Equal(t, tag, hashTag(counterKey("w1")))
		assert.Equal(t, tag, hashTag(transactionKeyPrefix("w1")))
	})
}

// hashTag returns the part of key that selects its cluster slot.
func hashTag(key string) string {
	_, rest, ok := strings.Cut(key, "{")
	if !ok {
		return key
	}
	tag, _, ok := strings.Cut(rest, "}")
	if !ok || tag == "" {
		return key
	}
	return tag
}

func TestWalletRecord(t *testing.T) {
	t.Run("should keep the counter out of the record", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		w := ownerregistry.WalletState{
			ID:                    "w1",
			Address:               "0xaaaa",
			Owners:                types.NewSet("0x2", "0x1"),
			RequiredConfirmations: 2,
			TransactionCount:      9,
			Version:               3,
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		record := newWalletRecord(w)
		assert.Equal(t, []string{"0x1", "0x2"}, record.Owners)

		got := record.toWalletState(4)
		assert.Equal(t, uint64(4), got.TransactionCount)
		assert.True(t, got.Owners.Has("0x1"))
		assert.True(t, got.Owners.Has("0x2"))
		assert.Equal(t, 2, got.RequiredConfirmations)
		assert.Equal(t, uint64(3), got.Version)
	})
}

// newTestClient connects to the server named by MULTISIG_TEST_REDIS_ADDR and
// skips the test when it is unset.
func newTestClient(t *testing.T) *client {
	t.Helper()

	addr := os.Getenv("MULTISIG_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MULTISIG_TEST_REDIS_ADDR not set")
	}

	c, err := NewClient(t.Context(), addr, "", "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func newWallet(t *testing.T) ownerregistry.WalletState {
	now := time.Now().UTC()
	return ownerregistry.WalletState{
		ID:                    uuid.NewString(),
		Address:               "0x000000000000000000000000000000000000aaaa",
		Owners:                types.NewSet("0x1", "0x2"),
		RequiredConfirmations: 2,
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestClient_Wallet(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	t.Run("should create, load and update a wallet", func(t *testing.T) {
		w := newWallet(t)
		require.NoError(t, c.CreateWallet(ctx, w))
		assert.ErrorIs(t, c.CreateWallet(ctx, w), ownerregistry.ErrWalletAlreadyExists)

		loaded, err := c.LoadWallet(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), loaded.TransactionCount)
		assert.Equal(t, 2, loaded.Owners.Len())

		loaded.RequiredConfirmations = 1
		loaded.Version = 2
		require.NoError(t, c.UpdateWallet(ctx, loaded, 1))

		err = c.UpdateWallet(ctx, loaded, 1)
		assert.ErrorIs(t, err, optimistic.ErrVersionConflict)

		reloaded, err := c.LoadWallet(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, reloaded.RequiredConfirmations)
	})

	t.Run("should return ErrWalletNotFound for an unknown wallet", func(t *testing.T) {
		_, err := c.LoadWallet(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ownerregistry.ErrWalletNotFound)
	})
}

func TestClient_Transaction(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	newTx := func(walletID string) txledger.Transaction {
		now := time.Now().UTC()
		return txledger.Transaction{
			WalletID:      walletID,
			Type:          txledger.TypeTransferFunds,
			Destination:   "0x000000000000000000000000000000000000bbbb",
			Value:         big.NewInt(10),
			Payload:       txledger.TransferFunds{},
			Proposer:      "0x1",
			Status:        txledger.StatusPending,
			Confirmations: types.NewSet[string](),
			Version:       1,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	t.Run("should allocate sequential ids and list them in order", func(t *testing.T) {
		w := newWallet(t)
		require.NoError(t, c.CreateWallet(ctx, w))

		for want := range uint64(3) {
			tx, err := c.CreateTransaction(ctx, newTx(w.ID))
			require.NoError(t, err)
			assert.Equal(t, want, tx.ID)
		}

		txs, err := c.ListTransactions(ctx, w.ID)
		require.NoError(t, err)
		require.Len(t, txs, 3)
		for i, tx := range txs {
			assert.Equal(t, uint64(i), tx.ID)
			assert.Equal(t, 0, tx.Value.Cmp(big.NewInt(10)))
		}

		loaded, err := c.LoadWallet(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), loaded.TransactionCount)
	})

	t.Run("should reject a transaction for an unknown wallet", func(t *testing.T) {
		_, err := c.CreateTransaction(ctx, newTx(uuid.NewString()))
		assert.ErrorIs(t, err, ownerregistry.ErrWalletNotFound)
	})

	t.Run("should compare versions on update", func(t *testing.T) {
		w := newWallet(t)
		require.NoError(t, c.CreateWallet(ctx, w))

		tx, err := c.CreateTransaction(ctx, newTx(w.ID))
		require.NoError(t, err)

		tx.Confirmations.Add("0x1")
		tx.Version = 2
		require.NoError(t, c.UpdateTransaction(ctx, tx, 1))
		assert.ErrorIs(t, c.UpdateTransaction(ctx, tx, 1), optimistic.ErrVersionConflict)

		loaded, err := c.LoadTransaction(ctx, w.ID, tx.ID)
		require.NoError(t, err)
		assert.True(t, loaded.Confirmations.Has("0x1"))
		assert.Equal(t, uint64(2), loaded.Version)
	})

	t.Run("should return ErrTransactionNotFound for an unknown id", func(t *testing.T) {
		_, err := c.LoadTransaction(ctx, uuid.NewString(), 0)
		assert.ErrorIs(t, err, txledger.ErrTransactionNotFound)
	})
}
