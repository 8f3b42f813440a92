// Package memory is a process-local storage backend guarded by a mutex. It
// backs the end-to-end tests and programs that embed the engine in one process.
package memory

import (
	"context"
	"sync"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/txledger"
)

// Storage keeps wallets and their transactions in maps.
type Storage struct {
	mu           sync.RWMutex
	wallets      map[string]ownerregistry.WalletState
	transactions map[string][]txledger.Transaction // indexed by transaction id
}

// Ensure compile-time compliance with the storage interfaces.
var (
	_ ownerregistry.WalletStorage  = (*Storage)(nil)
	_ txledger.TransactionStorage = (*Storage)(nil)
)

// New creates an empty storage.
func New() *Storage {
	return &Storage{
		wallets:      make(map[string]ownerregistry.WalletState),
		transactions: make(map[string][]txledger.Transaction),
	}
}

// CreateWallet implements ownerregistry.WalletStorage.
func (s *Storage) CreateWallet(_ context.Context, w ownerregistry.WalletState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[w.ID]; ok {
		return ownerregistry.ErrWalletAlreadyExists
	}

	s.wallets[w.ID] = w.Clone()
	return nil
}

// LoadWallet implements ownerregistry.WalletStorage.
func (s *Storage) LoadWallet(_ context.Context, walletID string) (ownerregistry.WalletState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wallets[walletID]
	if !ok {
		return ownerregistry.WalletState{}, ownerregistry.ErrWalletNotFound
	}

	return w.Clone(), nil
}

// UpdateWallet implements ownerregistry.WalletStorage. The transaction
// counter is owned by CreateTransaction and is left untouched.
func (s *Storage) UpdateWallet(_ context.Context, w ownerregistry.WalletState, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.wallets[w.ID]
	if !ok {
		return ownerregistry.ErrWalletNotFound
	}
	if stored.Version != expectedVersion {
		return optimistic.ErrVersionConflict
	}

	next := w.Clone()
	next.TransactionCount = stored.TransactionCount
	s.wallets[w.ID] = next
	return nil
}

// CreateTransaction implements txledger.TransactionStorage.
func (s *Storage) CreateTransaction(_ context.Context, tx txledger.Transaction) (txledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wallets[tx.WalletID]
	if !ok {
		return txledger.Transaction{}, ownerregistry.ErrWalletNotFound
	}

	tx.ID = w.TransactionCount
	w.TransactionCount++
	s.wallets[tx.WalletID] = w

	s.transactions[tx.WalletID] = append(s.transactions[tx.WalletID], tx.Clone())
	return tx.Clone(), nil
}

// LoadTransaction implements txledger.TransactionStorage.
func (s *Storage) LoadTransaction(_ context.Context, walletID string, id uint64) (txledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := s.transactions[walletID]
	if id >= uint64(len(txs)) {
		return txledger.Transaction{}, txledger.ErrTransactionNotFound
	}

	return txs[id].Clone(), nil
}

// ListTransactions implements txledger.TransactionStorage.
func (s *Storage) ListTransactions(_ context.Context, walletID string) ([]txledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := s.transactions[walletID]
	out := make([]txledger.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.Clone())
	}

	return out, nil
}

// UpdateTransaction implements txledger.TransactionStorage.
func (s *Storage) UpdateTransaction(_ context.Context, tx txledger.Transaction, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.transactions[tx.WalletID]
	if tx.ID >= uint64(len(txs)) {
		return txledger.ErrTransactionNotFound
	}
	if txs[tx.ID].Version != expectedVersion {
		return optimistic.ErrVersionConflict
	}

	txs[tx.ID] = tx.Clone()
	return nil
}
