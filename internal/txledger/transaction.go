package txledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/multisig/internal/pkg/types"
)

// ExecutionResult records the outcome of the single execution attempt of a
// transaction.
type ExecutionResult struct {
	ExecutionID string    `json:"execution_id"`
	ExecutedBy  string    `json:"executed_by"`
	TxHash      string    `json:"tx_hash,omitempty"` // on-chain hash, empty for governance changes
	Reason      string    `json:"reason,omitempty"`  // failure reason, empty on success
	FinishedAt  time.Time `json:"finished_at"`
}

// Transaction is a proposed action awaiting, or done with, execution.
type Transaction struct {
	ID            uint64 // sequential per wallet, starting at 0
	WalletID      string
	Type          Type
	Destination   string
	Value         *big.Int
	Payload       Payload
	Description   string
	Proposer      string
	Status        Status
	Confirmations types.Set[string] // owners that currently approve
	Result        *ExecutionResult  // set once the status is final
	Version       uint64            // incremented on every committed write
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionStorage defines the persistence of ledger entries.
type TransactionStorage interface {
	// CreateTransaction atomically takes the next id from the wallet counter
	// and stores tx under it at version 1. The stored transaction is returned.
	//
	// Returns ownerregistry.ErrWalletNotFound if the wallet does not exist.
	CreateTransaction(ctx context.Context, tx Transaction) (Transaction, error)

	// LoadTransaction returns a stored transaction.
	//
	// Returns ErrTransactionNotFound if it does not exist.
	LoadTransaction(ctx context.Context, walletID string, id uint64) (Transaction, error)

	// ListTransactions returns every transaction of the wallet by ascending id.
	ListTransactions(ctx context.Context, walletID string) ([]Transaction, error)

	// UpdateTransaction replaces the mutable fields of tx only if the stored
	// version still equals expectedVersion.
	//
	// Returns optimistic.ErrVersionConflict if another writer got there first.
	UpdateTransaction(ctx context.Context, tx Transaction, expectedVersion uint64) error
}

// Clone returns a deep copy that shares no mutable state with tx.
func (tx Transaction) Clone() Transaction {
	tx.Confirmations = tx.Confirmations.Clone()
	if tx.Value != nil {
		tx.Value = new(big.Int).Set(tx.Value)
	}
	if tx.Result != nil {
		result := *tx.Result
		tx.Result = &result
	}
	return tx
}

// transactionJSON is the wire form of Transaction.
type transactionJSON struct {
	ID            uint64           `json:"id"`
	WalletID      string           `json:"wallet_id"`
	Type          Type             `json:"type"`
	Destination   string           `json:"destination"`
	Value         string           `json:"value"` // base 10
	Payload       json.RawMessage  `json:"payload"`
	Description   string           `json:"description,omitempty"`
	Proposer      string           `json:"proposer"`
	Status        Status           `json:"status"`
	Confirmations []string         `json:"confirmations"`
	Result        *ExecutionResult `json:"result,omitempty"`
	Version       uint64           `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// MarshalJSON encodes the transaction with its payload nested under its type
// and the confirmations sorted.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	payload, err := EncodePayload(tx.Payload)
	if err != nil {
		return nil, err
	}

	value := "0"
	if tx.Value != nil {
		value = tx.Value.String()
	}

	return json.Marshal(transactionJSON{
		ID:            tx.ID,
		WalletID:      tx.WalletID,
		Type:          tx.Type,
		Destination:   tx.Destination,
		Value:         value,
		Payload:       payload,
		Description:   tx.Description,
		Proposer:      tx.Proposer,
		Status:        tx.Status,
		Confirmations: types.Sorted(tx.Confirmations),
		Result:        tx.Result,
		Version:       tx.Version,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	})
}

// UnmarshalJSON decodes what MarshalJSON produces.
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, ok := new(big.Int).SetString(raw.Value, 10)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidValue, raw.Value)
	}

	payload, err := DecodePayload(raw.Type, raw.Payload)
	if err != nil {
		return err
	}

	*tx = Transaction{
		ID:            raw.ID,
		WalletID:      raw.WalletID,
		Type:          raw.Type,
		Destination:   raw.Destination,
		Value:         value,
		Payload:       payload,
		Description:   raw.Description,
		Proposer:      raw.Proposer,
		Status:        raw.Status,
		Confirmations: types.NewSet(raw.Confirmations...),
		Result:        raw.Result,
		Version:       raw.Version,
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
	}

	return nil
}
