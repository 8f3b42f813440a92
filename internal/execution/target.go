package execution

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/abi"
	"github.com/gabapcia/multisig/internal/txledger"
)

// TargetCall is the on-chain call performed for a non-governance transaction.
type TargetCall struct {
	From  string // wallet account
	To    string
	Value *big.Int
	Data  []byte
}

// TargetReceipt identifies the call once the target accepted it.
type TargetReceipt struct {
	TxHash string
}

// TargetExecutor performs fund transfers and contract calls. A returned error
// means the call did not take effect, unless it wraps ErrOutcomeUnknown. It is
// never retried.
type TargetExecutor interface {
	Call(ctx context.Context, call TargetCall) (TargetReceipt, error)
}

// buildCall maps a non-governance transaction to the call sent to the target.
func buildCall(wallet ownerregistry.WalletState, tx txledger.Transaction) (TargetCall, error) {
	call := TargetCall{
		From:  wallet.Address,
		To:    tx.Destination,
		Value: tx.Value,
	}

	var err error
	switch p := tx.Payload.(type) {
	case txledger.TransferFunds:
	case txledger.UpgradeContract:
		call.Data, err = upgradeCalldata(p)
	case txledger.ChangeParameter:
		call.Data, err = abi.DecodeHex(p.Data)
	case txledger.Other:
		call.Data, err = abi.DecodeHex(p.Data)
	default:
		return TargetCall{}, fmt.Errorf("%w: %s is not a target call", txledger.ErrInvalidPayload, tx.Type)
	}
	if err != nil {
		return TargetCall{}, err
	}

	return call, nil
}

// upgradeCalldata encodes upgradeTo(address), or upgradeToAndCall(address,bytes)
// when an initializer is given.
func upgradeCalldata(p txledger.UpgradeContract) ([]byte, error) {
	impl, err := abi.Address(p.Implementation)
	if err != nil {
		return nil, err
	}

	initializer, err := abi.DecodeHex(p.Data)
	if err != nil {
		return nil, err
	}

	if len(initializer) == 0 {
		return abi.Call("upgradeTo(address)", impl), nil
	}

	offset := abi.Uint(big.NewInt(64))
	return abi.Call("upgradeToAndCall(address,bytes)", impl, offset, abi.Bytes(initializer)), nil
}
