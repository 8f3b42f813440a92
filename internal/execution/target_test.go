package execution

import (
	"math/big"
	"testing"

	"github.com/gabapcia/multisig/internal/pkg/abi"
	"github.com/gabapcia/multisig/internal/txledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const implementation = "0x00000000000000000000000000000000000000aa"

func TestBuildCall(t *testing.T) {
	wallet := testWallet(1, ownerA)

	t.Run("should send plain value for a transfer", func(t *testing.T) {
		call, err := buildCall(wallet, testTransaction(txledger.TransferFunds{Memo: "rent"}, txledger.StatusExecuting))
		require.NoError(t, err)

		assert.Equal(t, walletAddress, call.From)
		assert.Equal(t, destination, call.To)
		assert.Equal(t, big.NewInt(10), call.Value)
		assert.Empty(t, call.Data)
	})

	t.Run("should encode upgradeTo without an initializer", func(t *testing.T) {
		call, err := buildCall(wallet, testTransaction(txledger.UpgradeContract{Implementation: implementation}, txledger.StatusExecuting))
		require.NoError(t, err)

		require.Len(t, call.Data, 36)
		assert.Equal(t, "0x3659cfe6", abi.EncodeHex(call.Data[:4]))
		assert.Equal(t, byte(0xaa), call.Data[35])
	})

	t.Run("should encode upgradeToAndCall with an initializer", func(t *testing.T) {
		call, err := buildCall(wallet, testTransaction(
			txledger.UpgradeContract{Implementation: implementation, Data: "0x8129fc1c"},
			txledger.StatusExecuting,
		))
		require.NoError(t, err)

		// selector, address, offset, length, one padded word of data
		require.Len(t, call.Data, 4+4*32)
		assert.Equal(t, "0x4f1ef286", abi.EncodeHex(call.Data[:4]))
		assert.Equal(t, byte(64), call.Data[4+2*32-1])
		assert.Equal(t, byte(4), call.Data[4+3*32-1])
		assert.Equal(t, []byte{0x81, 0x29, 0xfc, 0x1c}, call.Data[4+3*32:4+3*32+4])
	})

	t.Run("should pass calldata through for parameters and other calls", func(t *testing.T) {
		call, err := buildCall(wallet, testTransaction(
			txledger.ChangeParameter{Key: "fee", Value: "5", Data: "0x69fe0e2d0000000000000000000000000000000000000000000000000000000000000005"},
			txledger.StatusExecuting,
		))
		require.NoError(t, err)
		assert.Len(t, call.Data, 36)

		call, err = buildCall(wallet, testTransaction(txledger.Other{Data: "0xd0e30db0"}, txledger.StatusExecuting))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xd0, 0xe3, 0x0d, 0xb0}, call.Data)
	})

	t.Run("should refuse governance payloads", func(t *testing.T) {
		_, err := buildCall(wallet, testTransaction(txledger.AddOwner{Owner: ownerB}, txledger.StatusExecuting))
		assert.ErrorIs(t, err, txledger.ErrInvalidPayload)
	})
}

func TestGovernanceChange(t *testing.T) {
	t.Run("should reject non governance payloads", func(t *testing.T) {
		_, err := governanceChange(txledger.TransferFunds{})
		assert.ErrorIs(t, err, txledger.ErrInvalidPayload)
	})
}
