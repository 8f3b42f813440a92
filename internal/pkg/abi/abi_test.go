package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	t.Run("should match well known selectors", func(t *testing.T) {
		assert.Equal(t, "0xa9059cbb", EncodeHex(Selector("transfer(address,uint256)")))
		assert.Equal(t, "0x3659cfe6", EncodeHex(Selector("upgradeTo(address)")))
		assert.Equal(t, "0x4f1ef286", EncodeHex(Selector("upgradeToAndCall(address,bytes)")))
	})
}

func TestDecodeHex(t *testing.T) {
	t.Run("should decode prefixed data", func(t *testing.T) {
		b, err := DecodeHex("0x0102")
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2}, b)
	})

	t.Run("should pad odd length", func(t *testing.T) {
		b, err := DecodeHex("0x102")
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2}, b)
	})

	t.Run("should return nil for empty data", func(t *testing.T) {
		b, err := DecodeHex("0x")
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("should reject non hex characters", func(t *testing.T) {
		_, err := DecodeHex("0xzz")
		assert.Error(t, err)
	})
}

func TestAddress(t *testing.T) {
	t.Run("should left pad to a word", func(t *testing.T) {
		w, err := Address("0x00000000000000000000000000000000000000ff")
		require.NoError(t, err)
		require.Len(t, w, 32)
		assert.Equal(t, byte(0xff), w[31])
		assert.Equal(t, byte(0), w[0])
	})

	t.Run("should reject short addresses", func(t *testing.T) {
		_, err := Address("0x01")
		assert.Error(t, err)
	})
}

func TestBytes(t *testing.T) {
	t.Run("should prefix the length and pad the data", func(t *testing.T) {
		enc := Bytes([]byte{0xaa, 0xbb})
		require.Len(t, enc, 64)
		assert.Equal(t, byte(2), enc[31])
		assert.Equal(t, []byte{0xaa, 0xbb}, enc[32:34])
		assert.Equal(t, make([]byte, 30), enc[34:])
	})

	t.Run("should encode empty data as a zero length", func(t *testing.T) {
		assert.Equal(t, Uint(big.NewInt(0)), Bytes(nil))
	})
}

func TestCall(t *testing.T) {
	impl, err := Address("0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)

	data := Call("upgradeTo(address)", impl)
	require.Len(t, data, 36)
	assert.Equal(t, Selector("upgradeTo(address)"), data[:4])
	assert.Equal(t, impl, data[4:])
}
