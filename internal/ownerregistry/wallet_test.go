package ownerregistry

import (
	"errors"
	"testing"

	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/pkg/types"
	"github.com/gabapcia/multisig/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	walletAddress = "0x00000000000000000000000000000000000000aa"
	ownerA        = "0x000000000000000000000000000000000000000a"
	ownerB        = "0x000000000000000000000000000000000000000b"
	ownerC        = "0x000000000000000000000000000000000000000c"
	ownerD        = "0x000000000000000000000000000000000000000d"
)

func testWallet(required int, owners ...string) WalletState {
	return WalletState{
		ID:                    "w-1",
		Address:               walletAddress,
		Owners:                types.NewSet(owners...),
		RequiredConfirmations: required,
		Version:               1,
	}
}

func TestNormalizeAddress(t *testing.T) {
	t.Run("should lower-case and trim", func(t *testing.T) {
		assert.Equal(t, "0xabcdef", NormalizeAddress("  0xABCdef "))
	})
}

func TestWalletState_IsOwner(t *testing.T) {
	w := testWallet(1, ownerA)

	t.Run("should match regardless of case", func(t *testing.T) {
		assert.True(t, w.IsOwner("0x000000000000000000000000000000000000000A"))
	})

	t.Run("should reject unknown addresses", func(t *testing.T) {
		assert.False(t, w.IsOwner(ownerB))
	})
}

func TestWalletState_Validate(t *testing.T) {
	t.Run("should accept a threshold equal to the owner count", func(t *testing.T) {
		assert.NoError(t, testWallet(2, ownerA, ownerB).Validate())
	})

	t.Run("should reject a zero threshold", func(t *testing.T) {
		err := testWallet(0, ownerA).Validate()
		assert.ErrorIs(t, err, ErrInvalidRequirement)
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject a threshold above the owner count", func(t *testing.T) {
		assert.ErrorIs(t, testWallet(3, ownerA, ownerB).Validate(), ErrInvalidRequirement)
	})
}

func TestBuildWallet(t *testing.T) {
	t.Run("should build a version 1 wallet with normalized owners", func(t *testing.T) {
		w, err := buildWallet(walletAddress, []string{"0x000000000000000000000000000000000000000A", ownerB}, 2)
		require.NoError(t, err)

		assert.NotEmpty(t, w.ID)
		assert.Equal(t, uint64(1), w.Version)
		assert.Equal(t, types.NewSet(ownerA, ownerB), w.Owners)
		assert.Equal(t, 2, w.RequiredConfirmations)
		assert.False(t, w.CreatedAt.IsZero())
	})

	t.Run("should reject malformed owner addresses", func(t *testing.T) {
		_, err := buildWallet(walletAddress, []string{"0x123"}, 1)
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject an empty owner list", func(t *testing.T) {
		_, err := buildWallet(walletAddress, nil, 1)
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject duplicated owners", func(t *testing.T) {
		_, err := buildWallet(walletAddress, []string{ownerA, "0x000000000000000000000000000000000000000A"}, 1)
		assert.ErrorIs(t, err, ErrDuplicateOwner)
	})

	t.Run("should reject a threshold above the owner count", func(t *testing.T) {
		_, err := buildWallet(walletAddress, []string{ownerA, ownerB}, 3)
		assert.ErrorIs(t, err, ErrInvalidRequirement)
	})
}

func TestService_CreateWallet(t *testing.T) {
	t.Run("should persist a valid wallet", func(t *testing.T) {
		ctx := t.Context()
		storage := NewWalletStorageMock(t)
		s := New(storage, optimistic.NewRetry(3))

		storage.EXPECT().CreateWallet(ctx, mock.MatchedBy(func(w WalletState) bool {
			return w.RequiredConfirmations == 2 && w.Owners.Len() == 3
		})).Return(nil).Once()

		w, err := s.CreateWallet(ctx, walletAddress, []string{ownerA, ownerB, ownerC}, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, w.Owners.Len())
	})

	t.Run("should not persist an invalid wallet", func(t *testing.T) {
		storage := NewWalletStorageMock(t)
		s := New(storage, optimistic.NewRetry(3))

		_, err := s.CreateWallet(t.Context(), walletAddress, []string{ownerA}, 2)
		assert.ErrorIs(t, err, ErrInvalidRequirement)
	})

	t.Run("should return storage errors", func(t *testing.T) {
		ctx := t.Context()
		storage := NewWalletStorageMock(t)
		s := New(storage, optimistic.NewRetry(3))

		storage.EXPECT().CreateWallet(ctx, mock.Anything).Return(ErrWalletAlreadyExists).Once()

		_, err := s.CreateWallet(ctx, walletAddress, []string{ownerA}, 1)
		assert.ErrorIs(t, err, ErrWalletAlreadyExists)
	})
}

func TestService_Queries(t *testing.T) {
	t.Run("should report ownership", func(t *testing.T) {
		ctx := t.Context()
		storage := NewWalletStorageMock(t)
		s := New(storage, optimistic.NewRetry(3))

		storage.EXPECT().LoadWallet(ctx, "w-1").Return(testWallet(1, ownerA), nil).Twice()

		ok, err := s.IsOwner(ctx, "w-1", ownerA)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.IsOwner(ctx, "w-1", ownerB)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should return the current threshold", func(t *testing.T) {
		ctx := t.Context()
		storage := NewWalletStorageMock(t)
		s := New(storage, optimistic.NewRetry(3))

		storage.EXPECT().LoadWallet(ctx, "w-1").Return(testWallet(2, ownerA, ownerB), nil).Once()

		threshold, err := s.CurrentThreshold(ctx, "w-1")
		require.NoError(t, err)
		assert.Equal(t, 2, threshold)
	})

	t.Run("should propagate missing wallets", func(t *testing.T) {
		ctx := t.Context()
		storage := NewWalletStorageMock(t)
		s := New(storage, optimistic.NewRetry(3))

		storage.EXPECT().LoadWallet(ctx, "nope").Return(WalletState{}, ErrWalletNotFound).Twice()

		_, err := s.IsOwner(ctx, "nope", ownerA)
		assert.ErrorIs(t, err, ErrWalletNotFound)

		_, err = s.CurrentThreshold(ctx, "nope")
		assert.True(t, errors.Is(err, ErrWalletNotFound))
	})
}
