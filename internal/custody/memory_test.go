package custody

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	asset := identity.New()
	alice := identity.New()
	bob := identity.New()

	m.Credit(asset, alice, 100)

	require.NoError(t, m.Transfer(ctx, asset, alice, bob, 40))

	balance, err := m.Balance(ctx, asset, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), balance)

	balance, err = m.Balance(ctx, asset, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), balance)

	assert.ErrorIs(t, m.Transfer(ctx, asset, alice, bob, 61), ErrInsufficientBalance)

	// zero-amount transfers are a no-op even for unknown holdings
	require.NoError(t, m.Transfer(ctx, identity.New(), alice, bob, 0))
}

func TestBurnReclaim(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetBurnReclaim(2039280)

	nft := identity.New()
	owner := identity.New()
	m.Credit(nft, owner, 1)

	reclaimed, err := m.Burn(ctx, nft, owner, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2039280), reclaimed)

	balance, err := m.Balance(ctx, nft, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	native, err := m.Balance(ctx, identity.Native, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(2039280), native)

	_, err = m.Burn(ctx, nft, owner, 1)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestVerifyCollectionHolding(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	collection := identity.New()
	nft := identity.New()
	owner := identity.New()
	stranger := identity.New()

	m.MintNft(nft, collection, owner)

	holds, err := m.VerifyCollectionHolding(ctx, owner, collection, nft)
	require.NoError(t, err)
	assert.True(t, holds)

	holds, err = m.VerifyCollectionHolding(ctx, stranger, collection, nft)
	require.NoError(t, err)
	assert.False(t, holds)

	holds, err = m.VerifyCollectionHolding(ctx, owner, identity.New(), nft)
	require.NoError(t, err)
	assert.False(t, holds)

	holds, err = m.VerifyCollectionHolding(ctx, owner, collection, identity.New())
	require.NoError(t, err)
	assert.False(t, holds)
}
