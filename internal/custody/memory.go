package custody

import (
	"context"
	"sync"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
)

type holding struct {
	asset identity.Identity
	owner identity.Identity
}

// Memory is an in-process custody service for development and tests. Chain
// adapters implement Service against a real asset runtime instead.
type Memory struct {
	mu          sync.Mutex
	balances    map[holding]uint64
	collections map[identity.Identity]identity.Identity
	burnReclaim uint64
}

func NewMemory() *Memory {
	return &Memory{
		balances:    make(map[holding]uint64),
		collections: make(map[identity.Identity]identity.Identity),
	}
}

// SetBurnReclaim fixes the rent value returned by every burn.
func (m *Memory) SetBurnReclaim(value uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.burnReclaim = value
}

// Credit mints balance into an owner's holding.
func (m *Memory) Credit(asset, owner identity.Identity, amount uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[holding{asset, owner}] += amount
}

// MintNft creates an NFT of a collection owned by owner.
func (m *Memory) MintNft(nft, collection, owner identity.Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[nft] = collection
	m.balances[holding{nft, owner}] = 1
}

func (m *Memory) Transfer(_ context.Context, asset, from, to identity.Identity, amount uint64) error {
	if amount == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	source := holding{asset, from}
	if m.balances[source] < amount {
		return ErrInsufficientBalance
	}
	m.balances[source] -= amount
	m.balances[holding{asset, to}] += amount
	return nil
}

func (m *Memory) Burn(_ context.Context, asset, from identity.Identity, amount uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	source := holding{asset, from}
	if m.balances[source] < amount {
		return 0, ErrInsufficientBalance
	}
	m.balances[source] -= amount

	// rent from the destroyed asset account comes back to the burner
	m.balances[holding{identity.Native, from}] += m.burnReclaim
	return m.burnReclaim, nil
}

func (m *Memory) Balance(_ context.Context, asset, owner identity.Identity) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[holding{asset, owner}], nil
}

func (m *Memory) VerifyCollectionHolding(_ context.Context, owner, collection, item identity.Identity) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	memberOf, known := m.collections[item]
	if !known || memberOf != collection {
		return false, nil
	}
	return m.balances[holding{item, owner}] == 1, nil
}
