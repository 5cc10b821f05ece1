package custody

import (
	"context"
	"errors"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotOwner            = errors.New("asset is not owned by this identity")
	ErrUnknownAsset        = errors.New("unknown asset")
)

// Service is the asset transfer and custody collaborator. The engine only
// supplies the authorization context; rule-enforced ("programmable") asset
// variants are the service's concern. NFTs are assets held in amounts of one.
type Service interface {
	// Transfer moves amount of asset between owners atomically.
	Transfer(ctx context.Context, asset, from, to identity.Identity, amount uint64) error

	// Burn destroys amount of asset held by from and returns the storage
	// rent reclaimed by the destruction, credited to from.
	Burn(ctx context.Context, asset, from identity.Identity, amount uint64) (uint64, error)

	// Balance reports how much of asset an owner holds.
	Balance(ctx context.Context, asset, owner identity.Identity) (uint64, error)

	// VerifyCollectionHolding reports whether owner currently holds item and
	// item is a verified member of collection.
	VerifyCollectionHolding(ctx context.Context, owner, collection, item identity.Identity) (bool, error)
}
