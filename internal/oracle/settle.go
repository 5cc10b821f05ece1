package oracle

import (
	"context"

	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
	"github.com/kartosangel/Solana-Raffle/internal/storage"
)

// Settle validates and records one randomness round. A raffle accepts exactly
// one seed, and only after its ledger snapshot has been pinned.
func Settle(store storage.Storage, raffleID string, seed []byte) error {
	r, err := store.GetRaffle(raffleID)
	if err != nil {
		return err
	}

	if len(r.Randomness) > 0 {
		return raffle.ErrWinnerAlreadyDrawn
	}
	if len(seed) != SeedBytes {
		return raffle.ErrInvalidRandomness
	}
	if r.URI == "" {
		return raffle.ErrInvalidStateTransition
	}

	r.Randomness = append([]byte(nil), seed...)
	if err := store.UpdateRaffle(r); err != nil {
		return err
	}

	logger.Info("randomness consumed",
		zap.String("raffle", r.ID),
		zap.Uint32("expanded", raffle.ExpandRandomness(r.Randomness)))
	return nil
}

// StoreSettler settles rounds straight against the metadata store. It is the
// settlement path for the standalone daemon process, which never opens the
// entrant ledger; settlement conflicts resolve on the shared database.
type StoreSettler struct {
	store storage.Storage
}

func NewStoreSettler(store storage.Storage) *StoreSettler {
	return &StoreSettler{store: store}
}

func (s *StoreSettler) ConsumeRandomness(_ context.Context, raffleID string, seed []byte) error {
	return Settle(s.store, raffleID, seed)
}
