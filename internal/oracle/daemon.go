package oracle

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
	"github.com/kartosangel/Solana-Raffle/internal/storage"
)

// SeedBytes is the fixed length of the raw entropy delivered per round.
const SeedBytes = 32

// Settler is the engine entry point the oracle invokes when a round lands.
type Settler interface {
	ConsumeRandomness(ctx context.Context, raffleID string, seed []byte) error
}

// Daemon is a development oracle. It polls for pending rounds and settles
// each one with locally generated entropy. A production deployment replaces
// this with a VRF provider invoking the same Settler.
type Daemon struct {
	store    storage.Storage
	settler  Settler
	interval time.Duration
}

func NewDaemon(store storage.Storage, settler Settler, interval time.Duration) *Daemon {
	return &Daemon{
		store:    store,
		settler:  settler,
		interval: interval,
	}
}

func (d *Daemon) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("oracle daemon stopped")
			return
		case <-ticker.C:
			if err := d.settlePending(ctx); err != nil {
				logger.Error("oracle settle cycle failed", zap.Error(err))
			}
		}
	}
}

func (d *Daemon) settlePending(ctx context.Context) error {
	pending, err := d.store.GetPendingRandomnessRequests()
	if err != nil {
		return err
	}

	for _, request := range pending {
		seed := make([]byte, SeedBytes)
		if _, err := rand.Read(seed); err != nil {
			return err
		}

		err := d.settler.ConsumeRandomness(ctx, request.RaffleID, seed)
		if err != nil && !errors.Is(err, raffle.ErrWinnerAlreadyDrawn) {
			logger.Error("randomness settlement rejected",
				zap.String("raffle", request.RaffleID),
				zap.String("handle", request.Handle),
				zap.Error(err))
			continue
		}

		if err := d.store.SettleRandomnessRequest(request.Handle); err != nil {
			return err
		}

		logger.Info("randomness settled",
			zap.String("raffle", request.RaffleID),
			zap.String("handle", request.Handle))
	}
	return nil
}
