package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/metrics"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// DrawWinner concludes ticket sales for an ended raffle: the entrant ledger
// is archived first (the live ledger may be reclaimed before the oracle
// answers, the pinned snapshot stays authoritative), then a randomness round
// is requested. Any caller may trigger it.
func (e *Engine) DrawWinner(ctx context.Context, raffleID string) (string, error) {
	unlock := e.lockRaffle(raffleID)
	defer unlock()

	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return "", err
	}

	if len(r.Randomness) > 0 {
		return "", raffle.ErrWinnerAlreadyDrawn
	}
	if r.URI != "" {
		return "", raffle.ErrRandomnessAlreadyRequested
	}

	state, _, err := e.state(r)
	if err != nil {
		return "", err
	}
	if state != raffle.StateEnded {
		return "", raffle.ErrRaffleNotEnded
	}

	snapshot, err := e.entrants.Snapshot(r.EntrantsID)
	if err != nil {
		return "", err
	}
	uri, err := e.archive.Upload(ctx, snapshot)
	if err != nil {
		return "", err
	}

	handle, err := e.oracle.Request(ctx, r.ID)
	if err != nil {
		return "", err
	}

	r.URI = uri
	if err := e.store.UpdateRaffle(r); err != nil {
		return "", err
	}

	metrics.DrawsRequested.Inc()
	logger.Info("draw requested",
		zap.String("raffle", r.ID),
		zap.String("uri", uri),
		zap.String("handle", handle))
	return handle, nil
}
