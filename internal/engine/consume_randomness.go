package engine

import (
	"context"

	"github.com/kartosangel/Solana-Raffle/internal/oracle"
)

// ConsumeRandomness is the oracle callback, the single in-process writer of a
// raffle's randomness. A second settlement for the same raffle is rejected.
func (e *Engine) ConsumeRandomness(_ context.Context, raffleID string, seed []byte) error {
	unlock := e.lockRaffle(raffleID)
	defer unlock()

	return oracle.Settle(e.store, raffleID, seed)
}
