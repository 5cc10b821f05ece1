package oracle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
	"github.com/kartosangel/Solana-Raffle/internal/storage"
)

// Service issues asynchronous randomness requests. Exactly one settlement is
// delivered per handle, by the oracle's own calling convention, not by the
// requester blocking.
type Service interface {
	Request(ctx context.Context, raffleID string) (string, error)
}

// Queue records pending rounds for an off-process oracle to pick up and
// fulfill.
type Queue struct {
	store storage.Storage
	now   func() time.Time
}

func NewQueue(store storage.Storage) *Queue {
	return &Queue{store: store, now: time.Now}
}

func (q *Queue) Request(_ context.Context, raffleID string) (string, error) {
	handle := uuid.NewString()
	request := &raffle.RandomnessRequest{
		Handle:    handle,
		RaffleID:  raffleID,
		CreatedAt: q.now().Unix(),
	}
	if err := q.store.CreateRandomnessRequest(request); err != nil {
		return "", err
	}

	logger.Info("randomness requested",
		zap.String("raffle", raffleID),
		zap.String("handle", handle))
	return handle, nil
}
