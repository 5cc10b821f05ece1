package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/metrics"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

const maxRaffleDuration = 60 * 60 * 24 * 30

// InitRaffleRequest carries the full immutable configuration of a new raffle.
// StartTime nil means now; NumTickets nil means unbounded; MaxEntrantPct nil
// means no per-entrant cap (10,000 bips).
type InitRaffleRequest struct {
	Prize           identity.Identity
	PrizeType       raffle.PrizeType
	PaymentType     raffle.PaymentType
	EntryType       raffle.EntryType
	NumTickets      *uint32
	StartTime       *int64
	Duration        int64
	GatedCollection *identity.Identity
	MaxEntrantPct   *uint16
}

func (e *Engine) InitRaffle(ctx context.Context, authority identity.Identity, req InitRaffleRequest) (*raffle.Raffle, error) {
	raffler, err := e.store.GetRafflerByAuthority(authority.String())
	if err != nil {
		return nil, err
	}

	if err := validateRaffleConfig(req); err != nil {
		return nil, err
	}

	now := e.now().Unix()
	if req.StartTime != nil && *req.StartTime < now {
		return nil, raffle.ErrInvalidStartTime
	}

	startTime := now
	if req.StartTime != nil {
		startTime = *req.StartTime
	}
	endTime := startTime + req.Duration

	max := uint32(raffle.UnboundedTickets)
	if req.NumTickets != nil {
		max = *req.NumTickets
	}

	maxEntrantPct := uint16(raffle.MaxBasisPoints)
	if req.MaxEntrantPct != nil {
		maxEntrantPct = *req.MaxEntrantPct
	}

	r := &raffle.Raffle{
		ID:              uuid.NewString(),
		RafflerID:       raffler.ID,
		EntrantsID:      uuid.NewString(),
		Prize:           req.Prize,
		PrizeType:       req.PrizeType,
		PaymentType:     req.PaymentType,
		EntryType:       req.EntryType,
		GatedCollection: req.GatedCollection,
		StartTime:       startTime,
		EndTime:         endTime,
		MaxEntrantPct:   maxEntrantPct,
	}

	// move the prize into custody before anything is persisted, so a failed
	// transfer leaves no half-created raffle behind
	prizeAmount := uint64(1)
	if req.PrizeType.Token != nil {
		prizeAmount = req.PrizeType.Token.Amount
	}
	if err := e.custody.Transfer(ctx, req.Prize, authority, prizeCustody(r.ID), prizeAmount); err != nil {
		return nil, err
	}

	// a failed create hands the prize back so nothing is stranded in custody
	if err := e.entrants.Create(r.EntrantsID, max); err != nil {
		e.returnPrize(ctx, r.ID, req.Prize, authority, prizeAmount)
		return nil, err
	}
	if err := e.store.CreateRaffle(r); err != nil {
		if derr := e.entrants.Delete(r.EntrantsID); derr != nil {
			logger.Error("entrants cleanup failed", zap.String("raffle", r.ID), zap.Error(derr))
		}
		e.returnPrize(ctx, r.ID, req.Prize, authority, prizeAmount)
		return nil, err
	}

	metrics.RafflesCreated.Inc()
	logger.Info("raffle created",
		zap.String("id", r.ID),
		zap.String("raffler", raffler.Slug),
		zap.Uint32("max tickets", max),
		zap.Int64("start", startTime),
		zap.Int64("end", endTime))
	return r, nil
}

func (e *Engine) returnPrize(ctx context.Context, raffleID string, prize, authority identity.Identity, amount uint64) {
	if err := e.custody.Transfer(ctx, prize, prizeCustody(raffleID), authority, amount); err != nil {
		logger.Error("prize refund failed",
			zap.String("raffle", raffleID),
			zap.String("authority", authority.String()),
			zap.Error(err))
	}
}

func validateRaffleConfig(req InitRaffleRequest) error {
	if req.Duration <= 0 {
		return raffle.ErrInvalidDuration
	}
	if req.Duration > maxRaffleDuration {
		return raffle.ErrRaffleTooLong
	}
	if req.NumTickets != nil && *req.NumTickets == 0 {
		return raffle.ErrInvalidTicketCount
	}

	if !req.PrizeType.Valid() {
		return raffle.ErrInvalidPrizeType
	}
	if req.PrizeType.Token != nil && req.PrizeType.Token.Amount == 0 {
		return raffle.ErrInvalidPrizeAmount
	}

	if !req.PaymentType.Valid() {
		return raffle.ErrInvalidPaymentType
	}
	if req.PaymentType.Token != nil && req.PaymentType.Token.TicketPrice == 0 {
		return raffle.ErrTicketPriceRequired
	}

	if !req.EntryType.Valid() {
		return raffle.ErrInvalidEntryType
	}
	if req.EntryType.IsBurn() && req.PaymentType.IsNative() {
		return raffle.ErrCannotBurnNative
	}
	if req.EntryType.WitholdsBurnProceeds() && req.PaymentType.Token != nil {
		return raffle.ErrBurnProceedsToken
	}

	return nil
}
