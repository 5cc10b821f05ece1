package engine

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// CollectNft pays one NFT received through a transfer-entry raffle out of
// custody to the organizer's treasury. Allowed only once the winner has been
// drawn.
func (e *Engine) CollectNft(ctx context.Context, caller identity.Identity, raffleID string, nft identity.Identity) error {
	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return err
	}
	raffler, err := e.store.GetRaffler(r.RafflerID)
	if err != nil {
		return err
	}
	if caller != raffler.Authority {
		return raffle.ErrUnauthorized
	}
	if r.PaymentType.Nft == nil {
		return raffle.ErrNftInstruction
	}
	if len(r.Randomness) == 0 {
		return raffle.ErrNotDrawn
	}

	if err := e.custody.Transfer(ctx, nft, nftCustody(r.ID), raffler.Treasury, 1); err != nil {
		return err
	}

	logger.Info("entry nft collected",
		zap.String("raffle", r.ID),
		zap.String("nft", nft.String()))
	return nil
}

// RecoverPrize is the system-admin escape hatch for a stuck raffle: the prize
// returns to the organizer's authority without a draw. The raffle is marked
// claimed so it cannot be settled twice.
func (e *Engine) RecoverPrize(ctx context.Context, caller identity.Identity, raffleID string) error {
	unlock := e.lockRaffle(raffleID)
	defer unlock()

	config, err := e.store.GetProgramConfig()
	if err != nil {
		return err
	}
	if caller != config.Admin {
		return raffle.ErrAdminOnly
	}

	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return err
	}
	if r.Claimed {
		return raffle.ErrAlreadyClaimed
	}
	raffler, err := e.store.GetRaffler(r.RafflerID)
	if err != nil {
		return err
	}

	balance, err := e.custody.Balance(ctx, r.Prize, prizeCustody(r.ID))
	if err != nil {
		return err
	}
	if err := e.custody.Transfer(ctx, r.Prize, prizeCustody(r.ID), raffler.Authority, balance); err != nil {
		return err
	}

	r.Claimed = true
	if err := e.store.UpdateRaffle(r); err != nil {
		return err
	}

	logger.Warn("prize recovered by admin",
		zap.String("raffle", r.ID),
		zap.String("authority", raffler.Authority.String()))
	return nil
}

// SetEntrantsURI repairs the archived-ledger pointer. Organizer only.
func (e *Engine) SetEntrantsURI(_ context.Context, caller identity.Identity, raffleID, uri string) error {
	if uri == "" {
		return raffle.ErrUriRequired
	}

	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return err
	}
	raffler, err := e.store.GetRaffler(r.RafflerID)
	if err != nil {
		return err
	}
	if caller != raffler.Authority {
		return raffle.ErrUnauthorized
	}

	r.URI = uri
	return e.store.UpdateRaffle(r)
}

// DeleteRaffle removes a concluded raffle's records to reclaim storage.
// Admin only.
func (e *Engine) DeleteRaffle(_ context.Context, caller identity.Identity, raffleID string) error {
	config, err := e.store.GetProgramConfig()
	if err != nil {
		return err
	}
	if caller != config.Admin {
		return raffle.ErrAdminOnly
	}

	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return err
	}

	if err := e.entrants.Delete(r.EntrantsID); err != nil && !errors.Is(err, raffle.ErrAccountNotInitialized) {
		return err
	}
	return e.store.DeleteRaffle(raffleID)
}
