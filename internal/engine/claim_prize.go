package engine

import (
	"context"
	"errors"
	"math/bits"

	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/entrants"
	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/metrics"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// ClaimResult reports the terminal settlement of a raffle.
type ClaimResult struct {
	RaffleID         string            `json:"raffleId"`
	Recipient        identity.Identity `json:"recipient"`
	WinnerIndex      *uint32           `json:"winnerIndex,omitempty"`
	Cancelled        bool              `json:"cancelled"`
	TreasuryProceeds uint64            `json:"treasuryProceeds"`
	FeeProceeds      uint64            `json:"feeProceeds"`
	RentReleased     uint64            `json:"rentReleased"`
}

// ClaimPrize settles a drawn raffle: the prize moves to the winner, proceeds
// split between the protocol fee wallet and the organizer's treasury, and the
// entrant ledger is closed. A raffle that ended with zero entrants is instead
// cancelled, prize back to the authority, and only the authority may do it.
func (e *Engine) ClaimPrize(ctx context.Context, raffleID string, claimant identity.Identity, ticketIndex uint32) (*ClaimResult, error) {
	unlock := e.lockRaffle(raffleID)
	defer unlock()

	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return nil, err
	}
	if r.Claimed {
		return nil, raffle.ErrAlreadyClaimed
	}

	raffler, err := e.store.GetRaffler(r.RafflerID)
	if err != nil {
		return nil, err
	}
	config, err := e.store.GetProgramConfig()
	if err != nil {
		return nil, err
	}

	image, err := e.ledgerImage(ctx, r)
	if err != nil {
		return nil, err
	}
	header, err := entrants.Header(image)
	if err != nil {
		return nil, err
	}

	result := &ClaimResult{RaffleID: r.ID}

	if header.Total == 0 {
		if claimant != raffler.Authority {
			return nil, raffle.ErrOnlyAdminCanClaim
		}
		result.Recipient = raffler.Authority
		result.Cancelled = true
	} else {
		if len(r.Randomness) == 0 {
			return nil, raffle.ErrWinnerNotDrawn
		}
		winnerIndex := raffle.WinnerIndex(r.Randomness, header.Total)
		if ticketIndex != winnerIndex {
			return nil, raffle.ErrTicketNotWinner
		}
		winner, err := entrants.EntrantAt(image, winnerIndex)
		if err != nil {
			return nil, err
		}
		if claimant != winner && claimant != raffler.Authority {
			return nil, raffle.ErrOnlyWinnerOrAdminCanSettle
		}
		result.Recipient = winner
		result.WinnerIndex = &winnerIndex
	}

	// token payments always leave proceeds in the vault; NFT payments only
	// when the burn's rent reclaim was witheld
	if r.PaymentType.Token != nil || r.EntryType.WitholdsBurnProceeds() {
		proceedsAsset := identity.Native
		if r.PaymentType.Token != nil {
			proceedsAsset = r.PaymentType.Token.Mint
		}
		feeShare, treasuryShare, err := e.splitProceeds(ctx, r, proceedsAsset, config.ProceedsShare)
		if err != nil {
			return nil, err
		}
		if feeShare > 0 {
			if err := e.custody.Transfer(ctx, proceedsAsset, proceedsVault(r.ID), config.FeesWallet, feeShare); err != nil {
				return nil, err
			}
		}
		if treasuryShare > 0 {
			if err := e.custody.Transfer(ctx, proceedsAsset, proceedsVault(r.ID), raffler.Treasury, treasuryShare); err != nil {
				return nil, err
			}
		}
		result.FeeProceeds = feeShare
		result.TreasuryProceeds = treasuryShare
	}

	// entrant-funded ledger rent goes to the fees wallet
	rent, err := e.custody.Balance(ctx, identity.Native, rentEscrow(r.ID))
	if err != nil {
		return nil, err
	}
	if rent > 0 {
		if err := e.custody.Transfer(ctx, identity.Native, rentEscrow(r.ID), config.FeesWallet, rent); err != nil {
			return nil, err
		}
	}
	result.RentReleased = rent

	prizeBalance, err := e.custody.Balance(ctx, r.Prize, prizeCustody(r.ID))
	if err != nil {
		return nil, err
	}
	if err := e.custody.Transfer(ctx, r.Prize, prizeCustody(r.ID), result.Recipient, prizeBalance); err != nil {
		return nil, err
	}

	r.Claimed = true
	if err := e.store.UpdateRaffle(r); err != nil {
		return nil, err
	}

	// close the ledger, reclaiming its storage
	if err := e.entrants.Delete(r.EntrantsID); err != nil && !errors.Is(err, raffle.ErrAccountNotInitialized) {
		return nil, err
	}

	metrics.PrizesClaimed.Inc()
	logger.Info("prize claimed",
		zap.String("raffle", r.ID),
		zap.String("recipient", result.Recipient.String()),
		zap.Bool("cancelled", result.Cancelled),
		zap.Uint64("treasury proceeds", result.TreasuryProceeds),
		zap.Uint64("fee proceeds", result.FeeProceeds))
	return result, nil
}

// splitProceeds drains the proceeds vault into a fee share and a treasury
// share. Basis-point math runs in 128 bits; the fee is floored and the
// treasury takes the remainder.
func (e *Engine) splitProceeds(ctx context.Context, r *raffle.Raffle, asset identity.Identity, shareBips uint16) (uint64, uint64, error) {
	proceeds, err := e.custody.Balance(ctx, asset, proceedsVault(r.ID))
	if err != nil {
		return 0, 0, err
	}
	if proceeds == 0 {
		return 0, 0, nil
	}

	hi, lo := bits.Mul64(proceeds, uint64(shareBips))
	fee, _ := bits.Div64(hi, lo, raffle.MaxBasisPoints)
	return fee, proceeds - fee, nil
}
