package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/custody"
	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/metrics"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// SpendPurchase pays quantity × ticketPrice from the buyer into the raffle
// vault. BurnNftPurchase destroys one NFT of the payment collection per call.
// TransferNftPurchase moves one NFT into raffle custody per call.
type SpendPurchase struct {
	Quantity uint32 `json:"quantity"`
}

type BurnNftPurchase struct {
	Nft identity.Identity `json:"nft"`
}

type TransferNftPurchase struct {
	Nft identity.Identity `json:"nft"`
}

// BuyTicketsRequest is a tagged variant: exactly one purchase kind is set.
// GateProof names an NFT the buyer holds from the raffle's gated collection.
type BuyTicketsRequest struct {
	Buyer       identity.Identity
	Spend       *SpendPurchase
	BurnNft     *BurnNftPurchase
	TransferNft *TransferNftPurchase
	GateProof   *identity.Identity
}

func (req BuyTicketsRequest) quantity() uint32 {
	if req.Spend != nil {
		return req.Spend.Quantity
	}
	return 1
}

func (req BuyTicketsRequest) valid() bool {
	count := 0
	if req.Spend != nil {
		count++
	}
	if req.BurnNft != nil {
		count++
	}
	if req.TransferNft != nil {
		count++
	}
	return count == 1
}

// BuyTickets validates the purchase against the raffle configuration and the
// current derived state, moves payment, and appends the buyer to the entrant
// ledger once per ticket.
func (e *Engine) BuyTickets(ctx context.Context, raffleID string, req BuyTicketsRequest) (*raffle.TicketReceipt, error) {
	if !req.valid() {
		return nil, raffle.ErrInvalidInstruction
	}
	quantity := req.quantity()
	if quantity == 0 {
		return nil, raffle.ErrInvalidTicketCount
	}

	unlock := e.lockRaffle(raffleID)
	defer unlock()

	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return nil, err
	}
	config, err := e.store.GetProgramConfig()
	if err != nil {
		return nil, err
	}

	state, header, err := e.state(r)
	if err != nil {
		return nil, err
	}
	switch state {
	case raffle.StateInProgress:
	case raffle.StateNotStarted:
		return nil, raffle.ErrNotStarted
	default:
		return nil, raffle.ErrEnded
	}

	if err := e.checkGate(ctx, r, req); err != nil {
		return nil, err
	}

	bounded := header.Max != raffle.UnboundedTickets
	if bounded {
		allowed := r.MaxTicketsPerEntrant(header.Max)
		held, err := e.entrants.CountFor(r.EntrantsID, req.Buyer)
		if err != nil {
			return nil, err
		}
		if uint64(held)+uint64(quantity) > uint64(allowed) {
			return nil, raffle.ErrEntrantCapExceeded
		}
		if header.Max-header.Total < quantity {
			return nil, raffle.ErrSoldOut
		}
	}

	rent, err := mulChecked(config.TicketFee, uint64(quantity))
	if err != nil {
		return nil, err
	}
	if err := e.ensureFunds(ctx, r, req, quantity, rent); err != nil {
		return nil, err
	}

	switch {
	case req.Spend != nil:
		err = e.paySpend(ctx, r, req.Buyer, quantity)
	case req.BurnNft != nil:
		err = e.payBurnNft(ctx, r, req.Buyer, req.BurnNft.Nft)
	case req.TransferNft != nil:
		err = e.payTransferNft(ctx, r, req.Buyer, req.TransferNft.Nft)
	}
	if err != nil {
		return nil, err
	}

	// flat per-ticket fee funds the ledger storage, released at claim
	if rent > 0 {
		if err := e.custody.Transfer(ctx, identity.Native, req.Buyer, rentEscrow(r.ID), rent); err != nil {
			return nil, err
		}
	}

	updated, err := e.entrants.Append(r.EntrantsID, req.Buyer, quantity)
	if err != nil {
		return nil, err
	}

	metrics.TicketsSold.Add(float64(quantity))
	logger.Info("tickets purchased",
		zap.String("raffle", r.ID),
		zap.String("buyer", req.Buyer.String()),
		zap.Uint32("quantity", quantity),
		zap.Uint32("total", updated.Total))

	return &raffle.TicketReceipt{
		RaffleID:   r.ID,
		Buyer:      req.Buyer,
		Quantity:   quantity,
		FirstIndex: updated.Total - quantity,
		Total:      updated.Total,
	}, nil
}

// ensureFunds verifies the buyer covers the ticket payment and the flat fee
// before any value moves. A purchase either completes in full or leaves every
// balance untouched.
func (e *Engine) ensureFunds(ctx context.Context, r *raffle.Raffle, req BuyTicketsRequest, quantity uint32, rent uint64) error {
	needNative := rent

	if req.Spend != nil && r.PaymentType.Token != nil {
		cost, err := mulChecked(r.PaymentType.Token.TicketPrice, uint64(quantity))
		if err != nil {
			return err
		}
		if r.PaymentType.Token.Mint == identity.Native {
			needNative, err = addChecked(needNative, cost)
			if err != nil {
				return err
			}
		} else {
			balance, err := e.custody.Balance(ctx, r.PaymentType.Token.Mint, req.Buyer)
			if err != nil {
				return err
			}
			if balance < cost {
				return custody.ErrInsufficientBalance
			}
		}
	}

	if needNative > 0 {
		balance, err := e.custody.Balance(ctx, identity.Native, req.Buyer)
		if err != nil {
			return err
		}
		if balance < needNative {
			return custody.ErrInsufficientBalance
		}
	}
	return nil
}

func (e *Engine) checkGate(ctx context.Context, r *raffle.Raffle, req BuyTicketsRequest) error {
	if r.GatedCollection == nil {
		return nil
	}
	if req.GateProof == nil {
		return raffle.ErrGatedRaffle
	}
	holds, err := e.custody.VerifyCollectionHolding(ctx, req.Buyer, *r.GatedCollection, *req.GateProof)
	if err != nil {
		return err
	}
	if !holds {
		return raffle.ErrGatedRaffle
	}
	return nil
}

func (e *Engine) paySpend(ctx context.Context, r *raffle.Raffle, buyer identity.Identity, quantity uint32) error {
	payment := r.PaymentType.Token
	if payment == nil {
		return raffle.ErrTokenInstruction
	}

	cost, err := mulChecked(payment.TicketPrice, uint64(quantity))
	if err != nil {
		return err
	}

	// a burn entry type on a non-native token raffle destroys the payment
	// instead of keeping it as proceeds
	if r.EntryType.IsBurn() {
		_, err := e.custody.Burn(ctx, payment.Mint, buyer, cost)
		return err
	}
	return e.custody.Transfer(ctx, payment.Mint, buyer, proceedsVault(r.ID), cost)
}

func (e *Engine) payBurnNft(ctx context.Context, r *raffle.Raffle, buyer, nft identity.Identity) error {
	payment := r.PaymentType.Nft
	if payment == nil {
		return raffle.ErrNftInstruction
	}
	if !r.EntryType.IsBurn() {
		return raffle.ErrInvalidInstruction
	}

	member, err := e.custody.VerifyCollectionHolding(ctx, buyer, payment.Collection, nft)
	if err != nil {
		return err
	}
	if !member {
		return raffle.ErrInvalidCollection
	}

	reclaimed, err := e.custody.Burn(ctx, nft, buyer, 1)
	if err != nil {
		return err
	}
	if r.EntryType.WitholdsBurnProceeds() && reclaimed > 0 {
		return e.custody.Transfer(ctx, identity.Native, buyer, proceedsVault(r.ID), reclaimed)
	}
	return nil
}

func (e *Engine) payTransferNft(ctx context.Context, r *raffle.Raffle, buyer, nft identity.Identity) error {
	payment := r.PaymentType.Nft
	if payment == nil {
		return raffle.ErrNftInstruction
	}
	if r.EntryType.IsBurn() {
		return raffle.ErrInvalidInstruction
	}

	member, err := e.custody.VerifyCollectionHolding(ctx, buyer, payment.Collection, nft)
	if err != nil {
		return err
	}
	if !member {
		return raffle.ErrInvalidCollection
	}

	return e.custody.Transfer(ctx, nft, buyer, nftCustody(r.ID), 1)
}

func mulChecked(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/a != b {
		return 0, raffle.ErrNumericOverflow
	}
	return product, nil
}

func addChecked(a, b uint64) (uint64, error) {
	if a+b < a {
		return 0, raffle.ErrNumericOverflow
	}
	return a + b, nil
}
