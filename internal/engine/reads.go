package engine

import (
	"context"

	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// RaffleView is the read model served to display layers: the stored record
// plus the derived state and the current ledger header.
type RaffleView struct {
	*raffle.Raffle
	State raffle.State `json:"state"`
	Total uint32       `json:"total"`
	Max   uint32       `json:"max"`
}

func (e *Engine) GetRaffle(_ context.Context, raffleID string) (*RaffleView, error) {
	r, err := e.store.GetRaffle(raffleID)
	if err != nil {
		return nil, err
	}
	state, header, err := e.state(r)
	if err != nil {
		return nil, err
	}
	return &RaffleView{
		Raffle: r,
		State:  state,
		Total:  header.Total,
		Max:    header.Max,
	}, nil
}

func (e *Engine) ListRaffles(_ context.Context, rafflerID string) ([]*RaffleView, error) {
	raffles, err := e.store.ListRaffles(rafflerID)
	if err != nil {
		return nil, err
	}
	views := make([]*RaffleView, 0, len(raffles))
	for _, r := range raffles {
		state, header, err := e.state(r)
		if err != nil {
			return nil, err
		}
		views = append(views, &RaffleView{
			Raffle: r,
			State:  state,
			Total:  header.Total,
			Max:    header.Max,
		})
	}
	return views, nil
}

func (e *Engine) GetRaffler(_ context.Context, id string) (*raffle.Raffler, error) {
	return e.store.GetRaffler(id)
}

func (e *Engine) GetRafflerBySlug(_ context.Context, slug string) (*raffle.Raffler, error) {
	return e.store.GetRafflerBySlug(slug)
}

func (e *Engine) GetProgramConfig(_ context.Context) (*raffle.ProgramConfig, error) {
	return e.store.GetProgramConfig()
}
