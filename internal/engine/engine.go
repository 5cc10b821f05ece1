package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kartosangel/Solana-Raffle/internal/archive"
	"github.com/kartosangel/Solana-Raffle/internal/custody"
	"github.com/kartosangel/Solana-Raffle/internal/entrants"
	"github.com/kartosangel/Solana-Raffle/internal/oracle"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
	"github.com/kartosangel/Solana-Raffle/internal/storage"
)

// Engine executes raffle operations against the metadata store, the entrant
// ledger store and the external collaborators. Operations touching one raffle
// are linearized by a per-raffle lock; raffles are fully independent of each
// other.
type Engine struct {
	store    storage.Storage
	entrants *entrants.Store
	custody  custody.Service
	archive  archive.Store
	oracle   oracle.Service

	locks sync.Map
	now   func() time.Time
}

func New(
	store storage.Storage,
	entrantsStore *entrants.Store,
	custodyService custody.Service,
	archiveStore archive.Store,
	oracleService oracle.Service,
) *Engine {
	return &Engine{
		store:    store,
		entrants: entrantsStore,
		custody:  custodyService,
		archive:  archiveStore,
		oracle:   oracleService,
		now:      time.Now,
	}
}

// SetClock overrides the time source. Tests only.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

func (e *Engine) lockRaffle(id string) func() {
	value, _ := e.locks.LoadOrStore(id, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ledgerImage returns the packed ledger for a raffle, falling back to the
// archived snapshot once the live ledger is closed. The snapshot is
// authoritative after the uri is set.
func (e *Engine) ledgerImage(ctx context.Context, r *raffle.Raffle) ([]byte, error) {
	data, err := e.entrants.Snapshot(r.EntrantsID)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, raffle.ErrAccountNotInitialized) {
		return nil, err
	}
	if r.URI == "" {
		return nil, raffle.ErrAccountNotInitialized
	}
	return e.archive.Fetch(ctx, r.URI)
}

// state derives the current state of a raffle from stored facts.
func (e *Engine) state(r *raffle.Raffle) (raffle.State, entrants.Entrants, error) {
	header, err := e.entrants.Get(r.EntrantsID)
	hasLedger := true
	if errors.Is(err, raffle.ErrAccountNotInitialized) {
		hasLedger = false
		err = nil
	}
	if err != nil {
		return 0, entrants.Entrants{}, err
	}
	now := e.now().Unix()
	return raffle.DeriveState(now, r.Facts(header.Total, header.Max, hasLedger)), header, nil
}
