package oracle_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/oracle"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
	"github.com/kartosangel/Solana-Raffle/internal/storage"
)

func createSnapshottedRaffle(t *testing.T, store storage.Storage, id, uri string) {
	t.Helper()
	require.NoError(t, store.CreateRaffle(&raffle.Raffle{
		ID:         id,
		RafflerID:  "raffler-1",
		EntrantsID: id + "-entrants",
		Prize:      identity.New(),
		PrizeType:  raffle.PrizeType{Token: &raffle.TokenPrize{Amount: 1}},
		PaymentType: raffle.PaymentType{
			Token: &raffle.TokenPayment{Mint: identity.Native, TicketPrice: 1},
		},
		EntryType:     raffle.EntryType{Spend: &raffle.SpendEntry{}},
		StartTime:     1,
		EndTime:       2,
		MaxEntrantPct: raffle.MaxBasisPoints,
		URI:           uri,
	}))
}

func TestStoreSettlerWritesRandomness(t *testing.T) {
	store := newTestStorage(t)
	createSnapshottedRaffle(t, store, "raffle-1", "file://snapshot")

	seed := make([]byte, oracle.SeedBytes)
	for i := range seed {
		seed[i] = byte(i)
	}

	settler := oracle.NewStoreSettler(store)
	require.NoError(t, settler.ConsumeRandomness(context.Background(), "raffle-1", seed))

	r, err := store.GetRaffle("raffle-1")
	require.NoError(t, err)
	assert.True(t, bytes.Equal(seed, r.Randomness))

	// a second round cannot overwrite the recorded seed
	other := make([]byte, oracle.SeedBytes)
	err = settler.ConsumeRandomness(context.Background(), "raffle-1", other)
	assert.ErrorIs(t, err, raffle.ErrWinnerAlreadyDrawn)

	r, err = store.GetRaffle("raffle-1")
	require.NoError(t, err)
	assert.True(t, bytes.Equal(seed, r.Randomness))
}

func TestStoreSettlerGuards(t *testing.T) {
	store := newTestStorage(t)
	createSnapshottedRaffle(t, store, "raffle-1", "file://snapshot")
	createSnapshottedRaffle(t, store, "raffle-2", "")
	settler := oracle.NewStoreSettler(store)

	// a short seed is rejected
	err := settler.ConsumeRandomness(context.Background(), "raffle-1", []byte{1, 2, 3})
	assert.ErrorIs(t, err, raffle.ErrInvalidRandomness)

	// no snapshot recorded means the draw never happened
	err = settler.ConsumeRandomness(context.Background(), "raffle-2", make([]byte, oracle.SeedBytes))
	assert.ErrorIs(t, err, raffle.ErrInvalidStateTransition)

	err = settler.ConsumeRandomness(context.Background(), "missing", make([]byte, oracle.SeedBytes))
	assert.Error(t, err)
}
