package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

func newTestStorage(t *testing.T) Storage {
	t.Helper()
	store, err := NewSqliteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return store
}

func TestProgramConfigLifecycle(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetProgramConfig()
	assert.ErrorIs(t, err, raffle.ErrConfigNotInitialized)

	admin := identity.New()
	require.NoError(t, store.InitProgramConfig(&raffle.ProgramConfig{
		Admin:         admin,
		FeesWallet:    identity.New(),
		TicketFee:     25,
		ProceedsShare: 500,
	}))

	assert.ErrorIs(t, store.InitProgramConfig(&raffle.ProgramConfig{
		Admin: identity.New(),
	}), raffle.ErrConfigExists)

	config, err := store.GetProgramConfig()
	require.NoError(t, err)
	assert.Equal(t, admin, config.Admin)
	assert.Equal(t, uint64(25), config.TicketFee)

	config.TicketFee = 50
	require.NoError(t, store.UpdateProgramConfig(config))

	config, err = store.GetProgramConfig()
	require.NoError(t, err)
	assert.Equal(t, uint64(50), config.TicketFee)
}

func TestSlugRegistry(t *testing.T) {
	store := newTestStorage(t)

	exists, err := store.SlugExists("degen_raffles")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.AddSlug("degen_raffles"))

	exists, err = store.SlugExists("degen_raffles")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.SetSlugs([]string{"alpha", "beta"}))

	exists, err = store.SlugExists("degen_raffles")
	require.NoError(t, err)
	assert.False(t, exists, "replaced registry must drop old slugs")

	exists, err = store.SlugExists("alpha")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRafflerLookups(t *testing.T) {
	store := newTestStorage(t)

	authority := identity.New()
	raffler := &raffle.Raffler{
		ID:        "raffler-1",
		Authority: authority,
		Slug:      "house_of_cards",
		Name:      "House of Cards",
		Treasury:  authority,
	}
	require.NoError(t, store.CreateRaffler(raffler))

	byID, err := store.GetRaffler("raffler-1")
	require.NoError(t, err)
	assert.Equal(t, raffler.Slug, byID.Slug)

	byAuthority, err := store.GetRafflerByAuthority(authority.String())
	require.NoError(t, err)
	assert.Equal(t, raffler.ID, byAuthority.ID)

	bySlug, err := store.GetRafflerBySlug("house_of_cards")
	require.NoError(t, err)
	assert.Equal(t, raffler.ID, bySlug.ID)

	_, err = store.GetRaffler("missing")
	assert.ErrorIs(t, err, raffle.ErrNotFound)
	_, err = store.GetRafflerByAuthority(identity.New().String())
	assert.ErrorIs(t, err, raffle.ErrNotFound)
	_, err = store.GetRafflerBySlug("missing")
	assert.ErrorIs(t, err, raffle.ErrNotFound)

	byID.IsActive = true
	require.NoError(t, store.UpdateRaffler(byID))
	updated, err := store.GetRaffler("raffler-1")
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	require.NoError(t, store.DeleteRaffler("raffler-1"))
	_, err = store.GetRaffler("raffler-1")
	assert.ErrorIs(t, err, raffle.ErrNotFound)
}

func TestRafflePersistence(t *testing.T) {
	store := newTestStorage(t)

	mint := identity.New()
	r := &raffle.Raffle{
		ID:         "raffle-1",
		RafflerID:  "raffler-1",
		EntrantsID: "entrants-1",
		Prize:      identity.New(),
		PrizeType:  raffle.PrizeType{Token: &raffle.TokenPrize{Amount: 1000}},
		PaymentType: raffle.PaymentType{
			Token: &raffle.TokenPayment{Mint: mint, TicketPrice: 10},
		},
		EntryType:     raffle.EntryType{Spend: &raffle.SpendEntry{}},
		StartTime:     100,
		EndTime:       200,
		MaxEntrantPct: 10000,
	}
	require.NoError(t, store.CreateRaffle(r))

	loaded, err := store.GetRaffle("raffle-1")
	require.NoError(t, err)
	require.NotNil(t, loaded.PaymentType.Token)
	assert.Equal(t, mint, loaded.PaymentType.Token.Mint)
	assert.Equal(t, uint64(10), loaded.PaymentType.Token.TicketPrice)
	require.NotNil(t, loaded.PrizeType.Token)
	assert.Equal(t, uint64(1000), loaded.PrizeType.Token.Amount)
	assert.Nil(t, loaded.GatedCollection)
	assert.Empty(t, loaded.Randomness)

	loaded.Randomness = []byte{1, 2, 3}
	loaded.URI = "archive://abc"
	require.NoError(t, store.UpdateRaffle(loaded))

	again, err := store.GetRaffle("raffle-1")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again.Randomness)
	assert.Equal(t, "archive://abc", again.URI)

	listed, err := store.ListRaffles("raffler-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "raffle-1", listed[0].ID)

	require.NoError(t, store.DeleteRaffle("raffle-1"))
	_, err = store.GetRaffle("raffle-1")
	assert.ErrorIs(t, err, raffle.ErrNotFound)
}

func TestRandomnessRequests(t *testing.T) {
	store := newTestStorage(t)

	require.NoError(t, store.CreateRandomnessRequest(&raffle.RandomnessRequest{
		Handle:    "h1",
		RaffleID:  "raffle-1",
		CreatedAt: 100,
	}))
	require.NoError(t, store.CreateRandomnessRequest(&raffle.RandomnessRequest{
		Handle:    "h2",
		RaffleID:  "raffle-2",
		CreatedAt: 101,
	}))

	pending, err := store.GetPendingRandomnessRequests()
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, store.SettleRandomnessRequest("h1"))

	pending, err = store.GetPendingRandomnessRequests()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "h2", pending[0].Handle)
}
