package raffle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
)

func TestPrizeTypeValid(t *testing.T) {
	assert.True(t, PrizeType{Nft: &NftPrize{}}.Valid())
	assert.True(t, PrizeType{Token: &TokenPrize{Amount: 1}}.Valid())
	assert.False(t, PrizeType{}.Valid())
	assert.False(t, PrizeType{Nft: &NftPrize{}, Token: &TokenPrize{Amount: 1}}.Valid())
}

func TestPaymentTypeValid(t *testing.T) {
	token := &TokenPayment{Mint: identity.Native, TicketPrice: 10}
	nft := &NftPayment{Collection: identity.New()}

	assert.True(t, PaymentType{Token: token}.Valid())
	assert.True(t, PaymentType{Nft: nft}.Valid())
	assert.False(t, PaymentType{}.Valid())
	assert.False(t, PaymentType{Token: token, Nft: nft}.Valid())

	assert.True(t, PaymentType{Token: token}.IsNative())
	assert.False(t, PaymentType{Token: &TokenPayment{Mint: identity.New(), TicketPrice: 10}}.IsNative())
	assert.False(t, PaymentType{Nft: nft}.IsNative())
}

func TestEntryTypeValid(t *testing.T) {
	assert.True(t, EntryType{Spend: &SpendEntry{}}.Valid())
	assert.True(t, EntryType{Burn: &BurnEntry{}}.Valid())
	assert.True(t, EntryType{Stake: &StakeEntry{MinimumPeriod: 60}}.Valid())
	assert.False(t, EntryType{}.Valid())
	assert.False(t, EntryType{Spend: &SpendEntry{}, Burn: &BurnEntry{}}.Valid())

	assert.True(t, EntryType{Burn: &BurnEntry{WitholdBurnProceeds: true}}.WitholdsBurnProceeds())
	assert.False(t, EntryType{Burn: &BurnEntry{}}.WitholdsBurnProceeds())
	assert.False(t, EntryType{Spend: &SpendEntry{}}.WitholdsBurnProceeds())
}
