package raffle

import (
	"math"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
)

// UnboundedTickets marks a raffle with no ticket cap. The state machine treats
// it as never satisfying "total >= max".
const UnboundedTickets = math.MaxUint32

// MaxBasisPoints is the denominator for all percentage math.
const MaxBasisPoints = 10000

// TokenPrize awards a fungible amount; NftPrize awards a single asset.
type TokenPrize struct {
	Amount uint64 `json:"amount"`
}

type NftPrize struct{}

// PrizeType is a tagged variant: exactly one field is non-nil.
type PrizeType struct {
	Nft   *NftPrize   `json:"nft,omitempty"`
	Token *TokenPrize `json:"token,omitempty"`
}

func (p PrizeType) Valid() bool {
	return (p.Nft != nil) != (p.Token != nil)
}

// TokenPayment sells tickets for a fungible mint (the native currency when
// Mint == identity.Native). NftPayment consumes one NFT of a collection per
// ticket.
type TokenPayment struct {
	Mint        identity.Identity `json:"mint"`
	TicketPrice uint64            `json:"ticketPrice"`
}

type NftPayment struct {
	Collection identity.Identity `json:"collection"`
}

// PaymentType is a tagged variant: exactly one field is non-nil.
type PaymentType struct {
	Token *TokenPayment `json:"token,omitempty"`
	Nft   *NftPayment   `json:"nft,omitempty"`
}

func (p PaymentType) Valid() bool {
	return (p.Token != nil) != (p.Nft != nil)
}

func (p PaymentType) IsNative() bool {
	return p.Token != nil && p.Token.Mint == identity.Native
}

// SpendEntry keeps the payment as proceeds. BurnEntry destroys it, optionally
// crediting the burn's rent-reclaim value to the raffle vault. StakeEntry is
// reserved for stake-gated raffles linked through a raffler's staker app.
type SpendEntry struct{}

type BurnEntry struct {
	WitholdBurnProceeds bool `json:"witholdBurnProceeds"`
}

type StakeEntry struct {
	MinimumPeriod int64 `json:"minimumPeriod"`
}

// EntryType is a tagged variant: exactly one field is non-nil.
type EntryType struct {
	Spend *SpendEntry `json:"spend,omitempty"`
	Burn  *BurnEntry  `json:"burn,omitempty"`
	Stake *StakeEntry `json:"stake,omitempty"`
}

func (e EntryType) Valid() bool {
	count := 0
	if e.Spend != nil {
		count++
	}
	if e.Burn != nil {
		count++
	}
	if e.Stake != nil {
		count++
	}
	return count == 1
}

func (e EntryType) IsBurn() bool {
	return e.Burn != nil
}

func (e EntryType) WitholdsBurnProceeds() bool {
	return e.Burn != nil && e.Burn.WitholdBurnProceeds
}

// Raffler is an organizer's namespace for hosting raffles.
type Raffler struct {
	ID        string             `gorm:"primaryKey" json:"id"`
	Authority identity.Identity  `gorm:"uniqueIndex" json:"authority"`
	Slug      string             `gorm:"uniqueIndex" json:"slug"`
	Name      string             `json:"name"`
	Treasury  identity.Identity  `json:"treasury"`
	Staker    *identity.Identity `gorm:"serializer:json" json:"staker,omitempty"`
	IsActive  bool               `json:"isActive"`
}

// Raffle is one instance of a ticket sale plus prize draw. Everything except
// Randomness, Claimed and URI is immutable after creation.
type Raffle struct {
	ID              string             `gorm:"primaryKey" json:"id"`
	RafflerID       string             `gorm:"index" json:"rafflerId"`
	EntrantsID      string             `gorm:"uniqueIndex" json:"entrantsId"`
	Prize           identity.Identity  `json:"prize"`
	PrizeType       PrizeType          `gorm:"serializer:json" json:"prizeType"`
	PaymentType     PaymentType        `gorm:"serializer:json" json:"paymentType"`
	EntryType       EntryType          `gorm:"serializer:json" json:"entryType"`
	GatedCollection *identity.Identity `gorm:"serializer:json" json:"gatedCollection,omitempty"`
	StartTime       int64              `json:"startTime"`
	EndTime         int64              `json:"endTime"`
	Claimed         bool               `json:"claimed"`
	MaxEntrantPct   uint16             `json:"maxEntrantPct"`
	URI             string             `json:"uri"`
	Randomness      []byte             `json:"randomness,omitempty"`
}

// MaxTicketsPerEntrant applies the basis-point cap to a bounded raffle,
// rounding toward fewer allowed tickets.
func (r *Raffle) MaxTicketsPerEntrant(max uint32) uint32 {
	return uint32(uint64(max) * uint64(r.MaxEntrantPct) / MaxBasisPoints)
}

// ProgramConfig is the engine-wide fee configuration. Initialized once by the
// system admin and passed by handle into every operation that needs it.
type ProgramConfig struct {
	ID            uint              `gorm:"primaryKey" json:"-"`
	Admin         identity.Identity `json:"admin"`
	FeesWallet    identity.Identity `json:"feesWallet"`
	TicketFee     uint64            `json:"ticketFee"`
	ProceedsShare uint16            `json:"proceedsShare"`
}

// RandomnessRequest correlates a pending oracle round with its raffle.
type RandomnessRequest struct {
	Handle    string `gorm:"primaryKey" json:"handle"`
	RaffleID  string `gorm:"uniqueIndex" json:"raffleId"`
	CreatedAt int64  `json:"createdAt"`
	Settled   bool   `gorm:"index" json:"settled"`
}

// TicketReceipt reports a successful purchase.
type TicketReceipt struct {
	RaffleID   string            `json:"raffleId"`
	Buyer      identity.Identity `json:"buyer"`
	Quantity   uint32            `json:"quantity"`
	FirstIndex uint32            `json:"firstIndex"`
	Total      uint32            `json:"total"`
}
