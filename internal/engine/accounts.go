package engine

import (
	"crypto/sha256"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
)

// Raffle-owned holding accounts are derived from the raffle id and a role
// seed, the same way the original accounts hang off a program address. Nobody
// holds a key for them; only engine operations move value out.
func derivedAccount(raffleID, role string) identity.Identity {
	digest := sha256.Sum256([]byte("RAFFLE/" + raffleID + "/" + role))
	return identity.Identity(digest)
}

// proceedsVault accrues ticket payments until claim.
func proceedsVault(raffleID string) identity.Identity {
	return derivedAccount(raffleID, "vault")
}

// rentEscrow accrues the flat per-ticket fee that funds ledger storage.
func rentEscrow(raffleID string) identity.Identity {
	return derivedAccount(raffleID, "rent")
}

// prizeCustody holds the prize from creation to claim.
func prizeCustody(raffleID string) identity.Identity {
	return derivedAccount(raffleID, "prize")
}

// nftCustody holds NFTs paid in through transfer-entry raffles until the
// organizer collects them.
func nftCustody(raffleID string) identity.Identity {
	return derivedAccount(raffleID, "entries")
}
