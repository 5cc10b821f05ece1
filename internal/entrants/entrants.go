package entrants

import (
	"encoding/binary"
	"fmt"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
)

// HeaderSize is the byte length of the packed {total, max} header that
// precedes the fixed-width entrant records.
const HeaderSize = 8

// Entrants is the ledger header. Total only ever grows, one increment per
// appended record, and never exceeds Max.
type Entrants struct {
	Total uint32
	Max   uint32
}

func decodeHeader(data []byte) (Entrants, error) {
	if len(data) < HeaderSize {
		return Entrants{}, fmt.Errorf("entrants data truncated: %d bytes", len(data))
	}
	return Entrants{
		Total: binary.LittleEndian.Uint32(data[0:4]),
		Max:   binary.LittleEndian.Uint32(data[4:8]),
	}, nil
}

func encodeHeader(data []byte, header Entrants) {
	binary.LittleEndian.PutUint32(data[0:4], header.Total)
	binary.LittleEndian.PutUint32(data[4:8], header.Max)
}

// EntrantAt reads the identity for one ticket index out of a packed ledger
// image. Used both against the live ledger and archived snapshots.
func EntrantAt(data []byte, index uint32) (identity.Identity, error) {
	header, err := decodeHeader(data)
	if err != nil {
		return identity.Zero, err
	}
	if index >= header.Total {
		return identity.Zero, fmt.Errorf("ticket index %d out of range, total %d", index, header.Total)
	}
	offset := HeaderSize + int(index)*identity.Size
	return identity.FromBytes(data[offset : offset+identity.Size])
}

// Header decodes just the {total, max} header of a packed ledger image.
func Header(data []byte) (Entrants, error) {
	return decodeHeader(data)
}

// CountFor counts how many tickets in a packed ledger image belong to one
// identity. Entrants are not deduplicated, a wallet with N tickets appears
// N times.
func CountFor(data []byte, entrant identity.Identity) (uint32, error) {
	header, err := decodeHeader(data)
	if err != nil {
		return 0, err
	}
	var count uint32
	for i := uint32(0); i < header.Total; i++ {
		offset := HeaderSize + int(i)*identity.Size
		candidate, err := identity.FromBytes(data[offset : offset+identity.Size])
		if err != nil {
			return 0, err
		}
		if candidate == entrant {
			count++
		}
	}
	return count, nil
}
