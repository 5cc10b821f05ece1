package raffle

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// ExpandRandomness hashes the raw oracle seed with Keccak-256 and folds the
// first four digest bytes into a little-endian u32.
func ExpandRandomness(randomness []byte) uint32 {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(randomness)
	digest := hasher.Sum(nil)

	return binary.LittleEndian.Uint32(digest[0:4])
}

// WinnerIndex maps a seed to a 0-based ticket index. The modulo bias against
// small totals is an accepted trade-off.
func WinnerIndex(randomness []byte, total uint32) uint32 {
	return ExpandRandomness(randomness) % total
}
