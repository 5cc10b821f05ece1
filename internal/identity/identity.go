package identity

import (
	"crypto/rand"
	"database/sql/driver"
	"fmt"

	"github.com/mr-tron/base58"
)

// Size is the fixed width of an identity record.
const Size = 32

// Identity is an opaque 32-byte wallet or asset reference. The engine never
// interprets its contents; it only compares and stores them.
type Identity [Size]byte

var Zero Identity

// Native is the sentinel asset for the chain's native currency.
var Native = mustParse("So11111111111111111111111111111111111111112")

func FromBytes(b []byte) (Identity, error) {
	var id Identity
	if len(b) != Size {
		return id, fmt.Errorf("identity must be %d bytes, got %d", Size, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func Parse(s string) (Identity, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Zero, fmt.Errorf("decode identity %q: %w", s, err)
	}
	return FromBytes(b)
}

func mustParse(s string) Identity {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// New returns a random identity. Used for test wallets and derived accounts.
func New() Identity {
	var id Identity
	if _, err := rand.Read(id[:]); err != nil {
		panic(err)
	}
	return id
}

func (id Identity) String() string {
	return base58.Encode(id[:])
}

func (id Identity) IsZero() bool {
	return id == Zero
}

func (id Identity) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, id[:])
	return out
}

func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value stores identities as base58 text columns.
func (id Identity) Value() (driver.Value, error) {
	return id.String(), nil
}

func (id *Identity) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into identity", src)
	}
}
