package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	id := New()
	parsed, err := Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse("not-base58-0OIl")
	assert.Error(t, err)

	// valid base58, wrong length
	_, err = Parse("abc")
	assert.Error(t, err)
}

func TestFromBytes(t *testing.T) {
	raw := make([]byte, Size)
	raw[0] = 0xff
	id, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Bytes())

	_, err = FromBytes(raw[:16])
	assert.Error(t, err)
}

func TestNative(t *testing.T) {
	assert.Equal(t, "So11111111111111111111111111111111111111112", Native.String())
	assert.False(t, Native.IsZero())
	assert.True(t, Zero.IsZero())
}

func TestTextMarshalling(t *testing.T) {
	id := New()
	text, err := id.MarshalText()
	require.NoError(t, err)

	var decoded Identity
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, id, decoded)
}

func TestSQLValueScan(t *testing.T) {
	id := New()
	value, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, id.String(), value)

	var scanned Identity
	require.NoError(t, scanned.Scan(id.String()))
	assert.Equal(t, id, scanned)

	require.NoError(t, scanned.Scan([]byte(id.String())))
	assert.Equal(t, id, scanned)

	assert.Error(t, scanned.Scan(42))
}
