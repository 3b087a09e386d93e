package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, KeySize)
}

func TestNewSealer_RejectsShortKey(t *testing.T) {
	_, err := NewSealer([]byte("too short"))
	assert.Error(t, err)
}

func TestSealOpen(t *testing.T) {
	s, err := NewSealer(testKey())
	require.NoError(t, err)

	sealed, err := s.Seal("First entry")
	require.NoError(t, err)
	assert.NotEqual(t, "First entry", sealed)

	again, err := s.Seal("First entry")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce should differ per seal")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "First entry", opened)
}

func TestSeal_EmptyString(t *testing.T) {
	s, err := NewSealer(testKey())
	require.NoError(t, err)

	sealed, err := s.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	opened, err := s.Open("")
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestOpen_Tampered(t *testing.T) {
	s, err := NewSealer(testKey())
	require.NoError(t, err)

	_, err = s.Open(base64.StdEncoding.EncodeToString([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	other, err := NewSealer(bytes.Repeat([]byte{0x07}, KeySize))
	require.NoError(t, err)
	sealed, err := other.Seal("calm")
	require.NoError(t, err)

	_, err = s.Open(sealed)
	assert.Error(t, err)
}

func TestParseKey(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(testKey())

	key, err := ParseKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, testKey(), key)

	_, err = ParseKey(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.Error(t, err)

	_, err = ParseKey("not base64 !!")
	assert.Error(t, err)
}
