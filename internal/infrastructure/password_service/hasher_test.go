package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	hash, err := h.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, h.ComparePasswordHash("secret1", hash))
	assert.Error(t, h.ComparePasswordHash("secret2", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	a, err := h.HashPassword("same")
	require.NoError(t, err)
	b, err := h.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCheckHash(t *testing.T) {
	h := NewHasher()
	digest := h.HashString("token-value")

	assert.Len(t, digest, 64)
	assert.True(t, h.CheckHash("token-value", digest))
	assert.False(t, h.CheckHash("other", digest))
}

func TestCheckHash_EmptyNeverMatches(t *testing.T) {
	h := NewHasher()

	assert.Equal(t, "", h.HashString(""))
	assert.False(t, h.CheckHash("", ""))
	assert.False(t, h.CheckHash("x", ""))
}
