package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptRejectsOutOfRangeCost(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost - 1)
	assert.Error(t, err)

	_, err = NewBcrypt(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestHashAndCompare(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("longenough")
	require.NoError(t, err)

	assert.NotEqual(t, "longenough", hash)
	assert.NoError(t, h.Compare(hash, "longenough"))
	assert.ErrorIs(t, h.Compare(hash, "wrongpassword"), bcrypt.ErrMismatchedHashAndPassword)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHashIsSalted(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := h.Hash("longenough")
	require.NoError(t, err)
	second, err := h.Hash("longenough")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashLongPassword(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	long := strings.Repeat("a", 80)
	hash, err := h.Hash(long)
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, long))
	// Bytes past the limit are not significant.
	assert.NoError(t, h.Compare(hash, strings.Repeat("a", MaxPasswordBytes)+"different"))
	assert.Error(t, h.Compare(hash, strings.Repeat("a", MaxPasswordBytes-1)))

	escaped := strings.Repeat("&amp;", 20)
	hash, err = h.Hash(escaped)
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, escaped))
}
