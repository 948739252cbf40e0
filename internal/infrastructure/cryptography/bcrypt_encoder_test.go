//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/pkg/testutil"
	"golang.org/x/crypto/bcrypt"
)

func setupEncoder(t *testing.T) accounts.PasswordEncoder {
	t.Helper()
	encoder, err := NewBcryptEncoder(accounts.BcryptCost, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return encoder
}

func TestBcryptEncoder(t *testing.T) {
	encoder := setupEncoder(t)

	t.Run("Encode and Matches", func(t *testing.T) {
		hash, err := encoder.Encode("a-long-enough-password")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, accounts.BcryptCost, cost)

		assert.True(t, encoder.Matches("a-long-enough-password", hash))
		assert.False(t, encoder.Matches("another-password", hash))
	})

	t.Run("Encode salts every hash", func(t *testing.T) {
		first, err := encoder.Encode("a-long-enough-password")
		require.NoError(t, err)
		second, err := encoder.Encode("a-long-enough-password")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Matches malformed hash", func(t *testing.T) {
		assert.False(t, encoder.Matches("a-long-enough-password", "not-a-hash"))
	})

	t.Run("Encode long password", func(t *testing.T) {
		long := strings.Repeat("x", 100)
		hash, err := encoder.Encode(long)
		require.NoError(t, err)

		assert.True(t, encoder.Matches(long, hash))
		// bytes beyond the 72nd do not contribute to the hash
		assert.True(t, encoder.Matches(strings.Repeat("x", 72)+"different tail", hash))
		assert.False(t, encoder.Matches(strings.Repeat("x", 71), hash))
	})
}

func TestNewBcryptEncoder_InvalidCost(t *testing.T) {
	_, err := NewBcryptEncoder(99, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
