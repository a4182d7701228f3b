package cryptox_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/varunai/backend/pkg/cryptox"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "password123", hash)

	require.NoError(t, cryptox.VerifyPassword("password123", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("password124", hash), cryptox.ErrMismatch)
	require.ErrorIs(t, cryptox.VerifyPassword("", hash), cryptox.ErrMismatch)
}

func TestHashPasswordUsesConfiguredCost(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, cryptox.HashCost, cost)
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	t.Parallel()

	a, err := cryptox.HashPassword("password123")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("password123")
	require.NoError(t, err)

	// Different salts mean different hashes for the same input.
	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.VerifyPassword("password123", a))
	require.NoError(t, cryptox.VerifyPassword("password123", b))
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	err := cryptox.VerifyPassword("password123", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.NotErrorIs(t, err, cryptox.ErrMismatch)
}
