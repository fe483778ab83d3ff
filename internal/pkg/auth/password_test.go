package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hashed)

	assert.True(t, CheckPassword(hashed, "secreto123"))
	assert.False(t, CheckPassword(hashed, "secreto124"))
	assert.False(t, CheckPassword("", "secreto123"))
}

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	first, err := HashPassword("secreto123")
	require.NoError(t, err)
	second, err := HashPassword("secreto123")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
