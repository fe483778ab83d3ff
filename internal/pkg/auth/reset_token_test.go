package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	token, tokenHash, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, token, 64) // 32 random bytes, hex encoded
	assert.NotEqual(t, token, tokenHash)
	assert.Equal(t, HashResetToken(token), tokenHash)
}

func TestGenerateResetTokenIsRandom(t *testing.T) {
	first, _, err := GenerateResetToken()
	require.NoError(t, err)
	second, _, err := GenerateResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashResetTokenIsDeterministic(t *testing.T) {
	assert.Equal(t, HashResetToken("abc"), HashResetToken("abc"))
	assert.NotEqual(t, HashResetToken("abc"), HashResetToken("abd"))
}
