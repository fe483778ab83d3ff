package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axela/cetpro-backend/internal/pkg/apperrors"
	"github.com/axela/cetpro-backend/internal/pkg/auth"
)

func TestVerifyPassword(t *testing.T) {
	hashed, err := auth.HashPassword("secreto123")
	require.NoError(t, err)

	assert.NoError(t, verifyPassword(hashed, "secreto123"))
	assert.ErrorIs(t, verifyPassword(hashed, "secreto124"), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, verifyPassword("", "secreto123"), apperrors.ErrInvalidCredentials)
}
