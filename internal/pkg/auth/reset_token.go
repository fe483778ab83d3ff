package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = 15 * time.Minute

// GenerateResetToken returns a random reset token and the SHA-256 hash that
// gets persisted. The plaintext token only ever travels in the reset email.
func GenerateResetToken() (token, tokenHash string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token = hex.EncodeToString(raw)
	return token, HashResetToken(token), nil
}

// HashResetToken hashes a plaintext reset token for storage or lookup.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
