package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// minOwnerPasswordLength applies to passwords hashed for OWNER_PASSWORD_HASH.
const minOwnerPasswordLength = 10

// HashPassword hashes the owner's password for OWNER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	password = strings.TrimRight(password, "\r\n")
	if len(password) < minOwnerPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", minOwnerPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
// A malformed hash never matches.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewOAuthState returns a URL-safe random token of n bytes for the OAuth state parameter.
func NewOAuthState(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("state length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
