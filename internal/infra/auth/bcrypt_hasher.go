// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"bcraftd/config"
	"bcraftd/internal/domain/service"
	"bcraftd/internal/errors"
)

// maxPasswordBytes is bcrypt's hard input limit. Bytes beyond it never
// influence the hash, so the plaintext is capped before hashing and before
// verification to keep the two sides consistent.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The cost factor comes from config; zero selects bcrypt's default.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(hashed), nil
}

// Verify compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))
	// err is nil if the password and hash match.
	return err == nil
}

// truncatePassword caps the plaintext at bcrypt's 72-byte input limit.
// If the cut lands inside a multi-byte character, the whole character is
// dropped so no partial rune is ever hashed. Passwords that differ only
// beyond the cap hash and verify identically.
func truncatePassword(password string) []byte {
	if len(password) <= maxPasswordBytes {
		return []byte(password)
	}

	cut := maxPasswordBytes
	for cut > 0 && !utf8.RuneStart(password[cut]) {
		cut--
	}

	return []byte(password[:cut])
}
