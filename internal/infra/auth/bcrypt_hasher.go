// Package auth provides concrete implementations for credential-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"enroll/config"
	"enroll/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher
// interface using bcrypt. The same hasher covers passwords and
// verification tokens.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost factor
// comes from configuration; zero or below falls back to bcrypt's default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
// Useful in tests, where a low cost keeps hashing fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext secret using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)

	return string(bytes), err
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(plaintext, hash string) bool {
	// err is nil if the plaintext and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
