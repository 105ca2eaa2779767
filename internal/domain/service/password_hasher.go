// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for one-way hashing and verification.
// It covers both passwords and verification tokens: tokens are secrets
// too, and the store only ever holds their hashes.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(plaintext string) (string, error)

	// Check compares a plaintext secret with a hash to see if they match.
	Check(plaintext, hash string) bool
}
