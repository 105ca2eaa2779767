// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity record. It is created unverified at
// signup and becomes verified exactly once, when its pending
// verification token is consumed.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account, generated by the database.
	Name         string    // The display name supplied at signup; letters and spaces only.
	Email        string    // The login identifier; unique across all accounts, stored lowercased.
	PasswordHash string    // The bcrypt hash of the password. The plaintext is never persisted.
	DateOfBirth  time.Time // The account holder's date of birth.
	Verified     bool      // False until the verification token is consumed.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
