// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"enroll/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (lowercased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The store's unique constraint on
	// email is the final arbiter for duplicate signups.
	Create(ctx context.Context, account *entity.Account) error

	// MarkVerified flips the verified flag for the given account.
	MarkVerified(ctx context.Context, id uuid.UUID) error

	// Delete removes an account. Used only for expiry cleanup of
	// never-verified accounts.
	Delete(ctx context.Context, id uuid.UUID) error
}
