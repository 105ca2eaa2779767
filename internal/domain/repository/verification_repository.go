package repository

import (
	"context"
	"errors"
	"time"

	"enroll/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVerificationNotFound is returned when no pending verification
// exists for an account, either because none was issued or because it
// has already been consumed.
var ErrVerificationNotFound = errors.New("pending verification not found")

// VerificationRepository defines the operations for pending-verification persistence.
type VerificationRepository interface {
	// Create persists a new pending verification. The unique index on
	// account_id guarantees at most one active record per account.
	Create(ctx context.Context, verification *entity.PendingVerification) error

	// FindByAccountID retrieves the active pending verification for an account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PendingVerification, error)

	// DeleteByAccountID removes the pending verification for an account.
	// Returns ErrVerificationNotFound when no record was deleted; the
	// first successful delete is the point of token consumption, so a
	// concurrent second attempt observes that error.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// FindExpired retrieves up to limit records whose window closed
	// before the given instant. Used by the background sweeper.
	FindExpired(ctx context.Context, before time.Time, limit int) ([]*entity.PendingVerification, error)
}
