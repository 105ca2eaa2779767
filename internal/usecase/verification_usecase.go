package usecase

import (
	"context"

	"enroll/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationUsecase defines the interface for the email verification flow.
type VerificationUsecase interface {
	// IssueToken mints a fresh single-use token for the account, stores its
	// hash with an expiry and emails the verification link. The raw token
	// never touches storage.
	IssueToken(ctx context.Context, account *entity.Account) error
	// Verify consumes the pending token for the account. Expired tokens
	// remove both the pending record and the unverified account so the
	// email address can sign up again.
	Verify(ctx context.Context, accountID uuid.UUID, rawToken string) error
	// CleanupExpired removes a batch of expired pending verifications along
	// with their never-verified accounts. It returns how many were removed.
	CleanupExpired(ctx context.Context) (int, error)
}
