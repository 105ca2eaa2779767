package entity

import (
	"time"

	"github.com/google/uuid"
)

// PendingVerification is a time-boxed, single-use token record linking
// to an unverified Account. The raw token only ever exists in the
// outbound email; the record stores its bcrypt hash.
//
// At most one active record exists per account. The record is destroyed
// when consumed (successful verification) or found expired, and expiry
// cleanup cascades to delete the unverified account it references.
type PendingVerification struct {
	ID        uuid.UUID // The unique identifier for this verification record.
	AccountID uuid.UUID // Back-reference to the account awaiting verification.
	TokenHash string    // bcrypt hash of the raw verification token.
	CreatedAt time.Time // When the token was issued.
	ExpiresAt time.Time // CreatedAt plus the verification window.
}

// Expired reports whether the verification window has closed at the
// given instant.
func (v *PendingVerification) Expired(now time.Time) bool {
	return v.ExpiresAt.Before(now)
}
