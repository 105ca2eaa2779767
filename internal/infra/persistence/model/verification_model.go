package model

import (
	"time"

	"github.com/google/uuid"
)

// PendingVerificationModel mirrors the 'pending_verifications' table.
// One pending record per account at any time, enforced by the unique index.
type PendingVerificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TokenHash string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PendingVerificationModel) TableName() string {
	return "pending_verifications"
}
