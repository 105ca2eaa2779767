package postgres

import (
	"context"
	"time"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationRepository implements the domain's VerificationRepository interface using GORM.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

// Create persists a new pending verification record.
func (repo *verificationRepository) Create(ctx context.Context, verification *entity.PendingVerification) error {
	verificationM := fromVerificationDomain(verification)

	if err := repo.db.WithContext(ctx).Create(verificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("verification already pending for account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pending verification")
	}

	verification.ID = verificationM.ID
	verification.CreatedAt = verificationM.CreatedAt

	return nil
}

// FindByAccountID retrieves the pending verification for the given account.
func (repo *verificationRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PendingVerification, error) {
	var verificationM model.PendingVerificationModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&verificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending verification")
	}

	return toVerificationDomain(&verificationM), nil
}

// DeleteByAccountID removes the pending verification for the given account.
// Zero affected rows reports ErrVerificationNotFound, which lets concurrent
// verify attempts detect that another request already consumed the record.
func (repo *verificationRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.PendingVerificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pending verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotFound
	}

	return nil
}

// FindExpired returns up to limit pending verifications whose expiry is before the given time.
func (repo *verificationRepository) FindExpired(ctx context.Context, before time.Time, limit int) ([]*entity.PendingVerification, error) {
	var models []*model.PendingVerificationModel
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Order("expires_at").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired verifications")
	}

	verifications := make([]*entity.PendingVerification, 0, len(models))
	for _, m := range models {
		verifications = append(verifications, toVerificationDomain(m))
	}

	return verifications, nil
}

// --- Mapper Functions ---

func toVerificationDomain(data *model.PendingVerificationModel) *entity.PendingVerification {
	if data == nil {
		return nil
	}

	return &entity.PendingVerification{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

func fromVerificationDomain(data *entity.PendingVerification) *model.PendingVerificationModel {
	if data == nil {
		return nil
	}

	return &model.PendingVerificationModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
