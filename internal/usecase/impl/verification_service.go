package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"enroll/config"
	deliverycontext "enroll/internal/delivery/context"
	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/domain/service"
	"enroll/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager        repository.TransactionManager
	verificationRepo repository.VerificationRepository
	hasher           service.PasswordHasher
	notifier         service.Notifier
	baseURL          string
	tokenTTL         time.Duration
	sweepBatchSize   int
	logger           *slog.Logger
	now              func() time.Time
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	VerificationRepo repository.VerificationRepository
	Hasher           service.PasswordHasher
	Notifier         service.Notifier
	Config           *config.Config
	Logger           *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	cfg := params.Config.Verification

	return &verificationService{
		txManager:        params.TxManager,
		verificationRepo: params.VerificationRepo,
		hasher:           params.Hasher,
		notifier:         params.Notifier,
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		tokenTTL:         cfg.TokenTTL,
		sweepBatchSize:   cfg.SweepBatchSize,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken mints a single-use token, persists its hash and emails the link.
// Only the hash is stored. The pending record is committed before the email
// goes out, so a send failure never rolls back the stored state.
func (srv *verificationService) IssueToken(ctx context.Context, account *entity.Account) error {
	rawToken := uuid.NewString() + account.ID.String()

	tokenHash, err := srv.hasher.Hash(rawToken)
	if err != nil {
		srv.log(ctx).Error("Failed to hash verification token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	pending := &entity.PendingVerification{
		AccountID: account.ID,
		TokenHash: tokenHash,
		ExpiresAt: srv.now().Add(srv.tokenTTL),
	}
	if err := srv.verificationRepo.Create(ctx, pending); err != nil {
		return errors.Wrap(err, "failed to store pending verification")
	}

	link := fmt.Sprintf("%s/account/verify/%s/%s", srv.baseURL, account.ID.String(), rawToken)
	if err := srv.notifier.SendVerification(ctx, account.Email, account.Name, link); err != nil {
		srv.log(ctx).Error("Failed to send verification email",
			slog.Any("accountID", account.ID), slog.Any("error", err))

		return domainerrors.ErrNotificationFailed
	}

	srv.log(ctx).Info("Verification email sent", slog.Any("accountID", account.ID))

	return nil
}

// Verify consumes the pending token for the account.
// The pending record's deletion is the consumption point: whichever request
// deletes it wins, and any concurrent attempt sees ErrTokenNotFound.
func (srv *verificationService) Verify(ctx context.Context, accountID uuid.UUID, rawToken string) error {
	pending, err := srv.verificationRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationNotFound) {
			return domainerrors.ErrTokenNotFound
		}

		return errors.Wrap(err, "failed to load pending verification")
	}

	if pending.Expired(srv.now()) {
		if err := srv.removeExpired(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to remove expired verification")
		}

		srv.log(ctx).Info("Expired verification removed", slog.Any("accountID", accountID))

		return domainerrors.ErrTokenExpired
	}

	// A mismatch leaves the pending record in place so the real link from
	// the inbox still works.
	if !srv.hasher.Check(rawToken, pending.TokenHash) {
		srv.log(ctx).Warn("Verification token mismatch", slog.Any("accountID", accountID))

		return domainerrors.ErrTokenMismatch
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().MarkVerified(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrTokenNotFound
			}

			return errors.Wrap(err, "failed to mark account verified")
		}

		if err := repoFactory.VerificationRepo().DeleteByAccountID(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrVerificationNotFound) {
				return domainerrors.ErrTokenNotFound
			}

			return errors.Wrap(err, "failed to consume pending verification")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account verified", slog.Any("accountID", accountID))

	return nil
}

// removeExpired deletes the expired pending record together with the account
// that never verified, freeing the email address for a fresh signup. The
// deletes commit even though the caller goes on to report the expiry.
func (srv *verificationService) removeExpired(ctx context.Context, accountID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.VerificationRepo().DeleteByAccountID(ctx, accountID); err != nil &&
			!errors.Is(err, repository.ErrVerificationNotFound) {
			return errors.Wrap(err, "failed to delete pending verification")
		}

		accountRepo := repoFactory.AccountRepo()
		account, err := accountRepo.FindByID(ctx, accountID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		// A verified account keeps its row even if a stale pending record
		// somehow survived.
		if account.Verified {
			return nil
		}

		if err := accountRepo.Delete(ctx, accountID); err != nil &&
			!errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to delete unverified account")
		}

		return nil
	})
}

// CleanupExpired removes a batch of expired pending verifications and their
// never-verified accounts. Each pair is removed in its own transaction so one
// failure does not abort the whole sweep.
func (srv *verificationService) CleanupExpired(ctx context.Context) (int, error) {
	expired, err := srv.verificationRepo.FindExpired(ctx, srv.now(), srv.sweepBatchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list expired verifications")
	}

	removed := 0
	for _, pending := range expired {
		if err := srv.removeExpired(ctx, pending.AccountID); err != nil {
			srv.log(ctx).Error("Failed to clean up expired verification",
				slog.Any("accountID", pending.AccountID), slog.Any("error", err))

			continue
		}
		removed++
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired verifications cleaned up", slog.Int("removed", removed))
	}

	return removed, nil
}
