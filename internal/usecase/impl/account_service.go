package impl

import (
	"context"
	"log/slog"

	deliverycontext "enroll/internal/delivery/context"
	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/domain/service"
	"enroll/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	hasher         service.PasswordHasher
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		hasher:         params.Hasher,
		verificationUC: params.VerificationUC,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete registration process. The account row is
// committed before the verification email goes out, so a send failure leaves
// the account behind in its unverified state.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.AccountData, error) {
	fields, err := validateSignUp(input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", fields.Email))

	var created *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, fields.Email)
		if err == nil {
			return domainerrors.ErrDuplicateAccount
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		hashed, err := srv.hasher.Hash(fields.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed
		}

		account := &entity.Account{
			Name:         fields.Name,
			Email:        fields.Email,
			PasswordHash: hashed,
			DateOfBirth:  fields.DateOfBirth,
			Verified:     false,
		}

		// The unique index on email still guards against a concurrent
		// signup slipping in between the lookup and the insert.
		if err := accountRepo.Create(ctx, account); err != nil {
			return err
		}
		created = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup rejected", slog.String("email", fields.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.verificationUC.IssueToken(ctx, created); err != nil {
		srv.log(ctx).Error("Failed to issue verification token",
			slog.Any("accountID", created.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("accountID", created.ID))

	return usecase.NewAccountData(created), nil
}

// SignIn checks credentials against the stored hash. Unknown emails and wrong
// passwords produce the same error so the response never reveals which one it
// was. Accounts that never completed verification are rejected outright.
func (srv *accountService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.AccountData, error) {
	email, password, err := validateSignIn(input)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !account.Verified {
		srv.log(ctx).Warn("Signin attempt on unverified account", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrNotVerified
	}

	if !srv.hasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Debug("Signin completed", slog.Any("accountID", account.ID))

	return usecase.NewAccountData(account), nil
}
