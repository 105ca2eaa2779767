package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixture struct {
	service        usecase.AccountUsecase
	accountRepo    *mockAccountRepo
	verificationUC *mockVerificationUsecase
	hasher         *stubHasher
}

func newAccountServiceFixture(t *testing.T) *accountServiceFixture {
	t.Helper()

	accountRepo := &mockAccountRepo{}
	verificationUC := &mockVerificationUsecase{}
	hasher := &stubHasher{prefix: "hashed:"}
	txManager := &stubTxManager{factory: &stubRepoFactory{
		accountRepo:      accountRepo,
		verificationRepo: &mockVerificationRepo{},
	}}

	service := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		AccountRepo:    accountRepo,
		Hasher:         hasher,
		VerificationUC: verificationUC,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &accountServiceFixture{
		service:        service,
		accountRepo:    accountRepo,
		verificationUC: verificationUC,
		hasher:         hasher,
	}
}

func validSignUpInput() usecase.SignUpInput {
	return usecase.SignUpInput{
		Name:        "Jane Doe",
		Email:       "Jane.Doe@Example.com",
		Password:    "supersecret",
		DateOfBirth: "1990-04-15",
	}
}

func TestSignUpValidationOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*usecase.SignUpInput)
		wantErr error
	}{
		{"empty name", func(in *usecase.SignUpInput) { in.Name = "  " }, domainerrors.ErrEmptyInput},
		{"empty email", func(in *usecase.SignUpInput) { in.Email = "" }, domainerrors.ErrEmptyInput},
		{"empty password", func(in *usecase.SignUpInput) { in.Password = "" }, domainerrors.ErrEmptyInput},
		{"whitespace password", func(in *usecase.SignUpInput) { in.Password = "        " }, domainerrors.ErrEmptyInput},
		{"empty date of birth", func(in *usecase.SignUpInput) { in.DateOfBirth = "" }, domainerrors.ErrEmptyInput},
		{"digits in name", func(in *usecase.SignUpInput) { in.Name = "Jane 2" }, domainerrors.ErrInvalidName},
		{"bad email", func(in *usecase.SignUpInput) { in.Email = "not-an-email" }, domainerrors.ErrInvalidEmail},
		{"bad date", func(in *usecase.SignUpInput) { in.DateOfBirth = "15/04/1990" }, domainerrors.ErrInvalidDateOfBirth},
		{"short password", func(in *usecase.SignUpInput) { in.Password = "short" }, domainerrors.ErrPasswordTooShort},
		{
			"bad name reported before bad email",
			func(in *usecase.SignUpInput) {
				in.Name = "Jane 2"
				in.Email = "not-an-email"
			},
			domainerrors.ErrInvalidName,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fixture := newAccountServiceFixture(t)

			input := validSignUpInput()
			tc.mutate(&input)

			data, err := fixture.service.SignUp(context.Background(), input)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, data)
			fixture.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSignUpSuccess(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	generatedID := uuid.New()

	fixture.accountRepo.expectFindByEmailMiss()
	fixture.accountRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = generatedID
		}).
		Return(nil).Once()
	fixture.verificationUC.On("IssueToken", mock.Anything, mock.AnythingOfType("*entity.Account")).
		Return(nil).Once()

	data, err := fixture.service.SignUp(context.Background(), validSignUpInput())
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, generatedID.String(), data.ID)
	assert.Equal(t, "Jane Doe", data.Name)
	assert.Equal(t, "jane.doe@example.com", data.Email)
	assert.False(t, data.Verified)

	fixture.accountRepo.AssertExpectations(t)
	fixture.verificationUC.AssertExpectations(t)
}

func TestSignUpStoresHashedPassword(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)

	var stored *entity.Account
	fixture.accountRepo.expectFindByEmailMiss()
	fixture.accountRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.Account)
		}).
		Return(nil).Once()
	fixture.verificationUC.On("IssueToken", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fixture.service.SignUp(context.Background(), validSignUpInput())
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, "hashed:supersecret", stored.PasswordHash)
	assert.False(t, stored.Verified)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	fixture.accountRepo.On("FindByEmail", mock.Anything, "jane.doe@example.com").
		Return(&entity.Account{ID: uuid.New(), Email: "jane.doe@example.com"}, nil).Once()

	data, err := fixture.service.SignUp(context.Background(), validSignUpInput())
	require.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
	assert.Nil(t, data)
	fixture.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignUpHashFailure(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	fixture.hasher.hashErr = assert.AnError
	fixture.accountRepo.expectFindByEmailMiss()

	_, err := fixture.service.SignUp(context.Background(), validSignUpInput())
	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fixture.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignUpEmailDeliveryFailure(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	fixture.accountRepo.expectFindByEmailMiss()
	fixture.accountRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	fixture.verificationUC.On("IssueToken", mock.Anything, mock.Anything).
		Return(domainerrors.ErrNotificationFailed).Once()

	data, err := fixture.service.SignUp(context.Background(), validSignUpInput())
	require.ErrorIs(t, err, domainerrors.ErrNotificationFailed)
	assert.Nil(t, data)

	// The account row was committed before the send attempt.
	fixture.accountRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignInSuccess(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	fixture.accountRepo.On("FindByEmail", mock.Anything, "jane.doe@example.com").
		Return(&entity.Account{
			ID:           uuid.New(),
			Email:        "jane.doe@example.com",
			Name:         "Jane Doe",
			PasswordHash: "hashed:supersecret",
			Verified:     true,
		}, nil).Once()

	data, err := fixture.service.SignIn(context.Background(), usecase.SignInInput{
		Email:    "Jane.Doe@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "jane.doe@example.com", data.Email)
	assert.True(t, data.Verified)
}

func TestSignInEmptyCredentials(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)

	_, err := fixture.service.SignIn(context.Background(), usecase.SignInInput{Email: " ", Password: ""})
	require.ErrorIs(t, err, domainerrors.ErrEmptyCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	fixture.accountRepo.On("FindByEmail", mock.Anything, mock.Anything).
		Return(nil, repository.ErrAccountNotFound).Once()

	_, err := fixture.service.SignIn(context.Background(), usecase.SignInInput{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSignInUnverifiedAccount(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	fixture.accountRepo.On("FindByEmail", mock.Anything, mock.Anything).
		Return(&entity.Account{
			ID:           uuid.New(),
			PasswordHash: "hashed:supersecret",
			Verified:     false,
		}, nil).Once()

	_, err := fixture.service.SignIn(context.Background(), usecase.SignInInput{
		Email:    "jane.doe@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, domainerrors.ErrNotVerified)
}

func TestSignInWrongPassword(t *testing.T) {
	t.Parallel()

	fixture := newAccountServiceFixture(t)
	fixture.accountRepo.On("FindByEmail", mock.Anything, mock.Anything).
		Return(&entity.Account{
			ID:           uuid.New(),
			PasswordHash: "hashed:supersecret",
			Verified:     true,
		}, nil).Once()

	_, err := fixture.service.SignIn(context.Background(), usecase.SignInInput{
		Email:    "jane.doe@example.com",
		Password: "wrongpassword",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
