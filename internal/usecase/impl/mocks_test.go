package impl

import (
	"context"
	"time"

	"enroll/internal/domain/entity"
	"enroll/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockAccountRepo) MarkVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// expectFindByEmailMiss is shorthand for the common lookup miss expectation.
func (m *mockAccountRepo) expectFindByEmailMiss() {
	m.On("FindByEmail", mock.Anything, mock.AnythingOfType("string")).
		Return(nil, repository.ErrAccountNotFound).Once()
}

type mockVerificationRepo struct {
	mock.Mock
}

func (m *mockVerificationRepo) Create(ctx context.Context, verification *entity.PendingVerification) error {
	args := m.Called(ctx, verification)

	return args.Error(0)
}

func (m *mockVerificationRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PendingVerification, error) {
	args := m.Called(ctx, accountID)
	if pending, ok := args.Get(0).(*entity.PendingVerification); ok {
		return pending, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockVerificationRepo) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	args := m.Called(ctx, accountID)

	return args.Error(0)
}

func (m *mockVerificationRepo) FindExpired(ctx context.Context, before time.Time, limit int) ([]*entity.PendingVerification, error) {
	args := m.Called(ctx, before, limit)
	if pending, ok := args.Get(0).([]*entity.PendingVerification); ok {
		return pending, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendVerification(ctx context.Context, to, name, link string) error {
	args := m.Called(ctx, to, name, link)

	return args.Error(0)
}

type mockVerificationUsecase struct {
	mock.Mock
}

func (m *mockVerificationUsecase) IssueToken(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockVerificationUsecase) Verify(ctx context.Context, accountID uuid.UUID, rawToken string) error {
	args := m.Called(ctx, accountID, rawToken)

	return args.Error(0)
}

func (m *mockVerificationUsecase) CleanupExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

// stubHasher keeps hashing deterministic and cheap in tests.
type stubHasher struct {
	hashErr error
	prefix  string
}

func (s *stubHasher) Hash(plaintext string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}

	return s.prefix + plaintext, nil
}

func (s *stubHasher) Check(plaintext, hash string) bool {
	return s.prefix+plaintext == hash
}

// stubRepoFactory hands the same mock repos to every transaction.
type stubRepoFactory struct {
	accountRepo      *mockAccountRepo
	verificationRepo *mockVerificationRepo
}

func (f *stubRepoFactory) AccountRepo() repository.AccountRepository { return f.accountRepo }

func (f *stubRepoFactory) VerificationRepo() repository.VerificationRepository {
	return f.verificationRepo
}

// stubTxManager runs the callback inline against the stub factory.
type stubTxManager struct {
	factory  *stubRepoFactory
	beginErr error
}

func (tm *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.beginErr != nil {
		return tm.beginErr
	}

	return fn(tm.factory)
}
