package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It lets the use case layer compose multi-step writes without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// AccountRepo returns an AccountRepository bound to the current transaction.
	AccountRepo() AccountRepository

	// VerificationRepo returns a VerificationRepository bound to the current transaction.
	VerificationRepo() VerificationRepository
}
