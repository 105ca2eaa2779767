// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"enroll/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
// All fields arrive as raw request strings and are validated here, not in the
// delivery layer, so every entry point shares the same rules.
type SignUpInput struct {
	Name        string
	Email       string
	Password    string
	DateOfBirth string
}

// SignInInput defines the data required for an account holder to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AccountData is the outward-facing view of an account. It never carries the
// password hash.
type AccountData struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewAccountData maps a domain account to its outward-facing view.
func NewAccountData(account *entity.Account) *AccountData {
	if account == nil {
		return nil
	}

	return &AccountData{
		ID:          account.ID.String(),
		Name:        account.Name,
		Email:       account.Email,
		DateOfBirth: account.DateOfBirth,
		Verified:    account.Verified,
		CreatedAt:   account.CreatedAt,
	}
}

// AccountUsecase defines the interface for account registration and sign-in.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// SignUp validates the input, creates an unverified account and triggers
	// the verification email. The returned account is always unverified.
	SignUp(ctx context.Context, input SignUpInput) (*AccountData, error)
	// SignIn checks credentials and rejects accounts that never verified.
	SignIn(ctx context.Context, input SignInInput) (*AccountData, error)
}
