// Package impl contains the implementation of the application's business logic.
package impl

import (
	"regexp"
	"strings"
	"time"

	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const (
	dateOfBirthLayout = "2006-01-02"
	minPasswordLength = 8
)

var nameExpr = regexp.MustCompile(`^[a-zA-Z ]*$`)

// validate is shared across services. validator.Validate is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// signUpFields holds the normalized signup values after validation.
type signUpFields struct {
	Name        string
	Email       string
	Password    string
	DateOfBirth time.Time
}

// validateSignUp checks the signup input one rule at a time so the caller
// always receives the first failing rule, in a fixed order: empty fields,
// name, email, date of birth, password length. The email is lowercased so
// lookups are case-insensitive.
func validateSignUp(input usecase.SignUpInput) (*signUpFields, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := strings.TrimSpace(input.Password)
	dateOfBirth := strings.TrimSpace(input.DateOfBirth)

	if name == "" || email == "" || password == "" || dateOfBirth == "" {
		return nil, domainerrors.ErrEmptyInput
	}
	if !nameExpr.MatchString(name) {
		return nil, domainerrors.ErrInvalidName
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, domainerrors.ErrInvalidEmail
	}

	dob, err := time.Parse(dateOfBirthLayout, dateOfBirth)
	if err != nil {
		return nil, domainerrors.ErrInvalidDateOfBirth
	}
	if len(password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	return &signUpFields{
		Name:        name,
		Email:       email,
		Password:    password,
		DateOfBirth: dob,
	}, nil
}

// validateSignIn normalizes credentials and rejects empty ones.
func validateSignIn(input usecase.SignInInput) (email, password string, err error) {
	email = strings.ToLower(strings.TrimSpace(input.Email))
	password = strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return "", "", domainerrors.ErrEmptyCredentials
	}

	return email, password, nil
}
