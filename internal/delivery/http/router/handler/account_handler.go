// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"enroll/internal/delivery/http/response"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/usecase"
	"enroll/web"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const verifiedPath = "/account/verified"

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC      usecase.AccountUsecase
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(
	accountUC usecase.AccountUsecase,
	verificationUC usecase.VerificationUsecase,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountUC:      accountUC,
		verificationUC: verificationUC,
		logger:         logger,
	}
}

// signUpRequest is the signup request body.
type signUpRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
}

// signInRequest is the signin request body.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles the account registration request. A successful signup leaves
// the account pending until the emailed link is followed.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.Failed(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid signup input", "")
	}

	data, err := h.accountUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Pending(c, http.StatusCreated, data, "Verification email sent")
}

// SignIn handles the sign-in request.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.Failed(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid signin input", "")
	}

	data, err := h.accountUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "Signin successful")
}

// Verify consumes the emailed verification link and redirects to the outcome
// page. The outcome travels in the query string because the browser lands
// here straight from the inbox.
func (h *AccountHandler) Verify(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return h.redirectOutcome(c, domainerrors.ErrTokenMismatch)
	}

	err = h.verificationUC.Verify(c.Request().Context(), accountID, c.Param("token"))

	return h.redirectOutcome(c, err)
}

// Verified serves the static outcome page the verification flow lands on.
func (h *AccountHandler) Verified(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, web.VerifiedPage())
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func (h *AccountHandler) redirectOutcome(c echo.Context, err error) error {
	if err == nil {
		return c.Redirect(http.StatusSeeOther, verifiedPath)
	}

	message := "Something went wrong while verifying your email."
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message()
	} else {
		h.logger.Error("Verification failed", slog.Any("error", err))
	}

	query := url.Values{}
	query.Set("error", "true")
	query.Set("message", message)

	return c.Redirect(http.StatusSeeOther, verifiedPath+"?"+query.Encode())
}
