// Package response defines the unified API response envelope.
package response

import (
	"github.com/labstack/echo/v4"
)

// Outcome values carried in the envelope's status field.
const (
	// StatusSuccess reports a completed operation.
	StatusSuccess = "SUCCESS"
	// StatusPending reports an account awaiting email verification.
	StatusPending = "PENDING"
	// StatusFailed reports a rejected or failed operation.
	StatusFailed = "FAILED"
)

// Response unified API response structure
type Response struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "TOKEN_EXPIRED"
	Details string `json:"details,omitempty"`
}

// Success writes a SUCCESS envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Pending writes a PENDING envelope for operations awaiting verification.
func Pending(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Status:  StatusPending,
		Message: message,
		Data:    data,
	})
}

// Failed writes a FAILED envelope.
func Failed(c echo.Context, statusCode int, errorCode, message, details string) error {
	return c.JSON(statusCode, Response{
		Status:  StatusFailed,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
