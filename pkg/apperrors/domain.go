package apperrors

import (
	"net/http"
)

// Factories and predefined values for the marketplace domain.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository uniqueness violation into a conflict.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- auth ---

// ErrInvalidCredentials is returned on login for both unknown email and wrong
// password. The uniform message avoids leaking which accounts exist.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email is already registered",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid role for registration",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- orders ---

var ErrSelfOrder = New(
	CodeInvalidOperation,
	"order",
	"Cannot place an order with yourself",
	http.StatusBadRequest,
)

var ErrArtistRequired = New(
	CodeInvalidOperation,
	"order",
	"The selected user is not an artist",
	http.StatusBadRequest,
)

// --- uploads ---

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"Only image files are allowed",
	http.StatusUnsupportedMediaType,
)
