package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error kinds. Every failure surfaced by a service maps to exactly one.
const (
	KindAuth          = "auth_error"
	KindSessionAbsent = "session_absent"
	KindData          = "data_error"
	KindAssistant     = "assistant_error"
	KindValidation    = "validation_error"
)

type AppError struct {
	Kind     string
	Code     int
	Message  string
	Redirect string
	Err      error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// AsAppError unwraps err into an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NewAuthError(message string) *AppError {
	return &AppError{
		Kind:     KindAuth,
		Code:     fiber.StatusUnauthorized,
		Message:  message,
		Redirect: "/auth",
	}
}

// NewSessionAbsentError is the expected "not signed in" case. It carries the
// same redirect as an auth failure but is never logged as an error.
func NewSessionAbsentError() *AppError {
	return &AppError{
		Kind:     KindSessionAbsent,
		Code:     fiber.StatusUnauthorized,
		Message:  "No active session",
		Redirect: "/auth",
	}
}

func NewDataError(code int, message string, err error) *AppError {
	return &AppError{
		Kind:    KindData,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewNotFoundError(message string) *AppError {
	return NewDataError(fiber.StatusNotFound, message, nil)
}

func NewConflictError(message string) *AppError {
	return NewDataError(fiber.StatusConflict, message, nil)
}

func NewAssistantError(message string, err error) *AppError {
	return &AppError{
		Kind:    KindAssistant,
		Code:    fiber.StatusBadGateway,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    fiber.StatusUnprocessableEntity,
		Message: message,
	}
}
