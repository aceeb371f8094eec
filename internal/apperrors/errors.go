package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorage indicates that the backing store could not serve the request.
// It is an infrastructure failure, distinct from every business-rule error below.
var ErrStorage = errors.New("storage unavailable")

// Exchange taxonomy.
var (
	ErrRateNotFound       = fmt.Errorf("exchange rate: %w", ErrNotFound)
	ErrAccountNotFound    = fmt.Errorf("account: %w", ErrNotFound)
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrTransferFailed     = errors.New("transfer failed")
	ErrCompensationFailed = errors.New("compensation failed")
)

// AppError carries an HTTP-ish status code next to the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewStorageError wraps a backend failure so that it matches both ErrStorage and the cause.
func NewStorageError(op string, err error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: op,
		Err:     fmt.Errorf("%w: %w", ErrStorage, err),
	}
}
