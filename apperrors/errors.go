package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Repository-level errors
var (
	ErrNotFound = errors.New("resource not found")
)

// Authorization errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("user not granted")
)

// Account errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports the request fields that failed validation.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// AsValidation unwraps err into a *ValidationError when possible.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
