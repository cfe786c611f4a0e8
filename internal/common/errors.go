// Package common defines shared constants and sentinel errors used across
// the blog backend. Callers should use errors.Is / errors.As to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors. Login failures are deliberately not split into
	// "no such user" / "wrong password" to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrMissingCredential  = errors.New("authentication required")

	// Token lifecycle errors.
	ErrTokenMalformed   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")

	// A token can outlive its user; resolution then fails with this.
	ErrUserNotFound = errors.New("user not found")

	// Ownership errors.
	ErrOwnershipDenied = errors.New("ownership denied")
)

// ValidationError reports a single invalid or missing payload field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid field: " + e.Field
}

// NewValidationError builds a ValidationError for the given field name.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
