package apperrors

import "errors"

// Terminal, request-scoped outcomes. Controllers map these to HTTP statuses;
// nothing here is ever retried.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked or expired")
	ErrEmailTaken         = errors.New("email already taken")
)

type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError carries field-level failures so the HTTP layer can surface
// them verbatim in the 422 envelope.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string { return "validation failed" }
