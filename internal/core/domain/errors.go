package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors form the service-wide error taxonomy. Handlers match
// them with errors.Is and map them to HTTP status codes; anything not in
// the taxonomy is treated as a storage failure (500).
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Validationf wraps ErrValidation with a field-level message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
