package services

import (
	"errors"
	"fmt"
)

// Domain failure kinds. Callers match them with errors.Is; storage failures
// are anything else and propagate untransformed.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrAccountPending     = errors.New("account pending approval")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrValidation         = errors.New("validation failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
