// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries a message safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError matches ErrDuplicate.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string        { return e.Message }
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// NotFoundError matches ErrNotFound. Missing and not-owned records produce the
// same error.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string        { return e.Message }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type AuthErrorKind int

const (
	AuthMissing AuthErrorKind = iota
	AuthInvalid
	AuthExpired
	AuthBadCredentials
)

// AuthError matches ErrUnauthorized.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

func (e *AuthError) Error() string        { return e.Message }
func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

// PartialPropagationError reports that the category side of a rename or
// delete was applied but the expense side was not completed. The propagation
// can be retried by its id.
type PartialPropagationError struct {
	Op            PropagationKind
	CategoryID    string
	PropagationID string
	Err           error
}

func (e *PartialPropagationError) Error() string {
	return fmt.Sprintf("%s of category %s partially applied (propagation %s): %v",
		e.Op, e.CategoryID, e.PropagationID, e.Err)
}

func (e *PartialPropagationError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPartialPropagation(err error) bool {
	var pe *PartialPropagationError
	return errors.As(err, &pe)
}
