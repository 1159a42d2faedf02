// Package apperr defines the error kinds callers can branch on.
package apperr

import (
	"errors"
	"fmt"
)

// The four caller-visible error kinds. Domain packages define specific
// sentinels wrapping one of these, so errors.Is matches both the specific
// error and its kind.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrInternal   = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
