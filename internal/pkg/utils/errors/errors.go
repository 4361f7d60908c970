// Package errors provides error constructors and prefixing helpers
// used across the library instead of the standard "errors" and "fmt" mix.
package errors

import (
	"errors"
	"fmt"
)

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// PrefixError adds a prefix to the error message, the original error stays unwrappable.
func PrefixError(err error, prefix string) error {
	if err == nil {
		panic("error cannot be nil")
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

func PrefixErrorf(err error, format string, a ...any) error {
	return PrefixError(err, fmt.Sprintf(format, a...))
}
