// Package errors is the error toolkit of the infrastructure layers: stdlib matching plus
// pkg/errors annotations, so wrapped errors keep the stack of their origin.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and a stack trace. It returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err. It returns nil when err is nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Trace renders err with its message chain and the deepest recorded stack trace.
func Trace(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
