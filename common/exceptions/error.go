// Package exceptions builds wrapped errors.
package exceptions

import (
	"errors"
	"fmt"
)

type causeError struct {
	message string
	cause   error
}

func (e *causeError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *causeError) Unwrap() error {
	return e.cause
}

// New joins message with fmt.Sprint.
func New(message ...any) error {
	return errors.New(fmt.Sprint(message...))
}

// Cause prefixes cause with message. The result unwraps to cause.
func Cause(cause error, message ...any) error {
	return &causeError{fmt.Sprint(message...), cause}
}
