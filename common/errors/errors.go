package errors

import (
	"github.com/pkg/errors"
)

type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

// Cause returns the wrapped error, for github.com/pkg/errors.Cause
func (e *ExitCodeError) Cause() error {
	return e.error
}

// ExitCodeOf finds the exit code for err: 0 for nil, the code of the first
// ExitCodeError in err's causes, or def if there is none.
func ExitCodeOf(err error, def ExitCode) ExitCode {
	if err == nil {
		return 0
	}
	found := Find(err, func(e error) bool {
		_, ok := e.(*ExitCodeError)
		return ok
	})
	if e, ok := found.(*ExitCodeError); ok {
		return e.GetExitCode()
	}
	return def
}

// Find returns the first of err and its causes (as github.com/pkg/errors.Cause
// follows them) that match accepts, or nil.
func Find(err error, match func(error) bool) error {
	for err != nil {
		if match(err) {
			return err
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}

// Wrap adds context to err, keeping its exit code reachable through Cause
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}
