// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates an unexpected failure that is not caused by user input.
	ErrInternal = errors.New("internal")
	// ErrInvalidInput indicates that the shell input failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
