package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput marks adapter errors caused by caller-supplied data,
	// such as a malformed scenario file.
	ErrInvalidInput = errors.New("invalid input")
)
