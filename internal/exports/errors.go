package exports

import "errors"

var (
	// ErrNotFound indicates an export was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates the export belongs to another identity.
	ErrForbidden = errors.New("forbidden")
)
