package resumes

import "errors"

var (
	// ErrInvalidInput indicates a request that cannot be turned into an edit.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSavedResume indicates that nothing is stored for the identity.
	ErrNoSavedResume = errors.New("no saved resume")

	// ErrLoadFailed indicates a stored document that could not be read back.
	// The session keeps its current document.
	ErrLoadFailed = errors.New("load failed")
)
