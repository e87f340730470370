package booking

import "errors"

// Validation errors returned by Reserve.  Each maps to a distinct
// user-facing message at the handler boundary.  Storage-level outcomes
// (seat conflict, unknown id/ticket) reuse the repository sentinels.
var (
	// ErrInvalidInput signals that the requested row or column did not
	// parse as an integer.
	ErrInvalidInput = errors.New("row and column must be numbers")

	// ErrMissingName signals that the first or last name was empty
	// after trimming.
	ErrMissingName = errors.New("first and last name are required")

	// ErrOutOfRange signals coordinates outside the 12x4 cabin.
	ErrOutOfRange = errors.New("seat is outside the cabin")
)
