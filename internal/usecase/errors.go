package usecase

import "errors"

var (
	// ErrNotFound covers a referenced citizen, continent, or story that does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoProfile distinguishes "citizen exists but has no profile yet" from
	// ErrNotFound; handlers map it to an empty 204 response.
	ErrNoProfile = errors.New("no profile")
	// ErrInvalidInput covers malformed identifiers, unparseable tri-state
	// filters and missing required fields.
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
)
