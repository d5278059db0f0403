// Package ids defines the opaque short identifiers used across the job
// board. Each entity kind gets its own type so a skill ID can never be
// handed to a function expecting a citizen ID.
package ids

import (
	"errors"
	"fmt"
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const shortIDLength = 12

// Compiled once at startup; shared read-only state.
var validShortID = regexp.MustCompile(`^[A-Za-z0-9_-]{12}$`)

// ErrInvalidID reports a token that is not a well-formed short identifier.
// Callers at an input boundary must translate it into a validation error.
var ErrInvalidID = errors.New("invalid short id")

func newShortID() (string, error) {
	return gonanoid.New(shortIDLength)
}

func parseShortID(text string) (string, error) {
	if !validShortID.MatchString(text) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, text)
	}
	return text, nil
}

type CitizenID string

// NewCitizenID generates a random citizen ID. Uniqueness is enforced by the
// store's primary key, not at generation time.
func NewCitizenID() (CitizenID, error) {
	id, err := newShortID()
	return CitizenID(id), err
}

func ParseCitizenID(text string) (CitizenID, error) {
	id, err := parseShortID(text)
	return CitizenID(id), err
}

func (id CitizenID) String() string { return string(id) }

type ContinentID string

func NewContinentID() (ContinentID, error) {
	id, err := newShortID()
	return ContinentID(id), err
}

func ParseContinentID(text string) (ContinentID, error) {
	id, err := parseShortID(text)
	return ContinentID(id), err
}

func (id ContinentID) String() string { return string(id) }

type SkillID string

func NewSkillID() (SkillID, error) {
	id, err := newShortID()
	return SkillID(id), err
}

func ParseSkillID(text string) (SkillID, error) {
	id, err := parseShortID(text)
	return SkillID(id), err
}

func (id SkillID) String() string { return string(id) }

type ListingID string

func NewListingID() (ListingID, error) {
	id, err := newShortID()
	return ListingID(id), err
}

func ParseListingID(text string) (ListingID, error) {
	id, err := parseShortID(text)
	return ListingID(id), err
}

func (id ListingID) String() string { return string(id) }

type SuccessID string

func NewSuccessID() (SuccessID, error) {
	id, err := newShortID()
	return SuccessID(id), err
}

func ParseSuccessID(text string) (SuccessID, error) {
	id, err := parseShortID(text)
	return SuccessID(id), err
}

func (id SuccessID) String() string { return string(id) }
