package profile

import (
	"time"

	"jobboard/internal/domain/ids"
)

// Profile is a citizen's employment-seeking record, at most one per citizen.
// It is replaced wholesale on every save; there are no partial-field updates.
type Profile struct {
	CitizenID         ids.CitizenID
	SeekingEmployment bool
	IsPublic          bool
	ContinentID       ids.ContinentID
	Region            string
	RemoteWork        bool
	FullTime          bool
	Biography         string
	Experience        string
	LastUpdatedOn     time.Time
}

// Skill is a free-text capability entry owned by a citizen. Skills are only
// ever written as a side effect of a profile save.
type Skill struct {
	ID          ids.SkillID
	CitizenID   ids.CitizenID
	Description string
	Notes       string
}
