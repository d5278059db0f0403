package usecase

import (
	"fmt"

	"jobboard/internal/domain/ids"
	"jobboard/internal/repository"
)

// Remote-work filter literals as they arrive from the query string.
const (
	RemoteWorkUnset = ""
	RemoteWorkYes   = "yes"
	RemoteWorkNo    = "no"
)

// ProfileSearchCriteria is the raw authenticated-search input. Fields are
// kept as submitted; blank/non-blank is the only classification applied
// before normalization.
type ProfileSearchCriteria struct {
	ContinentID   string
	Skill         string
	BioExperience string
	RemoteWork    string
}

func (c ProfileSearchCriteria) IsEmpty() bool {
	return c.ContinentID == "" && c.Skill == "" && c.BioExperience == "" && c.RemoteWork == ""
}

func (c ProfileSearchCriteria) normalize() (repository.ProfileCriteria, error) {
	continentID, err := normalizeContinent(c.ContinentID)
	if err != nil {
		return repository.ProfileCriteria{}, err
	}
	remote, err := normalizeRemoteWork(c.RemoteWork)
	if err != nil {
		return repository.ProfileCriteria{}, err
	}
	return repository.ProfileCriteria{
		ContinentID:   continentID,
		Skill:         c.Skill,
		BioExperience: c.BioExperience,
		RemoteWork:    remote,
	}, nil
}

// PublicSearchCriteria is the raw anonymous-search input. It has no
// bio/experience field: anonymized results make free-text bio filtering
// pointless on the public surface.
type PublicSearchCriteria struct {
	ContinentID string
	Region      string
	Skill       string
	RemoteWork  string
}

func (c PublicSearchCriteria) IsEmpty() bool {
	return c.ContinentID == "" && c.Region == "" && c.Skill == "" && c.RemoteWork == ""
}

func (c PublicSearchCriteria) normalize() (repository.PublicCriteria, error) {
	continentID, err := normalizeContinent(c.ContinentID)
	if err != nil {
		return repository.PublicCriteria{}, err
	}
	remote, err := normalizeRemoteWork(c.RemoteWork)
	if err != nil {
		return repository.PublicCriteria{}, err
	}
	return repository.PublicCriteria{
		ContinentID: continentID,
		Region:      c.Region,
		Skill:       c.Skill,
		RemoteWork:  remote,
	}, nil
}

func normalizeContinent(raw string) (*ids.ContinentID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := ids.ParseContinentID(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: continent id: %v", ErrInvalidInput, err)
	}
	return &id, nil
}

func normalizeRemoteWork(raw string) (*bool, error) {
	switch raw {
	case RemoteWorkUnset:
		return nil, nil
	case RemoteWorkYes:
		v := true
		return &v, nil
	case RemoteWorkNo:
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("%w: remote work must be blank, %q, or %q", ErrInvalidInput, RemoteWorkYes, RemoteWorkNo)
	}
}
