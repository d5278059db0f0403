package citizen

import (
	"time"

	"jobboard/internal/domain/ids"
)

// Citizen is a registered job seeker. The record is created on first
// successful log-on; DisplayName and LastSeenOn are refreshed on every
// subsequent log-on, RealName is set by the user.
type Citizen struct {
	ID          ids.CitizenID
	Account     string
	DisplayName string
	RealName    string
	ProfileURL  string
	JoinedOn    time.Time
	LastSeenOn  time.Time
}

// Name resolves the displayable name: real name, then display name, then the
// external account handle. First non-blank wins.
func (c Citizen) Name() string {
	if c.RealName != "" {
		return c.RealName
	}
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Account
}

// Continent is a static reference row; the seven rows are seeded once and
// read-only afterwards.
type Continent struct {
	ID   ids.ContinentID
	Name string
}
