package listing

import (
	"time"

	"jobboard/internal/domain/ids"
)

// Listing is a job opening posted by a citizen.
type Listing struct {
	ID          ids.ListingID
	CitizenID   ids.CitizenID
	CreatedOn   time.Time
	Title       string
	ContinentID ids.ContinentID
	Region      string
	RemoteWork  bool
	IsExpired   bool
	UpdatedOn   time.Time
	Text        string
}
