package dto

import "time"

type ProfileSearchResponse struct {
	CitizenID         string    `json:"citizen_id"`
	CitizenName       string    `json:"citizen_name"`
	SeekingEmployment bool      `json:"seeking_employment"`
	RemoteWork        bool      `json:"remote_work"`
	FullTime          bool      `json:"full_time"`
	LastUpdatedOn     time.Time `json:"last_updated_on"`
}

// PublicSearchResponse is intentionally anonymous: no citizen identifier,
// display name, or biography text ever appears here.
type PublicSearchResponse struct {
	Continent  string   `json:"continent"`
	Region     string   `json:"region"`
	RemoteWork bool     `json:"remote_work"`
	Skills     []string `json:"skills"`
}
