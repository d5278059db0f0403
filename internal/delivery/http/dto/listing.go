package dto

import "time"

type ListingResponse struct {
	ID          string    `json:"id"`
	CitizenID   string    `json:"citizen_id"`
	CreatedOn   time.Time `json:"created_on"`
	Title       string    `json:"title"`
	ContinentID string    `json:"continent_id"`
	Region      string    `json:"region"`
	RemoteWork  bool      `json:"remote_work"`
	IsExpired   bool      `json:"is_expired"`
	UpdatedOn   time.Time `json:"updated_on"`
	Text        string    `json:"text"`
}
