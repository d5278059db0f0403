package dto

import "time"

type LogOnResponse struct {
	JWT         string `json:"jwt"`
	CitizenID   string `json:"citizen_id"`
	CitizenName string `json:"citizen_name"`
}

type CitizenResponse struct {
	ID          string    `json:"id"`
	Account     string    `json:"account"`
	DisplayName string    `json:"display_name,omitempty"`
	RealName    string    `json:"real_name,omitempty"`
	ProfileURL  string    `json:"profile_url"`
	JoinedOn    time.Time `json:"joined_on"`
	LastSeenOn  time.Time `json:"last_seen_on"`
}
