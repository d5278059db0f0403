package dto

import "time"

type StoryForm struct {
	ID       string `json:"id"`
	FromHere bool   `json:"from_here"`
	Story    string `json:"story,omitempty"`
}

type StoryResponse struct {
	ID         string    `json:"id"`
	CitizenID  string    `json:"citizen_id"`
	RecordedOn time.Time `json:"recorded_on"`
	FromHere   bool      `json:"from_here"`
	Story      string    `json:"story,omitempty"`
}

type StoryListItemResponse struct {
	ID          string    `json:"id"`
	CitizenID   string    `json:"citizen_id"`
	CitizenName string    `json:"citizen_name"`
	RecordedOn  time.Time `json:"recorded_on"`
	FromHere    bool      `json:"from_here"`
	HasStory    bool      `json:"has_story"`
}
