package dto

import "time"

// SkillForm is one submitted skill row. An ID starting with "new" asks the
// server to mint an identifier.
type SkillForm struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Notes       string `json:"notes,omitempty"`
}

// ProfileForm is the full profile-save payload; the persisted skill set is
// reconciled against Skills.
type ProfileForm struct {
	SeekingEmployment bool        `json:"seeking_employment"`
	IsPublic          bool        `json:"is_public"`
	ContinentID       string      `json:"continent_id"`
	Region            string      `json:"region"`
	RemoteWork        bool        `json:"remote_work"`
	FullTime          bool        `json:"full_time"`
	Biography         string      `json:"biography"`
	Experience        string      `json:"experience,omitempty"`
	Skills            []SkillForm `json:"skills"`
}

type SkillResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Notes       string `json:"notes,omitempty"`
}

type ProfileResponse struct {
	CitizenID         string          `json:"citizen_id"`
	SeekingEmployment bool            `json:"seeking_employment"`
	IsPublic          bool            `json:"is_public"`
	ContinentID       string          `json:"continent_id"`
	ContinentName     string          `json:"continent_name"`
	Region            string          `json:"region"`
	RemoteWork        bool            `json:"remote_work"`
	FullTime          bool            `json:"full_time"`
	Biography         string          `json:"biography"`
	BiographyHTML     string          `json:"biography_html,omitempty"`
	Experience        string          `json:"experience,omitempty"`
	ExperienceHTML    string          `json:"experience_html,omitempty"`
	LastUpdatedOn     time.Time       `json:"last_updated_on"`
	Skills            []SkillResponse `json:"skills"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
