package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/profile"
	"jobboard/internal/repository"
)

const publicSearchCacheTTL = 2 * time.Minute

// ProfileSearchResult is one authenticated-search match. CitizenName applies
// the display-name fallback chain (real name, display name, account handle).
type ProfileSearchResult struct {
	CitizenID         ids.CitizenID
	CitizenName       string
	SeekingEmployment bool
	RemoteWork        bool
	FullTime          bool
	LastUpdatedOn     time.Time
}

// PublicSearchResult is one anonymous-search match. It carries no citizen
// identity and no biography text.
type PublicSearchResult struct {
	Continent  string   `json:"continent"`
	Region     string   `json:"region"`
	RemoteWork bool     `json:"remote_work"`
	Skills     []string `json:"skills"`
}

type SearchUsecase interface {
	SearchProfiles(ctx context.Context, c ProfileSearchCriteria) ([]ProfileSearchResult, error)
	SearchPublicProfiles(ctx context.Context, c PublicSearchCriteria) ([]PublicSearchResult, error)
}

type Search struct {
	repo  repository.SearchRepository
	cache Cache
}

func NewSearchUsecase(repo repository.SearchRepository, cache Cache) *Search {
	return &Search{repo: repo, cache: cache}
}

func (s *Search) SearchProfiles(ctx context.Context, c ProfileSearchCriteria) ([]ProfileSearchResult, error) {
	criteria, err := c.normalize()
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.SearchProfiles(ctx, criteria)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ProfileSearchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectProfileRow(row))
	}
	return out, nil
}

func (s *Search) SearchPublicProfiles(ctx context.Context, c PublicSearchCriteria) ([]PublicSearchResult, error) {
	criteria, err := c.normalize()
	if err != nil {
		return nil, err
	}

	key := publicSearchCacheKey(c)
	if s.cache != nil {
		var cached []PublicSearchResult
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := s.repo.SearchPublicProfiles(ctx, criteria)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]PublicSearchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectPublicRow(row))
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, publicSearchCacheTTL)
	}
	return out, nil
}

func projectProfileRow(row repository.ProfileSearchRow) ProfileSearchResult {
	return ProfileSearchResult{
		CitizenID:         row.CitizenID,
		CitizenName:       citizenName(row.RealName, row.DisplayName, row.Account),
		SeekingEmployment: row.SeekingEmployment,
		RemoteWork:        row.RemoteWork,
		FullTime:          row.FullTime,
		LastUpdatedOn:     row.LastUpdatedOn,
	}
}

func projectPublicRow(row repository.PublicSearchRow) PublicSearchResult {
	skills := make([]string, 0, len(row.Skills))
	for _, s := range row.Skills {
		skills = append(skills, formatSkill(s))
	}
	return PublicSearchResult{
		Continent:  row.Continent,
		Region:     row.Region,
		RemoteWork: row.RemoteWork,
		Skills:     skills,
	}
}

func citizenName(realName, displayName, account string) string {
	if realName != "" {
		return realName
	}
	if displayName != "" {
		return displayName
	}
	return account
}

func formatSkill(s profile.Skill) string {
	if s.Notes == "" {
		return s.Description
	}
	return fmt.Sprintf("%s (%s)", s.Description, s.Notes)
}

func publicSearchCacheKey(c PublicSearchCriteria) string {
	return strings.Join([]string{
		"search:public",
		c.ContinentID,
		strings.ToLower(c.Region),
		strings.ToLower(c.Skill),
		c.RemoteWork,
	}, ":")
}

var _ SearchUsecase = (*Search)(nil)
