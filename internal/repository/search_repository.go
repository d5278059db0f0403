package repository

import (
	"context"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/profile"
)

// ProfileCriteria is the normalized authenticated-search criteria. Optional
// fields are nil/blank when unset; the raw tri-state remote-work literal has
// already been resolved by the caller.
type ProfileCriteria struct {
	ContinentID   *ids.ContinentID
	Skill         string
	BioExperience string
	RemoteWork    *bool
}

func (c ProfileCriteria) IsEmpty() bool {
	return c.ContinentID == nil && c.Skill == "" && c.BioExperience == "" && c.RemoteWork == nil
}

// PublicCriteria is the normalized anonymous-search criteria. There is no
// bio/experience filter: public results never expose biography text, so free
// text bio filtering is excluded from the public surface.
type PublicCriteria struct {
	ContinentID *ids.ContinentID
	Region      string
	Skill       string
	RemoteWork  *bool
}

func (c PublicCriteria) IsEmpty() bool {
	return c.ContinentID == nil && c.Region == "" && c.Skill == "" && c.RemoteWork == nil
}

type ProfileSearchRow struct {
	CitizenID         ids.CitizenID
	Account           string
	DisplayName       string
	RealName          string
	SeekingEmployment bool
	RemoteWork        bool
	FullTime          bool
	LastUpdatedOn     time.Time
}

// PublicSearchRow carries the citizen ID only so skills can be grouped onto
// the row; the projector drops it before anything leaves the service.
type PublicSearchRow struct {
	CitizenID  ids.CitizenID
	Continent  string
	Region     string
	RemoteWork bool
	Skills     []profile.Skill
}

type SearchRepository interface {
	SearchProfiles(ctx context.Context, c ProfileCriteria) ([]ProfileSearchRow, error)
	SearchPublicProfiles(ctx context.Context, c PublicCriteria) ([]PublicSearchRow, error)
}

type PostgresSearchRepository struct {
	db database.DB
}

func NewPostgresSearchRepository(db database.DB) *PostgresSearchRepository {
	return &PostgresSearchRepository{db: db}
}

func (r *PostgresSearchRepository) SearchProfiles(ctx context.Context, c ProfileCriteria) ([]ProfileSearchRow, error) {
	candidates, hasText, err := r.textCandidates(ctx, c.Skill, c.BioExperience)
	if err != nil {
		return nil, err
	}

	query, args := composeProfileSearch(c, candidates, hasText)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProfileSearchRow, 0)
	for rows.Next() {
		var (
			row ProfileSearchRow
			cid string
		)
		if err := rows.Scan(&cid, &row.Account, &row.DisplayName, &row.RealName,
			&row.SeekingEmployment, &row.RemoteWork, &row.FullTime, &row.LastUpdatedOn); err != nil {
			return nil, err
		}
		row.CitizenID = ids.CitizenID(cid)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSearchRepository) SearchPublicProfiles(ctx context.Context, c PublicCriteria) ([]PublicSearchRow, error) {
	var (
		candidates []string
		hasText    bool
	)
	if c.Skill != "" {
		skillSet, err := r.skillCandidates(ctx, c.Skill)
		if err != nil {
			return nil, err
		}
		candidates = unionCandidates(skillSet)
		hasText = true
	}

	query, args := composePublicSearch(c, candidates, hasText)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PublicSearchRow, 0)
	matched := make([]string, 0)
	for rows.Next() {
		var (
			row PublicSearchRow
			cid string
		)
		if err := rows.Scan(&cid, &row.Continent, &row.Region, &row.RemoteWork); err != nil {
			return nil, err
		}
		row.CitizenID = ids.CitizenID(cid)
		out = append(out, row)
		matched = append(matched, cid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byCitizen, err := r.skillsForCitizens(ctx, matched)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = byCitizen[out[i].CitizenID.String()]
	}
	return out, nil
}

// textCandidates computes one candidate citizen-ID set per supplied free-text
// filter and unions them (see unionCandidates).
func (r *PostgresSearchRepository) textCandidates(ctx context.Context, skillText, bioText string) ([]string, bool, error) {
	sets := make([][]string, 0, 2)
	if skillText != "" {
		set, err := r.skillCandidates(ctx, skillText)
		if err != nil {
			return nil, false, err
		}
		sets = append(sets, set)
	}
	if bioText != "" {
		set, err := r.bioCandidates(ctx, bioText)
		if err != nil {
			return nil, false, err
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, false, nil
	}
	return unionCandidates(sets...), true, nil
}

func (r *PostgresSearchRepository) skillCandidates(ctx context.Context, text string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT citizen_id FROM skills
		 WHERE LOWER(description) LIKE '%' || LOWER($1) || '%'`,
		text,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIDList(rows)
}

func (r *PostgresSearchRepository) bioCandidates(ctx context.Context, text string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT citizen_id FROM profiles
		 WHERE LOWER(biography) LIKE '%' || LOWER($1) || '%'
		    OR LOWER(COALESCE(experience, '')) LIKE '%' || LOWER($1) || '%'`,
		text,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIDList(rows)
}

func (r *PostgresSearchRepository) skillsForCitizens(ctx context.Context, citizenIDs []string) (map[string][]profile.Skill, error) {
	out := make(map[string][]profile.Skill, len(citizenIDs))
	if len(citizenIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, citizen_id, description, COALESCE(notes, '')
		 FROM skills
		 WHERE citizen_id = ANY($1::text[])`,
		citizenIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s   profile.Skill
			id  string
			cid string
		)
		if err := rows.Scan(&id, &cid, &s.Description, &s.Notes); err != nil {
			return nil, err
		}
		s.ID = ids.SkillID(id)
		s.CitizenID = ids.CitizenID(cid)
		out[cid] = append(out[cid], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanIDList(rows database.Rows) ([]string, error) {
	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
