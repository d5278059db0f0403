package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/profile"

	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByCitizen(ctx context.Context, citizenID ids.CitizenID) (profile.Profile, error)
	Upsert(ctx context.Context, q database.Queryer, p profile.Profile) error
	Count(ctx context.Context) (int64, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByCitizen(ctx context.Context, citizenID ids.CitizenID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT citizen_id, seeking_employment, is_public, continent_id, region,
		        remote_work, full_time, biography, COALESCE(experience, ''), last_updated_on
		 FROM profiles
		 WHERE citizen_id = $1`,
		citizenID.String(),
	)

	var (
		p           profile.Profile
		cid         string
		continentID string
	)
	err := row.Scan(&cid, &p.SeekingEmployment, &p.IsPublic, &continentID, &p.Region,
		&p.RemoteWork, &p.FullTime, &p.Biography, &p.Experience, &p.LastUpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	p.CitizenID = ids.CitizenID(cid)
	p.ContinentID = ids.ContinentID(continentID)
	return p, nil
}

// Upsert replaces the profile wholesale; there are no partial-field updates.
// Runs on the caller's transaction during a profile save.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, q database.Queryer, p profile.Profile) error {
	_, err := q.Exec(ctx,
		`INSERT INTO profiles (citizen_id, seeking_employment, is_public, continent_id, region,
		                       remote_work, full_time, biography, experience, last_updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
		 ON CONFLICT (citizen_id) DO UPDATE SET
		   seeking_employment = EXCLUDED.seeking_employment,
		   is_public          = EXCLUDED.is_public,
		   continent_id       = EXCLUDED.continent_id,
		   region             = EXCLUDED.region,
		   remote_work        = EXCLUDED.remote_work,
		   full_time          = EXCLUDED.full_time,
		   biography          = EXCLUDED.biography,
		   experience         = EXCLUDED.experience,
		   last_updated_on    = EXCLUDED.last_updated_on`,
		p.CitizenID.String(), p.SeekingEmployment, p.IsPublic, p.ContinentID.String(), p.Region,
		p.RemoteWork, p.FullTime, p.Biography, p.Experience, p.LastUpdatedOn,
	)
	return err
}

func (r *PostgresProfileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
