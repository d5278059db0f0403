package repository

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/citizen"
	"jobboard/internal/domain/ids"

	"github.com/jackc/pgx/v5"
)

var ErrCitizenNotFound = errors.New("citizen not found")

type CitizenRepository interface {
	FindByID(ctx context.Context, id ids.CitizenID) (citizen.Citizen, error)
	FindByAccount(ctx context.Context, account string) (citizen.Citizen, error)
	Create(ctx context.Context, c citizen.Citizen) error
	RefreshOnLogOn(ctx context.Context, id ids.CitizenID, displayName string, lastSeenOn time.Time) error
	Delete(ctx context.Context, q database.Queryer, id ids.CitizenID) error
}

type PostgresCitizenRepository struct {
	db database.DB
}

func NewPostgresCitizenRepository(db database.DB) *PostgresCitizenRepository {
	return &PostgresCitizenRepository{db: db}
}

const citizenColumns = `id, account, COALESCE(display_name, ''), COALESCE(real_name, ''), profile_url, joined_on, last_seen_on`

func (r *PostgresCitizenRepository) FindByID(ctx context.Context, id ids.CitizenID) (citizen.Citizen, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+citizenColumns+` FROM citizens WHERE id = $1`,
		id.String(),
	)
	return scanCitizen(row)
}

func (r *PostgresCitizenRepository) FindByAccount(ctx context.Context, account string) (citizen.Citizen, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+citizenColumns+` FROM citizens WHERE account = $1`,
		account,
	)
	return scanCitizen(row)
}

func (r *PostgresCitizenRepository) Create(ctx context.Context, c citizen.Citizen) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO citizens (id, account, display_name, real_name, profile_url, joined_on, last_seen_on)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7)`,
		c.ID.String(), c.Account, c.DisplayName, c.RealName, c.ProfileURL, c.JoinedOn, c.LastSeenOn,
	)
	return err
}

func (r *PostgresCitizenRepository) RefreshOnLogOn(ctx context.Context, id ids.CitizenID, displayName string, lastSeenOn time.Time) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE citizens SET display_name = NULLIF($1, ''), last_seen_on = $2 WHERE id = $3`,
		displayName, lastSeenOn, id.String(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCitizenNotFound
	}
	return nil
}

// Delete removes the citizen row; profile, skills, listings and stories go
// with it via ON DELETE CASCADE. Runs on the caller's transaction.
func (r *PostgresCitizenRepository) Delete(ctx context.Context, q database.Queryer, id ids.CitizenID) error {
	affected, err := q.Exec(ctx, `DELETE FROM citizens WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCitizenNotFound
	}
	return nil
}

func scanCitizen(row database.Row) (citizen.Citizen, error) {
	var c citizen.Citizen
	var id string
	if err := row.Scan(&id, &c.Account, &c.DisplayName, &c.RealName, &c.ProfileURL, &c.JoinedOn, &c.LastSeenOn); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return citizen.Citizen{}, ErrCitizenNotFound
		}
		return citizen.Citizen{}, err
	}
	c.ID = ids.CitizenID(id)
	return c, nil
}
