package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/citizen"
	"jobboard/internal/domain/ids"

	"github.com/jackc/pgx/v5"
)

var ErrContinentNotFound = errors.New("continent not found")

type ContinentRepository interface {
	All(ctx context.Context) ([]citizen.Continent, error)
	FindByID(ctx context.Context, id ids.ContinentID) (citizen.Continent, error)
}

type PostgresContinentRepository struct {
	db database.DB
}

func NewPostgresContinentRepository(db database.DB) *PostgresContinentRepository {
	return &PostgresContinentRepository{db: db}
}

func (r *PostgresContinentRepository) All(ctx context.Context) ([]citizen.Continent, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM continents ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]citizen.Continent, 0, 7)
	for rows.Next() {
		var (
			id   string
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out = append(out, citizen.Continent{ID: ids.ContinentID(id), Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresContinentRepository) FindByID(ctx context.Context, id ids.ContinentID) (citizen.Continent, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM continents WHERE id = $1`, id.String())

	var (
		rawID string
		name  string
	)
	if err := row.Scan(&rawID, &name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return citizen.Continent{}, ErrContinentNotFound
		}
		return citizen.Continent{}, err
	}
	return citizen.Continent{ID: ids.ContinentID(rawID), Name: name}, nil
}
