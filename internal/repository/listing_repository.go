package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/listing"
)

type ListingRepository interface {
	FindByCitizen(ctx context.Context, citizenID ids.CitizenID) ([]listing.Listing, error)
}

type PostgresListingRepository struct {
	db database.DB
}

func NewPostgresListingRepository(db database.DB) *PostgresListingRepository {
	return &PostgresListingRepository{db: db}
}

func (r *PostgresListingRepository) FindByCitizen(ctx context.Context, citizenID ids.CitizenID) ([]listing.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, citizen_id, created_on, title, continent_id, region,
		        remote_work, is_expired, updated_on, text
		 FROM listings
		 WHERE citizen_id = $1
		 ORDER BY created_on DESC`,
		citizenID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]listing.Listing, 0)
	for rows.Next() {
		var (
			l           listing.Listing
			id          string
			cid         string
			continentID string
		)
		if err := rows.Scan(&id, &cid, &l.CreatedOn, &l.Title, &continentID, &l.Region,
			&l.RemoteWork, &l.IsExpired, &l.UpdatedOn, &l.Text); err != nil {
			return nil, err
		}
		l.ID = ids.ListingID(id)
		l.CitizenID = ids.CitizenID(cid)
		l.ContinentID = ids.ContinentID(continentID)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
