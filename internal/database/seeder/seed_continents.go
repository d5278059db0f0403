package seeder

import (
	"context"
	"fmt"

	"jobboard/internal/database"
)

type ContinentsSeeder struct{}

func (ContinentsSeeder) Name() string { return "continents" }

// Run inserts the static continent rows. Identifiers are fixed so reseeding
// an existing database never duplicates or renames anything.
func (ContinentsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "continents", "id", "name"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		ID   string
		Name string
	}{
		{ID: "continent-af", Name: "Africa"},
		{ID: "continent-an", Name: "Antarctica"},
		{ID: "continent-as", Name: "Asia"},
		{ID: "continent-eu", Name: "Europe"},
		{ID: "continent-na", Name: "North America"},
		{ID: "continent-oc", Name: "Oceania"},
		{ID: "continent-sa", Name: "South America"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO continents (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			it.ID,
			it.Name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
