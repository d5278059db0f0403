package repository

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/success"

	"github.com/jackc/pgx/v5"
)

var ErrStoryNotFound = errors.New("success story not found")

// StoryListRow is a success story joined with the displayable name of the
// citizen who recorded it.
type StoryListRow struct {
	ID          ids.SuccessID
	CitizenID   ids.CitizenID
	CitizenName string
	RecordedOn  time.Time
	FromHere    bool
	HasStory    bool
}

type SuccessRepository interface {
	FindByID(ctx context.Context, id ids.SuccessID) (success.Story, error)
	List(ctx context.Context) ([]StoryListRow, error)
	Create(ctx context.Context, s success.Story) error
	Update(ctx context.Context, s success.Story) error
}

type PostgresSuccessRepository struct {
	db database.DB
}

func NewPostgresSuccessRepository(db database.DB) *PostgresSuccessRepository {
	return &PostgresSuccessRepository{db: db}
}

func (r *PostgresSuccessRepository) FindByID(ctx context.Context, id ids.SuccessID) (success.Story, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, citizen_id, recorded_on, from_here, COALESCE(story, '')
		 FROM successes WHERE id = $1`,
		id.String(),
	)

	var (
		s   success.Story
		sid string
		cid string
	)
	if err := row.Scan(&sid, &cid, &s.RecordedOn, &s.FromHere, &s.Story); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return success.Story{}, ErrStoryNotFound
		}
		return success.Story{}, err
	}
	s.ID = ids.SuccessID(sid)
	s.CitizenID = ids.CitizenID(cid)
	return s, nil
}

func (r *PostgresSuccessRepository) List(ctx context.Context) ([]StoryListRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.citizen_id,
		        COALESCE(NULLIF(c.real_name, ''), NULLIF(c.display_name, ''), c.account),
		        s.recorded_on, s.from_here, s.story IS NOT NULL
		 FROM successes s
		 JOIN citizens c ON c.id = s.citizen_id
		 ORDER BY s.recorded_on DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoryListRow, 0)
	for rows.Next() {
		var (
			row StoryListRow
			sid string
			cid string
		)
		if err := rows.Scan(&sid, &cid, &row.CitizenName, &row.RecordedOn, &row.FromHere, &row.HasStory); err != nil {
			return nil, err
		}
		row.ID = ids.SuccessID(sid)
		row.CitizenID = ids.CitizenID(cid)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSuccessRepository) Create(ctx context.Context, s success.Story) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO successes (id, citizen_id, recorded_on, from_here, story)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
		s.ID.String(), s.CitizenID.String(), s.RecordedOn, s.FromHere, s.Story,
	)
	return err
}

func (r *PostgresSuccessRepository) Update(ctx context.Context, s success.Story) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE successes SET from_here = $1, story = NULLIF($2, '') WHERE id = $3`,
		s.FromHere, s.Story, s.ID.String(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStoryNotFound
	}
	return nil
}
