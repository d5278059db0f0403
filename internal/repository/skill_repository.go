package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/profile"
)

type SkillRepository interface {
	FindByCitizen(ctx context.Context, citizenID ids.CitizenID) ([]profile.Skill, error)
	CountByCitizen(ctx context.Context, citizenID ids.CitizenID) (int64, error)
	IDsByCitizen(ctx context.Context, q database.Queryer, citizenID ids.CitizenID) ([]ids.SkillID, error)
	Insert(ctx context.Context, q database.Queryer, s profile.Skill) error
	Update(ctx context.Context, q database.Queryer, s profile.Skill) error
	DeleteByIDs(ctx context.Context, q database.Queryer, citizenID ids.CitizenID, skillIDs []ids.SkillID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindByCitizen(ctx context.Context, citizenID ids.CitizenID) ([]profile.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, citizen_id, description, COALESCE(notes, '')
		 FROM skills
		 WHERE citizen_id = $1`,
		citizenID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Skill, 0)
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
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CountByCitizen(ctx context.Context, citizenID ids.CitizenID) (int64, error) {
	var n int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE citizen_id = $1`, citizenID.String())
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresSkillRepository) IDsByCitizen(ctx context.Context, q database.Queryer, citizenID ids.CitizenID) ([]ids.SkillID, error) {
	rows, err := q.Query(ctx, `SELECT id FROM skills WHERE citizen_id = $1`, citizenID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ids.SkillID, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, ids.SkillID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) Insert(ctx context.Context, q database.Queryer, s profile.Skill) error {
	_, err := q.Exec(ctx,
		`INSERT INTO skills (id, citizen_id, description, notes)
		 VALUES ($1, $2, $3, NULLIF($4, ''))`,
		s.ID.String(), s.CitizenID.String(), s.Description, s.Notes,
	)
	return err
}

func (r *PostgresSkillRepository) Update(ctx context.Context, q database.Queryer, s profile.Skill) error {
	_, err := q.Exec(ctx,
		`UPDATE skills SET description = $1, notes = NULLIF($2, '')
		 WHERE id = $3 AND citizen_id = $4`,
		s.Description, s.Notes, s.ID.String(), s.CitizenID.String(),
	)
	return err
}

func (r *PostgresSkillRepository) DeleteByIDs(ctx context.Context, q database.Queryer, citizenID ids.CitizenID, skillIDs []ids.SkillID) error {
	if len(skillIDs) == 0 {
		return nil
	}
	raw := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		raw = append(raw, id.String())
	}
	_, err := q.Exec(ctx,
		`DELETE FROM skills WHERE citizen_id = $1 AND id = ANY($2::text[])`,
		citizenID.String(), raw,
	)
	return err
}
