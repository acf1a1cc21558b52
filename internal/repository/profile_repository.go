package repository

import (
	"context"
	"errors"

	"hackmate/internal/database"
	"hackmate/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository assembles the read-only candidate snapshot the matching
// engine consumes.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	GetProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]user.Profile, error)
	ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) error
	UpdateProfile(ctx context.Context, p user.Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT u.id, u.display_name,
		        COALESCE(u.experience_level, ''), COALESCE(u.timezone, ''),
		        u.work_start, u.work_end,
		        COALESCE(array_agg(us.skill ORDER BY us.skill) FILTER (WHERE us.skill IS NOT NULL), '{}')
		 FROM users u
		 LEFT JOIN user_skills us ON us.user_id = u.id
		 WHERE u.id = $1
		 GROUP BY u.id`,
		userID,
	)

	var p user.Profile
	if err := row.Scan(&p.UserID, &p.DisplayName, &p.ExperienceLevel, &p.Timezone, &p.WorkStart, &p.WorkEnd, &p.Skills); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) GetProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]user.Profile, error) {
	out := make(map[uuid.UUID]user.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.display_name,
		        COALESCE(u.experience_level, ''), COALESCE(u.timezone, ''),
		        u.work_start, u.work_end,
		        COALESCE(array_agg(us.skill ORDER BY us.skill) FILTER (WHERE us.skill IS NOT NULL), '{}')
		 FROM users u
		 LEFT JOIN user_skills us ON us.user_id = u.id
		 WHERE u.id = ANY($1)
		 GROUP BY u.id`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p user.Profile
		if err := rows.Scan(&p.UserID, &p.DisplayName, &p.ExperienceLevel, &p.Timezone, &p.WorkStart, &p.WorkEnd, &p.Skills); err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, s := range skills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, s,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) UpdateProfile(ctx context.Context, p user.Profile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET experience_level = $1, timezone = $2, work_start = $3, work_end = $4, updated_at = now()
		 WHERE id = $5`,
		p.ExperienceLevel, p.Timezone, p.WorkStart, p.WorkEnd, p.UserID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
