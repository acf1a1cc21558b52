package repository

import (
	"context"
	"time"

	"hackmate/internal/database"

	"github.com/google/uuid"
)

type MatchUpsert struct {
	UserID       uuid.UUID
	TeamID       uuid.UUID
	HackathonID  uuid.UUID
	OverallScore float64
	MatchedAt    time.Time
}

// MatchHistoryRepository keeps the latest computed score per (user, team)
// pair for analytics dashboards. Best-effort: the scoring path never fails
// because a history write does.
type MatchHistoryRepository interface {
	Upsert(ctx context.Context, m MatchUpsert) error
}

type PostgresMatchHistoryRepository struct {
	db database.DB
}

func NewPostgresMatchHistoryRepository(db database.DB) *PostgresMatchHistoryRepository {
	return &PostgresMatchHistoryRepository{db: db}
}

func (r *PostgresMatchHistoryRepository) Upsert(ctx context.Context, m MatchUpsert) error {
	if m.UserID == uuid.Nil || m.TeamID == uuid.Nil {
		return nil
	}
	if m.MatchedAt.IsZero() {
		m.MatchedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO team_matches (id, user_id, team_id, hackathon_id, overall_score, matched_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (user_id, team_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			matched_at = EXCLUDED.matched_at`,
		uuid.New(), m.UserID, m.TeamID, m.HackathonID, m.OverallScore, m.MatchedAt,
	)
	return err
}
