package repository

import (
	"context"
	"errors"
	"time"

	"hackmate/internal/database"
	"hackmate/internal/domain/hackathon"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrHackathonNotFound  = errors.New("hackathon not found")
	ErrAlreadyRegistered  = errors.New("already registered for hackathon")
)

type HackathonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (hackathon.Hackathon, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, limit, offset int) ([]hackathon.Hackathon, error)
	RegisterParticipant(ctx context.Context, hackathonID, userID uuid.UUID) error
	IsParticipant(ctx context.Context, hackathonID, userID uuid.UUID) (bool, error)
	// ListUnteamedParticipantIDs returns registered participants who are not
	// on any team of the hackathon. These are the candidates when a team
	// looks for members.
	ListUnteamedParticipantIDs(ctx context.Context, hackathonID uuid.UUID) ([]uuid.UUID, error)
	UpsertImported(ctx context.Context, h hackathon.Hackathon) error
}

type PostgresHackathonRepository struct {
	db database.DB
}

func NewPostgresHackathonRepository(db database.DB) *PostgresHackathonRepository {
	return &PostgresHackathonRepository{db: db}
}

func (r *PostgresHackathonRepository) GetByID(ctx context.Context, id uuid.UUID) (hackathon.Hackathon, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, slug, starts_at, ends_at, COALESCE(external_id, ''), COALESCE(source_url, ''), created_at, updated_at
		 FROM hackathons WHERE id = $1`,
		id,
	)

	var h hackathon.Hackathon
	if err := row.Scan(&h.ID, &h.Name, &h.Slug, &h.StartsAt, &h.EndsAt, &h.ExternalID, &h.SourceURL, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hackathon.Hackathon{}, ErrHackathonNotFound
		}
		return hackathon.Hackathon{}, err
	}
	return h, nil
}

func (r *PostgresHackathonRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hackathons WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresHackathonRepository) List(ctx context.Context, limit, offset int) ([]hackathon.Hackathon, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, starts_at, ends_at, COALESCE(external_id, ''), COALESCE(source_url, ''), created_at, updated_at
		 FROM hackathons
		 ORDER BY starts_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hackathon.Hackathon, 0)
	for rows.Next() {
		var h hackathon.Hackathon
		if err := rows.Scan(&h.ID, &h.Name, &h.Slug, &h.StartsAt, &h.EndsAt, &h.ExternalID, &h.SourceURL, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresHackathonRepository) RegisterParticipant(ctx context.Context, hackathonID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO hackathon_participants (hackathon_id, user_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		hackathonID, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyRegistered
	}
	return nil
}

func (r *PostgresHackathonRepository) IsParticipant(ctx context.Context, hackathonID, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM hackathon_participants WHERE hackathon_id = $1 AND user_id = $2)`,
		hackathonID, userID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresHackathonRepository) ListUnteamedParticipantIDs(ctx context.Context, hackathonID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT hp.user_id
		 FROM hackathon_participants hp
		 WHERE hp.hackathon_id = $1
		   AND NOT EXISTS (
			SELECT 1 FROM team_members tm
			JOIN teams t ON t.id = tm.team_id
			WHERE t.hackathon_id = hp.hackathon_id AND tm.user_id = hp.user_id
		   )
		 ORDER BY hp.registered_at ASC`,
		hackathonID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
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

// UpsertImported is used by the listing importer; rows are keyed by the
// external source id so re-imports update in place.
func (r *PostgresHackathonRepository) UpsertImported(ctx context.Context, h hackathon.Hackathon) error {
	if h.ExternalID == "" {
		return errors.New("imported hackathon requires external id")
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.StartsAt.IsZero() {
		h.StartsAt = time.Now().UTC()
	}
	if h.EndsAt.IsZero() {
		h.EndsAt = h.StartsAt.Add(48 * time.Hour)
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO hackathons (id, name, slug, starts_at, ends_at, external_id, source_url)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			starts_at = EXCLUDED.starts_at,
			ends_at = EXCLUDED.ends_at,
			source_url = EXCLUDED.source_url,
			updated_at = now()`,
		h.ID, h.Name, h.Slug, h.StartsAt, h.EndsAt, h.ExternalID, h.SourceURL,
	)
	return err
}
