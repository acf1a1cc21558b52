package repository

import (
	"context"
	"errors"

	"hackmate/internal/database"
	"hackmate/internal/domain/team"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrTeamFull     = errors.New("team full")
	ErrAlreadyMember = errors.New("already a team member")
)

// TeamSnapshot is a team row joined with its current member count.
type TeamSnapshot struct {
	Team        team.Team
	MemberCount int
}

type TeamRepository interface {
	CreateTeam(ctx context.Context, t team.Team) error
	GetSnapshot(ctx context.Context, teamID uuid.UUID) (TeamSnapshot, error)
	ListOpenTeams(ctx context.Context, hackathonID uuid.UUID) ([]TeamSnapshot, error)
	ListMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)
	IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	HasTeamInHackathon(ctx context.Context, hackathonID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, teamID, userID uuid.UUID, role string) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
	SetRecruiting(ctx context.Context, teamID uuid.UUID, recruiting bool) error
}

type PostgresTeamRepository struct {
	db database.DB
}

func NewPostgresTeamRepository(db database.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

const teamSnapshotSelect = `
	SELECT t.id, t.hackathon_id, t.name, COALESCE(t.description, ''), t.leader_id,
	       t.max_members, t.recruiting, t.created_at, t.updated_at,
	       (SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = t.id)
	FROM teams t`

func (r *PostgresTeamRepository) CreateTeam(ctx context.Context, t team.Team) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO teams (id, hackathon_id, name, description, leader_id, max_members, recruiting)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.HackathonID, t.Name, t.Description, t.LeaderID, t.MaxMembers, t.Recruiting,
	); err != nil {
		return err
	}

	// The leader is always the first member.
	if _, err := tx.Exec(ctx,
		`INSERT INTO team_members (team_id, user_id, role) VALUES ($1, $2, 'leader')`,
		t.ID, t.LeaderID,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresTeamRepository) GetSnapshot(ctx context.Context, teamID uuid.UUID) (TeamSnapshot, error) {
	row := r.db.QueryRow(ctx, teamSnapshotSelect+` WHERE t.id = $1`, teamID)
	return scanTeamSnapshot(row)
}

func (r *PostgresTeamRepository) ListOpenTeams(ctx context.Context, hackathonID uuid.UUID) ([]TeamSnapshot, error) {
	rows, err := r.db.Query(ctx,
		teamSnapshotSelect+`
		 WHERE t.hackathon_id = $1 AND t.recruiting = TRUE
		 ORDER BY t.created_at ASC`,
		hackathonID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TeamSnapshot, 0)
	for rows.Next() {
		s, err := scanTeamSnapshotRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTeamRepository) ListMemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id FROM team_members WHERE team_id = $1 ORDER BY joined_at ASC`,
		teamID,
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

func (r *PostgresTeamRepository) IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`,
		teamID, userID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresTeamRepository) HasTeamInHackathon(ctx context.Context, hackathonID, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM team_members tm
			JOIN teams t ON t.id = tm.team_id
			WHERE t.hackathon_id = $1 AND tm.user_id = $2
		 )`,
		hackathonID, userID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// AddMember re-checks capacity inside the transaction so two concurrent joins
// cannot overfill a team.
func (r *PostgresTeamRepository) AddMember(ctx context.Context, teamID, userID uuid.UUID, role string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var maxMembers, current int
	row := tx.QueryRow(ctx,
		`SELECT t.max_members,
		        (SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = t.id)
		 FROM teams t WHERE t.id = $1 FOR UPDATE`,
		teamID,
	)
	if err := row.Scan(&maxMembers, &current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTeamNotFound
		}
		return err
	}
	if current >= maxMembers {
		return ErrTeamFull
	}

	affected, err := tx.Exec(ctx,
		`INSERT INTO team_members (team_id, user_id, role)
		 VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		teamID, userID, role,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyMember
	}
	return tx.Commit(ctx)
}

func (r *PostgresTeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *PostgresTeamRepository) SetRecruiting(ctx context.Context, teamID uuid.UUID, recruiting bool) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE teams SET recruiting = $1, updated_at = now() WHERE id = $2`,
		recruiting, teamID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func scanTeamSnapshot(row database.Row) (TeamSnapshot, error) {
	var s TeamSnapshot
	if err := row.Scan(
		&s.Team.ID, &s.Team.HackathonID, &s.Team.Name, &s.Team.Description, &s.Team.LeaderID,
		&s.Team.MaxMembers, &s.Team.Recruiting, &s.Team.CreatedAt, &s.Team.UpdatedAt,
		&s.MemberCount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TeamSnapshot{}, ErrTeamNotFound
		}
		return TeamSnapshot{}, err
	}
	return s, nil
}

func scanTeamSnapshotRows(rows database.Rows) (TeamSnapshot, error) {
	var s TeamSnapshot
	err := rows.Scan(
		&s.Team.ID, &s.Team.HackathonID, &s.Team.Name, &s.Team.Description, &s.Team.LeaderID,
		&s.Team.MaxMembers, &s.Team.Recruiting, &s.Team.CreatedAt, &s.Team.UpdatedAt,
		&s.MemberCount,
	)
	return s, err
}
