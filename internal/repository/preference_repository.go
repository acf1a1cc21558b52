package repository

import (
	"context"
	"errors"

	"hackmate/internal/database"
	"hackmate/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PreferenceRepository stores team-matching preferences. Teams own a row;
// users may own a personal row a leaderless-preference team falls back to.
type PreferenceRepository interface {
	GetTeamPreferences(ctx context.Context, teamID uuid.UUID) (matching.TeamPreferences, bool, error)
	GetUserPreferences(ctx context.Context, userID uuid.UUID) (matching.TeamPreferences, bool, error)
	UpsertTeamPreferences(ctx context.Context, teamID uuid.UUID, prefs matching.TeamPreferences) error
}

type PostgresPreferenceRepository struct {
	db database.DB
}

func NewPostgresPreferenceRepository(db database.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

const preferenceColumns = `
	required_skills, preferred_skills,
	skill_weight, experience_weight, location_weight,
	min_experience, max_experience,
	preferred_timezones, location_flexible,
	work_start, work_end, preferred_team_size`

func (r *PostgresPreferenceRepository) GetTeamPreferences(ctx context.Context, teamID uuid.UUID) (matching.TeamPreferences, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+preferenceColumns+` FROM team_preferences WHERE team_id = $1`,
		teamID,
	)
	return scanPreferences(row)
}

func (r *PostgresPreferenceRepository) GetUserPreferences(ctx context.Context, userID uuid.UUID) (matching.TeamPreferences, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+preferenceColumns+` FROM user_preferences WHERE user_id = $1`,
		userID,
	)
	return scanPreferences(row)
}

func (r *PostgresPreferenceRepository) UpsertTeamPreferences(ctx context.Context, teamID uuid.UUID, p matching.TeamPreferences) error {
	var workStart, workEnd *string
	if p.WorkingHours != nil {
		workStart = &p.WorkingHours.Start
		workEnd = &p.WorkingHours.End
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO team_preferences (
			team_id,
			required_skills, preferred_skills,
			skill_weight, experience_weight, location_weight,
			min_experience, max_experience,
			preferred_timezones, location_flexible,
			work_start, work_end, preferred_team_size
		 ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		 ON CONFLICT (team_id) DO UPDATE SET
			required_skills = EXCLUDED.required_skills,
			preferred_skills = EXCLUDED.preferred_skills,
			skill_weight = EXCLUDED.skill_weight,
			experience_weight = EXCLUDED.experience_weight,
			location_weight = EXCLUDED.location_weight,
			min_experience = EXCLUDED.min_experience,
			max_experience = EXCLUDED.max_experience,
			preferred_timezones = EXCLUDED.preferred_timezones,
			location_flexible = EXCLUDED.location_flexible,
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			preferred_team_size = EXCLUDED.preferred_team_size,
			updated_at = now()`,
		teamID,
		p.RequiredSkills, p.PreferredSkills,
		p.SkillWeight, p.ExperienceWeight, p.LocationWeight,
		p.MinExperience, p.MaxExperience,
		p.PreferredTimezones, p.LocationFlexible,
		workStart, workEnd, p.PreferredTeamSize,
	)
	return err
}

func scanPreferences(row database.Row) (matching.TeamPreferences, bool, error) {
	var p matching.TeamPreferences
	var workStart, workEnd *string

	err := row.Scan(
		&p.RequiredSkills, &p.PreferredSkills,
		&p.SkillWeight, &p.ExperienceWeight, &p.LocationWeight,
		&p.MinExperience, &p.MaxExperience,
		&p.PreferredTimezones, &p.LocationFlexible,
		&workStart, &workEnd, &p.PreferredTeamSize,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return matching.TeamPreferences{}, false, nil
		}
		return matching.TeamPreferences{}, false, err
	}

	if workStart != nil || workEnd != nil {
		wh := matching.WorkingHours{}
		if workStart != nil {
			wh.Start = *workStart
		}
		if workEnd != nil {
			wh.End = *workEnd
		}
		p.WorkingHours = &wh
	}
	return p, true, nil
}
