package seeder

import (
	"context"

	"hackmate/internal/database"
	"hackmate/internal/domain/matching"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type DemoUserSeeder struct{}

func (DemoUserSeeder) Name() string { return "demo_users" }

type demoUser struct {
	Email           string
	DisplayName     string
	ExperienceLevel string
	Timezone        string
	Skills          []string
}

// Run creates a few demo participants registered for the launch hackathon,
// so recommendation endpoints return data on a fresh install. Keyed by email.
func (DemoUserSeeder) Run(ctx context.Context, db database.DB) error {
	users := []demoUser{
		{"ada@example.com", "Ada", matching.LevelAdvanced, "UTC+1", []string{"Go", "PostgreSQL", "Redis"}},
		{"lin@example.com", "Lin", matching.LevelIntermediate, "UTC+8", []string{"React", "TypeScript"}},
		{"sam@example.com", "Sam", matching.LevelBeginner, "UTC-5", []string{"Python", "Figma"}},
		{"noor@example.com", "Noor", matching.LevelExpert, "UTC+3", []string{"Go", "Kubernetes", "Terraform"}},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var hackathonID uuid.UUID
	row := db.QueryRow(ctx, `SELECT id FROM hackathons WHERE slug = $1`, "hackmate-launch-hack")
	if err := row.Scan(&hackathonID); err != nil {
		// No demo hackathon, nothing to register against.
		return nil
	}

	for _, u := range users {
		var id uuid.UUID
		var exists bool
		r := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, u.Email)
		if err := r.Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		id = uuid.New()
		if _, err := db.Exec(ctx,
			`INSERT INTO users (id, email, display_name, password_hash, experience_level, timezone, work_start, work_end)
			 VALUES ($1, $2, $3, $4, $5, $6, '09:00', '18:00')`,
			id, u.Email, u.DisplayName, string(hash), u.ExperienceLevel, u.Timezone,
		); err != nil {
			return err
		}
		for _, skill := range u.Skills {
			if _, err := db.Exec(ctx,
				`INSERT INTO user_skills (user_id, skill) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				id, skill,
			); err != nil {
				return err
			}
		}
		if _, err := db.Exec(ctx,
			`INSERT INTO hackathon_participants (hackathon_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			hackathonID, id,
		); err != nil {
			return err
		}
	}
	return nil
}
