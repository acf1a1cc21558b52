package seeder

import (
	"context"
	"time"

	"hackmate/internal/database"
)

type HackathonSeeder struct{}

func (HackathonSeeder) Name() string { return "hackathons" }

// Run inserts a couple of demo hackathons keyed by slug so re-running the
// seeder never duplicates them.
func (HackathonSeeder) Run(ctx context.Context, db database.DB) error {
	now := time.Now().UTC()

	items := []struct {
		Name  string
		Slug  string
		Start time.Time
		End   time.Time
	}{
		{
			Name:  "Hackmate Launch Hack",
			Slug:  "hackmate-launch-hack",
			Start: now.AddDate(0, 0, 7),
			End:   now.AddDate(0, 0, 9),
		},
		{
			Name:  "Open Data Weekend",
			Slug:  "open-data-weekend",
			Start: now.AddDate(0, 1, 0),
			End:   now.AddDate(0, 1, 2),
		},
	}

	for _, it := range items {
		var exists bool
		row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hackathons WHERE slug = $1)`, it.Slug)
		if err := row.Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := db.Exec(ctx,
			`INSERT INTO hackathons (name, slug, starts_at, ends_at) VALUES ($1, $2, $3, $4)`,
			it.Name, it.Slug, it.Start, it.End,
		); err != nil {
			return err
		}
	}
	return nil
}
