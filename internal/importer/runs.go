package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hackmate/internal/database"

	"github.com/google/uuid"
)

// Import runs are tracked in the database so operators can see when a source
// was last pulled and whether it finished cleanly.

func createImportRun(ctx context.Context, db database.DB, source string) (uuid.UUID, error) {
	if db == nil {
		return uuid.Nil, fmt.Errorf("nil db")
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return uuid.Nil, fmt.Errorf("empty source name")
	}

	id := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO import_runs (id, source, started_at, status) VALUES ($1,$2,$3,$4)`,
		id, source, time.Now().UTC(), "running",
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func finishImportRun(ctx context.Context, db database.DB, runID uuid.UUID, status string, imported int) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if runID == uuid.Nil {
		return nil
	}
	_, err := db.Exec(ctx,
		`UPDATE import_runs SET finished_at = $2, status = $3, imported = $4 WHERE id = $1`,
		runID, time.Now().UTC(), strings.TrimSpace(status), imported,
	)
	return err
}
