package usecase

import (
	"context"

	"hackmate/internal/domain/matching"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

// resolveTeamPreferences walks the documented fallback chain: the team's
// stored preferences, then the leader's personal preferences, then
// matching.DefaultPreferences.
func resolveTeamPreferences(ctx context.Context, repo repository.PreferenceRepository, teamID, leaderID uuid.UUID) (matching.TeamPreferences, error) {
	prefs, found, err := repo.GetTeamPreferences(ctx, teamID)
	if err != nil {
		return matching.TeamPreferences{}, err
	}
	if found {
		return prefs, nil
	}

	prefs, found, err = repo.GetUserPreferences(ctx, leaderID)
	if err != nil {
		return matching.TeamPreferences{}, err
	}
	if found {
		return prefs, nil
	}

	return matching.DefaultPreferences(), nil
}
