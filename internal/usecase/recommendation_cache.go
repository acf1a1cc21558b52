package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecommendationCache is satisfied by the Redis cache; a nil cache disables
// caching entirely.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func teamsForUserCacheKey(userID, hackathonID uuid.UUID, limit int) string {
	return fmt.Sprintf("rec:teams:%s:%s:%d", hackathonID, userID, limit)
}

func usersForTeamCacheKey(teamID, hackathonID uuid.UUID, limit int) string {
	return fmt.Sprintf("rec:users:%s:%s:%d", hackathonID, teamID, limit)
}
