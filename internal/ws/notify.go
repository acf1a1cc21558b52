package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchesUpdatedEvent struct {
	Type        string `json:"type"`
	HackathonID string `json:"hackathon_id"`
	Timestamp   string `json:"timestamp"`
}

// RecommendationInvalidator drops cached recommendation lists when team
// membership changes; the Redis cache implements it.
type RecommendationInvalidator interface {
	InvalidateRecommendations(ctx context.Context, hackathonID uuid.UUID) error
}

// Notifier pushes match-update events for a hackathon to subscribed clients
// and invalidates the stale recommendation cache first, so reconnecting
// clients do not re-read pre-change lists.
type Notifier struct {
	hub   *Hub
	cache RecommendationInvalidator
}

func NewNotifier(hub *Hub, cache RecommendationInvalidator) *Notifier {
	return &Notifier{hub: hub, cache: cache}
}

func (n *Notifier) NotifyMatchesUpdated(hackathonID uuid.UUID) {
	if n == nil || hackathonID == uuid.Nil {
		return
	}

	if n.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = n.cache.InvalidateRecommendations(ctx, hackathonID)
		cancel()
	}

	if n.hub == nil {
		return
	}

	evt := MatchesUpdatedEvent{
		Type:        "matches_updated",
		HackathonID: hackathonID.String(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(hackathonID, b)
}
