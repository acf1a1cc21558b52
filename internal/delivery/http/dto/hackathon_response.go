package dto

import (
	"time"

	"github.com/google/uuid"

	"hackmate/internal/domain/hackathon"
)

type HackathonResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

func NewHackathonResponse(h hackathon.Hackathon) HackathonResponse {
	return HackathonResponse{
		ID:       h.ID,
		Name:     h.Name,
		Slug:     h.Slug,
		StartsAt: h.StartsAt,
		EndsAt:   h.EndsAt,
	}
}

func NewHackathonListResponse(hs []hackathon.Hackathon) []HackathonResponse {
	out := make([]HackathonResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, NewHackathonResponse(h))
	}
	return out
}
