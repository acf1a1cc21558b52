package hackathon

import (
	"time"

	"github.com/google/uuid"
)

type Hackathon struct {
	ID         uuid.UUID
	Name       string
	Slug       string
	StartsAt   time.Time
	EndsAt     time.Time
	ExternalID string
	SourceURL  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Participant struct {
	HackathonID  uuid.UUID
	UserID       uuid.UUID
	RegisteredAt time.Time
}
