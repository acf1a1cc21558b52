package team

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID          uuid.UUID
	HackathonID uuid.UUID
	Name        string
	Description string
	LeaderID    uuid.UUID
	MaxMembers  int
	Recruiting  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Member struct {
	TeamID   uuid.UUID
	UserID   uuid.UUID
	Role     string
	JoinedAt time.Time
}

// Summary is the display slice a recommendation item carries for rendering.
type Summary struct {
	ID          uuid.UUID
	Name        string
	Description string
	MemberCount int
	MaxMembers  int
}
