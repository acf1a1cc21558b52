package dto

import (
	"time"

	"github.com/google/uuid"

	"hackmate/internal/domain/team"
	"hackmate/internal/repository"
)

type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	HackathonID uuid.UUID `json:"hackathon_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderID    uuid.UUID `json:"leader_id"`
	MemberCount int       `json:"member_count"`
	MaxMembers  int       `json:"max_members"`
	Recruiting  bool      `json:"recruiting"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTeamResponse(s repository.TeamSnapshot) TeamResponse {
	return TeamResponse{
		ID:          s.Team.ID,
		HackathonID: s.Team.HackathonID,
		Name:        s.Team.Name,
		Description: s.Team.Description,
		LeaderID:    s.Team.LeaderID,
		MemberCount: s.MemberCount,
		MaxMembers:  s.Team.MaxMembers,
		Recruiting:  s.Team.Recruiting,
		CreatedAt:   s.Team.CreatedAt,
	}
}

type TeamSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemberCount int       `json:"member_count"`
	MaxMembers  int       `json:"max_members"`
}

func NewTeamSummaryResponse(s team.Summary) TeamSummaryResponse {
	return TeamSummaryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		MemberCount: s.MemberCount,
		MaxMembers:  s.MaxMembers,
	}
}
