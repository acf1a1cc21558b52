package dto

import (
	"time"

	"github.com/google/uuid"

	"hackmate/internal/domain/user"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

type ProfileResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	DisplayName     string    `json:"display_name"`
	Skills          []string  `json:"skills"`
	ExperienceLevel string    `json:"experience_level"`
	Timezone        string    `json:"timezone"`
	WorkStart       *string   `json:"work_start"`
	WorkEnd         *string   `json:"work_end"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		UserID:          p.UserID,
		DisplayName:     p.DisplayName,
		Skills:          skills,
		ExperienceLevel: p.ExperienceLevel,
		Timezone:        p.Timezone,
		WorkStart:       p.WorkStart,
		WorkEnd:         p.WorkEnd,
	}
}
