package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the matching-relevant slice of a user: skills, experience,
// timezone and working hours.
type Profile struct {
	UserID          uuid.UUID
	DisplayName     string
	Skills          []string
	ExperienceLevel string
	Timezone        string
	WorkStart       *string
	WorkEnd         *string
}
