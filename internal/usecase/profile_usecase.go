package usecase

import (
	"context"
	"errors"
	"strings"

	"hackmate/internal/domain/matching"
	"hackmate/internal/domain/user"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	ExperienceLevel string
	Timezone        string
	WorkStart       *string
	WorkEnd         *string
	Skills          []string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error)
}

type Profiles struct {
	repo repository.ProfileRepository
}

func NewProfileUsecase(repo repository.ProfileRepository) *Profiles {
	return &Profiles{repo: repo}
}

func (u *Profiles) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	p, err := u.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, ErrUserNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}

	level := strings.ToLower(strings.TrimSpace(in.ExperienceLevel))
	if level != "" && !validExperienceLevel(level) {
		return user.Profile{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.Skills))
	seen := map[string]struct{}{}
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		skills = append(skills, s)
	}

	p := user.Profile{
		UserID:          userID,
		ExperienceLevel: level,
		Timezone:        strings.TrimSpace(in.Timezone),
		WorkStart:       in.WorkStart,
		WorkEnd:         in.WorkEnd,
	}
	if err := u.repo.UpdateProfile(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, ErrUserNotFound
		}
		return user.Profile{}, ErrInternal
	}
	if err := u.repo.ReplaceSkills(ctx, userID, skills); err != nil {
		return user.Profile{}, ErrInternal
	}

	return u.GetProfile(ctx, userID)
}

func validExperienceLevel(level string) bool {
	switch level {
	case matching.LevelBeginner, matching.LevelIntermediate, matching.LevelAdvanced, matching.LevelExpert:
		return true
	}
	return false
}
