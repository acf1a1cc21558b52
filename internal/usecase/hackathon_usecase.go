package usecase

import (
	"context"
	"errors"

	"hackmate/internal/domain/hackathon"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

type HackathonUsecase interface {
	List(ctx context.Context, limit, offset int) ([]hackathon.Hackathon, error)
	Get(ctx context.Context, id uuid.UUID) (hackathon.Hackathon, error)
	Register(ctx context.Context, hackathonID, userID uuid.UUID) error
}

type Hackathons struct {
	repo repository.HackathonRepository
}

func NewHackathonUsecase(repo repository.HackathonRepository) *Hackathons {
	return &Hackathons{repo: repo}
}

func (u *Hackathons) List(ctx context.Context, limit, offset int) ([]hackathon.Hackathon, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	out, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Hackathons) Get(ctx context.Context, id uuid.UUID) (hackathon.Hackathon, error) {
	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHackathonNotFound) {
			return hackathon.Hackathon{}, ErrHackathonNotFound
		}
		return hackathon.Hackathon{}, ErrInternal
	}
	return h, nil
}

func (u *Hackathons) Register(ctx context.Context, hackathonID, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}

	exists, err := u.repo.ExistsByID(ctx, hackathonID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrHackathonNotFound
	}

	if err := u.repo.RegisterParticipant(ctx, hackathonID, userID); err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			// Registration is idempotent from the caller's point of view.
			return nil
		}
		return ErrInternal
	}
	return nil
}
