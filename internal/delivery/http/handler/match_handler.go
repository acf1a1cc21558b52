package handler

import (
	"errors"

	"hackmate/internal/delivery/http/dto"
	"hackmate/internal/delivery/http/middleware"
	"hackmate/internal/pkg/response"
	"hackmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:team_id/match", h.GetMatch)
}

// GetMatch scores the authenticated user against one team and returns the
// full result, narrative included.
func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseUUIDParam(c, "team_id")
	if err != nil {
		return err
	}

	res, err := h.uc.ScoreMatch(c.Context(), userID, teamID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		case errors.Is(err, usecase.ErrTeamNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Team not found", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponse(res))
}
