package handler

import (
	"errors"

	"hackmate/internal/delivery/http/dto"
	"hackmate/internal/delivery/http/middleware"
	"hackmate/internal/pkg/response"
	"hackmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	recs  usecase.RecommendationUsecase
	teams usecase.TeamUsecase
}

func NewRecommendationHandler(recs usecase.RecommendationUsecase, teams usecase.TeamUsecase) *RecommendationHandler {
	return &RecommendationHandler{recs: recs, teams: teams}
}

// RegisterHackathonRoutes mounts the teams-for-user direction under the
// hackathon group; RegisterTeamRoutes mounts the reverse under teams.
func (h *RecommendationHandler) RegisterHackathonRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:hackathon_id/recommendations/teams", h.TeamsForUser)
}

func (h *RecommendationHandler) RegisterTeamRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:team_id/recommendations/users", h.UsersForTeam)
}

func (h *RecommendationHandler) TeamsForUser(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	hackathonID, err := parseUUIDParam(c, "hackathon_id")
	if err != nil {
		return err
	}
	limit := parseQueryInt(c, "limit", 0)

	recs, err := h.recs.RecommendTeamsForUser(c.Context(), userID, hackathonID, limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTeamRecommendationListResponse(recs))
}

func (h *RecommendationHandler) UsersForTeam(c fiber.Ctx) error {
	if _, err := requireUserID(c); err != nil {
		return err
	}
	teamID, err := parseUUIDParam(c, "team_id")
	if err != nil {
		return err
	}
	limit := parseQueryInt(c, "limit", 0)

	// The team pins the hackathon; look it up instead of asking the client.
	snap, err := h.teams.GetTeam(c.Context(), teamID)
	if err != nil {
		return mapTeamUsecaseError(err)
	}

	recs, err := h.recs.RecommendUsersForTeam(c.Context(), teamID, snap.Team.HackathonID, limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserRecommendationListResponse(recs))
}

func mapRecommendationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrTeamNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Team not found", nil, err)
	case errors.Is(err, usecase.ErrHackathonNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Hackathon not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
