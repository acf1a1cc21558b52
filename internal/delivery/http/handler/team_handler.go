package handler

import (
	"errors"

	"hackmate/internal/delivery/http/dto"
	"hackmate/internal/delivery/http/middleware"
	"hackmate/internal/domain/matching"
	"hackmate/internal/pkg/response"
	"hackmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TeamHandler struct {
	uc usecase.TeamUsecase
}

type createTeamRequest struct {
	HackathonID string `json:"hackathon_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members"`
}

type setRecruitingRequest struct {
	Recruiting bool `json:"recruiting"`
}

type workingHoursRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type teamPreferencesRequest struct {
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`

	SkillWeight      float64 `json:"skill_weight"`
	ExperienceWeight float64 `json:"experience_weight"`
	LocationWeight   float64 `json:"location_weight"`

	MinExperience string `json:"min_experience"`
	MaxExperience string `json:"max_experience"`

	PreferredTimezones []string             `json:"preferred_timezones"`
	LocationFlexible   bool                 `json:"location_flexible"`
	WorkingHours       *workingHoursRequest `json:"working_hours"`
	PreferredTeamSize  int                  `json:"preferred_team_size"`
}

func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

func (h *TeamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/:team_id", h.Get)
	r.Post("/:team_id/join", h.Join)
	r.Post("/:team_id/leave", h.Leave)
	r.Patch("/:team_id/recruiting", h.SetRecruiting)
	r.Put("/:team_id/preferences", h.SetPreferences)
}

func (h *TeamHandler) Create(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req createTeamRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	hackathonID, err := uuid.Parse(req.HackathonID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	t, err := h.uc.CreateTeam(c.Context(), usecase.CreateTeamInput{
		HackathonID: hackathonID,
		LeaderID:    userID,
		Name:        req.Name,
		Description: req.Description,
		MaxMembers:  req.MaxMembers,
	})
	if err != nil {
		return mapTeamUsecaseError(err)
	}

	snap, err := h.uc.GetTeam(c.Context(), t.ID)
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewTeamResponse(snap))
}

func (h *TeamHandler) Get(c fiber.Ctx) error {
	teamID, err := parseUUIDParam(c, "team_id")
	if err != nil {
		return err
	}

	snap, err := h.uc.GetTeam(c.Context(), teamID)
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTeamResponse(snap))
}

func (h *TeamHandler) Join(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseUUIDParam(c, "team_id")
	if err != nil {
		return err
	}

	if err := h.uc.JoinTeam(c.Context(), teamID, userID); err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *TeamHandler) Leave(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseUUIDParam(c, "team_id")
	if err != nil {
		return err
	}

	if err := h.uc.LeaveTeam(c.Context(), teamID, userID); err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *TeamHandler) SetRecruiting(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseUUIDParam(c, "team_id")
	if err != nil {
		return err
	}

	var req setRecruitingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetRecruiting(c.Context(), teamID, userID, req.Recruiting); err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *TeamHandler) SetPreferences(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	teamID, err := parseUUIDParam(c, "team_id")
	if err != nil {
		return err
	}

	var req teamPreferencesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prefs := matching.TeamPreferences{
		RequiredSkills:     req.RequiredSkills,
		PreferredSkills:    req.PreferredSkills,
		SkillWeight:        req.SkillWeight,
		ExperienceWeight:   req.ExperienceWeight,
		LocationWeight:     req.LocationWeight,
		MinExperience:      req.MinExperience,
		MaxExperience:      req.MaxExperience,
		PreferredTimezones: req.PreferredTimezones,
		LocationFlexible:   req.LocationFlexible,
		PreferredTeamSize:  req.PreferredTeamSize,
	}
	if req.WorkingHours != nil {
		prefs.WorkingHours = &matching.WorkingHours{Start: req.WorkingHours.Start, End: req.WorkingHours.End}
	}

	if err := h.uc.SetPreferences(c.Context(), teamID, userID, prefs); err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapTeamUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrTeamNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Team not found", nil, err)
	case errors.Is(err, usecase.ErrHackathonNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Hackathon not found", nil, err)
	case errors.Is(err, usecase.ErrTeamFull):
		return middleware.NewAppError(fiber.StatusConflict, "Team is full", nil, err)
	case errors.Is(err, usecase.ErrAlreadyOnTeam):
		return middleware.NewAppError(fiber.StatusConflict, "Already on a team for this hackathon", nil, err)
	case errors.Is(err, usecase.ErrNotTeamLeader):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the team leader may do this", nil, err)
	case errors.Is(err, usecase.ErrNotRegistered):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Not registered for this hackathon", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
