package handler

import (
	"errors"

	"hackmate/internal/delivery/http/dto"
	"hackmate/internal/delivery/http/middleware"
	"hackmate/internal/pkg/response"
	"hackmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	ExperienceLevel string   `json:"experience_level"`
	Timezone        string   `json:"timezone"`
	WorkStart       *string  `json:"work_start"`
	WorkEnd         *string  `json:"work_end"`
	Skills          []string `json:"skills"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/profile", h.GetMyProfile)
	r.Put("/me/profile", h.UpdateMyProfile)
	r.Get("/:user_id/profile", h.GetProfile)
}

func (h *ProfileHandler) GetMyProfile(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	return h.renderProfile(c, userID)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}
	return h.renderProfile(c, userID)
}

func (h *ProfileHandler) UpdateMyProfile(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		ExperienceLevel: req.ExperienceLevel,
		Timezone:        req.Timezone,
		WorkStart:       req.WorkStart,
		WorkEnd:         req.WorkEnd,
		Skills:          req.Skills,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) renderProfile(c fiber.Ctx, userID uuid.UUID) error {
	p, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
