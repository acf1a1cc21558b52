package handler

import (
	"errors"

	"hackmate/internal/delivery/http/dto"
	"hackmate/internal/delivery/http/middleware"
	"hackmate/internal/pkg/response"
	"hackmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HackathonHandler struct {
	uc usecase.HackathonUsecase
}

func NewHackathonHandler(uc usecase.HackathonUsecase) *HackathonHandler {
	return &HackathonHandler{uc: uc}
}

func (h *HackathonHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:hackathon_id", h.Get)
	r.Post("/:hackathon_id/register", h.Register)
}

func (h *HackathonHandler) List(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	hs, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewHackathonListResponse(hs))
}

func (h *HackathonHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "hackathon_id")
	if err != nil {
		return err
	}

	hk, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewHackathonResponse(hk))
}

func (h *HackathonHandler) Register(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "hackathon_id")
	if err != nil {
		return err
	}

	if err := h.uc.Register(c.Context(), id, userID); err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapHackathonUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrHackathonNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Hackathon not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
