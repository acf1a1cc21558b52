package v1

import (
	"hackmate/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterHackathons(r fiber.Router, hackathonHandler *handler.HackathonHandler, recHandler *handler.RecommendationHandler) {
	if r == nil || hackathonHandler == nil {
		return
	}

	hackathonHandler.RegisterRoutes(r)
	if recHandler != nil {
		recHandler.RegisterHackathonRoutes(r)
	}
}
