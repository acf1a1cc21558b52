package v1

import (
	"hackmate/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterTeams(r fiber.Router, teamHandler *handler.TeamHandler, matchHandler *handler.MatchHandler, recHandler *handler.RecommendationHandler) {
	if r == nil || teamHandler == nil {
		return
	}

	teamHandler.RegisterRoutes(r)
	if matchHandler != nil {
		matchHandler.RegisterRoutes(r)
	}
	if recHandler != nil {
		recHandler.RegisterTeamRoutes(r)
	}
}
