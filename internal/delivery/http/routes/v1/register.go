package v1

import (
	"hackmate/internal/delivery/http/handler"
	"hackmate/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles everything the v1 API mounts. The container builds it so
// route registration stays free of repository wiring.
type Handlers struct {
	Auth           *handler.AuthHandler
	Profile        *handler.ProfileHandler
	Team           *handler.TeamHandler
	Hackathon      *handler.HackathonHandler
	Match          *handler.MatchHandler
	Recommendation *handler.RecommendationHandler
}

func Register(r fiber.Router, authMw *middleware.AuthMiddleware, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r
	if authMw != nil {
		protected = r.Group("", authMw.Middleware())
	}

	RegisterUsers(protected.Group("/users"), h.Profile)
	RegisterTeams(protected.Group("/teams"), h.Team, h.Match, h.Recommendation)
	RegisterHackathons(protected.Group("/hackathons"), h.Hackathon, h.Recommendation)
}
