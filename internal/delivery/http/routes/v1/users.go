package v1

import (
	"hackmate/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, profileHandler *handler.ProfileHandler) {
	if r == nil || profileHandler == nil {
		return
	}
	profileHandler.RegisterRoutes(r)
}
