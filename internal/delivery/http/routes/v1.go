package routes

import (
	"hackmate/internal/delivery/http/middleware"
	v1 "hackmate/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, authMw *middleware.AuthMiddleware, h v1.Handlers) {
	if r == nil {
		return
	}
	v1.Register(r, authMw, h)
}
