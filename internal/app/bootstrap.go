package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"hackmate/internal/config"
	"hackmate/internal/database/migration"
	"hackmate/internal/database/seeder"
	"hackmate/internal/delivery/http/handler"
	"hackmate/internal/delivery/http/middleware"
	"hackmate/internal/delivery/http/routes"
	v1 "hackmate/internal/delivery/http/routes/v1"
	"hackmate/internal/ws"

	"github.com/gofiber/fiber/v3"
)

const migrationsDir = "migrations"

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the whole application: connects, migrates, seeds (outside
// production), wires the HTTP and websocket surfaces. The returned cleanup
// releases the container; callers run it after the server stops.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build container: %w", err)
	}
	cleanup := c.Close

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := (migration.Runner{Dir: migrationsDir}).Run(ctx, c.DB.SQLDB()); err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	if !strings.EqualFold(cfg.App.Environment, "production") {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, c.DB); err != nil {
			_ = cleanup()
			return nil, nil, fmt.Errorf("run seeders: %w", err)
		}
	}

	go c.Hub.Run()

	fiberApp := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	fiberApp.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	fiberApp.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		middleware.NewAuthMiddleware(c.JWT),
		v1.Handlers{
			Auth:           handler.NewAuthHandler(c.AuthUC),
			Profile:        handler.NewProfileHandler(c.ProfileUC),
			Team:           handler.NewTeamHandler(c.TeamUC),
			Hackathon:      handler.NewHackathonHandler(c.HackUC),
			Match:          handler.NewMatchHandler(c.MatchUC),
			Recommendation: handler.NewRecommendationHandler(c.RecUC, c.TeamUC),
		},
	)
	registry.Register(fiberApp)

	ws.NewHandler(c.Hub, logger).RegisterRoutes(fiberApp)

	return &App{Fiber: fiberApp, Container: c}, cleanup, nil
}

func ListenAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}
