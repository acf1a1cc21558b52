package app

import (
	"context"
	"log"
	"time"

	"hackmate/internal/config"
	"hackmate/internal/database"
	dbpostgres "hackmate/internal/database/postgres"
	"hackmate/internal/infrastructure/cache"
	"hackmate/internal/pkg/jwt"
	"hackmate/internal/repository"
	"hackmate/internal/usecase"
	"hackmate/internal/ws"
)

// Container owns every long-lived dependency: the pool, the cache, the hub,
// and the usecases built on them. Close releases in reverse order.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	AuthUC    usecase.AuthUsecase
	ProfileUC usecase.ProfileUsecase
	TeamUC    usecase.TeamUsecase
	HackUC    usecase.HackathonUsecase
	MatchUC   usecase.MatchUsecase
	RecUC     usecase.RecommendationUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	jwtSvc := jwt.NewHMACService(cfg.JWT)
	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub, redisCache)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	teamRepo := repository.NewPostgresTeamRepository(db)
	prefRepo := repository.NewPostgresPreferenceRepository(db)
	hackRepo := repository.NewPostgresHackathonRepository(db)
	historyRepo := repository.NewPostgresMatchHistoryRepository(db)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		JWT:    jwtSvc,
		Hub:    hub,

		AuthUC:    usecase.NewAuthUsecase(userRepo, jwtSvc),
		ProfileUC: usecase.NewProfileUsecase(profileRepo),
		TeamUC:    usecase.NewTeamUsecase(teamRepo, prefRepo, hackRepo, notifier),
		HackUC:    usecase.NewHackathonUsecase(hackRepo),
		MatchUC:   usecase.NewMatchUsecase(profileRepo, teamRepo, prefRepo, historyRepo, logger),
		RecUC:     usecase.NewRecommendationUsecase(profileRepo, teamRepo, prefRepo, hackRepo, redisCache, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
