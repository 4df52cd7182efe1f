package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"wedplan/docs"
	"wedplan/internal/access"
	"wedplan/internal/auth"
	"wedplan/internal/cache"
	"wedplan/internal/config"
	"wedplan/internal/db"
	"wedplan/internal/handler"
	"wedplan/internal/logging"
	"wedplan/internal/model"
	"wedplan/internal/onboarding"
	"wedplan/internal/repository"
	"wedplan/internal/router"
	"wedplan/internal/service"
)

// @title Wedplan API
// @version 1.0
// @description Collaborative wedding planning API: weddings, guests, budgets, tasks and RSVPs.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	logger := logging.New()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Task{},
			&model.BudgetCategory{},
			&model.GuestDetail{},
			&model.WeddingMembership{},
			&model.Wedding{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Wedding{},
		&model.WeddingMembership{},
		&model.GuestDetail{},
		&model.BudgetCategory{},
		&model.Task{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	weddingRepo := repository.NewWeddingRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	googleVerifier := auth.NewGoogleTokenVerifier(cfg.GoogleClientID)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, googleVerifier)
	userService := service.NewUserService(userRepo, cacheClient)
	weddingService := service.NewWeddingService(userRepo, weddingRepo)
	taskService := service.NewTaskService(taskRepo, weddingRepo)
	onboardingStore := onboarding.NewStore(cacheClient)
	onboardingService := service.NewOnboardingService(onboardingStore, weddingService)

	// Access resolution for wedding scoped routes
	resolver := access.NewResolver(userRepo, weddingRepo, taskRepo)
	accessMW := access.NewMiddleware(resolver, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, onboardingService)
	weddingHandler := handler.NewWeddingHandler(weddingService, taskService)
	taskHandler := handler.NewTaskHandler(taskService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		logger,
		accessMW,
		authHandler,
		userHandler,
		weddingHandler,
		taskHandler,
		onboardingHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server start")
	}
}
