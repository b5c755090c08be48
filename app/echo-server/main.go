package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"influencerMDP/app/echo-server/router"
	"influencerMDP/business/mdp"
	"influencerMDP/business/selection"
	"influencerMDP/internal/middleware"
	psqlRepo "influencerMDP/internal/repository/postgres"
	redisRepo "influencerMDP/internal/repository/redis"
	"influencerMDP/internal/rest"
	"influencerMDP/pkg/config"
	"influencerMDP/pkg/database"
	redisClient "influencerMDP/pkg/database/redis"
	"influencerMDP/pkg/logger"
	"influencerMDP/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Influencer MDP API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Solver defaults, optionally overridden by a YAML file
	mdpCfg := mdp.DefaultConfig()
	if cfg.MDP.ConfigFile != "" {
		rec, err := config.LoadMDPFile(cfg.MDP.ConfigFile)
		if err != nil {
			logger.Fatal("Failed to load MDP config file", "error", err)
		}
		mdpCfg = mdpCfg.WithRecord(rec)
		logger.Info("MDP config file loaded", "path", cfg.MDP.ConfigFile)
	}
	if err := mdpCfg.Validate(); err != nil {
		logger.Fatal("Invalid MDP config", "error", err)
	}

	// Solution cache is optional
	var cache selection.SolutionCache
	if cfg.Redis.Enabled {
		rdb, err := redisClient.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.CloseRedisClient(rdb)

		cache = redisRepo.NewSolutionCache(rdb)
		logger.Info("Solution cache enabled", "ttl", cfg.MDP.CacheTTL.String())
	}

	metrics.Init()

	// Init repo
	influencerRepo := psqlRepo.NewInfluencerRepository(db)
	runRepo := psqlRepo.NewSelectionRunRepository(db)
	mdpConfigRepo := psqlRepo.NewMDPConfigRepository(db)

	// Init service
	selectionService := selection.NewSelectionService(influencerRepo, runRepo, mdpConfigRepo, cache, mdpCfg, cfg.MDP.CacheTTL)

	// Init handler
	selectionHandler := rest.NewSelectionHandler(selectionService)
	influencerHandler := rest.NewInfluencerHandler(selectionService)
	mdpAdminHandler := rest.NewMDPAdminHandler(selectionService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupInfluencerRoutes(api, influencerHandler, authRequired, adminOnly)
	router.SetupSelectionRoutes(api, selectionHandler)
	router.SetupMDPAdminRoutes(api, mdpAdminHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
