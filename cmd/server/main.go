package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/matchpulse/futsal-dashboard/configs"
	"github.com/matchpulse/futsal-dashboard/internal/application/services"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/cache"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/fifa"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/health"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/httpserver"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/injuries"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/redis"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/teamcolors"
	"github.com/matchpulse/futsal-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting futsal dashboard backend...")

	if err := utils.ValidateSecretKey(cfg.Auth.SecretKey); err != nil {
		logger.Fatal("Invalid SECRET_KEY: ", err)
	}
	if cfg.UsesDefaultAdminCredentials() {
		logger.Warn("Default admin credentials in use - set ADMIN_USER/ADMIN_PASSWORD")
	}
	adminPasswordHash, err := utils.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		logger.Fatal("Failed to hash admin password: ", err)
	}

	// Select the cache backend. Memory is the default; redis serves
	// multi-replica deployments.
	var store ports.Cache
	var healthCheckers []ports.HealthChecker
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis: ", err)
		}
		defer redisClient.Close()
		store = redis.NewRedisCache(redisClient, "futsal")
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
		logger.Info("Connected to Redis successfully")
	default:
		store = cache.NewMemoryStore()
		logger.Info("Using in-memory cache store")
	}

	// Upstream data API client
	apiClient := fifa.NewClient(fifa.Config{
		BaseURL:       cfg.API.BaseURL,
		Language:      cfg.API.Language,
		CompetitionID: cfg.API.CompetitionID,
		SeasonID:      cfg.API.SeasonID,
		StageID:       cfg.API.StageID,
		Timeout:       cfg.API.Timeout,
		UserAgent:     cfg.API.UserAgent,
	}, logger)
	healthCheckers = append(healthCheckers, health.NewUpstreamHealthChecker(apiClient))

	// Services
	ttls := services.CacheTTLs{
		Calendar: cfg.Cache.CalendarTTL,
		Events:   cfg.Cache.EventsTTL,
		Squad:    cfg.Cache.SquadTTL,
		Injuries: cfg.Cache.InjuriesTTL,
	}
	matchDataService := services.NewMatchDataService(apiClient, store, ttls, cfg.API.SeasonID, cfg.API.StageID, logger)
	injuryService := services.NewInjuryService(
		injuries.NewFileSource(cfg.Data.InjuriesCSV),
		injuries.NewSyntheticSource(),
		store,
		cfg.Cache.InjuriesTTL,
		logger,
	)

	// Team color palette for chart payloads
	palette, err := teamcolors.Load(cfg.Data.TeamColorsCSV)
	if err != nil {
		logger.WithError(err).Warn("Failed to load team colors, charts will use defaults")
	}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		MatchData:      matchDataService,
		Injuries:       injuryService,
		Cache:          store,
		Colors:         palette,
		HealthCheckers: healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, cfg.Auth.AdminUser, adminPasswordHash, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
