package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/KOFI-GYIMAH/contribution-tracker/docs"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/cache"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/config"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/github"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/handler"
	md "github.com/KOFI-GYIMAH/contribution-tracker/internal/middleware"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/service"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/worker"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Contribution Tracker Service
// @version 1.0.0
// @description Contribution opportunities across an organization's GitHub repositories.
// @host localhost:8081
// @BasePath /v1
func main() {
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.LevelDebug)
	}

	// * Load configuration
	cfg, err := config.LoadConfiguration()
	if err != nil {
		logger.Error("‼️ Failed to load config: %v", err)
		os.Exit(1)
	}
	if os.Getenv("DEBUG") != "true" {
		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	}

	// * Shared rate limiter and cache
	limiter := github.NewRateLimiter(cfg.MinRequestSpacing, cfg.LowWaterMark)
	responseCache := cache.New(cache.WithDefaultTTL(cfg.CacheTTL))

	// * Initialize GitHub client
	githubClient := github.NewClient(cfg.GitHubToken, limiter)

	// * Create services
	repoService := service.NewRepositoryService(githubClient, responseCache, cfg.Org, service.WithPopularRepos(cfg.ExploreRepos...))
	userService := service.NewUserService(githubClient, cfg.Org)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// * Start background workers
	go worker.NewCacheSweeper(responseCache, cfg.CacheCleanupInterval).Run(ctx)
	go worker.NewRateLimitPoller(githubClient, cfg.RateLimitPoll).Run(ctx)

	// * Create API server
	router := mux.NewRouter()
	router.Use(md.RequestIDMiddleware, md.LoggingMiddleware)
	api := router.PathPrefix("/v1").Subrouter()

	handler.NewRepositoryHandler(repoService).RegisterRoutes(api)
	handler.NewUserHandler(userService).RegisterRoutes(api)
	router.PathPrefix("/v1/swagger/").Handler(httpSwagger.WrapHandler)

	server := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting API server on %s for org %s", cfg.ServerPort, cfg.Org)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("API server error: %v", err)
			os.Exit(1)
		}
	}()

	// * Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
