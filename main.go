package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/careerdock/careerdock-be/internal/api"
	"github.com/careerdock/careerdock-be/internal/auth"
	"github.com/careerdock/careerdock-be/internal/config"
	"github.com/careerdock/careerdock-be/internal/logger"
	"github.com/careerdock/careerdock-be/internal/monitoring"
	"github.com/careerdock/careerdock-be/internal/services"
	"github.com/careerdock/careerdock-be/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.IsProduction())

	// Set up the auth core: hasher, store, issuer, guard
	hasher := auth.NewHasher(cfg.BcryptCost)
	userStore := store.NewMemoryStore(hasher)
	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.SessionLifetime)
	guard := auth.NewGuard(issuer)

	// The store is volatile; demo fixtures make a fresh dev process usable.
	if !cfg.IsProduction() {
		userStore.Seed(store.DemoUsers())
		log.Info().Int("users", userStore.Count()).Msg("seeded demo accounts")
	}

	// Set up services
	auditService := services.NewAuditService(1000)
	authService := services.NewAuthService(userStore, hasher, issuer, auditService, cfg.MinPasswordLength)

	// Set up and run the background audit retention sweeper
	sweeper, err := monitoring.NewSweeper(auditService, cfg.AuditSweepSchedule, cfg.AuditRetention)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize audit sweeper")
	}
	go sweeper.Run()

	// Set up router
	router := api.NewRouter(cfg, guard, authService, auditService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
