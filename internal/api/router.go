package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/careerdock/careerdock-be/internal/api/handlers"
	"github.com/careerdock/careerdock-be/internal/auth"
	"github.com/careerdock/careerdock-be/internal/config"
	"github.com/careerdock/careerdock-be/internal/models"
	"github.com/careerdock/careerdock-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, guard *auth.Guard, authService services.AuthServiceProvider, auditService services.AuditServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.SessionLifetime, cfg.IsProduction())
	dashboardHandler := handlers.NewDashboardHandler()
	eventHandler := handlers.NewEventHandler(auditService)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.With(guard.RequireRole(models.RoleAny)).Get("/me", authHandler.GetMe)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.With(guard.RequireRole(models.RoleJobSeeker)).Get("/job-seeker", dashboardHandler.JobSeeker)
			r.With(guard.RequireRole(models.RoleEmployer)).Get("/employer", dashboardHandler.Employer)
		})

		r.With(guard.RequireRole(models.RoleAny)).Get("/events", eventHandler.Recent)
	})

	return r
}
