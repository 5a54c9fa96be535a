package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/RanaNomiRana/AFA-backend/internal/api/handlers"
	apimiddleware "github.com/RanaNomiRana/AFA-backend/internal/api/middleware"
	"github.com/RanaNomiRana/AFA-backend/internal/config"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/cache"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Public routes
	router.Group(func(pub chi.Router) {
		pub.Get("/health", r.handlers.Health.Check)
		pub.Get("/ready", r.handlers.Health.Ready)
	})

	// API v1 routes (authenticated)
	router.Route("/api/v1", func(api chi.Router) {
		api.Use(apimiddleware.APIKeyAuth(r.config.API.Key))

		// Ingest endpoints
		api.Post("/ingest", r.handlers.Ingest.Run)
		api.Post("/ingest/{kind}", r.handlers.Ingest.RunKind)

		// Message endpoints
		api.Route("/messages", func(messages chi.Router) {
			messages.Get("/", r.handlers.Messages.List)
			messages.Get("/search", r.handlers.Messages.Search)
		})

		// Call log and contact endpoints
		api.Get("/calls", r.handlers.Calls.List)
		api.Get("/contacts", r.handlers.Contacts.List)

		// Analytics endpoints
		api.Route("/analytics", func(analytics chi.Router) {
			analytics.Get("/volume", r.handlers.Analytics.Volume)
			analytics.Get("/timeline", r.handlers.Analytics.Timeline)
			analytics.Get("/correlation", r.handlers.Analytics.Correlation)
		})
	})

	return router
}
