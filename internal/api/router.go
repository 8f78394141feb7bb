// Package api provides the HTTP API for the monitoring core.
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/vedantwankhade123/cleancity-sub001/internal/api/handler"
	"github.com/vedantwankhade123/cleancity-sub001/internal/api/middleware"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
	"github.com/vedantwankhade123/cleancity-sub001/internal/monitor"
	"github.com/vedantwankhade123/cleancity-sub001/internal/report"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	BuildTime      string
	Logger         zerolog.Logger
	Geocoder       geocode.Geocoder
	Aggregator     *monitor.Aggregator
	Reports        report.Repository
	FallbackCenter geo.Coordinate

	// RateLimit is requests per minute per client IP (default: 120).
	RateLimit int
}

// Router bundles the chi mux with the handlers that need teardown.
type Router struct {
	*chi.Mux
	environment *handler.EnvironmentHandler
}

// Close stops background watches held by handlers.
func (r *Router) Close() {
	r.environment.Close()
}

// NewRouter creates a chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *Router {
	rateLimit := cfg.RateLimit
	if rateLimit == 0 {
		rateLimit = 120
	}

	mux := chi.NewRouter()

	// Order matters: correlation ID first so every later stage logs it.
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logger(cfg.Logger))
	mux.Use(middleware.Recovery(cfg.Logger))
	mux.Use(chimiddleware.RealIP)
	mux.Use(httprate.LimitByIP(rateLimit, time.Minute))

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	geocodeHandler := handler.NewGeocodeHandler(cfg.Geocoder)
	environmentHandler := handler.NewEnvironmentHandler(cfg.Aggregator, cfg.Logger)
	markersHandler := handler.NewMarkersHandler(cfg.Reports, cfg.FallbackCenter)

	mux.Get("/healthz", opsHandler.Health)
	mux.Get("/readyz", opsHandler.Ready)

	mux.Route("/v1", func(r chi.Router) {
		r.Get("/geocode/search", geocodeHandler.Search)
		r.Get("/geocode/reverse", geocodeHandler.Reverse)
		r.Get("/environment", environmentHandler.Current)
		r.Get("/map/markers", markersHandler.List)
	})

	return &Router{Mux: mux, environment: environmentHandler}
}
