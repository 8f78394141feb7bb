// Package main provides the entrypoint for the CleanCity monitoring API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality/openmeteo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/api"
	"github.com/vedantwankhade123/cleancity-sub001/internal/database"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode/nominatim"
	"github.com/vedantwankhade123/cleancity-sub001/internal/monitor"
	"github.com/vedantwankhade123/cleancity-sub001/internal/report"
	"github.com/vedantwankhade123/cleancity-sub001/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "cleancity-monitor-api"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().Str("build_time", BuildTime).Msg("starting CleanCity monitoring API")

	port := envOr("APP_PORT", "8080")
	env := envOr("APP_ENV", "development")

	// The city the map and environment panel default to.
	defaultCity := envOr("DEFAULT_CITY", "Amravati")
	defaultCenter := geo.Coordinate{
		Latitude:  envFloat("DEFAULT_CITY_LAT", 20.9374),
		Longitude: envFloat("DEFAULT_CITY_LON", 77.7796),
	}

	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Enabled:        os.Getenv("OTEL_ENABLED") == "true",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	// Report store: Postgres when configured, seeded memory otherwise so
	// a demo run still renders a populated map.
	var reports report.Repository
	if os.Getenv("DB_HOST") != "" {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		reports = report.NewPostgresRepository(pool)
		log.Info().
			Str("host", dbConfig.Host).
			Str("database", dbConfig.Database).
			Msg("report store connected")
	} else {
		reports = report.NewMemoryRepository(report.SeedReports())
		log.Warn().Msg("DB_HOST not set - using seeded in-memory report store")
	}

	geocoder := geocode.NewService(geocode.ServiceConfig{
		Provider: nominatim.NewClient(nominatim.ClientConfig{
			BaseURL: os.Getenv("GEOCODER_BASE_URL"),
		}),
		Logger: log,
	})

	aggregator := monitor.New(monitor.Config{
		Geocoder: geocoder,
		Readings: openmeteo.NewClient(openmeteo.ClientConfig{
			BaseURL: os.Getenv("AIR_QUALITY_BASE_URL"),
		}),
		Interval: envDuration("REFRESH_INTERVAL", 30*time.Minute),
		Logger:   log,
	})

	router := api.NewRouter(api.RouterConfig{
		Version:        Version,
		BuildTime:      BuildTime,
		Logger:         log,
		Geocoder:       geocoder,
		Aggregator:     aggregator,
		Reports:        reports,
		FallbackCenter: defaultCenter,
	})
	defer router.Close()

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("port", port).
			Str("default_city", defaultCity).
			Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
