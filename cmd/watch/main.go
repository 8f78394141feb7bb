// Package main provides a terminal watcher that follows the
// environmental state of one city, mainly for operational smoke tests.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality"
	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality/openmeteo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode/nominatim"
	"github.com/vedantwankhade123/cleancity-sub001/internal/monitor"
)

func main() {
	city := flag.String("city", "Amravati", "city to watch")
	interval := flag.Duration("interval", 30*time.Minute, "refresh interval")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	geocoder := geocode.NewService(geocode.ServiceConfig{
		Provider: nominatim.NewClient(nominatim.ClientConfig{}),
		Logger:   log,
	})

	aggregator := monitor.New(monitor.Config{
		Geocoder: geocoder,
		Readings: openmeteo.NewClient(openmeteo.ClientConfig{}),
		Interval: *interval,
		Logger:   log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := aggregator.Observe(ctx, *city)
	defer sub.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-quit:
			log.Info().Msg("stopping watch")
			return
		case st, ok := <-sub.States():
			if !ok {
				return
			}
			event := log.Info().
				Str("city", *city).
				Str("phase", string(st.Phase))
			if st.Data != nil {
				category := airquality.Classify(float64(st.Data.AQI))
				event = event.
					Int("aqi", st.Data.AQI).
					Str("category", category.Label).
					Float64("severity_pct", airquality.NormalizedSeverity(float64(st.Data.AQI)))
			}
			if st.LastError != "" {
				event = event.Str("last_error", st.LastError)
			}
			event.Msg("environment state")
		}
	}
}
