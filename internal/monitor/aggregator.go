// Package monitor aggregates the geocode -> pollutant-readings chain
// for a watched city into a single resilient view state.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
)

// Phase is the aggregator's display phase.
type Phase string

const (
	PhaseLoading  Phase = "LOADING"
	PhaseReady    Phase = "READY"
	PhaseDegraded Phase = "DEGRADED"
)

// Failure causes preserved in State.LastError. All of them collapse to
// the same DEGRADED presentation; only the message differs.
var (
	ErrLocationNotFound = errors.New("location not found")
	ErrGeocodeFailed    = errors.New("geocoding service unreachable")
	ErrReadingsFailed   = errors.New("air quality service unreachable")
)

// State is one emission of the aggregator stream. A DEGRADED state
// always carries a synthetic reading so the consumer can render a full
// panel; it never has to handle a nil Data alongside an error.
type State struct {
	Phase         Phase               `json:"phase"`
	Data          *airquality.Reading `json:"data"`
	LastError     string              `json:"last_error,omitempty"`
	LastFetchedAt time.Time           `json:"last_fetched_at,omitzero"`
}

// ReadingsProvider fetches current pollutant readings for a coordinate.
type ReadingsProvider interface {
	CurrentReading(ctx context.Context, coord geo.Coordinate) (*airquality.Reading, error)
}

// Config holds configuration for the aggregator.
type Config struct {
	// Geocoder resolves the watched place name to a coordinate.
	Geocoder geocode.Geocoder

	// Readings fetches pollutant readings for the resolved coordinate.
	Readings ReadingsProvider

	// Interval between refreshes (default: 30 minutes).
	Interval time.Duration

	// Logger for aggregator operations.
	Logger zerolog.Logger

	// Clock is the time source; tests inject a fake.
	Clock clockwork.Clock
}

// Aggregator produces AggregatorState streams for watched cities.
type Aggregator struct {
	geocoder geocode.Geocoder
	readings ReadingsProvider
	interval time.Duration
	logger   zerolog.Logger
	clock    clockwork.Clock
}

// New creates an aggregator.
func New(cfg Config) *Aggregator {
	interval := cfg.Interval
	if interval == 0 {
		interval = 30 * time.Minute
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Aggregator{
		geocoder: cfg.Geocoder,
		readings: cfg.Readings,
		interval: interval,
		logger:   cfg.Logger,
		clock:    clock,
	}
}

// Subscription is one active observation of a place. Stop is
// idempotent; after it returns, the refresh timer is released, the
// states channel is closed, and no further emissions occur.
type Subscription struct {
	states   chan State
	cancel   context.CancelFunc
	stopOnce sync.Once
	done     chan struct{}
}

// States returns the stream of aggregator states. The channel is
// closed on Stop or when the parent context ends.
func (s *Subscription) States() <-chan State {
	return s.states
}

// Stop tears down the subscription and waits for the refresh loop to
// exit.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Observe starts watching a place. The first emission is LOADING,
// followed by a READY or DEGRADED state per fetch, refreshed on the
// configured interval until the subscription stops. Observing a
// different place means starting a new subscription and stopping the
// old one.
func (a *Aggregator) Observe(ctx context.Context, place string) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		states: make(chan State, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go a.run(ctx, place, sub)
	return sub
}

func (a *Aggregator) run(ctx context.Context, place string, sub *Subscription) {
	defer close(sub.done)
	defer close(sub.states)

	if !a.emit(ctx, sub, State{Phase: PhaseLoading}) {
		return
	}
	if !a.emit(ctx, sub, a.fetch(ctx, place)) {
		return
	}

	ticker := a.clock.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if !a.emit(ctx, sub, a.fetch(ctx, place)) {
				return
			}
		}
	}
}

func (a *Aggregator) emit(ctx context.Context, sub *Subscription, st State) bool {
	select {
	case sub.states <- st:
		return true
	case <-ctx.Done():
		return false
	}
}

// fetch runs the two-stage chain once. Both stages absorb their errors
// into a DEGRADED state; subscribers only ever see well-formed states.
func (a *Aggregator) fetch(ctx context.Context, place string) State {
	loc, err := a.geocoder.ForwardSearch(ctx, place)
	if err != nil {
		cause := ErrGeocodeFailed
		if errors.Is(err, geocode.ErrNotFound) || errors.Is(err, geocode.ErrEmptyQuery) {
			cause = ErrLocationNotFound
		}
		return a.degraded(place, cause, err)
	}

	reading, err := a.readings.CurrentReading(ctx, loc.Coordinate)
	if err != nil {
		return a.degraded(place, ErrReadingsFailed, err)
	}

	a.logger.Info().
		Str("place", place).
		Int("aqi", reading.AQI).
		Str("category", airquality.Classify(float64(reading.AQI)).Label).
		Msg("environmental data refreshed")

	return State{
		Phase:         PhaseReady,
		Data:          reading,
		LastFetchedAt: a.clock.Now(),
	}
}

func (a *Aggregator) degraded(place string, cause, err error) State {
	a.logger.Warn().
		Err(err).
		Str("place", place).
		Msg("serving synthetic environmental data")

	return State{
		Phase:     PhaseDegraded,
		Data:      airquality.Placeholder(a.clock.Now()),
		LastError: cause.Error(),
	}
}
