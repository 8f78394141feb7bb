// Package location orchestrates user-driven location acquisition into a
// converged coordinate/address pair for the report submission flow.
package location

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
)

// Device location errors.
var (
	ErrPermissionDenied  = errors.New("location permission denied")
	ErrDeviceUnavailable = errors.New("device location unavailable")
)

// Phase is the resolver's lifecycle phase. Resolved is re-enterable:
// every user action leaves the machine Resolved again once its network
// work completes, so the UI is never stuck on a spinner.
type Phase string

const (
	PhaseIdle      Phase = "IDLE"
	PhaseResolving Phase = "RESOLVING"
	PhaseResolved  Phase = "RESOLVED"
)

// DeviceLocator returns a one-shot device position. Implementations
// report denial or unavailability via ErrPermissionDenied and
// ErrDeviceUnavailable.
type DeviceLocator interface {
	Locate(ctx context.Context) (geo.Coordinate, error)
}

// Config holds configuration for a resolver instance.
type Config struct {
	// Geocoder performs forward and reverse lookups.
	Geocoder geocode.Geocoder

	// Device is the device geolocation capability (optional).
	Device DeviceLocator

	// DefaultCoordinate and DefaultAddress seed the initial Resolved
	// state so the picker has something displayable before any user
	// interaction. No network call is made for them.
	DefaultCoordinate geo.Coordinate
	DefaultAddress    string

	// Logger for resolver operations.
	Logger zerolog.Logger
}

// Resolver is the location picker state machine for one session. Each
// user action supersedes any still-in-flight one: outcomes apply
// last-writer-wins by start order, not completion order.
type Resolver struct {
	geocoder geocode.Geocoder
	device   DeviceLocator
	logger   zerolog.Logger

	mu      sync.Mutex
	phase   Phase
	current geocode.ResolvedLocation
	gen     uint64

	// reverseDone is signalled after each async reverse lookup settles,
	// applied or discarded. Tests synchronize on it.
	reverseDone chan struct{}
}

// New creates a resolver seeded with the configured default location.
func New(cfg Config) *Resolver {
	return &Resolver{
		geocoder: cfg.Geocoder,
		device:   cfg.Device,
		logger:   cfg.Logger,
		phase:    PhaseResolved,
		current: geocode.ResolvedLocation{
			Coordinate: cfg.DefaultCoordinate,
			Address:    cfg.DefaultAddress,
			Source:     geocode.SourceInitial,
		},
		reverseDone: make(chan struct{}, 8),
	}
}

// Snapshot returns the current phase and location.
func (r *Resolver) Snapshot() (Phase, geocode.ResolvedLocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase, r.current
}

// SubmitSearch resolves a free-text query. During the call the phase is
// Resolving; it always lands back on Resolved. On failure the previous
// location is kept and the error is returned for inline display. If a
// newer action started while the search was in flight, its outcome is
// discarded entirely and SubmitSearch returns nil.
func (r *Resolver) SubmitSearch(ctx context.Context, query string) error {
	gen := r.begin()

	loc, err := r.geocoder.ForwardSearch(ctx, query)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return nil // superseded
	}
	r.phase = PhaseResolved
	if err != nil {
		r.logger.Warn().Err(err).Str("query", query).Msg("location search failed")
		return err
	}
	r.current = *loc
	return nil
}

// DragMarkerTo applies a dragged coordinate immediately, keeping the
// previous address, then refines the address asynchronously. Map
// panning is never blocked on the reverse lookup.
func (r *Resolver) DragMarkerTo(ctx context.Context, coord geo.Coordinate) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.phase = PhaseResolved
	r.current = geocode.ResolvedLocation{
		Coordinate: coord,
		Address:    r.current.Address,
		Source:     geocode.SourceDrag,
	}
	r.mu.Unlock()

	go r.refineAddress(ctx, gen, coord)
}

// UseDeviceLocation resolves the device's position. Permission denial
// or unavailability keeps the prior Resolved state and returns the
// error. Success applies the coordinate like a drag and refines the
// address asynchronously.
func (r *Resolver) UseDeviceLocation(ctx context.Context) error {
	if r.device == nil {
		return ErrDeviceUnavailable
	}

	gen := r.begin()

	coord, err := r.device.Locate(ctx)

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return nil // superseded
	}
	r.phase = PhaseResolved
	if err != nil {
		r.mu.Unlock()
		r.logger.Warn().Err(err).Msg("device location failed")
		return err
	}
	r.current = geocode.ResolvedLocation{
		Coordinate: coord,
		Address:    geocode.CurrentLocation,
		Source:     geocode.SourceDevice,
	}
	r.mu.Unlock()

	go r.refineAddress(ctx, gen, coord)
	return nil
}

// refineAddress updates only the address field, and only when no newer
// action has started since gen was assigned.
func (r *Resolver) refineAddress(ctx context.Context, gen uint64, coord geo.Coordinate) {
	addr := r.geocoder.ReverseResolve(ctx, coord)

	r.mu.Lock()
	if gen == r.gen {
		r.current.Address = addr
	}
	r.mu.Unlock()

	select {
	case r.reverseDone <- struct{}{}:
	default:
	}
}

// ReverseSettled exposes completion of async address refinement so
// callers (and tests) can wait without polling.
func (r *Resolver) ReverseSettled() <-chan struct{} {
	return r.reverseDone
}

// begin registers a new in-flight action and returns its generation.
func (r *Resolver) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.phase = PhaseResolving
	return r.gen
}
