package geocode

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
)

// Provider is a raw geocoding backend.
type Provider interface {
	// Search returns places matching a free-text query, best match first.
	Search(ctx context.Context, query string) ([]Place, error)

	// Reverse returns a display address for a coordinate.
	Reverse(ctx context.Context, coord geo.Coordinate) (string, error)
}

// Geocoder is the gateway consumed by the resolver and the monitor.
type Geocoder interface {
	ForwardSearch(ctx context.Context, query string) (*ResolvedLocation, error)
	ReverseResolve(ctx context.Context, coord geo.Coordinate) string
}

// ServiceConfig holds configuration for the geocoding service.
type ServiceConfig struct {
	Provider Provider
	Logger   zerolog.Logger
}

// Service implements Geocoder over a Provider, memoizing reverse
// lookups by rounded coordinate so repeated marker drags over the same
// spot do not re-hit the provider.
type Service struct {
	provider Provider
	logger   zerolog.Logger

	mu      sync.Mutex
	reverse map[string]string
}

// NewService creates a geocoding service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		reverse:  make(map[string]string),
	}
}

// ForwardSearch resolves a place name to a location, taking the first
// provider result only. Returns ErrNotFound when the result set is
// empty; transport failures are wrapped and propagated. Neither is
// retried here.
func (s *Service) ForwardSearch(ctx context.Context, query string) (*ResolvedLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	places, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, ErrNotFound)
	}

	first := places[0]
	s.logger.Debug().
		Str("query", query).
		Float64("lat", first.Coordinate.Latitude).
		Float64("lon", first.Coordinate.Longitude).
		Msg("forward geocode resolved")

	return &ResolvedLocation{
		Coordinate: first.Coordinate,
		Address:    first.DisplayName,
		Source:     SourceSearch,
	}, nil
}

// ReverseResolve resolves a coordinate to a display address. Best
// effort: any provider failure or empty result yields the
// AddressNotFound sentinel, never an error, so a slow or broken
// provider cannot block location selection.
func (s *Service) ReverseResolve(ctx context.Context, coord geo.Coordinate) string {
	key := reverseKey(coord)

	s.mu.Lock()
	if addr, ok := s.reverse[key]; ok {
		s.mu.Unlock()
		return addr
	}
	s.mu.Unlock()

	addr, err := s.provider.Reverse(ctx, coord)
	if err != nil || addr == "" {
		if err != nil {
			s.logger.Warn().Err(err).
				Float64("lat", coord.Latitude).
				Float64("lon", coord.Longitude).
				Msg("reverse geocode failed")
		}
		return AddressNotFound
	}

	s.mu.Lock()
	s.reverse[key] = addr
	s.mu.Unlock()
	return addr
}

// reverseKey rounds to 4 decimals, roughly 11m, close enough that
// adjacent drag positions share an address.
func reverseKey(coord geo.Coordinate) string {
	return fmt.Sprintf("%.4f,%.4f", coord.Latitude, coord.Longitude)
}
