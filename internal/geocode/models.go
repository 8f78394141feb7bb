// Package geocode provides forward and reverse geocoding against an
// external place-lookup provider.
package geocode

import (
	"errors"

	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
)

// Gateway errors.
var (
	ErrEmptyQuery = errors.New("search query is empty")
	ErrNotFound   = errors.New("no matching place found")
)

// Reverse lookup sentinels. Reverse geocoding is cosmetic, so failures
// surface as one of these strings instead of an error.
const (
	AddressNotFound = "Address not found"
	CurrentLocation = "Current Location"
)

// Source records which user action produced a resolved location.
type Source string

const (
	SourceSearch  Source = "SEARCH"
	SourceDrag    Source = "DRAG"
	SourceDevice  Source = "DEVICE"
	SourceInitial Source = "INITIAL"
)

// ResolvedLocation is a converged coordinate/address pair.
type ResolvedLocation struct {
	Coordinate geo.Coordinate `json:"coordinate"`
	Address    string         `json:"address"`
	Source     Source         `json:"source"`
}

// Place is a raw provider search result.
type Place struct {
	Coordinate  geo.Coordinate
	DisplayName string
}
