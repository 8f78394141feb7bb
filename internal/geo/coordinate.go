// Package geo provides the coordinate value type shared by the
// geocoding, monitoring, and map-rendering components.
package geo

import "strconv"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether the coordinate is the (0,0) unset sentinel.
// The literal null-island pair is never a real report or picker location.
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Valid reports whether the coordinate is inside WGS84 bounds and not the
// unset sentinel.
func (c Coordinate) Valid() bool {
	if c.IsZero() {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Parse builds a Coordinate from string lat/lon fields as stored on reports.
// Returns false for missing fields, unparseable values, out-of-range values,
// or the "0"/"0" sentinel pair.
func Parse(lat, lon string) (Coordinate, bool) {
	if lat == "" || lon == "" {
		return Coordinate{}, false
	}
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinate{}, false
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coordinate{}, false
	}
	c := Coordinate{Latitude: latF, Longitude: lonF}
	if !c.Valid() {
		return Coordinate{}, false
	}
	return c, true
}
