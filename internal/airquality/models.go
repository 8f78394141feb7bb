// Package airquality provides pollutant reading models and AQI
// severity classification.
package airquality

import (
	"errors"
	"time"
)

// Provider errors.
var (
	ErrNoReading           = errors.New("no current reading available")
	ErrProviderUnavailable = errors.New("air quality provider unavailable")
)

// Component is a single pollutant concentration with its unit.
type Component struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Reading is a point-in-time pollutant reading for one location.
// A reading is immutable once constructed; a refresh produces a new
// Reading that fully replaces the old one.
type Reading struct {
	// Timestamp is the provider's observation time, ISO-8601.
	Timestamp string `json:"timestamp"`

	// AQI is the unitless air quality index, always >= 0.
	AQI int `json:"aqi"`

	// Components maps pollutant name (pm2_5, pm10, ...) to its measurement.
	Components map[string]Component `json:"components"`
}

// Placeholder returns the fixed synthetic reading shown when every
// upstream provider has failed. The values are deliberately round so a
// fabricated panel is recognizable in demos and never mistaken for live
// data.
func Placeholder(now time.Time) *Reading {
	return &Reading{
		Timestamp: now.UTC().Format(time.RFC3339),
		AQI:       85,
		Components: map[string]Component{
			"pm2_5":            {Value: 30, Unit: "μg/m³"},
			"pm10":             {Value: 55, Unit: "μg/m³"},
			"nitrogen_dioxide": {Value: 20, Unit: "μg/m³"},
			"sulphur_dioxide":  {Value: 10, Unit: "μg/m³"},
			"carbon_monoxide":  {Value: 500, Unit: "μg/m³"},
			"ozone":            {Value: 40, Unit: "μg/m³"},
		},
	}
}
