package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		coord geo.Coordinate
		want  bool
	}{
		{"amravati", geo.Coordinate{Latitude: 20.9374, Longitude: 77.7796}, true},
		{"zero sentinel", geo.Coordinate{}, false},
		{"lat out of range", geo.Coordinate{Latitude: 91, Longitude: 10}, false},
		{"lon out of range", geo.Coordinate{Latitude: 10, Longitude: -181}, false},
		{"southern hemisphere", geo.Coordinate{Latitude: -33.86, Longitude: 151.21}, true},
		{"zero lat only", geo.Coordinate{Latitude: 0, Longitude: 77.7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Valid())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon string
		want     geo.Coordinate
		ok       bool
	}{
		{"valid", "19.0", "72.8", geo.Coordinate{Latitude: 19.0, Longitude: 72.8}, true},
		{"zero pair sentinel", "0", "0", geo.Coordinate{}, false},
		{"missing lat", "", "72.8", geo.Coordinate{}, false},
		{"missing lon", "19.0", "", geo.Coordinate{}, false},
		{"garbage", "north", "east", geo.Coordinate{}, false},
		{"out of range", "120.5", "72.8", geo.Coordinate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := geo.Parse(tt.lat, tt.lon)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
