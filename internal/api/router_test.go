package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality"
	"github.com/vedantwankhade123/cleancity-sub001/internal/api"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
	"github.com/vedantwankhade123/cleancity-sub001/internal/monitor"
	"github.com/vedantwankhade123/cleancity-sub001/internal/report"
)

var amravati = geo.Coordinate{Latitude: 20.9374, Longitude: 77.7796}

type fakeGeocoder struct{}

func (fakeGeocoder) ForwardSearch(_ context.Context, query string) (*geocode.ResolvedLocation, error) {
	if query == "" {
		return nil, geocode.ErrEmptyQuery
	}
	if query != "Amravati" {
		return nil, geocode.ErrNotFound
	}
	return &geocode.ResolvedLocation{
		Coordinate: amravati,
		Address:    "Amravati, Maharashtra, India",
		Source:     geocode.SourceSearch,
	}, nil
}

func (fakeGeocoder) ReverseResolve(_ context.Context, _ geo.Coordinate) string {
	return "Rajkamal Square, Amravati"
}

type fakeReadings struct{}

func (fakeReadings) CurrentReading(_ context.Context, _ geo.Coordinate) (*airquality.Reading, error) {
	return &airquality.Reading{
		Timestamp: "2026-09-01T09:00",
		AQI:       68,
		Components: map[string]airquality.Component{
			"pm2_5": {Value: 25, Unit: "μg/m³"},
		},
	}, nil
}

func newTestRouter(t *testing.T) *api.Router {
	t.Helper()

	aggregator := monitor.New(monitor.Config{
		Geocoder: fakeGeocoder{},
		Readings: fakeReadings{},
		Logger:   zerolog.Nop(),
		Clock:    clockwork.NewFakeClock(),
	})

	router := api.NewRouter(api.RouterConfig{
		Version:        "test",
		Logger:         zerolog.Nop(),
		Geocoder:       fakeGeocoder{},
		Aggregator:     aggregator,
		Reports:        report.NewMemoryRepository(report.SeedReports()),
		FallbackCenter: amravati,
		RateLimit:      10000,
	})
	t.Cleanup(router.Close)
	return router
}

func get(t *testing.T, router *api.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := get(t, newTestRouter(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_GeocodeSearch(t *testing.T) {
	rec := get(t, newTestRouter(t), "/v1/geocode/search?q=Amravati")
	require.Equal(t, http.StatusOK, rec.Code)

	var loc geocode.ResolvedLocation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loc))
	assert.Equal(t, amravati, loc.Coordinate)
	assert.Equal(t, geocode.SourceSearch, loc.Source)
}

func TestRouter_GeocodeSearch_NotFound(t *testing.T) {
	rec := get(t, newTestRouter(t), "/v1/geocode/search?q=nowheresville")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_GeocodeSearch_MissingQuery(t *testing.T) {
	rec := get(t, newTestRouter(t), "/v1/geocode/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_GeocodeReverse(t *testing.T) {
	rec := get(t, newTestRouter(t), "/v1/geocode/reverse?lat=20.9374&lon=77.7796")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Address string `json:"address"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Rajkamal Square, Amravati", body.Address)
}

func TestRouter_GeocodeReverse_BadCoordinate(t *testing.T) {
	rec := get(t, newTestRouter(t), "/v1/geocode/reverse?lat=abc&lon=77")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Environment(t *testing.T) {
	router := newTestRouter(t)

	// First hit starts the watch; the aggregator may still be loading.
	// Poll until the READY emission lands.
	require.Eventually(t, func() bool {
		rec := get(t, router, "/v1/environment?city=Amravati")
		if rec.Code != http.StatusOK {
			return false
		}
		var body struct {
			Phase string `json:"phase"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			return false
		}
		return body.Phase == "READY"
	}, 5*time.Second, 10*time.Millisecond)

	rec := get(t, router, "/v1/environment?city=Amravati")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		City     string `json:"city"`
		Phase    string `json:"phase"`
		Data     struct {
			AQI int `json:"aqi"`
		} `json:"data"`
		Category struct {
			Label        string `json:"label"`
			SeverityRank int    `json:"severity_rank"`
		} `json:"category"`
		SeverityPct float64 `json:"severity_pct"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Amravati", body.City)
	assert.Equal(t, 68, body.Data.AQI)
	assert.Equal(t, "Moderate", body.Category.Label)
	assert.Equal(t, 2, body.Category.SeverityRank)
	assert.InDelta(t, 68.0/3, body.SeverityPct, 0.001)
}

func TestRouter_Environment_MissingCity(t *testing.T) {
	rec := get(t, newTestRouter(t), "/v1/environment")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Markers(t *testing.T) {
	rec := get(t, newTestRouter(t), "/v1/map/markers")
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Center  geo.Coordinate `json:"center"`
		Markers []struct {
			ReportID int64  `json:"report_id"`
			Style    string `json:"style"`
		} `json:"markers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	// Seed data has five reports, one without a usable coordinate.
	assert.Len(t, view.Markers, 4)
	for _, m := range view.Markers {
		assert.NotEqual(t, int64(5), m.ReportID, "location-less report must not render")
	}
}
