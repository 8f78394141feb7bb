package airquality_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		aqi      float64
		wantRank int
		wantName string
	}{
		{"zero", 0, 1, "Good"},
		{"mid good", 32, 1, "Good"},
		{"boundary 50 stays good", 50, 1, "Good"},
		{"just over 50", 50.1, 2, "Moderate"},
		{"amravati demo value", 68, 2, "Moderate"},
		{"boundary 100 stays moderate", 100, 2, "Moderate"},
		{"sensitive groups", 125, 3, "Unhealthy for Sensitive Groups"},
		{"boundary 150", 150, 3, "Unhealthy for Sensitive Groups"},
		{"unhealthy", 180, 4, "Unhealthy"},
		{"boundary 200", 200, 4, "Unhealthy"},
		{"very unhealthy", 250, 5, "Very Unhealthy"},
		{"boundary 300", 300, 5, "Very Unhealthy"},
		{"hazardous", 301, 6, "Hazardous"},
		{"absurdly high still hazardous", 12000, 6, "Hazardous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := airquality.Classify(tt.aqi)
			assert.Equal(t, tt.wantRank, got.SeverityRank)
			assert.Equal(t, tt.wantName, got.Label)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestClassify_RankMonotonic(t *testing.T) {
	prev := 0
	for aqi := 0.0; aqi <= 600; aqi += 0.5 {
		rank := airquality.Classify(aqi).SeverityRank
		assert.GreaterOrEqual(t, rank, prev, "rank regressed at aqi=%v", aqi)
		prev = rank
	}
}

func TestNormalizedSeverity(t *testing.T) {
	assert.Equal(t, 0.0, airquality.NormalizedSeverity(0))
	assert.InDelta(t, 22.666, airquality.NormalizedSeverity(68), 0.001)
	assert.InDelta(t, 99.9, airquality.NormalizedSeverity(299.7), 0.0001)
	assert.Equal(t, 100.0, airquality.NormalizedSeverity(300))
	assert.Equal(t, 100.0, airquality.NormalizedSeverity(9999))
}

func TestPlaceholder(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC)
	r := airquality.Placeholder(now)
	assert.Equal(t, 85, r.AQI)
	assert.Equal(t, "2026-09-01T09:30:00Z", r.Timestamp)
	assert.Contains(t, r.Components, "pm2_5")
	assert.Contains(t, r.Components, "ozone")
	for name, c := range r.Components {
		assert.Positive(t, c.Value, "component %s", name)
		assert.NotEmpty(t, c.Unit, "component %s", name)
	}
}
