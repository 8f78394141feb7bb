// Package openmeteo provides a client for the Open-Meteo air quality API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the Open-Meteo air quality API base URL.
	DefaultBaseURL = "https://air-quality-api.open-meteo.com"

	// ProviderName identifies this provider.
	ProviderName = "open-meteo"
)

// pollutantFields is the fixed set of identifiers requested from the
// provider. us_aqi is the headline index; the rest become components.
var pollutantFields = []string{
	"us_aqi",
	"pm2_5",
	"pm10",
	"carbon_monoxide",
	"nitrogen_dioxide",
	"sulphur_dioxide",
	"ozone",
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use. If nil, a resilient
	// client with defaults is created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is an Open-Meteo air quality API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:    ProviderName,
			Timeout: cfg.Timeout,
		})
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

type currentResponse struct {
	Current      currentBlock      `json:"current"`
	CurrentUnits map[string]string `json:"current_units"`
}

type currentBlock struct {
	Time            string   `json:"time"`
	USAQI           *float64 `json:"us_aqi"`
	PM25            *float64 `json:"pm2_5"`
	PM10            *float64 `json:"pm10"`
	CarbonMonoxide  *float64 `json:"carbon_monoxide"`
	NitrogenDioxide *float64 `json:"nitrogen_dioxide"`
	SulphurDioxide  *float64 `json:"sulphur_dioxide"`
	Ozone           *float64 `json:"ozone"`
}

func (b *currentBlock) component(field string) *float64 {
	switch field {
	case "pm2_5":
		return b.PM25
	case "pm10":
		return b.PM10
	case "carbon_monoxide":
		return b.CarbonMonoxide
	case "nitrogen_dioxide":
		return b.NitrogenDioxide
	case "sulphur_dioxide":
		return b.SulphurDioxide
	case "ozone":
		return b.Ozone
	default:
		return nil
	}
}

// CurrentReading fetches the current pollutant readings for a coordinate.
func (c *Client) CurrentReading(ctx context.Context, coord geo.Coordinate) (*airquality.Reading, error) {
	url := fmt.Sprintf("%s/v1/air-quality?latitude=%.4f&longitude=%.4f&current=%s",
		c.baseURL, coord.Latitude, coord.Longitude, strings.Join(pollutantFields, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch readings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from air quality endpoint", resp.StatusCode)
	}

	var result currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode readings response: %w", err)
	}

	return c.toReading(&result)
}

func (c *Client) toReading(resp *currentResponse) (*airquality.Reading, error) {
	if resp.Current.USAQI == nil {
		return nil, airquality.ErrNoReading
	}

	reading := &airquality.Reading{
		Timestamp:  resp.Current.Time,
		AQI:        int(*resp.Current.USAQI + 0.5),
		Components: make(map[string]airquality.Component),
	}

	for _, field := range pollutantFields {
		if field == "us_aqi" {
			continue
		}
		value := resp.Current.component(field)
		if value == nil {
			continue
		}
		reading.Components[field] = airquality.Component{
			Value: *value,
			Unit:  resp.CurrentUnits[field],
		}
	}

	return reading, nil
}
