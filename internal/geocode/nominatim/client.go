// Package nominatim provides a client for a Nominatim-style geocoding API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
	"github.com/vedantwankhade123/cleancity-sub001/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the public Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// ProviderName identifies this provider.
	ProviderName = "nominatim"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Nominatim client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// UserAgent sent with each request; Nominatim's usage policy
	// requires an identifying agent.
	UserAgent string

	// HTTPClient is the HTTP client to use. If nil, a resilient
	// client with defaults is created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is a Nominatim API client implementing geocode.Provider.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient HTTPDoer
}

// NewClient creates a new Nominatim client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "cleancity-monitor/1.0"
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
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// Nominatim returns lat/lon as JSON strings.

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Search performs a forward place search for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]geocode.Place, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(query))

	var results []searchResult
	if err := c.getJSON(ctx, u, &results); err != nil {
		return nil, err
	}

	places := make([]geocode.Place, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		places = append(places, geocode.Place{
			Coordinate:  geo.Coordinate{Latitude: lat, Longitude: lon},
			DisplayName: r.DisplayName,
		})
	}

	return places, nil
}

// Reverse looks up the display address for a coordinate.
func (c *Client) Reverse(ctx context.Context, coord geo.Coordinate) (string, error) {
	u := fmt.Sprintf("%s/reverse?lat=%.6f&lon=%.6f&format=json",
		c.baseURL, coord.Latitude, coord.Longitude)

	var result reverseResult
	if err := c.getJSON(ctx, u, &result); err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("reverse lookup: %s", result.Error)
	}

	return result.DisplayName, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from geocoding endpoint", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
