// Package handler provides HTTP handlers for the monitoring API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vedantwankhade123/cleancity-sub001/internal/api/response"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geocode"
)

// GeocodeHandler exposes forward and reverse geocoding.
type GeocodeHandler struct {
	geocoder geocode.Geocoder
}

// NewGeocodeHandler creates a geocode handler.
func NewGeocodeHandler(geocoder geocode.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Search handles GET /v1/geocode/search?q=<query>.
func (h *GeocodeHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	loc, err := h.geocoder.ForwardSearch(r.Context(), query)
	switch {
	case errors.Is(err, geocode.ErrEmptyQuery):
		response.BadRequest(w, r, "query parameter q is required")
		return
	case errors.Is(err, geocode.ErrNotFound):
		response.NotFound(w, r, "no matching place found")
		return
	case err != nil:
		response.BadGateway(w, r, "geocoding provider unavailable")
		return
	}

	response.JSON(w, r, http.StatusOK, loc)
}

// reverseBody is the wire shape of a reverse lookup result.
type reverseBody struct {
	Coordinate geo.Coordinate `json:"coordinate"`
	Address    string         `json:"address"`
}

// Reverse handles GET /v1/geocode/reverse?lat=<lat>&lon=<lon>.
// Best-effort like the gateway itself: provider failures yield the
// address sentinel, not an error status.
func (h *GeocodeHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		response.BadRequest(w, r, "lat and lon query parameters are required")
		return
	}

	coord := geo.Coordinate{Latitude: lat, Longitude: lon}
	if !coord.Valid() {
		response.BadRequest(w, r, "coordinate out of range")
		return
	}

	response.JSON(w, r, http.StatusOK, reverseBody{
		Coordinate: coord,
		Address:    h.geocoder.ReverseResolve(r.Context(), coord),
	})
}
