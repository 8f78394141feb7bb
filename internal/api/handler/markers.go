package handler

import (
	"net/http"

	"github.com/vedantwankhade123/cleancity-sub001/internal/api/response"
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/markers"
	"github.com/vedantwankhade123/cleancity-sub001/internal/report"
)

// MarkersHandler renders the report map view.
type MarkersHandler struct {
	reports        report.Repository
	fallbackCenter geo.Coordinate
}

// NewMarkersHandler creates a markers handler.
func NewMarkersHandler(reports report.Repository, fallbackCenter geo.Coordinate) *MarkersHandler {
	return &MarkersHandler{
		reports:        reports,
		fallbackCenter: fallbackCenter,
	}
}

// List handles GET /v1/map/markers.
func (h *MarkersHandler) List(w http.ResponseWriter, r *http.Request) {
	status := report.Status(r.URL.Query().Get("status"))

	var (
		reports []report.Report
		err     error
	)
	if status != "" {
		reports, err = h.reports.ListByStatus(r.Context(), status)
	} else {
		reports, err = h.reports.List(r.Context())
	}
	if err != nil {
		response.InternalError(w, r, "failed to load reports")
		return
	}

	response.JSON(w, r, http.StatusOK, markers.Render(reports, h.fallbackCenter))
}
