// Package report provides read-only access to the citizen report store.
// This core never writes reports; the web application owns them.
package report

import (
	"errors"

	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
)

// Repository errors.
var ErrReportNotFound = errors.New("report not found")

// Status is a report's lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

// Report is a citizen waste report as stored by the web application.
// Coordinates arrive as strings and may be empty or the "0"/"0"
// placeholder for reports filed before location capture existed.
type Report struct {
	ID        int64  `json:"id"`
	Status    Status `json:"status"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	Address   string `json:"address"`
}

// Coordinate parses the report's stored coordinate strings. The second
// return is false when the report has no usable location.
func (r Report) Coordinate() (geo.Coordinate, bool) {
	return geo.Parse(r.Latitude, r.Longitude)
}
