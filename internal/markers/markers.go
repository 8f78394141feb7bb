// Package markers maps stored reports to map-marker presentation.
package markers

import (
	"github.com/vedantwankhade123/cleancity-sub001/internal/geo"
	"github.com/vedantwankhade123/cleancity-sub001/internal/report"
)

// Style is a marker's visual treatment, derived from report status.
type Style string

const (
	StyleNeutral    Style = "neutral"
	StyleInProgress Style = "in-progress"
	StyleSuccess    Style = "success"
	StyleFailure    Style = "failure"
)

// Marker is one renderable map marker.
type Marker struct {
	ReportID   int64          `json:"report_id"`
	Coordinate geo.Coordinate `json:"coordinate"`
	Style      Style          `json:"style"`
	Animated   bool           `json:"animated"`
	Title      string         `json:"title"`
	Address    string         `json:"address"`
	ImageURL   string         `json:"image_url,omitempty"`
}

// MapView is the rendered marker set plus the map's initial center.
type MapView struct {
	Center  geo.Coordinate `json:"center"`
	Markers []Marker       `json:"markers"`
}

// StyleFor maps a report status to its marker style. Unknown statuses
// render as neutral rather than failing; the store may grow states this
// core has never seen. The second return reports whether the marker
// animates.
func StyleFor(status report.Status) (Style, bool) {
	switch status {
	case report.StatusProcessing:
		return StyleInProgress, true
	case report.StatusCompleted:
		return StyleSuccess, false
	case report.StatusRejected:
		return StyleFailure, false
	case report.StatusPending:
		return StyleNeutral, false
	default:
		return StyleNeutral, false
	}
}

// Render filters out reports without a usable coordinate and maps the
// rest to markers. The map centers on the first valid report, or on
// fallbackCenter when none qualify.
func Render(reports []report.Report, fallbackCenter geo.Coordinate) MapView {
	view := MapView{
		Center:  fallbackCenter,
		Markers: make([]Marker, 0, len(reports)),
	}

	for _, r := range reports {
		coord, ok := r.Coordinate()
		if !ok {
			continue
		}

		if len(view.Markers) == 0 {
			view.Center = coord
		}

		style, animated := StyleFor(r.Status)
		view.Markers = append(view.Markers, Marker{
			ReportID:   r.ID,
			Coordinate: coord,
			Style:      style,
			Animated:   animated,
			Title:      r.Title,
			Address:    r.Address,
			ImageURL:   r.ImageURL,
		})
	}

	return view
}
