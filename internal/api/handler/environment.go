package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vedantwankhade123/cleancity-sub001/internal/airquality"
	"github.com/vedantwankhade123/cleancity-sub001/internal/api/response"
	"github.com/vedantwankhade123/cleancity-sub001/internal/monitor"
)

// EnvironmentHandler serves the latest aggregator state per watched
// city. The first request for a city starts a long-lived subscription;
// subsequent requests read the most recent emission, so clients get an
// answer immediately even while a refresh is in flight.
type EnvironmentHandler struct {
	aggregator *monitor.Aggregator
	logger     zerolog.Logger

	mu      sync.Mutex
	watches map[string]*cityWatch
}

type cityWatch struct {
	sub *monitor.Subscription

	mu     sync.RWMutex
	latest monitor.State
}

func (w *cityWatch) consume() {
	for st := range w.sub.States() {
		w.mu.Lock()
		w.latest = st
		w.mu.Unlock()
	}
}

func (w *cityWatch) snapshot() monitor.State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

// NewEnvironmentHandler creates an environment handler.
func NewEnvironmentHandler(aggregator *monitor.Aggregator, logger zerolog.Logger) *EnvironmentHandler {
	return &EnvironmentHandler{
		aggregator: aggregator,
		logger:     logger,
		watches:    make(map[string]*cityWatch),
	}
}

// environmentBody is the wire shape of an environment snapshot.
type environmentBody struct {
	City          string               `json:"city"`
	Phase         monitor.Phase        `json:"phase"`
	Data          *airquality.Reading  `json:"data"`
	Category      *airquality.Category `json:"category,omitempty"`
	SeverityPct   *float64             `json:"severity_pct,omitempty"`
	LastError     string               `json:"last_error,omitempty"`
	LastFetchedAt *time.Time           `json:"last_fetched_at,omitempty"`
}

// Current handles GET /v1/environment?city=<name>.
func (h *EnvironmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		response.BadRequest(w, r, "city query parameter is required")
		return
	}

	st := h.watch(city).snapshot()

	body := environmentBody{
		City:      city,
		Phase:     st.Phase,
		Data:      st.Data,
		LastError: st.LastError,
	}
	if st.Data != nil {
		category := airquality.Classify(float64(st.Data.AQI))
		severity := airquality.NormalizedSeverity(float64(st.Data.AQI))
		body.Category = &category
		body.SeverityPct = &severity
	}
	if !st.LastFetchedAt.IsZero() {
		t := st.LastFetchedAt
		body.LastFetchedAt = &t
	}

	response.JSON(w, r, http.StatusOK, body)
}

// watch returns the subscription for a city, starting one on first use.
func (h *EnvironmentHandler) watch(city string) *cityWatch {
	key := strings.ToLower(city)

	h.mu.Lock()
	defer h.mu.Unlock()

	if cw, ok := h.watches[key]; ok {
		return cw
	}

	h.logger.Info().Str("city", city).Msg("starting environment watch")

	cw := &cityWatch{
		sub:    h.aggregator.Observe(context.Background(), city),
		latest: monitor.State{Phase: monitor.PhaseLoading},
	}
	go cw.consume()
	h.watches[key] = cw
	return cw
}

// Close stops every city subscription. Called on server shutdown so no
// refresh timers outlive the process teardown.
func (h *EnvironmentHandler) Close() {
	h.mu.Lock()
	watches := make([]*cityWatch, 0, len(h.watches))
	for _, cw := range h.watches {
		watches = append(watches, cw)
	}
	h.watches = make(map[string]*cityWatch)
	h.mu.Unlock()

	for _, cw := range watches {
		cw.sub.Stop()
	}
}
