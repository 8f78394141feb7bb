package handler

import (
	"net/http"

	"github.com/vedantwankhade123/cleancity-sub001/internal/api/response"
)

// OpsHandler serves health and readiness probes.
type OpsHandler struct {
	version   string
	buildTime string
}

// NewOpsHandler creates an ops handler.
func NewOpsHandler(version, buildTime string) *OpsHandler {
	return &OpsHandler{version: version, buildTime: buildTime}
}

// Health handles GET /healthz.
func (h *OpsHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready handles GET /readyz.
func (h *OpsHandler) Ready(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, map[string]string{
		"status":     "ready",
		"version":    h.version,
		"build_time": h.buildTime,
	})
}
