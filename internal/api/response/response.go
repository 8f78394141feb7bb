// Package response provides JSON response helpers for the monitoring API.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/vedantwankhade123/cleancity-sub001/internal/api/middleware"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, _ *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes a JSON error response with the request ID attached.
func Error(w http.ResponseWriter, r *http.Request, status int, detail string) {
	JSON(w, r, status, errorBody{
		Error:     detail,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, http.StatusBadRequest, detail)
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, http.StatusNotFound, detail)
}

// BadGateway writes a 502 error response for upstream provider faults.
func BadGateway(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, http.StatusBadGateway, detail)
}

// InternalError writes a 500 error response.
func InternalError(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, http.StatusInternalServerError, detail)
}
