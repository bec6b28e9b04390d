package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/oxyfarm/aercomp/internal/engine"
	"github.com/oxyfarm/aercomp/internal/logging"
)

// errorResponse is the structured error payload. The message is the
// user-visible error text; callers never see a stack trace.
type errorResponse struct {
	Error string `json:"error"`
}

// handleCompare serves POST /api/v1/compare: JSON request in, sanitized
// comparison document or structured error out.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		observeCompare(ResultError, time.Since(start))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read request body"})
		return
	}

	req, err := engine.ParseRequest(body)
	if err != nil {
		observeCompare(ResultError, time.Since(start))
		if engine.IsValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.Debug().
			Str("component", "server").
			Err(err).
			Msg("malformed comparison request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	result, err := engine.Compare(ctx, req)
	if err != nil {
		observeCompare(ResultError, time.Since(start))
		status := http.StatusInternalServerError
		if engine.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	observeCompare(ResultSuccess, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
