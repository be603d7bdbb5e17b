package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/snippetly/song-snippetly/internal/analyzer"
	"github.com/snippetly/song-snippetly/internal/snippet"
	"github.com/snippetly/song-snippetly/internal/spotify"
)

// envelope is the JSON response shape. Every response carries "success".
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"success": false, "error": message})
}

// respondError maps an error to the HTTP taxonomy: validation problems
// are 400 with the validator's message, missing resources are 404,
// upstream failures are 500 with an opaque message, anything else is a
// logged 500.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *snippet.ValidationError
	var eerr *analyzer.EmptyMessageError
	switch {
	case errors.As(err, &verr), errors.As(err, &eerr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, snippet.ErrNotFound):
		writeError(w, http.StatusNotFound, "Snippet not found")
	case errors.Is(err, spotify.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "Spotify credentials are not configured")
	default:
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
