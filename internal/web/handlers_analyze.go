package web

import (
	"encoding/json"
	"net/http"

	"github.com/snippetly/song-snippetly/internal/analyzer"
)

// analyzeRequest is the POST /api/analyze body.
type analyzeRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// Analyze classifies a chat message (POST /api/analyze).
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	cl, err := h.classifier.Classify(req.Message, req.Language)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": cl})
}

// responsesRequest is the POST /api/responses body. Either a prior
// analysis is supplied, or a message to analyze first.
type responsesRequest struct {
	Analysis *analyzer.Classification `json:"analysis"`
	Message  string                   `json:"message"`
	Language string                   `json:"language"`
}

// ComposeResponses suggests replies for a classified message
// (POST /api/responses).
func (h *Handlers) ComposeResponses(w http.ResponseWriter, r *http.Request) {
	var req responsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	cl := req.Analysis
	if cl == nil {
		analyzed, err := h.classifier.Classify(req.Message, req.Language)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		cl = &analyzed
	}

	candidates := h.composer.Compose(*cl)
	writeJSON(w, http.StatusOK, envelope{
		"success":  true,
		"count":    len(candidates),
		"data":     candidates,
		"analysis": cl,
	})
}
