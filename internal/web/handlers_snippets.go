package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/snippetly/song-snippetly/internal/playback"
	"github.com/snippetly/song-snippetly/internal/snippet"
)

// ListSnippets returns the catalog ordered by popularity (GET /api/snippets).
func (h *Handlers) ListSnippets(w http.ResponseWriter, r *http.Request) {
	data := h.catalog.All(h.listLimit)
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}

// SnippetsByMood returns a random sample of snippets tagged with the mood
// (GET /api/snippets/mood/{mood}).
func (h *Handlers) SnippetsByMood(w http.ResponseWriter, r *http.Request) {
	mood, err := snippet.ParseMood(chi.URLParam(r, "mood"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	data := h.catalog.ByMood(mood, queryInt(r, "limit", h.sampleSize))
	if len(data) == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("No snippets found for mood: %s", mood))
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"mood":    mood,
		"count":   len(data),
		"data":    data,
	})
}

// RandomSnippet returns one random snippet (GET /api/snippets/random).
func (h *Handlers) RandomSnippet(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.Random()
	if !ok {
		writeError(w, http.StatusNotFound, "No snippets available")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": s})
}

// SnippetByID returns a single snippet (GET /api/snippets/{id}).
func (h *Handlers) SnippetByID(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Snippet not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "data": s})
}

// ActiveLine resolves the lyric line active at playback position t
// seconds (GET /api/snippets/{id}/active-line?t=S).
func (h *Handlers) ActiveLine(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Snippet not found")
		return
	}

	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "query parameter t must be a number of seconds")
		return
	}

	index := playback.ActiveLineIndex(s.Timings, t)
	line := ""
	if index < len(s.LyricLines) {
		line = s.LyricLines[index]
	}
	writeJSON(w, http.StatusOK, envelope{
		"success":    true,
		"snippetId":  s.ID,
		"position":   t,
		"activeLine": index,
		"line":       line,
	})
}

// createSnippetRequest is the POST /api/snippets body.
type createSnippetRequest struct {
	Title           string    `json:"title"`
	Artist          string    `json:"artist"`
	Mood            []string  `json:"mood"`
	LyricLines      []string  `json:"lyricLines"`
	Timings         []float64 `json:"timings"`
	AudioPreviewURL string    `json:"audioPreviewUrl"`
	SpotifyURL      string    `json:"spotifyUrl"`
	CoverImage      string    `json:"coverImage"`
	Duration        int       `json:"duration"`
	Genre           string    `json:"genre"`
	Popularity      int       `json:"popularity"`
}

// CreateSnippet stores a new snippet (POST /api/snippets).
func (h *Handlers) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	var req createSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	moods := make([]snippet.Mood, len(req.Mood))
	for i, m := range req.Mood {
		moods[i] = snippet.Mood(m)
	}
	s := snippet.Snippet{
		Title:           req.Title,
		Artist:          req.Artist,
		Mood:            moods,
		LyricLines:      req.LyricLines,
		Timings:         req.Timings,
		AudioPreviewURL: req.AudioPreviewURL,
		SpotifyURL:      req.SpotifyURL,
		CoverImage:      req.CoverImage,
		Duration:        req.Duration,
		Genre:           req.Genre,
		Popularity:      req.Popularity,
	}

	stored, err := h.catalog.Add(r.Context(), s)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		"success": true,
		"message": "Snippet created successfully",
		"data":    stored,
	})
}

// ListMoods returns the five snippet moods (GET /api/snippets/moods/list).
func (h *Handlers) ListMoods(w http.ResponseWriter, r *http.Request) {
	moods := snippet.MoodCatalog()
	out := make([]envelope, len(moods))
	for i, m := range moods {
		out[i] = envelope{
			"name":        m.Name,
			"emoji":       m.Emoji,
			"description": m.Description,
		}
	}
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"count":   len(out),
		"data":    out,
	})
}
