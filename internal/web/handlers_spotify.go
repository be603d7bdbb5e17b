package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/snippetly/song-snippetly/internal/snippet"
)

// SpotifySearch searches Spotify for tracks matching a mood
// (GET /api/spotify/search/{mood}).
func (h *Handlers) SpotifySearch(w http.ResponseWriter, r *http.Request) {
	mood, err := snippet.ParseMood(chi.URLParam(r, "mood"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	data, err := h.music.SearchByMood(r.Context(), mood, queryInt(r, "limit", h.sampleSize))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"mood":    mood,
		"count":   len(data),
		"data":    data,
		"source":  "spotify",
	})
}

// SpotifyRecommendations returns recommendations seeded by a mood's
// genres and audio targets (GET /api/spotify/recommendations/{mood}).
func (h *Handlers) SpotifyRecommendations(w http.ResponseWriter, r *http.Request) {
	mood, err := snippet.ParseMood(chi.URLParam(r, "mood"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	data, err := h.music.RecommendationsByMood(r.Context(), mood, queryInt(r, "limit", h.sampleSize))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"mood":    mood,
		"count":   len(data),
		"data":    data,
		"source":  "spotify_recommendations",
	})
}

// SpotifyTrack returns the details of one track
// (GET /api/spotify/track/{id}).
func (h *Handlers) SpotifyTrack(w http.ResponseWriter, r *http.Request) {
	s, err := h.music.TrackDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"data":    s,
		"source":  "spotify",
	})
}

// SpotifyHealth reports whether the Spotify connection works
// (GET /api/spotify/health).
func (h *Handlers) SpotifyHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.music.Healthy(r.Context())
	message := "Spotify API connected"
	if !connected {
		message = "Spotify API not available"
	}
	writeJSON(w, http.StatusOK, envelope{
		"success":   true,
		"connected": connected,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SpotifyMoods lists the moods with their Spotify search terms
// (GET /api/spotify/moods).
func (h *Handlers) SpotifyMoods(w http.ResponseWriter, r *http.Request) {
	moods := snippet.MoodCatalog()
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"count":   len(moods),
		"data":    moods,
		"source":  "spotify_moods",
	})
}
