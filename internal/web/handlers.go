package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/snippetly/song-snippetly/internal/analyzer"
	"github.com/snippetly/song-snippetly/internal/catalog"
	"github.com/snippetly/song-snippetly/internal/composer"
	"github.com/snippetly/song-snippetly/internal/snippet"
)

// SnippetCatalog is the in-memory snippet store consumed by the handlers.
type SnippetCatalog interface {
	All(limit int) []snippet.Snippet
	Count() int
	ByID(id string) (snippet.Snippet, bool)
	ByMood(mood snippet.Mood, limit int) []snippet.Snippet
	Random() (snippet.Snippet, bool)
	Add(ctx context.Context, s snippet.Snippet) (snippet.Snippet, error)
}

// MusicCatalog is the external track catalog behind the /api/spotify
// endpoints.
type MusicCatalog interface {
	SearchByMood(ctx context.Context, mood snippet.Mood, limit int) ([]snippet.Snippet, error)
	RecommendationsByMood(ctx context.Context, mood snippet.Mood, limit int) ([]snippet.Snippet, error)
	TrackDetails(ctx context.Context, id string) (snippet.Snippet, error)
	Healthy(ctx context.Context) bool
}

// Pinger reports database liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlersConfig collects the collaborators the handlers need.
type HandlersConfig struct {
	Catalog    SnippetCatalog
	Music      MusicCatalog
	DB         Pinger
	Classifier analyzer.Classifier
	Composer   *composer.Composer
	Log        *slog.Logger

	// ListLimit caps GET /api/snippets; MoodSampleSize is the default
	// limit for mood queries. Zero values pick the package defaults.
	ListLimit      int
	MoodSampleSize int
}

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	catalog    SnippetCatalog
	music      MusicCatalog
	db         Pinger
	classifier analyzer.Classifier
	composer   *composer.Composer
	log        *slog.Logger

	listLimit  int
	sampleSize int
}

// DefaultListLimit caps the full snippet listing.
const DefaultListLimit = 50

// NewHandlers creates a Handlers instance.
func NewHandlers(cfg HandlersConfig) *Handlers {
	h := &Handlers{
		catalog:    cfg.Catalog,
		music:      cfg.Music,
		db:         cfg.DB,
		classifier: cfg.Classifier,
		composer:   cfg.Composer,
		log:        cfg.Log,
		listLimit:  cfg.ListLimit,
		sampleSize: cfg.MoodSampleSize,
	}
	if h.classifier == nil {
		h.classifier = analyzer.NewRuleBased()
	}
	if h.composer == nil {
		h.composer = composer.New()
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	if h.listLimit <= 0 {
		h.listLimit = DefaultListLimit
	}
	if h.sampleSize <= 0 {
		h.sampleSize = catalog.DefaultMoodSampleSize
	}
	return h
}

// Banner describes the service and its endpoints (GET /).
func (h *Handlers) Banner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "🎵 Song Snippet Messaging API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":          "GET /api/health",
			"snippets":        "GET /api/snippets",
			"snippetsByMood":  "GET /api/snippets/mood/{mood}",
			"randomSnippet":   "GET /api/snippets/random",
			"snippetById":     "GET /api/snippets/{id}",
			"activeLine":      "GET /api/snippets/{id}/active-line?t=seconds",
			"createSnippet":   "POST /api/snippets",
			"moods":           "GET /api/snippets/moods/list",
			"spotifySearch":   "GET /api/spotify/search/{mood}",
			"recommendations": "GET /api/spotify/recommendations/{mood}",
			"track":           "GET /api/spotify/track/{id}",
			"spotifyHealth":   "GET /api/spotify/health",
			"spotifyMoods":    "GET /api/spotify/moods",
			"analyze":         "POST /api/analyze",
			"responses":       "POST /api/responses",
		},
	})
}

// Health checks the database and the Spotify connection concurrently
// (GET /api/health).
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var spotifyOK bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := h.db.Ping(gctx); err != nil {
			return fmt.Errorf("pinging database: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		spotifyOK = h.music.Healthy(gctx)
		return nil
	})

	status := "ok"
	database := "ok"
	if err := g.Wait(); err != nil {
		status = "degraded"
		database = "unreachable"
		h.log.Warn("health check failed", "error", err)
	}
	writeJSON(w, http.StatusOK, envelope{
		"success":   true,
		"status":    status,
		"database":  database,
		"spotify":   spotifyOK,
		"snippets":  h.catalog.Count(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// queryInt parses an integer query parameter, falling back to def when
// absent or malformed.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
