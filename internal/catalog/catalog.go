// Package catalog serves the snippet collection. Reads come from an
// immutable in-memory snapshot swapped atomically on seed or reload, so a
// concurrent re-seed is observed fully-old or fully-new, never partial.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/snippetly/song-snippetly/internal/snippet"
)

// ErrEmpty is returned by Seed when given no snippets: replacing the
// whole catalog with nothing is treated as a caller mistake.
var ErrEmpty = errors.New("no snippets to seed")

// DefaultMoodSampleSize is how many snippets a mood query returns when the
// caller gives no limit.
const DefaultMoodSampleSize = 10

// Store is the persistence backend for the catalog.
type Store interface {
	All(ctx context.Context) ([]snippet.Snippet, error)
	Insert(ctx context.Context, s *snippet.Snippet) error
	ReplaceAll(ctx context.Context, snippets []snippet.Snippet) error
}

// snapshot is one immutable view of the collection. ordered is sorted by
// popularity desc then createdAt desc; the maps index into it.
type snapshot struct {
	ordered []snippet.Snippet
	byID    map[string]int
	byMood  map[snippet.Mood][]int
}

// Catalog is the read-mostly snippet catalog.
type Catalog struct {
	store Store
	snap  atomic.Pointer[snapshot]

	mu  sync.Mutex // guards rng; mood sampling happens on request goroutines
	rng *rand.Rand

	now func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRand sets the random source used for sampling. Tests pass a seeded
// source for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(c *Catalog) { c.rng = rng }
}

// WithClock sets the time source used to stamp created snippets.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// New creates a catalog over the given store with an empty snapshot. Call
// Reload to populate it from the store.
func New(store Store, opts ...Option) *Catalog {
	c := &Catalog{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.snap.Store(buildSnapshot(nil))
	return c
}

func buildSnapshot(snippets []snippet.Snippet) *snapshot {
	snap := &snapshot{
		ordered: snippets,
		byID:    make(map[string]int, len(snippets)),
		byMood:  make(map[snippet.Mood][]int),
	}
	for i := range snippets {
		snap.byID[snippets[i].ID] = i
		for _, m := range snippets[i].Mood {
			snap.byMood[m] = append(snap.byMood[m], i)
		}
	}
	return snap
}

// Reload replaces the snapshot with the store's current contents. The
// store returns snippets already ordered by popularity desc, createdAt
// desc.
func (c *Catalog) Reload(ctx context.Context) error {
	snippets, err := c.store.All(ctx)
	if err != nil {
		return fmt.Errorf("loading snippets: %w", err)
	}
	c.snap.Store(buildSnapshot(snippets))
	return nil
}

// Seed validates, stamps and persists a whole new collection, then swaps
// the snapshot. Existing snippets are replaced wholesale.
func (c *Catalog) Seed(ctx context.Context, snippets []snippet.Snippet) error {
	if len(snippets) == 0 {
		return ErrEmpty
	}

	prepared := make([]snippet.Snippet, len(snippets))
	now := c.now()
	for i, s := range snippets {
		s.ApplyDefaults()
		if err := s.Validate(); err != nil {
			return fmt.Errorf("snippet %q: %w", s.Title, err)
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		prepared[i] = s
	}

	if err := c.store.ReplaceAll(ctx, prepared); err != nil {
		return fmt.Errorf("replacing snippets: %w", err)
	}

	return c.Reload(ctx)
}

// Add validates and persists one snippet, refreshes the snapshot and
// returns the stored snippet.
func (c *Catalog) Add(ctx context.Context, s snippet.Snippet) (snippet.Snippet, error) {
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return snippet.Snippet{}, err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = c.now()
	}

	if err := c.store.Insert(ctx, &s); err != nil {
		return snippet.Snippet{}, fmt.Errorf("storing snippet: %w", err)
	}
	if err := c.Reload(ctx); err != nil {
		return snippet.Snippet{}, err
	}
	return s, nil
}

// All returns up to limit snippets ordered by popularity desc, createdAt
// desc. A limit <= 0 returns everything.
func (c *Catalog) All(limit int) []snippet.Snippet {
	snap := c.snap.Load()
	snippets := snap.ordered
	if limit > 0 && len(snippets) > limit {
		snippets = snippets[:limit]
	}
	out := make([]snippet.Snippet, len(snippets))
	copy(out, snippets)
	return out
}

// Count returns the number of snippets in the current snapshot.
func (c *Catalog) Count() int {
	return len(c.snap.Load().ordered)
}

// ByID returns the snippet with the given ID.
func (c *Catalog) ByID(id string) (snippet.Snippet, bool) {
	snap := c.snap.Load()
	i, ok := snap.byID[id]
	if !ok {
		return snippet.Snippet{}, false
	}
	return snap.ordered[i], true
}

// ByMood returns a random sample of up to limit snippets tagged with the
// mood. A limit <= 0 uses DefaultMoodSampleSize.
func (c *Catalog) ByMood(mood snippet.Mood, limit int) []snippet.Snippet {
	if limit <= 0 {
		limit = DefaultMoodSampleSize
	}

	snap := c.snap.Load()
	indexes := snap.byMood[mood]
	if len(indexes) == 0 {
		return nil
	}

	picks := make([]int, len(indexes))
	copy(picks, indexes)
	c.mu.Lock()
	c.rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})
	c.mu.Unlock()

	if len(picks) > limit {
		picks = picks[:limit]
	}
	out := make([]snippet.Snippet, len(picks))
	for i, idx := range picks {
		out[i] = snap.ordered[idx]
	}
	return out
}

// Random returns one uniformly random snippet.
func (c *Catalog) Random() (snippet.Snippet, bool) {
	snap := c.snap.Load()
	if len(snap.ordered) == 0 {
		return snippet.Snippet{}, false
	}
	c.mu.Lock()
	i := c.rng.Intn(len(snap.ordered))
	c.mu.Unlock()
	return snap.ordered[i], true
}
