package catalog

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/snippetly/song-snippetly/internal/snippet"
)

// memStore implements Store in memory for testing.
type memStore struct {
	mu       sync.Mutex
	snippets []snippet.Snippet
	err      error
}

func (m *memStore) All(ctx context.Context) ([]snippet.Snippet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]snippet.Snippet, len(m.snippets))
	copy(out, m.snippets)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Popularity != out[j].Popularity {
			return out[i].Popularity > out[j].Popularity
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memStore) Insert(ctx context.Context, s *snippet.Snippet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.snippets = append(m.snippets, *s)
	return nil
}

func (m *memStore) ReplaceAll(ctx context.Context, snippets []snippet.Snippet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.snippets = make([]snippet.Snippet, len(snippets))
	copy(m.snippets, snippets)
	return nil
}

func testSnippet(title string, popularity int, moods ...snippet.Mood) snippet.Snippet {
	return snippet.Snippet{
		Title:           title,
		Artist:          "Artist",
		Mood:            moods,
		LyricLines:      []string{"line one", "line two"},
		Timings:         []float64{0, 5},
		AudioPreviewURL: "https://example.com/preview.mp3",
		SpotifyURL:      "https://open.spotify.com/track/x",
		Popularity:      popularity,
	}
}

func newTestCatalog(t *testing.T, snippets ...snippet.Snippet) (*Catalog, *memStore) {
	t.Helper()
	store := &memStore{}
	c := New(store, WithRand(rand.New(rand.NewSource(1))))
	if len(snippets) > 0 {
		if err := c.Seed(context.Background(), snippets); err != nil {
			t.Fatalf("Seed() = %v", err)
		}
	}
	return c, store
}

func TestSeedAndAll(t *testing.T) {
	c, _ := newTestCatalog(t,
		testSnippet("Low", 10, snippet.MoodSad),
		testSnippet("High", 90, snippet.MoodHappy),
		testSnippet("Mid", 50, snippet.MoodHappy),
	)

	all := c.All(0)
	if len(all) != 3 {
		t.Fatalf("All() returned %d snippets, want 3", len(all))
	}
	// Popularity descending.
	if all[0].Title != "High" || all[1].Title != "Mid" || all[2].Title != "Low" {
		t.Errorf("All() order = %s, %s, %s", all[0].Title, all[1].Title, all[2].Title)
	}
	for _, s := range all {
		if s.ID == "" {
			t.Errorf("snippet %q has no ID after seed", s.Title)
		}
		if s.CreatedAt.IsZero() {
			t.Errorf("snippet %q has no CreatedAt after seed", s.Title)
		}
	}

	if got := c.All(2); len(got) != 2 {
		t.Errorf("All(2) returned %d snippets, want 2", len(got))
	}
}

func TestSeedRejectsInvalid(t *testing.T) {
	c, _ := newTestCatalog(t, testSnippet("Keeper", 10, snippet.MoodHappy))

	bad := testSnippet("Broken", 10, snippet.MoodHappy)
	bad.Timings = []float64{0}
	err := c.Seed(context.Background(), []snippet.Snippet{bad})

	var verr *snippet.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Seed() = %v, want *ValidationError", err)
	}
	// Failed seed leaves the old snapshot intact.
	if c.Count() != 1 {
		t.Errorf("Count() after failed seed = %d, want 1", c.Count())
	}
}

func TestByID(t *testing.T) {
	c, _ := newTestCatalog(t, testSnippet("Only", 10, snippet.MoodLove))

	id := c.All(0)[0].ID
	got, ok := c.ByID(id)
	if !ok || got.Title != "Only" {
		t.Fatalf("ByID(%q) = %+v, %v", id, got, ok)
	}
	if _, ok := c.ByID("missing"); ok {
		t.Error("ByID(missing) = true, want false")
	}
}

func TestByMood(t *testing.T) {
	c, _ := newTestCatalog(t,
		testSnippet("A", 10, snippet.MoodHappy, snippet.MoodParty),
		testSnippet("B", 20, snippet.MoodHappy),
		testSnippet("C", 30, snippet.MoodSad),
	)

	happy := c.ByMood(snippet.MoodHappy, 0)
	if len(happy) != 2 {
		t.Fatalf("ByMood(happy) returned %d, want 2", len(happy))
	}
	for _, s := range happy {
		if !s.HasMood(snippet.MoodHappy) {
			t.Errorf("ByMood(happy) returned %q without the happy tag", s.Title)
		}
	}

	if got := c.ByMood(snippet.MoodHappy, 1); len(got) != 1 {
		t.Errorf("ByMood(happy, 1) returned %d, want 1", len(got))
	}
	if got := c.ByMood(snippet.MoodMotivational, 0); got != nil {
		t.Errorf("ByMood(motivational) = %v, want nil", got)
	}
	// Multi-mood snippets are reachable through each tag.
	if got := c.ByMood(snippet.MoodParty, 0); len(got) != 1 || got[0].Title != "A" {
		t.Errorf("ByMood(party) = %v", got)
	}
}

func TestRandom(t *testing.T) {
	empty, _ := newTestCatalog(t)
	if _, ok := empty.Random(); ok {
		t.Error("Random() on empty catalog = true, want false")
	}

	c, _ := newTestCatalog(t,
		testSnippet("A", 10, snippet.MoodHappy),
		testSnippet("B", 20, snippet.MoodSad),
	)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, ok := c.Random()
		if !ok {
			t.Fatal("Random() = false on non-empty catalog")
		}
		seen[s.Title] = true
	}
	if len(seen) != 2 {
		t.Errorf("Random() over 100 draws saw %d distinct snippets, want 2", len(seen))
	}
}

func TestAdd(t *testing.T) {
	c, store := newTestCatalog(t, testSnippet("First", 10, snippet.MoodHappy))

	added, err := c.Add(context.Background(), testSnippet("Second", 99, snippet.MoodParty))
	if err != nil {
		t.Fatalf("Add() = %v", err)
	}
	if added.ID == "" {
		t.Error("Add() returned snippet without ID")
	}
	if added.CoverImage != snippet.DefaultCoverImage {
		t.Errorf("Add() did not apply cover default: %q", added.CoverImage)
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.Count())
	}
	// Higher popularity sorts first after reload.
	if got := c.All(0)[0].Title; got != "Second" {
		t.Errorf("All()[0] = %q, want Second", got)
	}

	bad := testSnippet("Bad", 10)
	if _, err := c.Add(context.Background(), bad); err == nil {
		t.Error("Add() with no moods succeeded, want validation error")
	}
	store.mu.Lock()
	stored := len(store.snippets)
	store.mu.Unlock()
	if stored != 2 {
		t.Errorf("store has %d snippets after rejected Add, want 2", stored)
	}
}

func TestSeedAtomicity(t *testing.T) {
	first := make([]snippet.Snippet, 5)
	second := make([]snippet.Snippet, 9)
	for i := range first {
		first[i] = testSnippet("old", 10, snippet.MoodHappy)
	}
	for i := range second {
		second[i] = testSnippet("new", 20, snippet.MoodSad)
	}

	c, _ := newTestCatalog(t, first...)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	counts := make(chan int, 10000)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					counts <- c.Count()
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		var batch []snippet.Snippet
		if i%2 == 0 {
			batch = second
		} else {
			batch = first
		}
		if err := c.Seed(context.Background(), batch); err != nil {
			t.Fatalf("Seed() = %v", err)
		}
	}
	close(stop)
	wg.Wait()
	close(counts)

	// Readers only ever see a complete old or new collection.
	for n := range counts {
		if n != len(first) && n != len(second) {
			t.Fatalf("reader observed count %d, want %d or %d", n, len(first), len(second))
		}
	}
}

func TestSeedRejectsEmpty(t *testing.T) {
	c := New(&memStore{})
	if err := c.Seed(context.Background(), nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Seed(nil) = %v, want ErrEmpty", err)
	}
}

func TestReloadPropagatesStoreError(t *testing.T) {
	store := &memStore{}
	c := New(store)
	store.err = errors.New("connection lost")
	if err := c.Reload(context.Background()); err == nil {
		t.Error("Reload() = nil, want error")
	}
}

func TestWithClock(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &memStore{}
	c := New(store, WithClock(func() time.Time { return fixed }))

	if err := c.Seed(context.Background(), []snippet.Snippet{testSnippet("T", 10, snippet.MoodHappy)}); err != nil {
		t.Fatalf("Seed() = %v", err)
	}
	if got := c.All(0)[0].CreatedAt; !got.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", got, fixed)
	}
}
