package spotify

import (
	"strings"
	"testing"

	"github.com/zmb3/spotify/v2"

	"github.com/snippetly/song-snippetly/internal/snippet"
)

func fullTrack(id, name, artist, previewURL string) spotify.FullTrack {
	return spotify.FullTrack{
		SimpleTrack: spotify.SimpleTrack{
			ID:         spotify.ID(id),
			Name:       name,
			Artists:    []spotify.SimpleArtist{{Name: artist}},
			PreviewURL: previewURL,
			Duration:   213000,
			ExternalURLs: map[string]string{
				"spotify": "https://open.spotify.com/track/" + id,
			},
		},
		Album: spotify.SimpleAlbum{
			Name:   "Album",
			Images: []spotify.Image{{URL: "https://i.scdn.co/image/cover-large"}, {URL: "https://i.scdn.co/image/cover-small"}},
		},
		Popularity: 77,
	}
}

func TestToSnippet(t *testing.T) {
	got := toSnippet(fullTrack("abc123", "Test Song", "Test Artist", "https://p.scdn.co/p.mp3"), []snippet.Mood{snippet.MoodHappy})

	if got.ID != "abc123" || got.Title != "Test Song" || got.Artist != "Test Artist" {
		t.Errorf("identity fields = %q %q %q", got.ID, got.Title, got.Artist)
	}
	if got.Duration != 213 {
		t.Errorf("Duration = %d, want 213 (ms converted to s)", got.Duration)
	}
	if got.Popularity != 77 {
		t.Errorf("Popularity = %d, want 77", got.Popularity)
	}
	if got.CoverImage != "https://i.scdn.co/image/cover-large" {
		t.Errorf("CoverImage = %q, want the first album image", got.CoverImage)
	}
	if got.SpotifyURL != "https://open.spotify.com/track/abc123" {
		t.Errorf("SpotifyURL = %q", got.SpotifyURL)
	}
	if len(got.LyricLines) != len(got.Timings) {
		t.Errorf("len(LyricLines)=%d != len(Timings)=%d", len(got.LyricLines), len(got.Timings))
	}
	if len(got.Mood) != 1 || got.Mood[0] != snippet.MoodHappy {
		t.Errorf("Mood = %v", got.Mood)
	}

	got.ApplyDefaults()
	if err := got.Validate(); err != nil {
		t.Errorf("mapped snippet fails validation: %v", err)
	}
}

func TestToSnippetsFiltersMissingPreviews(t *testing.T) {
	tracks := []spotify.FullTrack{
		fullTrack("a", "With Preview", "X", "https://p.scdn.co/a.mp3"),
		fullTrack("b", "No Preview", "Y", ""),
		fullTrack("c", "Also Preview", "Z", "https://p.scdn.co/c.mp3"),
	}

	got := toSnippets(tracks, snippet.MoodParty)
	if len(got) != 2 {
		t.Fatalf("toSnippets() kept %d tracks, want 2", len(got))
	}
	for _, s := range got {
		if s.AudioPreviewURL == "" {
			t.Errorf("snippet %q kept without preview URL", s.Title)
		}
	}
}

func TestPlaceholderLyricsDeterministic(t *testing.T) {
	first := placeholderLyrics("track-id", "Song", "Artist")
	for i := 0; i < 10; i++ {
		again := placeholderLyrics("track-id", "Song", "Artist")
		if strings.Join(first, "|") != strings.Join(again, "|") {
			t.Fatal("placeholderLyrics is not deterministic for the same track")
		}
	}

	if len(first) != len(defaultTimings) {
		t.Errorf("placeholder has %d lines, want %d to match default timings", len(first), len(defaultTimings))
	}
	if !strings.Contains(strings.Join(first, " "), "Song") {
		t.Errorf("placeholder does not mention the title: %v", first)
	}
}

func TestMoodQuery(t *testing.T) {
	for _, mood := range snippet.Moods() {
		q := moodQuery(mood)
		if q == "" {
			t.Errorf("moodQuery(%s) is empty", mood)
		}
	}
	if got := moodQuery(snippet.Mood("other")); got != "mood:other" {
		t.Errorf("moodQuery fallback = %q", got)
	}
}

func TestMoodTablesCoverAllMoods(t *testing.T) {
	for _, mood := range snippet.Moods() {
		if _, ok := moodQueries[mood]; !ok {
			t.Errorf("moodQueries missing %s", mood)
		}
		if _, ok := seedGenres[mood]; !ok {
			t.Errorf("seedGenres missing %s", mood)
		}
		if _, ok := moodTargets[mood]; !ok {
			t.Errorf("moodTargets missing %s", mood)
		}
	}
}
