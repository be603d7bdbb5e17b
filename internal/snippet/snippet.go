// Package snippet defines the core domain model: playable song excerpts
// with time-synchronized lyric lines, tagged by mood.
package snippet

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a snippet lookup has no result.
var ErrNotFound = errors.New("snippet not found")

// ValidationError reports a snippet field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Mood is one of the fixed emotional categories used to tag snippets.
type Mood string

// The valid snippet moods, in listing order.
const (
	MoodHappy        Mood = "happy"
	MoodSad          Mood = "sad"
	MoodLove         Mood = "love"
	MoodParty        Mood = "party"
	MoodMotivational Mood = "motivational"
)

// Moods lists all valid moods in their canonical order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodLove, MoodParty, MoodMotivational}
}

// MoodNames returns the valid mood names joined by ", ", for error messages.
func MoodNames() string {
	names := make([]string, 0, 5)
	for _, m := range Moods() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// ParseMood normalizes and validates a mood name.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Moods() {
		if m == valid {
			return m, nil
		}
	}
	return "", &ValidationError{
		Field:  "mood",
		Reason: fmt.Sprintf("invalid mood. Valid moods: %s", MoodNames()),
	}
}

// MoodInfo describes a mood for the listing endpoints.
type MoodInfo struct {
	Name        Mood     `json:"name"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	SearchTerms []string `json:"searchTerms,omitempty"`
}

// MoodCatalog returns the presentation metadata for all moods.
func MoodCatalog() []MoodInfo {
	return []MoodInfo{
		{MoodHappy, "😊", "Upbeat and joyful songs that lift your spirits", []string{"pop", "dance", "funk", "uplifting"}},
		{MoodSad, "😢", "Melancholic and emotional songs for reflection", []string{"indie", "alternative", "acoustic", "melancholy"}},
		{MoodLove, "❤️", "Romantic and heartfelt songs about love", []string{"romantic", "r&b", "soul", "ballad"}},
		{MoodParty, "🎉", "Energetic and dance-worthy songs for celebration", []string{"dance", "electronic", "hip-hop", "party"}},
		{MoodMotivational, "💪", "Inspiring and empowering songs to boost motivation", []string{"rock", "hip-hop", "workout", "inspirational"}},
	}
}

// Default values applied to snippets created without optional fields.
const (
	DefaultCoverImage = "https://via.placeholder.com/300x300?text=No+Cover"
	DefaultDuration   = 30
	DefaultGenre      = "Pop"
)

// Snippet is a playable song excerpt. LyricLines and Timings are parallel:
// Timings[i] is the second (from preview start) at which LyricLines[i]
// becomes the active line. Snippets are immutable once stored.
type Snippet struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Artist          string    `json:"artist"`
	Mood            []Mood    `json:"mood"`
	LyricLines      []string  `json:"lyricLines"`
	Timings         []float64 `json:"timings"`
	AudioPreviewURL string    `json:"audioPreviewUrl"`
	SpotifyURL      string    `json:"spotifyUrl"`
	CoverImage      string    `json:"coverImage"`
	Duration        int       `json:"duration"`
	Genre           string    `json:"genre"`
	Popularity      int       `json:"popularity"`
	CreatedAt       time.Time `json:"createdAt"`
}

// HasMood reports whether the snippet carries the given mood tag.
func (s *Snippet) HasMood(m Mood) bool {
	for _, tag := range s.Mood {
		if tag == m {
			return true
		}
	}
	return false
}

// Preview returns the first lyric line truncated to 50 characters.
func (s *Snippet) Preview() string {
	if len(s.LyricLines) == 0 {
		return ""
	}
	line := []rune(s.LyricLines[0])
	if len(line) > 50 {
		line = line[:50]
	}
	return string(line) + "..."
}

// ApplyDefaults fills optional fields with their defaults.
func (s *Snippet) ApplyDefaults() {
	if s.CoverImage == "" {
		s.CoverImage = DefaultCoverImage
	}
	if s.Duration == 0 {
		s.Duration = DefaultDuration
	}
	if s.Genre == "" {
		s.Genre = DefaultGenre
	}
}

// Validate checks all construction-time invariants and returns a
// *ValidationError naming the first field that fails.
func (s *Snippet) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(s.Artist) == "" {
		return &ValidationError{Field: "artist", Reason: "required"}
	}
	if len(s.Mood) == 0 {
		return &ValidationError{Field: "mood", Reason: "at least one mood is required"}
	}
	for _, m := range s.Mood {
		if _, err := ParseMood(string(m)); err != nil {
			return &ValidationError{
				Field:  "mood",
				Reason: fmt.Sprintf("unknown mood %q. Valid moods: %s", m, MoodNames()),
			}
		}
	}
	if len(s.LyricLines) == 0 {
		return &ValidationError{Field: "lyricLines", Reason: "required"}
	}
	if len(s.LyricLines) != len(s.Timings) {
		return &ValidationError{
			Field:  "timings",
			Reason: "lyricLines and timings arrays must have the same length",
		}
	}
	for i := 1; i < len(s.Timings); i++ {
		if s.Timings[i] < s.Timings[i-1] {
			return &ValidationError{Field: "timings", Reason: "timings must be non-decreasing"}
		}
	}
	if s.AudioPreviewURL == "" {
		return &ValidationError{Field: "audioPreviewUrl", Reason: "required"}
	}
	if s.SpotifyURL == "" {
		return &ValidationError{Field: "spotifyUrl", Reason: "required"}
	}
	if s.Popularity < 0 || s.Popularity > 100 {
		return &ValidationError{Field: "popularity", Reason: "must be between 0 and 100"}
	}
	return nil
}
