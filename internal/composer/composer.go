// Package composer assembles ranked reply suggestions for a classified
// message: canned texts, song suggestions, poetry and taglines drawn from
// static per-language, per-mood tables.
package composer

import (
	"fmt"

	"github.com/snippetly/song-snippetly/internal/analyzer"
)

// Candidate kinds, in the order they appear in a composed list.
const (
	KindText    = "text"
	KindSong    = "song"
	KindPoetry  = "poetry"
	KindTagline = "tagline"
)

// MaxCandidates caps a composed list.
const MaxCandidates = 8

// Per-kind trims and confidences. Candidates of the same kind rank
// equally.
const (
	maxTextReplies = 3
	maxPoems       = 2
	maxTaglines    = 3

	textConfidence    = 0.85
	songConfidence    = 0.90
	poetryConfidence  = 0.875
	taglineConfidence = 0.85
)

// Candidate is one suggested reply. Kind-specific fields are empty for
// other kinds. Candidates are transient per-request values.
type Candidate struct {
	ID         string  `json:"id"`
	Kind       string  `json:"type"`
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context"`

	// Song fields.
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Lyrics     string `json:"lyrics,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
	SpotifyURL string `json:"spotifyUrl,omitempty"`

	// Poetry field.
	Author string `json:"author,omitempty"`
}

// Composer builds reply candidates from static content tables. It is
// stateless; the zero value is ready to use.
type Composer struct{}

// New returns a Composer.
func New() *Composer {
	return &Composer{}
}

// Compose returns at most MaxCandidates suggestions for the
// classification, ordered text, song, poetry, tagline. Poetry is included
// only for romantic or sad moods, or positive sentiment. Compose is a
// pure function over the static tables and never fails.
func (c *Composer) Compose(cl analyzer.Classification) []Candidate {
	candidates := make([]Candidate, 0, MaxCandidates)

	candidates = append(candidates, c.textCandidates(cl)...)
	candidates = append(candidates, c.songCandidates(cl)...)
	if cl.Mood == analyzer.MoodRomantic || cl.Mood == analyzer.MoodSad || cl.Sentiment == analyzer.SentimentPositive {
		candidates = append(candidates, c.poetryCandidates(cl)...)
	}
	candidates = append(candidates, c.taglineCandidates(cl)...)

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}
	return candidates
}

func (c *Composer) textCandidates(cl analyzer.Classification) []Candidate {
	replies := lookup(textReplies, textChain(cl.Language, cl.Mood))
	if len(replies) > maxTextReplies {
		replies = replies[:maxTextReplies]
	}

	out := make([]Candidate, 0, len(replies))
	for i, text := range replies {
		out = append(out, Candidate{
			ID:         fmt.Sprintf("text_%d", i),
			Kind:       KindText,
			Text:       text,
			Language:   cl.Language,
			Confidence: textConfidence,
			Context:    fmt.Sprintf("Perfect for %s conversations", cl.Mood),
		})
	}
	return out
}

func (c *Composer) songCandidates(cl analyzer.Classification) []Candidate {
	songs, ok := songSuggestions[cl.Mood]
	if !ok {
		songs = songSuggestions[analyzer.MoodNeutral]
	}

	out := make([]Candidate, 0, len(songs))
	for i, song := range songs {
		out = append(out, Candidate{
			ID:         fmt.Sprintf("song_%d", i),
			Kind:       KindSong,
			Text:       song.lyrics,
			Language:   cl.Language,
			Confidence: songConfidence,
			Context:    fmt.Sprintf("Matches the %s vibe perfectly", cl.Mood),
			Title:      song.title,
			Artist:     song.artist,
			Lyrics:     song.lyrics,
			CoverImage: song.coverImage,
			SpotifyURL: song.spotifyURL,
		})
	}
	return out
}

func (c *Composer) poetryCandidates(cl analyzer.Classification) []Candidate {
	entries := lookup(poems, poetryChain(cl.Language, cl.Mood))
	if len(entries) > maxPoems {
		entries = entries[:maxPoems]
	}

	out := make([]Candidate, 0, len(entries))
	for i, poem := range entries {
		out = append(out, Candidate{
			ID:         fmt.Sprintf("poetry_%d", i),
			Kind:       KindPoetry,
			Text:       poem.text,
			Language:   cl.Language,
			Confidence: poetryConfidence,
			Context:    fmt.Sprintf("Beautiful %s poetry to express feelings", cl.Mood),
			Author:     poem.author,
		})
	}
	return out
}

func (c *Composer) taglineCandidates(cl analyzer.Classification) []Candidate {
	lines := lookup(taglines, taglineChain(cl.Language, cl.Mood))
	if len(lines) > maxTaglines {
		lines = lines[:maxTaglines]
	}

	out := make([]Candidate, 0, len(lines))
	for i, line := range lines {
		out = append(out, Candidate{
			ID:         fmt.Sprintf("tagline_%d", i),
			Kind:       KindTagline,
			Text:       line,
			Language:   cl.Language,
			Confidence: taglineConfidence,
			Context:    fmt.Sprintf("Short and impactful for %s moments", cl.Mood),
		})
	}
	return out
}
