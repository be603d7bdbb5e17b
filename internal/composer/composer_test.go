package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snippetly/song-snippetly/internal/analyzer"
)

func classification(language, mood, sentiment string) analyzer.Classification {
	return analyzer.Classification{
		Mood:      mood,
		Sentiment: sentiment,
		Language:  language,
		Tone:      analyzer.ToneCasual,
	}
}

func kinds(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Kind
	}
	return out
}

func TestComposeCapAndOrder(t *testing.T) {
	c := New()

	// happy/positive yields texts, songs, poetry and taglines; the list
	// is capped at 8 with kind order preserved.
	got := c.Compose(classification(analyzer.LanguageEnglish, analyzer.MoodHappy, analyzer.SentimentPositive))
	require.LessOrEqual(t, len(got), MaxCandidates)
	assert.Equal(t,
		[]string{KindText, KindText, KindText, KindSong, KindSong, KindPoetry, KindTagline, KindTagline},
		kinds(got))

	// Songs always come before poetry and taglines.
	lastSong, firstTagline := -1, len(got)
	for i, cand := range got {
		if cand.Kind == KindSong {
			lastSong = i
		}
		if cand.Kind == KindTagline && i < firstTagline {
			firstTagline = i
		}
	}
	assert.Less(t, lastSong, firstTagline)
}

func TestComposePoetryGate(t *testing.T) {
	c := New()

	tests := []struct {
		name       string
		mood       string
		sentiment  string
		wantPoetry bool
	}{
		{"romantic", analyzer.MoodRomantic, analyzer.SentimentPositive, true},
		{"sad", analyzer.MoodSad, analyzer.SentimentNegative, true},
		{"happy positive", analyzer.MoodHappy, analyzer.SentimentPositive, true},
		{"angry negative", analyzer.MoodAngry, analyzer.SentimentNegative, false},
		{"neutral", analyzer.MoodNeutral, analyzer.SentimentNeutral, false},
		{"professional", analyzer.MoodProfessional, analyzer.SentimentNeutral, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compose(classification(analyzer.LanguageEnglish, tt.mood, tt.sentiment))
			hasPoetry := false
			for _, cand := range got {
				if cand.Kind == KindPoetry {
					hasPoetry = true
				}
			}
			assert.Equal(t, tt.wantPoetry, hasPoetry)
		})
	}
}

func TestComposeFallbackChains(t *testing.T) {
	c := New()

	// Hindi has no "angry" texts: falls back to Hindi neutral.
	got := c.Compose(classification(analyzer.LanguageHindi, analyzer.MoodAngry, analyzer.SentimentNegative))
	require.NotEmpty(t, got)
	assert.Equal(t, KindText, got[0].Kind)
	assert.Equal(t, "आपकी बात समझ में आई।", got[0].Text)

	// Hinglish has no romantic taglines: falls back to English romantic.
	got = c.Compose(classification(analyzer.LanguageHinglish, analyzer.MoodRomantic, analyzer.SentimentPositive))
	var tags []Candidate
	for _, cand := range got {
		if cand.Kind == KindTagline {
			tags = append(tags, cand)
		}
	}
	require.NotEmpty(t, tags)
	assert.Equal(t, "Love wins everything ❤️", tags[0].Text)

	// Hindi sad poetry falls back to the English sad poem.
	got = c.Compose(classification(analyzer.LanguageHindi, analyzer.MoodSad, analyzer.SentimentNegative))
	var poem *Candidate
	for i := range got {
		if got[i].Kind == KindPoetry {
			poem = &got[i]
			break
		}
	}
	require.NotNil(t, poem)
	assert.Equal(t, "Rumi", poem.Author)
}

func TestComposeSongFields(t *testing.T) {
	c := New()

	got := c.Compose(classification(analyzer.LanguageEnglish, analyzer.MoodSad, analyzer.SentimentNegative))
	var song *Candidate
	for i := range got {
		if got[i].Kind == KindSong {
			song = &got[i]
			break
		}
	}
	require.NotNil(t, song)
	assert.Equal(t, "Someone Like You", song.Title)
	assert.Equal(t, "Adele", song.Artist)
	assert.NotEmpty(t, song.Lyrics)
	assert.Equal(t, song.Lyrics, song.Text)
	assert.NotEmpty(t, song.SpotifyURL)
	assert.Equal(t, songConfidence, song.Confidence)

	// Unknown mood falls back to the neutral song list.
	got = c.Compose(classification(analyzer.LanguageEnglish, analyzer.MoodProfessional, analyzer.SentimentNeutral))
	found := false
	for _, cand := range got {
		if cand.Kind == KindSong && cand.Title == "Counting Stars" {
			found = true
		}
	}
	assert.True(t, found, "professional mood should fall back to neutral songs")
}

func TestComposeDeterministic(t *testing.T) {
	c := New()
	cl := classification(analyzer.LanguageEnglish, analyzer.MoodHappy, analyzer.SentimentPositive)

	first := c.Compose(cl)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Compose(cl))
	}
}

func TestComposeIDsAndContexts(t *testing.T) {
	c := New()

	got := c.Compose(classification(analyzer.LanguageEnglish, analyzer.MoodHappy, analyzer.SentimentPositive))
	require.NotEmpty(t, got)
	assert.Equal(t, "text_0", got[0].ID)
	assert.Contains(t, got[0].Context, "happy")
	for _, cand := range got {
		assert.NotEmpty(t, cand.ID)
		assert.Equal(t, analyzer.LanguageEnglish, cand.Language)
		assert.Greater(t, cand.Confidence, 0.0)
	}
}
