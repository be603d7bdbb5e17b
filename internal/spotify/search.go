package spotify

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/zmb3/spotify/v2"

	"github.com/snippetly/song-snippetly/internal/snippet"
)

// market ensures results carry preview URLs.
const market = "US"

// moodQueries maps each catalog mood to a Spotify search query tuned for
// that mood's audio profile.
var moodQueries = map[snippet.Mood]string{
	snippet.MoodHappy:        "genre:pop mood:happy energy:0.7..1.0 danceability:0.6..1.0",
	snippet.MoodSad:          "genre:pop mood:sad energy:0.0..0.4 valence:0.0..0.3",
	snippet.MoodLove:         `genre:pop mood:romantic love "love song" valence:0.4..0.8`,
	snippet.MoodParty:        "genre:dance genre:electronic genre:hip-hop energy:0.8..1.0 danceability:0.7..1.0",
	snippet.MoodMotivational: `genre:pop workout motivation energy:0.7..1.0 "pump up" "motivation"`,
}

// seedGenres are the recommendation seeds per mood.
var seedGenres = map[snippet.Mood][]string{
	snippet.MoodHappy:        {"pop", "dance", "funk"},
	snippet.MoodSad:          {"indie", "alternative", "acoustic"},
	snippet.MoodLove:         {"pop", "r-n-b", "soul"},
	snippet.MoodParty:        {"dance", "electronic", "hip-hop"},
	snippet.MoodMotivational: {"pop", "rock", "hip-hop"},
}

// moodAttributes are the target audio features per mood.
type moodAttributes struct {
	valence      float64
	energy       float64
	danceability float64
	acousticness float64
}

var moodTargets = map[snippet.Mood]moodAttributes{
	snippet.MoodHappy:        {valence: 0.8, energy: 0.7, danceability: 0.6},
	snippet.MoodSad:          {valence: 0.2, energy: 0.3, acousticness: 0.5},
	snippet.MoodLove:         {valence: 0.6, energy: 0.5, acousticness: 0.3},
	snippet.MoodParty:        {valence: 0.8, energy: 0.9, danceability: 0.8},
	snippet.MoodMotivational: {valence: 0.7, energy: 0.8, danceability: 0.5},
}

// defaultTimings spreads six placeholder lyric lines over a 30s preview.
var defaultTimings = []float64{0, 5, 10, 15, 20, 25}

// moodQuery returns the search query for a mood, falling back to a plain
// mood filter for moods without a tuned query.
func moodQuery(mood snippet.Mood) string {
	if q, ok := moodQueries[mood]; ok {
		return q
	}
	return fmt.Sprintf("mood:%s", mood)
}

// SearchByMood searches the Spotify catalog for tracks matching a mood.
// Tracks without preview URLs are dropped since they cannot be played.
func (c *Client) SearchByMood(ctx context.Context, mood snippet.Mood, limit int) ([]snippet.Snippet, error) {
	var result *spotify.SearchResult
	err := c.call(ctx, func(api *spotify.Client) error {
		var err error
		result, err = api.Search(ctx, moodQuery(mood), spotify.SearchTypeTrack,
			spotify.Limit(limit), spotify.Market(market))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("searching tracks for mood %s: %w", mood, err)
	}

	if result == nil || result.Tracks == nil {
		return nil, nil
	}
	return toSnippets(result.Tracks.Tracks, mood), nil
}

// RecommendationsByMood asks the Spotify recommendation engine for tracks
// matching a mood's seed genres and target audio features.
func (c *Client) RecommendationsByMood(ctx context.Context, mood snippet.Mood, limit int) ([]snippet.Snippet, error) {
	genres, ok := seedGenres[mood]
	if !ok {
		genres = []string{"pop"}
	}
	seeds := spotify.Seeds{Genres: genres}

	attrs := spotify.NewTrackAttributes()
	if target, ok := moodTargets[mood]; ok {
		attrs = attrs.TargetValence(target.valence).TargetEnergy(target.energy)
		if target.danceability > 0 {
			attrs = attrs.TargetDanceability(target.danceability)
		}
		if target.acousticness > 0 {
			attrs = attrs.TargetAcousticness(target.acousticness)
		}
	}

	var recs *spotify.Recommendations
	err := c.call(ctx, func(api *spotify.Client) error {
		var err error
		recs, err = api.GetRecommendations(ctx, seeds, attrs,
			spotify.Limit(limit), spotify.Market(market))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("getting recommendations for mood %s: %w", mood, err)
	}
	if recs == nil || len(recs.Tracks) == 0 {
		return nil, nil
	}

	// The recommendation payload carries simplified tracks; fetch the
	// full records for album art and popularity.
	ids := make([]spotify.ID, len(recs.Tracks))
	for i, t := range recs.Tracks {
		ids[i] = t.ID
	}

	var full []*spotify.FullTrack
	err = c.call(ctx, func(api *spotify.Client) error {
		var err error
		full, err = api.GetTracks(ctx, ids, spotify.Market(market))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("resolving recommended tracks: %w", err)
	}

	tracks := make([]spotify.FullTrack, 0, len(full))
	for _, t := range full {
		if t != nil {
			tracks = append(tracks, *t)
		}
	}
	return toSnippets(tracks, mood), nil
}

// TrackDetails fetches one track and maps it to a snippet. The track
// keeps an empty mood list since a single lookup carries no mood context.
func (c *Client) TrackDetails(ctx context.Context, id string) (snippet.Snippet, error) {
	var track *spotify.FullTrack
	err := c.call(ctx, func(api *spotify.Client) error {
		var err error
		track, err = api.GetTrack(ctx, spotify.ID(id), spotify.Market(market))
		return err
	})
	if err != nil {
		return snippet.Snippet{}, fmt.Errorf("getting track %s: %w", id, err)
	}
	return toSnippet(*track, nil), nil
}

func toSnippets(tracks []spotify.FullTrack, mood snippet.Mood) []snippet.Snippet {
	out := make([]snippet.Snippet, 0, len(tracks))
	for _, t := range tracks {
		if t.PreviewURL == "" {
			continue
		}
		out = append(out, toSnippet(t, []snippet.Mood{mood}))
	}
	return out
}

func toSnippet(t spotify.FullTrack, moods []snippet.Mood) snippet.Snippet {
	artist := ""
	if len(t.Artists) > 0 {
		artist = t.Artists[0].Name
	}

	cover := ""
	if len(t.Album.Images) > 0 {
		cover = t.Album.Images[0].URL
	}

	return snippet.Snippet{
		ID:              t.ID.String(),
		Title:           t.Name,
		Artist:          artist,
		Mood:            moods,
		LyricLines:      placeholderLyrics(t.ID.String(), t.Name, artist),
		Timings:         append([]float64(nil), defaultTimings...),
		AudioPreviewURL: t.PreviewURL,
		SpotifyURL:      t.ExternalURLs["spotify"],
		CoverImage:      cover,
		Duration:        int(t.Duration) / 1000,
		Genre:           snippet.DefaultGenre,
		Popularity:      int(t.Popularity),
	}
}

// placeholderLyrics generates fair-use demo lines instead of real lyrics.
// The template is picked by track ID hash so a given track always renders
// the same way.
func placeholderLyrics(id, title, artist string) []string {
	templates := [][]string{
		{
			fmt.Sprintf("♫ %s ♫", title),
			fmt.Sprintf("by %s", artist),
			"🎵 Music brings us together",
			"🎶 Feel the rhythm flow",
			"✨ Let the melody guide you",
			"🎵 This is just a preview...",
		},
		{
			fmt.Sprintf("🎵 %q", title),
			fmt.Sprintf("Artist: %s", artist),
			"🎶 Every song tells a story",
			"✨ Music speaks what words cannot",
			"🎵 Feel the beat in your heart",
			"🎶 Preview available on Spotify",
		},
		{
			fmt.Sprintf("♫ Now playing: %s", title),
			fmt.Sprintf("🎤 %s", artist),
			"🎵 Music is the universal language",
			"🎶 Let the sound take you away",
			"✨ Experience the full song",
			"🎵 Listen on Spotify for more",
		},
	}

	h := fnv.New32a()
	h.Write([]byte(id))
	return templates[h.Sum32()%uint32(len(templates))]
}
