package seed

import "github.com/snippetly/song-snippetly/internal/snippet"

// SampleSnippets is the curated starter catalog. Preview URLs are
// placeholders; a production deployment replaces them with real catalog
// preview links.
func SampleSnippets() []snippet.Snippet {
	return []snippet.Snippet{
		{
			Title:  "Happy",
			Artist: "Pharrell Williams",
			Mood:   []snippet.Mood{snippet.MoodHappy, snippet.MoodParty},
			LyricLines: []string{
				"Because I'm happy",
				"Clap along if you feel like a room without a roof",
				"Because I'm happy",
			},
			Timings:         []float64{0, 3, 8},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-happy.mp3",
			SpotifyURL:      "https://open.spotify.com/track/60nZcImufyMA1MKQY3dcCH",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b273e318ddb17b522c8d3e99bb94",
			Duration:        30,
			Genre:           "Pop",
			Popularity:      95,
		},
		{
			Title:  "Good as Hell",
			Artist: "Lizzo",
			Mood:   []snippet.Mood{snippet.MoodHappy, snippet.MoodMotivational},
			LyricLines: []string{
				"I do my hair toss, check my nails",
				"Baby, how you feelin'?",
				"Feeling good as hell",
			},
			Timings:         []float64{0, 4, 7},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-good-as-hell.mp3",
			SpotifyURL:      "https://open.spotify.com/track/1PckUlxKqWQs3RlWXVBLw7",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b27353378d63903677cf6d8b4e0b",
			Duration:        30,
			Genre:           "Pop",
			Popularity:      88,
		},
		{
			Title:  "Someone Like You",
			Artist: "Adele",
			Mood:   []snippet.Mood{snippet.MoodSad, snippet.MoodLove},
			LyricLines: []string{
				"Never mind, I'll find someone like you",
				"I wish nothing but the best for you too",
				"Don't forget me, I beg",
			},
			Timings:         []float64{0, 5, 10},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-someone-like-you.mp3",
			SpotifyURL:      "https://open.spotify.com/track/1zwMYTA5nlNjZxYrvBB2pV",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b273372eb75617a40e87e0ebc5dc",
			Duration:        30,
			Genre:           "Pop",
			Popularity:      92,
		},
		{
			Title:  "Hurt",
			Artist: "Johnny Cash",
			Mood:   []snippet.Mood{snippet.MoodSad},
			LyricLines: []string{
				"I hurt myself today",
				"To see if I still feel",
				"I focus on the pain",
			},
			Timings:         []float64{0, 4, 8},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-hurt.mp3",
			SpotifyURL:      "https://open.spotify.com/track/2LHJcMHFtoAGjd9t2gp3zF",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b273d065df4b012ec4903bbfadf9",
			Duration:        30,
			Genre:           "Country",
			Popularity:      85,
		},
		{
			Title:  "Perfect",
			Artist: "Ed Sheeran",
			Mood:   []snippet.Mood{snippet.MoodLove},
			LyricLines: []string{
				"Baby, I'm dancing in the dark",
				"With you between my arms",
				"Barefoot on the grass",
			},
			Timings:         []float64{0, 3, 6},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-perfect.mp3",
			SpotifyURL:      "https://open.spotify.com/track/0tgVpDi06FyKpA1z0VMD4v",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b273ba5db46f4b838ef6027e6f96",
			Duration:        30,
			Genre:           "Pop",
			Popularity:      94,
		},
		{
			Title:  "All of Me",
			Artist: "John Legend",
			Mood:   []snippet.Mood{snippet.MoodLove},
			LyricLines: []string{
				"All of me loves all of you",
				"Love your curves and all your edges",
				"All your perfect imperfections",
			},
			Timings:         []float64{0, 4, 8},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-all-of-me.mp3",
			SpotifyURL:      "https://open.spotify.com/track/3U4isOIWM3VvDubwSI28yR",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b2733c65085dd9c2d03be4b29e6d",
			Duration:        30,
			Genre:           "R&B",
			Popularity:      89,
		},
		{
			Title:  "Uptown Funk",
			Artist: "Mark Ronson ft. Bruno Mars",
			Mood:   []snippet.Mood{snippet.MoodParty, snippet.MoodHappy},
			LyricLines: []string{
				"This hit, that ice cold",
				"Michelle Pfeiffer, that white gold",
				"This one for them hood girls",
			},
			Timings:         []float64{0, 3, 6},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-uptown-funk.mp3",
			SpotifyURL:      "https://open.spotify.com/track/32OlwWuMpZ6b0aN2RZOeMS",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b273e419ccba0baa8bd3f3d7abf2",
			Duration:        30,
			Genre:           "Funk",
			Popularity:      96,
		},
		{
			Title:  "Can't Stop the Feeling!",
			Artist: "Justin Timberlake",
			Mood:   []snippet.Mood{snippet.MoodParty, snippet.MoodHappy},
			LyricLines: []string{
				"I got that sunshine in my pocket",
				"Got that good soul in my feet",
				"I feel that hot blood in my body when it drops",
			},
			Timings:         []float64{0, 4, 8},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-cant-stop.mp3",
			SpotifyURL:      "https://open.spotify.com/track/6kVPOeRuiOiJCHEWPH9RiP",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b273d6038452c0eb0e7ad8d8a4cb",
			Duration:        30,
			Genre:           "Pop",
			Popularity:      91,
		},
		{
			Title:  "Stronger",
			Artist: "Kelly Clarkson",
			Mood:   []snippet.Mood{snippet.MoodMotivational, snippet.MoodHappy},
			LyricLines: []string{
				"What doesn't kill you makes you stronger",
				"Stand a little taller",
				"Doesn't mean I'm lonely when I'm alone",
			},
			Timings:         []float64{0, 3, 7},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-stronger.mp3",
			SpotifyURL:      "https://open.spotify.com/track/0CzgapPKhTiDDFrMYOAP4h",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b2734dd6521f2cfe2c2ba2e14eb1",
			Duration:        30,
			Genre:           "Pop",
			Popularity:      87,
		},
		{
			Title:  "Fight Song",
			Artist: "Rachel Platten",
			Mood:   []snippet.Mood{snippet.MoodMotivational},
			LyricLines: []string{
				"This is my fight song",
				"Take back my life song",
				"Prove I'm alright song",
			},
			Timings:         []float64{0, 3, 6},
			AudioPreviewURL: "https://p.scdn.co/mp3-preview/sample-fight-song.mp3",
			SpotifyURL:      "https://open.spotify.com/track/7vx2mBYSK0GQGW6hRdm9Km",
			CoverImage:      "https://i.scdn.co/image/ab67616d0000b2731b55ff31b8de5f5ad6c9c3cb",
			Duration:        30,
			Genre:           "Pop",
			Popularity:      84,
		},
	}
}
