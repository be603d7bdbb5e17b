// Package playback determines which lyric line is active at a given
// playback position. The clock is driven externally (by an audio element
// or timer); everything here is a pure computation, safe to call at any
// update frequency.
package playback

// ActiveLineIndex returns the index of the lyric line active at time t.
// It is the greatest i such that timings[i] <= t. Positions before the
// first timestamp clamp to 0, positions past the last timestamp stay on
// the last line. Repeated calls with the same t return the same index.
func ActiveLineIndex(timings []float64, t float64) int {
	if len(timings) == 0 {
		return 0
	}

	active := 0
	for i, start := range timings {
		if start > t {
			break
		}
		active = i
	}
	return active
}

// Tracker follows playback of one snippet's timed lyric lines. The zero
// value is not usable; construct with NewTracker.
type Tracker struct {
	timings []float64
	current float64
}

// NewTracker creates a tracker positioned at the start of the snippet.
func NewTracker(timings []float64) *Tracker {
	t := make([]float64, len(timings))
	copy(t, timings)
	return &Tracker{timings: t}
}

// Advance moves the clock to the given position and returns the active
// line index. Positions only move where the caller says; out-of-order
// updates (seeks backwards) are honored as-is.
func (tr *Tracker) Advance(t float64) int {
	tr.current = t
	return tr.ActiveLine()
}

// Seek jumps to an arbitrary position. It is Advance under the name a
// scrub-bar caller expects.
func (tr *Tracker) Seek(t float64) int {
	return tr.Advance(t)
}

// ActiveLine returns the active line index at the current position.
func (tr *Tracker) ActiveLine() int {
	return ActiveLineIndex(tr.timings, tr.current)
}

// Position returns the current playback position in seconds.
func (tr *Tracker) Position() float64 {
	return tr.current
}

// Reset returns the clock to 0, as on stop or end-of-track.
func (tr *Tracker) Reset() {
	tr.current = 0
}
