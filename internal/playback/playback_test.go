package playback

import "testing"

func TestActiveLineIndex(t *testing.T) {
	timings := []float64{0, 3, 8}

	tests := []struct {
		t    float64
		want int
	}{
		{0, 0},
		{2.9, 0},
		{3, 1},
		{7.9, 1},
		{8, 2},
		{100, 2},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := ActiveLineIndex(timings, tt.t); got != tt.want {
			t.Errorf("ActiveLineIndex(%v, %v) = %d, want %d", timings, tt.t, got, tt.want)
		}
	}
}

func TestActiveLineIndexEdgeShapes(t *testing.T) {
	if got := ActiveLineIndex(nil, 5); got != 0 {
		t.Errorf("ActiveLineIndex(nil, 5) = %d, want 0", got)
	}
	if got := ActiveLineIndex([]float64{2}, 1); got != 0 {
		t.Errorf("single line before start = %d, want 0", got)
	}
	if got := ActiveLineIndex([]float64{2}, 10); got != 0 {
		t.Errorf("single line after start = %d, want 0", got)
	}
	// Equal timestamps: the later line wins once its time is passed.
	if got := ActiveLineIndex([]float64{0, 3, 3, 9}, 3); got != 2 {
		t.Errorf("equal timings at t=3 = %d, want 2", got)
	}
}

func TestActiveLineIndexIdempotent(t *testing.T) {
	timings := []float64{0, 1.5, 4.2, 9.9}
	for _, pos := range []float64{0, 1.5, 2, 4.2, 100} {
		first := ActiveLineIndex(timings, pos)
		for i := 0; i < 100; i++ {
			if got := ActiveLineIndex(timings, pos); got != first {
				t.Fatalf("ActiveLineIndex(%v) not stable: %d then %d", pos, first, got)
			}
		}
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker([]float64{0, 3, 8})

	if got := tr.ActiveLine(); got != 0 {
		t.Errorf("initial ActiveLine() = %d, want 0", got)
	}
	if got := tr.Advance(4); got != 1 {
		t.Errorf("Advance(4) = %d, want 1", got)
	}
	if got := tr.Advance(9); got != 2 {
		t.Errorf("Advance(9) = %d, want 2", got)
	}
	// Seeking backwards is honored.
	if got := tr.Advance(1); got != 0 {
		t.Errorf("Advance(1) after 9 = %d, want 0", got)
	}

	tr.Advance(20)
	tr.Reset()
	if tr.Position() != 0 || tr.ActiveLine() != 0 {
		t.Errorf("Reset() left position=%v line=%d", tr.Position(), tr.ActiveLine())
	}
}

func TestTrackerSeek(t *testing.T) {
	tr := NewTracker([]float64{0, 3, 8})

	if got := tr.Seek(10); got != 2 {
		t.Errorf("Seek(10) = %d, want 2", got)
	}
	if tr.Position() != 10 {
		t.Errorf("Position() after Seek(10) = %v, want 10", tr.Position())
	}
	// Scrubbing backwards lands on the earlier line.
	if got := tr.Seek(2); got != 0 {
		t.Errorf("Seek(2) = %d, want 0", got)
	}
}

func TestTrackerCopiesTimings(t *testing.T) {
	timings := []float64{0, 5}
	tr := NewTracker(timings)
	timings[1] = 1
	if got := tr.Advance(3); got != 0 {
		t.Errorf("tracker shares caller slice: Advance(3) = %d, want 0", got)
	}
}
