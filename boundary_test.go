package grapheme

import "testing"

func TestIsBoundaryEdges(t *testing.T) {
	s := "ab"
	if !IsBoundary(s, 0, len(s), 0) {
		t.Errorf("start of range must be a boundary")
	}
	if !IsBoundary(s, 0, len(s), len(s)) {
		t.Errorf("end of range must be a boundary")
	}
}

func TestIsBoundaryEmptyRange(t *testing.T) {
	if IsBoundary("", 3, 3, 3) {
		t.Errorf("an empty range has no boundaries, not even at its sole index")
	}
}

func TestIsBoundaryInterior(t *testing.T) {
	// "e" + combining acute + "x": interior byte offset 1 sits inside the
	// first cluster (between 'e' and the combining mark) and must not be a
	// boundary; offset 3 sits between the two clusters and must be one.
	s := testCombiningMark
	if IsBoundary(s, 0, len(s), 1) {
		t.Errorf("offset 1 is inside the base+mark cluster, should not be a boundary")
	}
	if !IsBoundary(s, 0, len(s), 3) {
		t.Errorf("offset 3 is between clusters, should be a boundary")
	}
}

func TestIsBoundaryRegionalIndicatorParity(t *testing.T) {
	s := testFlags // four RIs, pairing into two flags: boundary at 0, 8, 16
	for _, off := range []int{0, 8, 16} {
		if !IsBoundary(s, 0, len(s), off) {
			t.Errorf("offset %d should be a flag-pair boundary", off)
		}
	}
	for _, off := range []int{4, 12} {
		if IsBoundary(s, 0, len(s), off) {
			t.Errorf("offset %d is mid-flag-pair, should not be a boundary", off)
		}
	}
}

func TestIsBoundaryOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range index")
		}
	}()
	IsBoundary("abc", 0, 3, 10)
}

func TestNextBreakSkipsKnownBoundary(t *testing.T) {
	s := "abc"
	if got := NextBreak(s, 0, len(s), 0); got != 1 {
		t.Errorf("NextBreak(0) = %d, want 1", got)
	}
	if got := NextBreak(s, 0, len(s), 1); got != 2 {
		t.Errorf("NextBreak(1) = %d, want 2", got)
	}
	if got := NextBreak(s, 0, len(s), 3); got != -1 {
		t.Errorf("NextBreak(end) = %d, want -1", got)
	}
}

func TestPreviousBreak(t *testing.T) {
	s := "abc"
	if got := PreviousBreak(s, 0, len(s), 3); got != 2 {
		t.Errorf("PreviousBreak(3) = %d, want 2", got)
	}
	if got := PreviousBreak(s, 0, len(s), 1); got != 0 {
		t.Errorf("PreviousBreak(1) = %d, want 0", got)
	}
	if got := PreviousBreak(s, 0, len(s), 0); got != -1 {
		t.Errorf("PreviousBreak(start) = %d, want -1", got)
	}
}

func TestBoundariesSeqYieldsFullRange(t *testing.T) {
	s := "abc"
	var got []int
	for b := range Boundaries(s) {
		got = append(got, b)
	}
	want := []int{0, 1, 2, 3}
	if !equalInts(got, want) {
		t.Errorf("Boundaries(%q) = %v, want %v", s, got, want)
	}
}

func TestBoundariesSeqEmptyString(t *testing.T) {
	count := 0
	for range Boundaries("") {
		count++
	}
	if count != 0 {
		t.Errorf("Boundaries(\"\") yielded %d values, want 0", count)
	}
}

func TestBoundariesSeqStopsEarly(t *testing.T) {
	s := "abcdef"
	var got []int
	for b := range Boundaries(s) {
		got = append(got, b)
		if b == 2 {
			break
		}
	}
	want := []int{0, 1, 2}
	if !equalInts(got, want) {
		t.Errorf("Boundaries(%q) early break = %v, want %v", s, got, want)
	}
}

func TestLookaheadRegionalParity(t *testing.T) {
	s := testFlags
	// cursor sits just after the first two RIs (byte offset 8): an even
	// count of RIs precedes it, so the first pair is already complete and
	// this boundary holds (no NoBreak).
	got := lookaheadRegional(s, 0, 8)
	if got.hasNoBreak() {
		t.Errorf("lookaheadRegional at even boundary = %v, want no NoBreak", got)
	}
	// cursor sits after exactly one RI (byte offset 4): odd count, so the
	// RI to its right is the second half of a pair -- NoBreak set.
	got = lookaheadRegional(s, 0, 4)
	if !got.hasNoBreak() {
		t.Errorf("lookaheadRegional at odd boundary = %v, want NoBreak", got)
	}
}

func TestGraphemeClusterCount(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"combining mark", testCombiningMark, 2},
		{"flags", testFlags, 2},
		{"family emoji", testFamilyEmoji, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GraphemeClusterCount(tt.s); got != tt.want {
				t.Errorf("GraphemeClusterCount(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestLookaheadZWJPictographic(t *testing.T) {
	s := testFamilyEmoji
	// cursor at byte offset 4, the boundary immediately to the left of
	// the first ZWJ: the rune immediately preceding it is the "man"
	// pictographic emoji (bytes [0,4)), confirming the Emoji_ZWJ_Sequence
	// -- GB11 attaches the ZWJ to it with NoBreak.
	got := lookaheadZWJPictographic(s, 0, 4)
	if got.logical() != stateZWJPictographic || !got.hasNoBreak() {
		t.Errorf("lookaheadZWJPictographic after leading pictographic = %v, want ZWJPictographic|NoBreak", got)
	}
}
