package grapheme

import (
	"strings"
	"testing"
)

// checkGraphemeInvariants runs every string-shaped invariant this package
// promises against one input, failing t with enough context to reproduce.
// Shared between the corpus-driven property test and the fuzz entry point
// below so both exercise identical checks.
func checkGraphemeInvariants(t *testing.T, s string) {
	t.Helper()

	fwd := collectForward(s)
	for i, b := range fwd {
		if b < 0 || b > len(s) {
			t.Fatalf("forward boundary %d out of range [0,%d]: %v", b, len(s), fwd)
		}
		if i > 0 && b <= fwd[i-1] {
			t.Fatalf("forward boundaries not strictly increasing: %v", fwd)
		}
	}

	bwd := reversed(collectBackward(s))
	if !equalInts(fwd, bwd) {
		t.Fatalf("forward/backward boundary sets disagree for %q: forward=%v backward=%v", s, fwd, bwd)
	}

	boundarySet := make(map[int]bool, len(fwd))
	for _, b := range fwd {
		boundarySet[b] = true
	}
	for i := 0; i <= len(s); i++ {
		if IsBoundary(s, 0, len(s), i) != boundarySet[i] {
			t.Fatalf("IsBoundary(%q, %d) = %v, want %v", s, i, !boundarySet[i], boundarySet[i])
		}
	}

	c := New(s)
	if s == "" {
		if c.Length() != 0 {
			t.Fatalf("New(%q).Length() = %d, want 0", s, c.Length())
		}
	} else if want := len(fwd) - 1; c.Length() != want {
		t.Fatalf("New(%q).Length() = %d, want %d (boundaries %v)", s, c.Length(), want, fwd)
	}

	if got := GraphemeClusterCount(s); got != c.Length() {
		t.Fatalf("GraphemeClusterCount(%q) = %d, want %d", s, got, c.Length())
	}

	var joined strings.Builder
	for _, cl := range c.All {
		joined.WriteString(cl)
	}
	if joined.String() != s {
		t.Fatalf("clusters of %q do not concatenate back to the original: got %q", s, joined.String())
	}

	for a := 0; a <= c.Length(); a++ {
		if got := c.Take(a).String() + c.Skip(a).String(); got != s {
			t.Fatalf("Take(%d)+Skip(%d) of %q = %q, want %q", a, a, s, got, s)
		}
		for b := a; b <= c.Length(); b++ {
			if got, want := c.GetRange(a, b).String(), c.Take(b).Skip(a).String(); got != want {
				t.Fatalf("GetRange(%d,%d) of %q = %q, want Take(%d).Skip(%d) = %q", a, b, s, got, b, a, want)
			}
		}
	}

	if s != "" {
		if got := c.ReplaceAll(c, c, 0).String(); got != s {
			t.Fatalf("ReplaceAll(x,x) of %q = %q, want %q", s, got, s)
		}
	}

	// Iterator round-trip: walking forward cluster by cluster and
	// concatenating must reconstruct s exactly, and must visit exactly
	// c.Length() clusters (a regression check for silently dropped
	// clusters at the resumed-cursor/end-of-string boundary).
	it := NewIterator(c)
	var walked strings.Builder
	var positions [][2]int
	for it.MoveNext() {
		walked.WriteString(it.String())
		positions = append(positions, [2]int{it.start, it.end})
	}
	if walked.String() != s {
		t.Fatalf("Iterator forward walk of %q concatenated to %q, want %q", s, walked.String(), s)
	}
	if len(positions) != c.Length() {
		t.Fatalf("Iterator forward walk of %q visited %d clusters, want %d", s, len(positions), c.Length())
	}

	// Resumability (spec §8): for every cluster index k, moveNext k+1
	// times then movePrevious once must land back on cluster k-1 with the
	// same (start, end) direct forward iteration to k-1 produces.
	for k := range positions {
		fresh := NewIterator(c)
		for i := 0; i <= k; i++ {
			if !fresh.MoveNext() {
				t.Fatalf("Iterator resumability of %q: MoveNext failed at step %d", s, i)
			}
		}
		if k == 0 {
			if fresh.MovePrevious() {
				t.Fatalf("Iterator resumability of %q: MovePrevious after the first cluster should fail, nothing precedes it", s)
			}
			continue
		}
		if !fresh.MovePrevious() {
			t.Fatalf("Iterator resumability of %q: MovePrevious failed after %d MoveNext calls", s, k+1)
		}
		want := positions[k-1]
		if fresh.start != want[0] || fresh.end != want[1] {
			t.Fatalf("Iterator resumability of %q: after %d MoveNext then MovePrevious got (%d,%d), want (%d,%d)",
				s, k+1, fresh.start, fresh.end, want[0], want[1])
		}
	}
}

// fuzzCorpus reuses breakiter_test.go's already-checked constants rather
// than retyping combining sequences by hand, plus a few escape-only
// additions for rules those constants don't exercise: Prepend, SpacingMark,
// consecutive Controls, multiple stacked Extends, and an interrupting
// Extend breaking each of GB6, GB11, and GB12/13's tracked left context.
var fuzzCorpus = []string{
	"",
	"a",
	"abc",
	"a\r\nb",
	testCombiningMark,
	testFlags,
	testFlags[:12], // three RIs: an odd trailing one is left unpaired
	testFamilyEmoji,
	testHangulPlusAscii,
	"\u0600a", // GB9b: Prepend x any
	"a\u0903b", // GB9a: any x SpacingMark
	"a\u0300\u0301b", // GB9: multiple Extends glue to one base
	"\x01\x02", // consecutive Controls, each its own cluster
	"a\u4e2db", // ASCII flanking a wide CJK cluster
	"\u1100\u0300\u1161",                     // GB6 interrupted: L Extend V must break between Extend and V
	"\U0001F466\u200d\u0308\u200d\U0001F466", // GB11 interrupted: Pictographic ZWJ Extend ZWJ Pictographic must break before the final Pictographic
	"\U0001F1E6\u0300\U0001F1E7",              // GB12/13 interrupted: RI Extend RI must break between Extend and the second RI
}

func TestGraphemeInvariantsCorpus(t *testing.T) {
	for _, s := range fuzzCorpus {
		t.Run(s, func(t *testing.T) {
			checkGraphemeInvariants(t, s)
		})
	}
}

func FuzzGraphemeInvariants(f *testing.F) {
	for _, s := range fuzzCorpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		checkGraphemeInvariants(t, s)
	})
}
