package grapheme

import (
	"iter"
	"unicode/utf8"
)

// resolveLookahead dispatches a lookahead sentinel produced by backwardMove
// to the matching bounded rescan (spec §4.4). cursor is the byte offset of
// the code point that triggered the sentinel -- for stateRegionalLookahead
// that's the earlier of the two regional indicators just observed, and the
// boundary being decided is the one just past it; for
// stateZWJPictographicLookahead it's the ZWJ itself.
func resolveLookahead(s state, text string, start, cursor int) state {
	switch s {
	case stateRegionalLookahead:
		_, size := utf8.DecodeRuneInString(text[cursor:])
		return lookaheadRegional(text, start, cursor+size)
	case stateZWJPictographicLookahead:
		return lookaheadZWJPictographic(text, start, cursor)
	default:
		panic(&InvariantError{Op: "resolveLookahead", Msg: "state outside the defined lookahead band"})
	}
}

// lookaheadRegional resolves GB12/13 for the boundary at cursor by
// counting the regional indicators that run contiguously to its left
// inside text[start:cursor]. Per UAX #29's GB12/13 note, a boundary
// between two RIs is suppressed iff an odd number of RIs precede it (the
// RI to cursor's right is then the second half of a pair); an even count
// means the run restarts pairing there, so the boundary holds. The
// returned state is tagged stateRegionalSingle (the code point left of
// cursor is an RI), so the next step left, if it too is an RI, re-triggers
// this same rescan from scratch rather than carrying the parity forward
// incrementally.
func lookaheadRegional(text string, start, cursor int) state {
	count := 0
	pos := cursor
	for pos > start {
		r, size := utf8.DecodeLastRuneInString(text[start:pos])
		if categoryOf(r) != catRegionalIndicator {
			break
		}
		count++
		pos -= size
	}
	if count%2 == 0 {
		return stateRegionalSingle
	}
	return stateRegionalSingle | noBreak
}

// lookaheadZWJPictographic resolves GB11 by walking left from the ZWJ
// (cursor) across any run of Extend code points looking for the
// Extended_Pictographic that must anchor the sequence. Anything else --
// including running off the start of the range -- means the ZWJ did not
// close a GB11 sequence after all, and the boundary immediately to its
// left is decided as an ordinary Extend attachment instead.
func lookaheadZWJPictographic(text string, start, cursor int) state {
	pos := cursor
	for pos > start {
		r, size := utf8.DecodeLastRuneInString(text[start:pos])
		switch categoryOf(r) {
		case catPictographic:
			return stateZWJPictographic | noBreak
		case catExtend:
			pos -= size
			continue
		default:
			return stateExtend
		}
	}
	return stateExtend
}

// backwardStep decodes the code point ending at pos, feeds it through
// backwardMove, resolves a lookahead sentinel if one comes back, and
// returns the resulting state along with the byte offset immediately
// before the consumed code point. Shared by backwardCursor.nextBreak and
// IsBoundary so the two-category probe in the latter can't drift from the
// real backward walk.
func backwardStep(st state, text string, start, pos int) (state, int) {
	r, size := utf8.DecodeLastRuneInString(text[start:pos])
	cat := categoryOf(r)
	if r == utf8.RuneError && size <= 1 {
		cat = catControl
	}
	next := pos - size
	st = backwardMove(st, cat)
	if st.needsLookahead() {
		st = resolveLookahead(st, text, start, next)
	}
	return st, next
}

// IsBoundary reports whether index is a grapheme-cluster boundary in
// text[start:end] (spec §4.4). GB1/GB2 make the two ends of a non-empty
// range unconditional boundaries; anywhere in between, the two code
// points straddling index are fed into the backward machine starting from
// EoTNoBreak, exactly as if a backward walk had begun just past index --
// index is a boundary iff that walk does not report a NoBreak.
//
// An index that falls inside a multi-byte code point is never a boundary,
// and an empty range has no boundaries at all.
//
// GB12/13 between two regional indicators is handled as a direct special
// case rather than through that two-step probe: regional indicator
// pairing only ever depends on what runs to index's left, so it is
// resolved with a single rescan anchored exactly at index.
func IsBoundary(s string, start, end, index int) bool {
	if end < start || index < start || index > end {
		panic(&RangeError{Op: "IsBoundary", Index: index, Start: start, End: end})
	}
	if end == start {
		return false
	}
	if index == start || index == end {
		return true
	}
	for k := 1; k <= utf8.UTFMax-1 && index-k >= start; k++ {
		if utf8.RuneStart(s[index-k]) {
			if _, size := utf8.DecodeRuneInString(s[index-k : end]); size > k {
				return false // index is inside this code point
			}
			break
		}
	}

	right, _ := utf8.DecodeRuneInString(s[index:end])
	left, _ := utf8.DecodeLastRuneInString(s[start:index])
	if categoryOf(right) == catRegionalIndicator && categoryOf(left) == catRegionalIndicator {
		return !lookaheadRegional(s, start, index).hasNoBreak()
	}

	st, _ := backwardStep(eotNoBreak, s, start, index+runeWidthAt(s, index, end))
	st, _ = backwardStep(st, s, start, index)
	return !st.hasNoBreak()
}

// runeWidthAt returns the UTF-8 size of the code point starting at index
// within s[index:end], or 0 if index == end.
func runeWidthAt(s string, index, end int) int {
	if index == end {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s[index:end])
	return size
}

// NextBreak returns the first grapheme-cluster boundary strictly after
// from, or -1 if from is already the last boundary in [start, end]. from
// is assumed to already be a boundary (the typical caller holds one from a
// previous call or from GraphemeClusters iteration).
func NextBreak(s string, start, end, from int) int {
	if from < start || from > end {
		panic(&RangeError{Op: "NextBreak", Index: from, Start: start, End: end})
	}
	c := newForwardCursor(s, from, end, stateSoT)
	b := c.nextBreak()
	if b == from {
		b = c.nextBreak()
	}
	return b
}

// PreviousBreak returns the last grapheme-cluster boundary strictly before
// from, or -1 if from is already the first boundary in [start, end]. from
// is assumed to already be a boundary, so treating it as a synthetic
// end-of-text (EoTNoBreak) for the backward walk needs no right context
// beyond from: nothing can attach across a real boundary. A fresh
// backward cursor always echoes its own end as its first result (the
// mirror of NextBreak seeding stateSoT at an arbitrary offset), so that
// first call is discarded the same way NextBreak discards it.
func PreviousBreak(s string, start, end, from int) int {
	if from < start || from > end {
		panic(&RangeError{Op: "PreviousBreak", Index: from, Start: start, End: end})
	}
	if from == start {
		return -1
	}
	c := newBackwardCursor(s, start, from, eotNoBreak)
	b := c.nextBreak()
	if b == from {
		b = c.nextBreak()
	}
	return b
}

// GraphemeClusterCount returns the number of grapheme clusters in s. It
// walks the forward automaton directly rather than building a [Clusters]
// view, so it costs no allocation for callers that only need a count (the
// common case behind "how many characters does a user see").
func GraphemeClusterCount(s string) int {
	if s == "" {
		return 0
	}
	c := newForwardCursor(s, 0, len(s), stateSoT)
	c.nextBreak() // GB1 forces a boundary at 0; not itself a cluster end.
	count := 0
	for {
		b := c.nextBreak()
		if b < 0 {
			return count
		}
		count++
	}
}

// Boundaries lazily yields every grapheme-cluster boundary index in s, in
// increasing order, including 0 and len(s) (unless s is empty).
func Boundaries(s string) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(s) == 0 {
			return
		}
		c := newForwardCursor(s, 0, len(s), stateSoT)
		for {
			b := c.nextBreak()
			if b < 0 {
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}
