package grapheme

import "unicode/utf8"

// forwardCursor walks a string left to right, yielding grapheme-cluster
// boundary indices one at a time (spec §4.3). It never re-reads a byte it
// has already consumed and never needs a lookahead: the forward automaton
// is a pure Mealy machine.
type forwardCursor struct {
	s          string
	start, end int
	cursor     int
	st         state
	atEoT      bool
	done       bool
}

// newForwardCursor starts a forward walk over s[start:end]. initial is
// typically stateSoT for a fresh scan (which forces a boundary at start
// per GB1) or a previously saved cursor state when resuming mid-string.
func newForwardCursor(s string, start, end int, initial state) *forwardCursor {
	return &forwardCursor{s: s, start: start, end: end, cursor: start, st: initial}
}

// copy returns an independent cursor with identical position and state;
// advancing one does not affect the other.
func (c *forwardCursor) copy() *forwardCursor {
	cp := *c
	return &cp
}

// nextBreak returns the next boundary index in [start, end], or -1 once
// every boundary through end has been produced. An empty range has no
// boundaries at all.
func (c *forwardCursor) nextBreak() int {
	if c.done {
		return -1
	}
	// A genuinely empty range (nothing was ever consumed, state still SoT)
	// has no boundaries at all. That's different from a cursor resumed
	// exactly at its own end -- e.g. Iterator.MoveNext reseeding a cursor
	// at a prior overshoot position that happens to equal len(s) -- which
	// still owes the pending EoT transition below and must not be
	// short-circuited here.
	if c.start == c.end && c.st.logical() == stateSoT {
		c.done = true
		return -1
	}
	for {
		if c.cursor == c.end {
			c.done = true
			if c.atEoT {
				return -1
			}
			c.atEoT = true
			final := forwardMove(c.st, catEoT)
			if !final.hasNoBreak() {
				return c.cursor
			}
			return -1
		}

		breakAt := c.cursor
		r, size := utf8.DecodeRuneInString(c.s[c.cursor:c.end])
		cat := categoryOf(r)
		if r == utf8.RuneError && size <= 1 {
			cat = catControl
		}
		c.cursor += size
		c.st = forwardMove(c.st, cat)
		if !c.st.hasNoBreak() {
			return breakAt
		}
	}
}

// backwardCursor walks a string right to left, yielding grapheme-cluster
// boundary indices one at a time in descending order. Unlike the forward
// walk it may need a bounded rescan to resolve GB11 or GB12/13; the
// lookahead routines and the shared backwardStep live in boundary.go.
type backwardCursor struct {
	s          string
	start, end int
	cursor     int
	st         state
	started    bool
	done       bool
}

// newBackwardCursor starts a backward walk over s[start:end]. initial is
// typically eotNoBreak for a fresh scan from the true end of the range.
func newBackwardCursor(s string, start, end int, initial state) *backwardCursor {
	return &backwardCursor{s: s, start: start, end: end, cursor: end, st: initial}
}

func (c *backwardCursor) copy() *backwardCursor {
	cp := *c
	return &cp
}

// nextBreak returns the next boundary index, walking toward start, or -1
// once the boundary at start has been produced. An empty range has no
// boundaries at all; the first call on a non-empty one always reports end
// itself (GB2, mirrored), matching forwardCursor's symmetric treatment of
// start under GB1.
func (c *backwardCursor) nextBreak() int {
	if c.done {
		return -1
	}
	if c.start == c.end {
		c.done = true
		return -1
	}
	if !c.started {
		c.started = true
		return c.end
	}
	for c.cursor > c.start {
		// Each step decides the boundary at the right edge of the code
		// point it consumes. The decision at end itself was already
		// reported above (or is a known boundary on resumption).
		breakAt := c.cursor
		c.st, c.cursor = backwardStep(c.st, c.s, c.start, c.cursor)
		if breakAt != c.end && !c.st.hasNoBreak() {
			return breakAt
		}
	}
	// GB1: start of the range is always a boundary (nothing can attach
	// across sot).
	c.done = true
	return c.start
}
