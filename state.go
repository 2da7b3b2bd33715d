package grapheme

// state is the wire-level automaton state word (spec §6). The low nibble
// carries flag bits (only NoBreak is defined); the high nibble carries the
// logical state used to key the transition tables; values >= lookaheadMin
// are backward-only sentinels meaning "the table could not decide locally,
// call the matching lookahead routine."
type state uint8

const (
	noBreak state = 0x01 // set iff no boundary is introduced by the last transition
)

// Forward-usable logical states (low nibble always zero).
const (
	stateSoT            state = 0x00
	stateBreak          state = 0x10
	stateCR             state = 0x20
	stateOther          state = 0x30
	statePrepend        state = 0x40
	stateL              state = 0x50
	stateLV             state = 0x60
	stateLVT            state = 0x70
	statePictographic   state = 0x80
	statePictographicZWJ state = 0x90
	stateRegionalSingle state = 0xA0
)

// Backward-only logical states. stateV and stateT keep a right neighbor of
// class V or T apart from LV or LVT, which GB6-GB8 treat differently.
const (
	stateExtend          state = 0xB0
	stateZWJPictographic state = 0xC0
	stateV               state = 0xD0
	stateT               state = 0xE0
)

// Lookahead sentinel band: any state >= lookaheadMin means the backward
// machine needs a bounded rescan (§4.4) before the state is usable.
const (
	lookaheadMin                  state = 0xF0
	stateRegionalLookahead        state = 0xF0
	stateZWJPictographicLookahead state = 0xF8
)

// eotNoBreak seeds the backward predicate's synthetic "one step past the
// index we're testing" context (§4.4: "starting from EoTNoBreak").
const eotNoBreak state = stateOther | noBreak

func (s state) logical() state       { return s & 0xF0 }
func (s state) hasNoBreak() bool     { return s&noBreak != 0 }
func (s state) needsLookahead() bool { return s >= lookaheadMin }

// dispatchLogical returns the key forwardMove's rule switch dispatches on,
// mapping stateBreak onto stateOther. forwardMove handles both stateSoT
// (GB1) and stateBreak (GB4: the state after LF, Control, or CR LF) before
// ever calling dispatchLogical (see below), so in practice neither reaches
// it. Only forwardMove uses this: the backward automaton never receives
// SoT, and reuses stateBreak for its own purpose (see backwardMove).
func dispatchLogical(s state) state {
	if s.logical() == stateBreak {
		return stateOther
	}
	return s.logical()
}

// forwardMove implements the forward grapheme-break transition, spec §4.2.
// The forward machine never needs lookahead (spec §3 invariant): GB12/13's
// parity and GB11's ZWJ+Pictographic context are both expressible with a
// single bit of state (stateRegionalSingle, statePictographic /
// statePictographicZWJ) when walking left to right.
func forwardMove(s state, c category) state {
	if s.logical() == stateSoT || s.logical() == stateBreak {
		// GB1: always break at sot, no exceptions. GB4: always break
		// after LF, Control, or CR LF, even before Extend/ZWJ/SpacingMark.
		return breakInto(c)
	}
	from := dispatchLogical(s)

	// GB3 must be checked before the generic "always break before LF"
	// rule below, or the CR x LF exception could never fire.
	if from == stateCR && c == catLF {
		return stateBreak | noBreak // GB3: CR x LF
	}

	switch {
	case c == catEoT:
		return stateBreak // GB2: always break before eot
	case c == catCR:
		return stateCR
	case c == catLF || c == catControl:
		return stateBreak
	}

	switch from {
	case stateCR:
		return breakInto(c) // GB4: break after CR (LF already handled above)
	case statePrepend:
		return breakInto(c) | noBreak // GB9b: no break after Prepend, tag c's own class
	case stateL:
		switch c {
		case catL:
			return stateL | noBreak // GB6
		case catV, catLV:
			return stateLV | noBreak // GB6
		case catLVT:
			return stateLVT | noBreak // GB6
		}
	case stateLV:
		switch c {
		case catV:
			return stateLV | noBreak // GB7
		case catT:
			return stateLVT | noBreak // GB7
		}
	case stateLVT:
		if c == catT {
			return stateLVT | noBreak // GB8
		}
	case statePictographic:
		switch c {
		case catExtend:
			return statePictographic | noBreak // GB9 (stay in sequence)
		case catZWJ:
			return statePictographicZWJ | noBreak // GB9
		}
	case statePictographicZWJ:
		if c == catPictographic {
			return statePictographic | noBreak // GB11
		}
	case stateRegionalSingle:
		if c == catRegionalIndicator {
			return stateOther | noBreak // GB12/13: second RI of the pair
		}
	}

	// GB9/GB9a: no break before Extend, ZWJ, or SpacingMark, regardless of
	// left context (unless a more specific rule above already fired).
	if c == catExtend || c == catZWJ || c == catSpacingMark {
		return contInto(from) | noBreak
	}

	// GB999 fallback via breakInto, which also starts tracking any
	// left-context-sensitive category (Prepend, L, LV, LVT, Pictographic,
	// RegionalIndicator).
	return breakInto(c)
}

// contInto returns the logical state to carry forward after an Extend, ZWJ,
// or SpacingMark attaches with no break: always Other, regardless of what
// `from` was. GB6/7/8, GB11, and GB12/13 all require their tracked class to
// sit immediately adjacent to what completes it, so an intervening
// Extend/ZWJ/SpacingMark must not let L/LV/LVT/a pictographic-ZWJ/a lone
// regional indicator survive past it.
func contInto(state) state {
	return stateOther
}

// breakInto returns the logical state after a confirmed boundary (the
// NoBreak bit deliberately left clear: a break did occur here), tagged
// with the class of the code point that starts the new cluster so a
// following character can attach to it via GB6/7/8/9/11/12/13.
func breakInto(c category) state {
	switch c {
	case catPrepend:
		return statePrepend
	case catL:
		return stateL
	case catV, catLV:
		return stateLV
	case catT, catLVT:
		return stateLVT
	case catPictographic:
		return statePictographic
	case catRegionalIndicator:
		return stateRegionalSingle
	case catCR:
		return stateCR
	case catLF, catControl:
		return stateBreak
	default:
		return stateOther
	}
}

// backwardMove implements the backward grapheme-break transition, spec
// §4.2. Unlike forwardMove it may return a lookahead sentinel: GB11 and
// GB12/13 both require unbounded left context that a single backward step
// cannot see (spec §3 invariant).
//
// backwardMove does not use dispatchLogical: the backward automaton never
// receives stateSoT (its synthetic seed is eotNoBreak, already stateOther),
// and it deliberately does not collapse stateBreak -- that bucket is
// repurposed below to remember "the right neighbor was CR or Control"
// (see the GB4/GB5 handling), which forwardMove's collapse would erase.
//
// `from` names the right neighbor's *effective class* -- the neighbor
// already visited, one step closer to the end of the string. Unlike
// forwardMove's breakInto, V, LV, T, and LVT each keep their own bucket
// (GB6-GB8 accept different right neighbors for each); Extend, ZWJ, and
// SpacingMark all fold into the Extend bucket, since GB9 and GB9a give
// them an identical effect: an unconditional no-break for whatever is on
// the left.
func backwardMove(s state, c category) state {
	from := s.logical()

	// GB3: CR x LF -- no break. stateCR here means "the right neighbor
	// just consumed was LF", the backward mirror of forwardMove's
	// stateCR ("just consumed CR, watching for LF").
	if c == catCR && from == stateCR {
		return stateBreak | noBreak
	}
	// GB4: break after CR, LF, or Control. This is exactly the boundary
	// being decided right now, since `from` represents the neighbor to
	// c's right.
	if c == catLF {
		return stateCR // marks "right neighbor is LF" for the next GB3 check
	}
	if c == catCR || c == catControl {
		return stateBreak // marks "right neighbor forces GB5", no exception
	}
	// GB5: break before CR, LF, or Control.
	if from == stateCR || from == stateBreak {
		return startBackward(c)
	}

	// GB6: L x (L | V | LV | LVT)
	if c == catL && (from == stateL || from == stateV || from == stateLV || from == stateLVT) {
		return stateL | noBreak
	}
	// GB7: (LV | V) x (V | T)
	if (c == catV || c == catLV) && (from == stateV || from == stateT) {
		return startBackward(c) | noBreak
	}
	// GB8: (LVT | T) x T
	if (c == catT || c == catLVT) && from == stateT {
		return startBackward(c) | noBreak
	}

	// GB9/GB9a: x (Extend | ZWJ | SpacingMark) -- an unconditional no
	// break regardless of what's on the left.
	if from == stateExtend {
		return startBackward(c) | noBreak
	}
	// GB9b: Prepend x -- an unconditional no break regardless of the
	// right neighbor, checked after GB9/9a since those outrank it.
	if c == catPrepend {
		return statePrepend | noBreak
	}

	// GB11: pictographic ZWJ sequence. The right neighbor of this ZWJ is
	// already known to be Pictographic (that's how `from` got set); this
	// boundary depends on whether a Pictographic Extend* run precedes the
	// ZWJ, which lies further left than backwardMove alone can see.
	if c == catZWJ && from == statePictographic {
		return stateZWJPictographicLookahead
	}
	// The lookahead above resolved a prior boundary and, on success,
	// hands back stateZWJPictographic to mark it: the right neighbor is
	// then that ZWJ, so whatever precedes it (the Pictographic or an
	// Extend of the Pictographic Extend* run) attaches with no break (GB9).
	if from == stateZWJPictographic {
		return startBackward(c) | noBreak
	}

	// GB12/13: regional indicator pairing. Between two RIs, whether this
	// boundary breaks depends on how many RIs run contiguously to its
	// left, which a single step can't see -- defer to the bounded rescan.
	// An RI next to anything else falls through to GB999.
	if c == catRegionalIndicator && from == stateRegionalSingle {
		return stateRegionalLookahead
	}

	// GB999 fallback.
	return startBackward(c)
}

// startBackward returns the logical bucket a raw category establishes for
// use by the *next* (further left) backwardMove call, folding Extend, ZWJ,
// and SpacingMark into one Extend bucket and giving each Hangul class
// (L, V, LV, T, LVT) its own bucket.
func startBackward(c category) state {
	switch c {
	case catExtend, catZWJ, catSpacingMark:
		return stateExtend
	case catRegionalIndicator:
		return stateRegionalSingle
	case catPrepend:
		return statePrepend
	case catL:
		return stateL
	case catV:
		return stateV
	case catLV:
		return stateLV
	case catT:
		return stateT
	case catLVT:
		return stateLVT
	case catPictographic:
		return statePictographic
	default:
		return stateOther
	}
}
