package grapheme

// direction records which movement last produced the iterator's current
// [start, end) range, so the next movement in the same direction can
// resume the underlying automaton instead of rescanning from scratch.
type direction uint8

const (
	dirNone direction = iota
	dirForward
	dirBackward
)

// Iterator is a bidirectional, resumable cursor over one Clusters view's
// clusters (spec §3, "Bidirectional cluster iterator"). Its packed field
// holds the automaton state byte, the direction of the last movement, and
// the forward-only cursor/boundary overshoot ("delta") in one machine
// word, mirroring the teacher's own packed multi-field state return value
// (step.go's newState int) rather than a struct of loose fields.
type Iterator struct {
	s          string
	start, end int
	packed     uint16
}

const (
	packedStateMask = 0x00FF
	packedDirShift  = 8
	packedDirMask   = 0x0300
	packedDeltaShift = 10
)

// NewIterator returns an iterator over c's clusters, positioned as an
// empty range at the start of the string.
func NewIterator(c Clusters) *Iterator {
	return &Iterator{s: c.s}
}

func (it *Iterator) autState() state     { return state(it.packed & packedStateMask) }
func (it *Iterator) direction() direction { return direction((it.packed & packedDirMask) >> packedDirShift) }
func (it *Iterator) delta() int          { return int(it.packed >> packedDeltaShift) }

func (it *Iterator) setPacked(st state, dir direction, delta int) {
	it.packed = uint16(st) | uint16(dir)<<packedDirShift | uint16(delta)<<packedDeltaShift
}

// MoveNext advances to the next cluster, returning false (and leaving the
// iterator positioned at an empty range past the last cluster) once the
// end of the string has been reached.
func (it *Iterator) MoveNext() bool {
	if it.end >= len(it.s) {
		return false
	}

	var cur *forwardCursor
	if it.direction() == dirForward {
		cur = newForwardCursor(it.s, it.end+it.delta(), len(it.s), it.autState())
		b := cur.nextBreak()
		if b < 0 {
			it.setPacked(cur.st, dirForward, 0)
			return false
		}
		it.start, it.end = it.end, b
	} else {
		// Last movement wasn't forward (or this is a fresh iterator): the
		// automaton must be reseeded at SoT, and the boundary it forces
		// at it.end itself must be skipped -- that boundary is already
		// known (it's where the previous cluster ended).
		cur = newForwardCursor(it.s, it.end, len(it.s), stateSoT)
		cur.nextBreak()
		b := cur.nextBreak()
		if b < 0 {
			it.setPacked(cur.st, dirForward, 0)
			return false
		}
		it.start, it.end = it.end, b
	}
	it.setPacked(cur.st, dirForward, cur.cursor-it.end)
	return true
}

// MovePrevious retreats to the previous cluster, returning false once the
// start of the string has been reached.
func (it *Iterator) MovePrevious() bool {
	if it.start <= 0 {
		return false
	}

	var initial state
	if it.direction() == dirBackward {
		initial = it.autState()
	} else {
		initial = eotNoBreak
	}
	cur := newBackwardCursor(it.s, 0, it.start, initial)
	// A fresh backward cursor always echoes its own end as its first
	// result (mirroring forward's GB1 boundary at sot); that's it.start
	// itself here, already known, so it's discarded the same way
	// PreviousBreak discards it.
	b := cur.nextBreak()
	if b == it.start {
		b = cur.nextBreak()
	}
	it.end = it.start
	it.start = b
	it.setPacked(cur.st, dirBackward, 0)
	return true
}

// Reset collapses the iterator to an empty range at byte offset i.
func (it *Iterator) Reset(i int) {
	if i < 0 || i > len(it.s) {
		panic(&RangeError{Op: "Reset", Index: i, Length: len(it.s)})
	}
	it.start, it.end = i, i
	it.packed = 0 // dirNone, state irrelevant until the next move
}

// ResetStart collapses the iterator to an empty range at the string's
// start.
func (it *Iterator) ResetStart() { it.Reset(0) }

// ResetEnd collapses the iterator to an empty range at the string's end.
func (it *Iterator) ResetEnd() { it.Reset(len(it.s)) }

// Copy returns an independent iterator with identical position and state.
func (it *Iterator) Copy() *Iterator {
	cp := *it
	return &cp
}

// CodeUnits returns the current cluster's raw bytes.
func (it *Iterator) CodeUnits() []byte { return []byte(it.s[it.start:it.end]) }

// Runes returns the current cluster's code points.
func (it *Iterator) Runes() []rune { return []rune(it.s[it.start:it.end]) }

// Width returns the current cluster's monospace display width.
func (it *Iterator) Width() int { return clusterWidth(it.s[it.start:it.end]) }

// String returns the current cluster's substring.
func (it *Iterator) String() string { return it.s[it.start:it.end] }
