package grapheme

import "strings"

// findFrom implements the boundary-aware search algorithm of spec §4.5: it
// delegates to the underlying code-unit search, then verifies both edges
// of each candidate against IsBoundary before accepting it, advancing past
// rejected candidates by one byte at a time.
func (c Clusters) findFrom(other Clusters, from int) int {
	if from < 0 || from > len(c.s) {
		panic(&RangeError{Op: "IndexOf", Index: from, Length: len(c.s)})
	}
	if other.s == "" {
		return from
	}
	for {
		idx := strings.Index(c.s[from:], other.s)
		if idx < 0 {
			return -1
		}
		matchStart := from + idx
		matchEnd := matchStart + len(other.s)
		if IsBoundary(c.s, 0, len(c.s), matchStart) && IsBoundary(c.s, 0, len(c.s), matchEnd) {
			return matchStart
		}
		from = matchStart + 1
	}
}

// findLastFrom is the backward-searching mirror of findFrom: it looks for
// the last occurrence of other.s starting at or before startIndex, shrinking
// the search window past any candidate that doesn't land on aligned
// boundaries.
func (c Clusters) findLastFrom(other Clusters, startIndex int) int {
	if startIndex < 0 || startIndex > len(c.s) {
		panic(&RangeError{Op: "LastIndexOf", Index: startIndex, Length: len(c.s)})
	}
	if other.s == "" {
		return startIndex
	}
	limit := startIndex + len(other.s)
	if limit > len(c.s) {
		limit = len(c.s)
	}
	for limit >= len(other.s) {
		idx := strings.LastIndex(c.s[:limit], other.s)
		if idx < 0 {
			return -1
		}
		matchEnd := idx + len(other.s)
		if IsBoundary(c.s, 0, len(c.s), idx) && IsBoundary(c.s, 0, len(c.s), matchEnd) {
			return idx
		}
		limit = idx + len(other.s) - 1
	}
	return -1
}

// IndexOf returns the first byte index >= startIndex at which other occurs
// aligned to cluster boundaries, or -1 if it does not occur.
func (c Clusters) IndexOf(other Clusters, startIndex int) int {
	return c.findFrom(other, startIndex)
}

// IndexAfter is IndexOf, returning the index just past the match instead
// of its start.
func (c Clusters) IndexAfter(other Clusters, startIndex int) int {
	idx := c.findFrom(other, startIndex)
	if idx < 0 {
		return -1
	}
	return idx + len(other.s)
}

// LastIndexOf returns the last byte index at or before startIndex at which
// other occurs aligned to cluster boundaries, or -1 if it does not occur.
// startIndex defaults to len(s) at the call site (Clusters.Length in
// clusters, converted to the string's byte length by the caller).
func (c Clusters) LastIndexOf(other Clusters, startIndex int) int {
	return c.findLastFrom(other, startIndex)
}

// LastIndexAfter is LastIndexOf, returning the index just past the match.
func (c Clusters) LastIndexAfter(other Clusters, startIndex int) int {
	idx := c.findLastFrom(other, startIndex)
	if idx < 0 {
		return -1
	}
	return idx + len(other.s)
}

// Contains reports whether other is a single cluster occurring in c at
// aligned boundaries.
func (c Clusters) Contains(other Clusters) bool {
	if other.Length() != 1 {
		return false
	}
	return c.IndexOf(other, 0) >= 0
}

// ContainsAll reports whether other occurs anywhere in c at aligned
// boundaries, regardless of its own cluster count.
func (c Clusters) ContainsAll(other Clusters) bool {
	return c.IndexOf(other, 0) >= 0
}

// StartsWith reports whether c starts with other at startIndex, with the
// join point aligned to a cluster boundary.
func (c Clusters) StartsWith(other Clusters, startIndex int) bool {
	if startIndex < 0 || startIndex > len(c.s) {
		panic(&RangeError{Op: "StartsWith", Index: startIndex, Length: len(c.s)})
	}
	end := startIndex + len(other.s)
	if end > len(c.s) {
		return false
	}
	return c.s[startIndex:end] == other.s && IsBoundary(c.s, 0, len(c.s), end)
}

// EndsWith reports whether c ends with other at endIndex, with the join
// point aligned to a cluster boundary.
func (c Clusters) EndsWith(other Clusters, endIndex int) bool {
	if endIndex < 0 || endIndex > len(c.s) {
		panic(&RangeError{Op: "EndsWith", Index: endIndex, Length: len(c.s)})
	}
	start := endIndex - len(other.s)
	if start < 0 {
		return false
	}
	return c.s[start:endIndex] == other.s && IsBoundary(c.s, 0, len(c.s), start)
}
