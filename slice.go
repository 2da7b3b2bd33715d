package grapheme

import "strings"

// GetRange returns the view over clusters [a, b), a cluster-count range.
func (c Clusters) GetRange(a, b int) Clusters {
	n := c.Length()
	if a < 0 || b > n || a > b {
		panic(&RangeError{Op: "GetRange", Start: a, End: b, Length: n})
	}
	if a == b {
		return emptyClusters
	}
	base := c.bounds[a]
	newBounds := make([]int, b-a+1)
	for i := range newBounds {
		newBounds[i] = c.bounds[a+i] - base
	}
	return Clusters{s: c.s[base:c.bounds[b]], bounds: newBounds}
}

// Skip returns the view with the first n clusters removed.
func (c Clusters) Skip(n int) Clusters {
	if n <= 0 {
		return c
	}
	if n >= c.Length() {
		return emptyClusters
	}
	return c.GetRange(n, c.Length())
}

// Take returns the view over the first n clusters.
func (c Clusters) Take(n int) Clusters {
	if n <= 0 {
		return emptyClusters
	}
	if n >= c.Length() {
		return c
	}
	return c.GetRange(0, n)
}

// SkipLast returns the view with the last n clusters removed.
func (c Clusters) SkipLast(n int) Clusters {
	if n <= 0 {
		return c
	}
	if n >= c.Length() {
		return emptyClusters
	}
	return c.GetRange(0, c.Length()-n)
}

// TakeLast returns the view over the last n clusters.
func (c Clusters) TakeLast(n int) Clusters {
	if n <= 0 {
		return emptyClusters
	}
	if n >= c.Length() {
		return c
	}
	return c.GetRange(c.Length()-n, c.Length())
}

// SkipWhile drops clusters from the front while pred holds.
func (c Clusters) SkipWhile(pred func(cluster string) bool) Clusters {
	i := 0
	for i < c.Length() && pred(c.clusterAt(i)) {
		i++
	}
	return c.Skip(i)
}

// TakeWhile keeps clusters from the front while pred holds.
func (c Clusters) TakeWhile(pred func(cluster string) bool) Clusters {
	i := 0
	for i < c.Length() && pred(c.clusterAt(i)) {
		i++
	}
	return c.Take(i)
}

// SkipLastWhile drops clusters from the back while pred holds.
func (c Clusters) SkipLastWhile(pred func(cluster string) bool) Clusters {
	n := c.Length()
	i := n
	for i > 0 && pred(c.clusterAt(i-1)) {
		i--
	}
	return c.Take(i)
}

// TakeLastWhile keeps clusters from the back while pred holds.
func (c Clusters) TakeLastWhile(pred func(cluster string) bool) Clusters {
	n := c.Length()
	i := n
	for i > 0 && pred(c.clusterAt(i-1)) {
		i--
	}
	return c.Skip(i)
}

// Where eagerly filters clusters matching pred and returns a fresh view
// over their concatenation. Because dropping a cluster can change which
// boundaries survive at the seam (e.g. a dropped Regional Indicator
// changes the parity of its neighbors), the result is re-segmented rather
// than reusing the source's boundary table.
func (c Clusters) Where(pred func(cluster string) bool) Clusters {
	var b strings.Builder
	for i := 0; i < c.Length(); i++ {
		if cl := c.clusterAt(i); pred(cl) {
			b.WriteString(cl)
		}
	}
	return New(b.String())
}

// Concat returns a fresh view over the concatenation of c and other; the
// join point may or may not itself be a cluster boundary.
func (c Clusters) Concat(other Clusters) Clusters {
	return New(c.s + other.s)
}

// InsertAt returns a fresh view over c with other spliced in at the given
// byte index.
func (c Clusters) InsertAt(index int, other Clusters) Clusters {
	if index < 0 || index > len(c.s) {
		panic(&RangeError{Op: "InsertAt", Index: index, Length: len(c.s)})
	}
	return New(c.s[:index] + other.s + c.s[index:])
}

// ReplaceSubstring replaces c.String()[a:b] with other's string, without
// validating that a or b land on cluster boundaries.
func (c Clusters) ReplaceSubstring(a, b int, other Clusters) Clusters {
	if a < 0 || b > len(c.s) || a > b {
		panic(&RangeError{Op: "ReplaceSubstring", Start: a, End: b, Length: len(c.s)})
	}
	return New(c.s[:a] + other.s + c.s[b:])
}

// Substring returns a fresh view over c.String()[a:b].
func (c Clusters) Substring(a, b int) Clusters {
	if a < 0 || b > len(c.s) || a > b {
		panic(&RangeError{Op: "Substring", Start: a, End: b, Length: len(c.s)})
	}
	return New(c.s[a:b])
}
