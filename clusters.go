package grapheme

import "hash/fnv"

// Clusters is an immutable, eagerly-boundary-aware view over a string: the
// full set of grapheme-cluster boundaries is computed once at construction
// (spec §2, "eagerly-evaluated sequence of clusters view"), so cluster
// count, indexed access, and slicing are all backed by a precomputed offset
// table rather than a fresh forward walk per call.
type Clusters struct {
	s      string
	bounds []int // bounds[0] == 0, bounds[len(bounds)-1] == len(s); len(bounds)-1 clusters
}

var emptyClusters = Clusters{s: "", bounds: []int{0}}

// New segments s into its grapheme clusters.
func New(s string) Clusters {
	if s == "" {
		return emptyClusters
	}
	bounds := make([]int, 0, len(s)/2+2)
	for b := range Boundaries(s) {
		bounds = append(bounds, b)
	}
	return Clusters{s: s, bounds: bounds}
}

// Empty returns the singleton empty view.
func Empty() Clusters { return emptyClusters }

// String returns the underlying string.
func (c Clusters) String() string { return c.s }

// Length returns the number of grapheme clusters.
func (c Clusters) Length() int {
	if len(c.bounds) == 0 {
		return 0
	}
	return len(c.bounds) - 1
}

// clusterAt returns the i'th cluster's substring, 0 <= i < Length().
func (c Clusters) clusterAt(i int) string {
	return c.s[c.bounds[i]:c.bounds[i+1]]
}

// First returns the first cluster, or an ElementError wrapping ErrNoElement
// if the view is empty.
func (c Clusters) First() (string, error) {
	if c.Length() == 0 {
		return "", &ElementError{Op: "First", Err: ErrNoElement}
	}
	return c.clusterAt(0), nil
}

// Last returns the last cluster, or an ElementError wrapping ErrNoElement
// if the view is empty.
func (c Clusters) Last() (string, error) {
	n := c.Length()
	if n == 0 {
		return "", &ElementError{Op: "Last", Err: ErrNoElement}
	}
	return c.clusterAt(n - 1), nil
}

// Single returns the sole cluster, failing if the view is empty or holds
// more than one cluster.
func (c Clusters) Single() (string, error) {
	switch c.Length() {
	case 0:
		return "", &ElementError{Op: "Single", Err: ErrNoElement}
	case 1:
		return c.clusterAt(0), nil
	default:
		return "", &ElementError{Op: "Single", Err: ErrTooMany}
	}
}

// Equal reports whether two views wrap equal strings.
func (c Clusters) Equal(other Clusters) bool { return c.s == other.s }

// Hash returns a hash of the underlying string, consistent with Equal.
func (c Clusters) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(c.s))
	return h.Sum64()
}

// All returns each cluster substring in order, for range-over-func use.
func (c Clusters) All(yield func(int, string) bool) {
	for i := 0; i < c.Length(); i++ {
		if !yield(i, c.clusterAt(i)) {
			return
		}
	}
}

// Iterator returns a bidirectional, resumable cursor over c's clusters.
func (c Clusters) Iterator() *Iterator { return NewIterator(c) }

// Width returns the total monospace display width of every cluster in c.
func (c Clusters) Width() int {
	total := 0
	for i := 0; i < c.Length(); i++ {
		total += clusterWidth(c.clusterAt(i))
	}
	return total
}
