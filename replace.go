package grapheme

import "strings"

// ReplaceAll replaces every non-overlapping, boundary-aligned occurrence
// of src starting at startIndex with repl. If src is an empty view, repl
// is inserted at every cluster boundary from startIndex onward, including
// both outer ends -- the "explode-replace" semantics spec.md flags as an
// intentional compatibility choice (see DESIGN.md Open Question decisions).
func (c Clusters) ReplaceAll(src, repl Clusters, startIndex int) Clusters {
	if startIndex < 0 || startIndex > len(c.s) {
		panic(&RangeError{Op: "ReplaceAll", Index: startIndex, Length: len(c.s)})
	}
	if src.s == "" {
		return c.explodeReplace(repl, startIndex)
	}
	var b strings.Builder
	b.WriteString(c.s[:startIndex])
	from := startIndex
	for {
		idx := c.findFrom(src, from)
		if idx < 0 {
			b.WriteString(c.s[from:])
			break
		}
		b.WriteString(c.s[from:idx])
		b.WriteString(repl.s)
		from = idx + len(src.s)
	}
	return New(b.String())
}

// ReplaceFirst replaces only the first boundary-aligned occurrence of src
// at or after startIndex with repl.
func (c Clusters) ReplaceFirst(src, repl Clusters, startIndex int) Clusters {
	if startIndex < 0 || startIndex > len(c.s) {
		panic(&RangeError{Op: "ReplaceFirst", Index: startIndex, Length: len(c.s)})
	}
	if src.s == "" {
		return c.explodeReplaceFirst(repl, startIndex)
	}
	idx := c.findFrom(src, startIndex)
	if idx < 0 {
		return c
	}
	return New(c.s[:idx] + repl.s + c.s[idx+len(src.s):])
}

func (c Clusters) explodeReplace(repl Clusters, startIndex int) Clusters {
	if startIndex < 0 || startIndex > len(c.s) {
		panic(&RangeError{Op: "ReplaceAll", Index: startIndex, Length: len(c.s)})
	}
	var b strings.Builder
	b.WriteString(c.s[:startIndex])
	last := startIndex
	for boundary := range Boundaries(c.s) {
		if boundary < startIndex {
			continue
		}
		b.WriteString(c.s[last:boundary])
		b.WriteString(repl.s)
		last = boundary
	}
	b.WriteString(c.s[last:])
	return New(b.String())
}

func (c Clusters) explodeReplaceFirst(repl Clusters, startIndex int) Clusters {
	if startIndex < 0 || startIndex > len(c.s) {
		panic(&RangeError{Op: "ReplaceFirst", Index: startIndex, Length: len(c.s)})
	}
	for boundary := range Boundaries(c.s) {
		if boundary < startIndex {
			continue
		}
		return New(c.s[:boundary] + repl.s + c.s[boundary:])
	}
	return c
}
