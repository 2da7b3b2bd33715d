/*
Package grapheme implements Unicode Text Segmentation (UAX #29), extended
grapheme cluster variant, including the Emoji_ZWJ_Sequence rule (GB11) and
the Regional_Indicator flag-pairing rules (GB12/GB13).

# Overview

A grapheme cluster is what a user perceives as a single "character." The
family emoji 👨‍👩‍👧‍👦 is seven Unicode code points but one grapheme cluster:

	len("👨‍👩‍👧‍👦")                      // 25 (UTF-8 bytes)
	len([]rune("👨‍👩‍👧‍👦"))               // 7 (code points)
	grapheme.GraphemeClusterCount("👨‍👩‍👧‍👦") // 1 (what a user sees)

Indices throughout this package are UTF-8 byte offsets into a Go string,
never code points or UTF-16 code units.

# Low-level iteration

[IsBoundary] answers a single "is there a boundary here?" query without
constructing a cursor. [NextBreak] and [PreviousBreak] find the boundary
adjacent to a known one. [Boundaries] yields every boundary offset in a
string, in order, as a lazy `iter.Seq[int]` for range-over-func iteration.

# Cluster views

[Clusters] is the richer, user-facing abstraction: an immutable,
eagerly-boundary-aware view over a string, with search, slicing, and
boundary-snapped substitution. [NewIterator] gives a bidirectional,
resumable cursor over a [Clusters]' clusters, suitable for cursor movement
in a text editor.

# What this package does not do

Word, sentence, and line segmentation, normalization, locale-tailored
breaks, bidi, and collation are all out of scope. The view types here never
mutate the string they wrap; every "modifying" [Clusters] operation returns
a new view over a new string.
*/
package grapheme
