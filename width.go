package grapheme

import "unicode/utf8"

// eastAsianWidth mirrors the Unicode East_Asian_Width property values that
// matter for monospace rendering: everything else (Neutral, Ambiguous,
// Halfwidth) renders as a single cell.
type eastAsianWidth uint8

const (
	eaNarrow eastAsianWidth = iota // includes Neutral, Ambiguous, Halfwidth
	eaWide                         // Wide or Fullwidth: two cells
)

// wideRanges is a curated subset of Unicode's Wide/Fullwidth East Asian
// Width ranges (CJK ideographs, Hangul syllables, fullwidth forms, and the
// common CJK punctuation/symbol blocks). Scoped to what Clusters.Width
// needs, not a byte-for-byte UCD dump -- see DESIGN.md.
var wideRanges = [][2]rune{
	{0x1100, 0x115F},   // Hangul Jamo
	{0x2E80, 0x303E},   // CJK Radicals, Kangxi, CJK Symbols and Punctuation
	{0x3041, 0x33FF},   // Hiragana .. CJK Compatibility
	{0x3400, 0x4DBF},   // CJK Unified Ideographs Extension A
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0xA960, 0xA97F},   // Hangul Jamo Extended-A
	{0xAC00, 0xD7A3},   // Hangul Syllables
	{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
	{0xFF01, 0xFF60},   // Fullwidth Forms
	{0xFFE0, 0xFFE6},   // Fullwidth Signs
	{0x16FE0, 0x16FE4}, // Tangut/Nushu marks (wide in practice)
	{0x17000, 0x18D08}, // Tangut
	{0x1B000, 0x1B2FF}, // Kana Supplement / Small Kana Extension
	{0x1F300, 0x1F64F}, // Misc Symbols and Pictographs, Emoticons
	{0x1F900, 0x1FAFF}, // Supplemental Symbols and Pictographs and friends
	{0x20000, 0x3FFFD}, // CJK Unified Ideographs Extension B and beyond
}

// vs15 forces text (narrow) presentation on the preceding emoji-capable
// code point; vs16 forces emoji (wide) presentation. Same constants and
// role as the teacher's step.go.
const (
	vs15 rune = 0xFE0E
	vs16 rune = 0xFE0F
)

func widthOf(r rune) eastAsianWidth {
	for _, rg := range wideRanges {
		if r < rg[0] {
			break
		}
		if r <= rg[1] {
			return eaWide
		}
	}
	return eaNarrow
}

// clusterWidth computes the monospace display width of one grapheme
// cluster: the width of its base code point, overridden by a trailing
// variation selector (spec.md §4 supplement; SPEC_FULL.md §4), with
// combining marks, ZWJ, and control code points contributing zero.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, size := utf8.DecodeRuneInString(cluster)
	cat := categoryOf(r)
	width := runeWidth(r, cat)
	rest := cluster[size:]
	for rest != "" {
		next, nsize := utf8.DecodeRuneInString(rest)
		switch next {
		case vs15:
			width = 1
		case vs16:
			width = 2
		}
		rest = rest[nsize:]
	}
	return width
}

// runeWidth is the base per-code-point width, before any trailing
// variation selector override.
func runeWidth(r rune, cat category) int {
	switch cat {
	case catControl, catExtend, catZWJ, catSpacingMark:
		return 0
	case catRegionalIndicator, catPictographic:
		return 2
	}
	if r == 0 {
		return 0
	}
	if widthOf(r) == eaWide {
		return 2
	}
	return 1
}
