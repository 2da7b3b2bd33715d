package grapheme

// category is the small enum driving the grapheme-break state machine
// (spec §3). EoT is synthetic and only ever fed to forwardMove/backwardMove
// as a category value to drive the terminal transition; it is never the
// result of categoryOf.
type category uint8

const (
	catOther category = iota
	catCR
	catLF
	catControl
	catExtend
	catZWJ
	catRegionalIndicator
	catPrepend
	catSpacingMark
	catL
	catV
	catT
	catLV
	catLVT
	catPictographic
	catEoT
)

// Hangul syllable block arithmetic (UAX #29 / The Unicode Standard, "Hangul
// Syllable Decomposition"). Computed rather than tabulated: it is a closed
// form, not curated data.
const (
	hangulSBase  = 0xAC00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

// categoryOf returns the grapheme-break category of a decoded code point.
// It never allocates.
func categoryOf(r rune) category {
	// Fast path: printable ASCII other than control characters is by far
	// the most common input and carries no grapheme-break category.
	if r >= 0x20 && r <= 0x7E {
		return catOther
	}
	switch r {
	case 0x0A:
		return catLF
	case 0x0D:
		return catCR
	case 0x200D:
		return catZWJ
	}
	if (r >= 0 && r <= 0x1F) || r == 0x7F {
		return catControl
	}

	if r >= hangulSBase && r < hangulSBase+hangulSCount {
		if (r-hangulSBase)%hangulTCount == 0 {
			return catLV
		}
		return catLVT
	}
	if r >= hangulLBase && r <= 0x115F {
		return catL
	}
	if r >= 0x1160 && r <= hangulTBase {
		return catV
	}
	if r > hangulTBase && r <= 0x11FF {
		return catT
	}
	// Hangul Jamo Extended-A (choseong fillers etc.) and Extended-B behave
	// like their base blocks for grapheme purposes.
	if r >= 0xA960 && r <= 0xA97C {
		return catL
	}
	if r >= 0xD7B0 && r <= 0xD7C6 {
		return catV
	}
	if r >= 0xD7CB && r <= 0xD7FB {
		return catT
	}

	if r >= 0x1F1E6 && r <= 0x1F1FF {
		return catRegionalIndicator
	}

	return categoryPages.lookup(r)
}

// categoryTable is a two-level lookup: a sparse page index (one entry per
// 256 code points) pointing at per-page category arrays. A nil page means
// "every code point in this page is catOther" -- the overwhelmingly common
// case -- so unassigned regions of the code space cost one pointer, not 256
// bytes. Built once at init from the curated range data in
// category_tables.go; after that, lookup is O(1) and allocation-free.
type categoryTable struct {
	pages []*[256]category
}

func (t *categoryTable) lookup(r rune) category {
	page := int(r) >> 8
	if page < 0 || page >= len(t.pages) {
		return catOther
	}
	p := t.pages[page]
	if p == nil {
		return catOther
	}
	return p[byte(r)]
}

func (t *categoryTable) set(lo, hi rune, c category) {
	for r := lo; r <= hi; r++ {
		page := int(r) >> 8
		for page >= len(t.pages) {
			t.pages = append(t.pages, nil)
		}
		if t.pages[page] == nil {
			t.pages[page] = &[256]category{}
		}
		t.pages[page][byte(r)] = c
	}
}

// categoryPages backs categoryOf for the categories that are not amenable
// to a fast-path check or a closed-form formula: Extend, ZWJ (ZWJ is
// handled by the fast path above; kept here as a formal category value),
// Prepend, SpacingMark, and Pictographic (Extended_Pictographic).
var categoryPages categoryTable

func init() {
	for _, rg := range extendRanges {
		categoryPages.set(rg[0], rg[1], catExtend)
	}
	for _, rg := range prependRanges {
		categoryPages.set(rg[0], rg[1], catPrepend)
	}
	for _, rg := range spacingMarkRanges {
		categoryPages.set(rg[0], rg[1], catSpacingMark)
	}
	for _, rg := range pictographicRanges {
		categoryPages.set(rg[0], rg[1], catPictographic)
	}
}
