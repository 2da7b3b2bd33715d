package grapheme

import "testing"

func TestCategoryOfFastPaths(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want category
	}{
		{"ascii letter", 'A', catOther},
		{"lf", '\n', catLF},
		{"cr", '\r', catCR},
		{"zwj", '‍', catZWJ},
		{"control", 0x01, catControl},
		{"delete", 0x7F, catControl},
		{"hangul LV", 0xAC00, catLV},  // 가: L+V, no trailing consonant
		{"hangul LVT", 0xAC01, catLVT}, // 각: L+V+T
		{"hangul L jamo", 0x1100, catL},
		{"hangul V jamo", 0x1161, catV},
		{"hangul T jamo", 0x11A8, catT},
		{"regional indicator", 0x1F1E6, catRegionalIndicator}, // 🇦
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categoryOf(tt.r); got != tt.want {
				t.Errorf("categoryOf(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestCategoryOfGeneratedRanges(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want category
	}{
		{"combining acute", 0x0301, catExtend},
		{"emoji skin tone modifier stays extend", 0x1F3FB, catExtend},
		{"devanagari sign visarga (spacing mark)", 0x0903, catSpacingMark},
		{"arabic mark prepend", 0x0600, catPrepend},
		{"grinning face is pictographic", 0x1F600, catPictographic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categoryOf(tt.r); got != tt.want {
				t.Errorf("categoryOf(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestCategoryTableNilPageIsOther(t *testing.T) {
	var tbl categoryTable
	if got := tbl.lookup('A'); got != catOther {
		t.Errorf("empty table lookup = %v, want catOther", got)
	}
	tbl.set(0x1000, 0x1002, catPrepend)
	if got := tbl.lookup(0x1001); got != catPrepend {
		t.Errorf("lookup(0x1001) = %v, want catPrepend", got)
	}
	if got := tbl.lookup(0x1003); got != catOther {
		t.Errorf("lookup(0x1003) = %v, want catOther (outside set range)", got)
	}
}
