package grapheme

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns a view over the lowercasing of c's string (spec §4.5).
// x/text/cases is used instead of strings.ToLower because it applies
// Unicode's full (multi-rune) case mappings, which the plain
// unicode-package case tables do not (see SPEC_FULL.md §2 / DESIGN.md).
// It is called with language.Und, so no language-specific tailoring (such
// as Turkish dotless i) is applied.
func (c Clusters) ToLower() Clusters {
	return New(cases.Lower(language.Und).String(c.s))
}

// ToUpper returns a view over the uppercasing of c's string, with the same
// full, language-neutral (language.Und) mappings as ToLower.
func (c Clusters) ToUpper() Clusters {
	return New(cases.Upper(language.Und).String(c.s))
}
