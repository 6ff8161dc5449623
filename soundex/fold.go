package soundex

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes, removes combining marks, recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold strips combining diacritical marks so accented spellings encode
// like their plain forms: Encode(Fold("Müller")) == Encode("Muller").
//
// Fold is an opt-in preparation step; Encode itself treats non-ASCII
// letters as digitless and never folds.
func Fold(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
