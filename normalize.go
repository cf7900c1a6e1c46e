package numberify

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isASCII reports whether s holds no multi-byte runes, in which case
// it carries no diacritics to strip.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Fold strips every combining mark from s after canonical decomposition,
// so "millón" and "millon" compare equal. Case is preserved.
//
// The transformer chain is stateful and built per call, which keeps Fold
// safe for concurrent use.
func Fold(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// FoldLower lowercases s with English casing rules and then folds it.
// English words are compared in this form.
func FoldLower(s string) string {
	return Fold(cases.Lower(language.English).String(s))
}
