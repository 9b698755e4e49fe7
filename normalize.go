package turkmorph

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// asciiReplacer maps Turkish letters to the ASCII letters they are
// commonly typed as when diacritics are dropped.
var asciiReplacer = strings.NewReplacer(
	"ç", "c",
	"ğ", "g",
	"ı", "i",
	"ö", "o",
	"ş", "s",
	"ü", "u",
	"â", "a",
	"î", "i",
	"û", "u",
)

// apostrophes lists the characters accepted as the proper noun apostrophe.
var apostrophes = map[rune]bool{
	'\'':     true,
	'\u2019': true,
	'\u2018': true,
	'\u02bc': true,
	'\u00b4': true,
	'`':      true,
}

// NFC returns s in Unicode normalization form C, so that "o" followed by
// a combining diaeresis is treated as "ö".
func NFC(s string) string {
	return norm.NFC.String(s)
}

// lowerRune lowercases r with Turkish casing rules (I -> ı, İ -> i).
func lowerRune(r rune) rune {
	return unicode.TurkishCase.ToLower(r)
}

// upperRune uppercases r with Turkish casing rules (i -> İ, ı -> I).
func upperRune(r rune) rune {
	return unicode.TurkishCase.ToUpper(r)
}

// foldCircumflex maps â, î, û to a, i, u and leaves other runes alone.
func foldCircumflex(r rune) rune {
	switch r {
	case 'â':
		return 'a'
	case 'î':
		return 'i'
	case 'û':
		return 'u'
	}
	return r
}

// normalizeRune lowercases, folds circumflexes and unifies apostrophes.
// It maps one rune to exactly one rune so positions in the normalized
// form line up with the typed form.
func normalizeRune(r rune) rune {
	if apostrophes[r] {
		return '\''
	}
	return foldCircumflex(lowerRune(r))
}

// asciiFold maps a lowercase Turkish letter to its ASCII base letter.
func asciiFold(r rune) rune {
	switch r {
	case 'ç':
		return 'c'
	case 'ğ':
		return 'g'
	case 'ı':
		return 'i'
	case 'ö':
		return 'o'
	case 'ş':
		return 's'
	case 'ü':
		return 'u'
	}
	return foldCircumflex(r)
}

// NormalizeKey returns the canonical lookup key for a lemma or stem:
// Turkish lowercase with circumflexes folded.
func NormalizeKey(s string) string {
	return strings.Map(func(r rune) rune {
		return foldCircumflex(lowerRune(r))
	}, s)
}

// ASCIIFold returns the diacritic-insensitive form of a normalized key.
func ASCIIFold(s string) string {
	return asciiReplacer.Replace(s)
}

// equivalent reports whether the typed rune t may stand for the expected
// letter e. With tolerance off only identical letters match.
func equivalent(t, e rune, tolerant bool) bool {
	if t == e {
		return true
	}
	return tolerant && asciiFold(t) == asciiFold(e)
}

// isCapitalized reports whether s starts with an uppercase letter.
func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// isAllUpper reports whether every letter of s is uppercase and s has
// at least one letter.
func isAllUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters > 0
}
