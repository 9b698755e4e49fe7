package turkmorph

import "unicode/utf8"

// backVowels contains the Turkish back vowels (lowercase; circumflexes
// are folded before phonology runs).
var backVowels = map[rune]bool{
	'a': true,
	'ı': true,
	'o': true,
	'u': true,
}

// frontVowels contains the Turkish front vowels.
var frontVowels = map[rune]bool{
	'e': true,
	'i': true,
	'ö': true,
	'ü': true,
}

// roundedVowels contains the rounded vowels, back and front.
var roundedVowels = map[rune]bool{
	'o': true,
	'u': true,
	'ö': true,
	'ü': true,
}

// voicelessCons contains the voiceless consonants that trigger d -> t
// and c -> ç at a suffix boundary ("fıstıkçı şahap").
var voicelessCons = map[rune]bool{
	'ç': true,
	'f': true,
	'h': true,
	'k': true,
	'p': true,
	's': true,
	'ş': true,
	't': true,
}

// voicedForm maps a root-final stop to its voiced counterpart.
var voicedForm = map[rune]rune{
	'p': 'b',
	'ç': 'c',
	't': 'd',
	'k': 'ğ',
	'g': 'ğ',
}

func isVowel(r rune) bool {
	return backVowels[r] || frontVowels[r]
}

func isBackVowel(r rune) bool {
	return backVowels[r]
}

func isVoiceless(r rune) bool {
	return voicelessCons[r]
}

// lastVowel returns the last vowel rune in s, or 0 if none found.
func lastVowel(s string) rune {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if isVowel(r) {
			return r
		}
		i -= size
	}
	return 0
}

// lastRune returns the final rune of s, or 0 for the empty string.
func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// syllableCount counts the vowels of s.
func syllableCount(s string) int {
	n := 0
	for _, r := range s {
		if isVowel(r) {
			n++
		}
	}
	return n
}

// twoWayTarget returns a or e for the given last vowel.
func twoWayTarget(v rune) rune {
	if isBackVowel(v) {
		return 'a'
	}
	return 'e'
}

// fourWayTarget returns the expected suffix vowel for four-way harmony
// given the last vowel. Back unrounded (a, ı) -> ı; back rounded (o, u) -> u;
// front unrounded (e, i) -> i; front rounded (ö, ü) -> ü.
func fourWayTarget(v rune) rune {
	switch v {
	case 'a', 'ı':
		return 'ı'
	case 'o', 'u':
		return 'u'
	case 'ö', 'ü':
		return 'ü'
	default:
		return 'i'
	}
}

// frontCounterpart maps a back vowel onto the front vowel with the same
// rounding. Used for roots with inverse harmony (saat -> saati).
func frontCounterpart(v rune) rune {
	switch v {
	case 'a':
		return 'e'
	case 'ı':
		return 'i'
	case 'o':
		return 'ö'
	case 'u':
		return 'ü'
	}
	return v
}

// phonContext is the running phonological state of a parse: the last
// letter and the last vowel of the canonical surface built so far.
type phonContext struct {
	lastLetter rune
	lastVowel  rune
}

// contextOf computes the context at the end of s.
func contextOf(s string) phonContext {
	return phonContext{lastLetter: lastRune(s), lastVowel: lastVowel(s)}
}

func (c phonContext) push(r rune) phonContext {
	c.lastLetter = r
	if isVowel(r) {
		c.lastVowel = r
	}
	return c
}

func (c phonContext) endsWithVowel() bool {
	return c.lastLetter != 0 && isVowel(c.lastLetter)
}

// expand turns a suffix template into its surface form after a stem
// with context ctx and returns the context after the suffix.
//
// Template letters:
//
//	A   two-way harmony, a or e
//	I   four-way harmony, ı, i, u or ü
//	D   d, or t after a voiceless consonant
//	C   c, or ç after a voiceless consonant
//	+x  buffer: consonant x only after a vowel, vowel x only after a consonant
//
// Every other rune is copied as is.
func expand(tpl string, ctx phonContext) (string, phonContext) {
	if tpl == "" {
		return "", ctx
	}
	out := make([]rune, 0, len(tpl))
	runes := []rune(tpl)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '+' && i+1 < len(runes) {
			i++
			r = runes[i]
			vowelLike := r == 'A' || r == 'I' || isVowel(r)
			if vowelLike == ctx.endsWithVowel() {
				continue
			}
		}
		switch r {
		case 'A':
			r = twoWayTarget(ctx.lastVowel)
		case 'I':
			r = fourWayTarget(ctx.lastVowel)
		case 'D':
			if isVoiceless(ctx.lastLetter) {
				r = 't'
			} else {
				r = 'd'
			}
		case 'C':
			if isVoiceless(ctx.lastLetter) {
				r = 'ç'
			} else {
				r = 'c'
			}
		}
		out = append(out, r)
		ctx = ctx.push(r)
	}
	return string(out), ctx
}

// voice returns s with its final stop voiced (kitap -> kitab,
// renk -> reng). The second result is false when s does not end in a
// voiceable consonant.
func voice(s string) (string, bool) {
	runes := []rune(s)
	if len(runes) == 0 {
		return s, false
	}
	last := runes[len(runes)-1]
	v, ok := voicedForm[last]
	if !ok {
		return s, false
	}
	if last == 'k' && len(runes) > 1 && runes[len(runes)-2] == 'n' {
		v = 'g'
	}
	runes[len(runes)-1] = v
	return string(runes), true
}

// dropLastVowel removes the last vowel of s (burun -> burn, başla -> başl).
func dropLastVowel(s string) (string, bool) {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if isVowel(runes[i]) {
			return string(runes[:i]) + string(runes[i+1:]), true
		}
	}
	return s, false
}
