package turkmorph

import (
	"strconv"
	"strings"
)

const (
	wordZero    = "sıfır"
	wordHundred = "yüz"
	wordComma   = "virgül"
	wordPercent = "yüzde"
	wordOver    = "bölü"
)

var ones = [10]string{
	"sıfır",
	"bir",
	"iki",
	"üç",
	"dört",
	"beş",
	"altı",
	"yedi",
	"sekiz",
	"dokuz",
}

// tens is indexed by tens digit (1-9); index 0 is unused.
var tens = [10]string{
	"",
	"on",
	"yirmi",
	"otuz",
	"kırk",
	"elli",
	"altmış",
	"yetmiş",
	"seksen",
	"doksan",
}

type magnitude struct {
	value uint64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest; yüz is
// handled inside a group.
var magnitudes = []magnitude{
	{value: 1_000_000_000_000_000_000, word: "kentilyon"},
	{value: 1_000_000_000_000_000, word: "katrilyon"},
	{value: 1_000_000_000_000, word: "trilyon"},
	{value: 1_000_000_000, word: "milyar"},
	{value: 1_000_000, word: "milyon"},
	{value: 1_000, word: "bin"},
}

// Cardinal returns the Turkish reading of n (2014 -> "iki bin on dört").
func Cardinal(n uint64) string {
	if n == 0 {
		return wordZero
	}
	var b strings.Builder
	for _, mag := range magnitudes {
		count := n / mag.value
		if count == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		// "bir bin" is read "bin"; other magnitudes keep "bir".
		if mag.value == 1_000 && count == 1 {
			b.WriteString(mag.word)
		} else {
			writeGroup(&b, count)
			b.WriteByte(' ')
			b.WriteString(mag.word)
		}
		n %= mag.value
	}
	if n > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(&b, n)
	}
	return b.String()
}

// writeGroup writes n in [1, 999].
func writeGroup(b *strings.Builder, n uint64) {
	h, t, o := n/100, n/10%10, n%10
	if h > 1 {
		b.WriteString(ones[h])
		b.WriteByte(' ')
	}
	if h > 0 {
		b.WriteString(wordHundred)
	}
	if t > 0 {
		if h > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tens[t])
	}
	if o > 0 {
		if h > 0 || t > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ones[o])
	}
}

// Ordinal returns the Turkish ordinal reading of n (4 -> "dördüncü").
func Ordinal(n uint64) string {
	words := strings.Fields(Cardinal(n))
	words[len(words)-1] = OrdinalWord(words[len(words)-1])
	return strings.Join(words, " ")
}

// OrdinalWord adds the ordinal suffix to a single number word.
func OrdinalWord(word string) string {
	stem := word
	if stem == "dört" {
		stem = "dörd"
	}
	suffix, _ := expand("+IncI", contextOf(stem))
	return stem + suffix
}

// readDigits reads a digit string; leading zeros are ignored. ok is false
// for anything but ASCII digits or for values out of range.
func readDigits(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", false
	}
	return Cardinal(n), true
}

// readDecimal reads "2", "2.5" or "2,5" (whole part, decimal separator,
// fraction read as a number).
func readDecimal(s string) (string, bool) {
	sep := strings.IndexAny(s, ".,")
	if sep < 0 {
		return readDigits(s)
	}
	whole, ok := readDigits(s[:sep])
	if !ok {
		return "", false
	}
	frac, ok := readDigits(s[sep+1:])
	if !ok {
		return "", false
	}
	return whole + " " + wordComma + " " + frac, true
}

// lastWord returns the final word of a reading.
func lastWord(reading string) string {
	if i := strings.LastIndexByte(reading, ' '); i >= 0 {
		return reading[i+1:]
	}
	return reading
}

// numeralItem returns a built-in dictionary item for a number word, used
// when the lexicon does not define it.
func numeralItem(word string) *DictionaryItem {
	sec := SecCardinal
	if strings.HasSuffix(word, "ncı") || strings.HasSuffix(word, "nci") ||
		strings.HasSuffix(word, "ncu") || strings.HasSuffix(word, "ncü") {
		sec = SecOrdinal
	}
	var attrs AttributeSet
	if word == "dört" {
		attrs = attrs.With(AttrVoicing)
	}
	item, err := NewDictionaryItem(word, "", "", PosNumeral, sec, attrs)
	if err != nil {
		return nil
	}
	return item
}
