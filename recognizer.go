package turkmorph

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Recognizer detects a structured token that is not in the lexicon
// (a date, a Roman numeral, an emoticon...) and synthesizes a dictionary
// item for it. The stem is the token up to its first apostrophe, or the
// whole token. Recognizers hold no mutable state.
type Recognizer interface {
	// Category is the secondary part of speech of synthesized items.
	Category() SecondaryPos
	Matches(stem string) bool
	// Synthesize returns the item for a matching stem, or nil.
	Synthesize(stem string) *DictionaryItem
}

// Spoken is implemented by recognizers of number-like tokens. Suffixes
// attach to such tokens according to the last word of their Turkish
// reading: 20:30'da is read "yirmi otuz", so it inflects like otuz.
type Spoken interface {
	Spoken(stem string) string
}

// ApostropheOnly is implemented by recognizers that only apply to a stem
// followed by an apostrophe and suffixes.
type ApostropheOnly interface {
	ApostropheOnly() bool
}

func dummy(stem string, primary PrimaryPos, secondary SecondaryPos, pron string) *DictionaryItem {
	item, err := NewDictionaryItem(stem, "", pron, primary, secondary, NewAttributeSet(AttrDummy))
	if err != nil {
		return nil
	}
	return item
}

// DefaultRecognizers returns the standard recognizer chain. lex is used to
// tell unknown proper nouns from lexicon words.
func DefaultRecognizers(lex *RootLexicon) []Recognizer {
	return []Recognizer{
		RomanRecognizer{},
		DateRecognizer,
		ClockRecognizer,
		RatioRecognizer,
		RangeRecognizer,
		PercentageRecognizer,
		NumberRecognizer{},
		EmoticonRecognizer{},
		EmailRecognizer,
		URLRecognizer,
		HashTagRecognizer,
		MentionRecognizer,
		ProperNounRecognizer{Lexicon: lex},
	}
}

// ---- Roman numerals ----

// RomanRecognizer matches IV, XXIV and, with a trailing period, the
// ordinal XXIV.
type RomanRecognizer struct{}

func (RomanRecognizer) Category() SecondaryPos { return SecRomanNumeral }

func (RomanRecognizer) Matches(stem string) bool {
	_, ok := ParseRoman(strings.TrimSuffix(stem, "."))
	return ok
}

func (RomanRecognizer) Synthesize(stem string) *DictionaryItem {
	return dummy(stem, PosNumeral, SecRomanNumeral, "")
}

func (RomanRecognizer) Spoken(stem string) string {
	n, ok := ParseRoman(strings.TrimSuffix(stem, "."))
	if !ok {
		return ""
	}
	if strings.HasSuffix(stem, ".") {
		return Ordinal(n)
	}
	return Cardinal(n)
}

// ---- Numeric patterns ----

// NumericRecognizer matches a regular expression and reads the match
// with read, which may still reject it (a 13th month, a 25th hour).
type NumericRecognizer struct {
	Secondary SecondaryPos
	Pattern   *regexp.Regexp
	read      func(groups []string) (string, bool)
}

func (r *NumericRecognizer) Category() SecondaryPos { return r.Secondary }

func (r *NumericRecognizer) Matches(stem string) bool {
	return r.Spoken(stem) != ""
}

func (r *NumericRecognizer) Synthesize(stem string) *DictionaryItem {
	return dummy(stem, PosNumeral, r.Secondary, "")
}

func (r *NumericRecognizer) Spoken(stem string) string {
	m := r.Pattern.FindStringSubmatch(stem)
	if m == nil {
		return ""
	}
	s, ok := r.read(m)
	if !ok {
		return ""
	}
	return s
}

// readAll reads each group as a number and joins the readings; empty
// groups are skipped.
func readAll(groups ...string) (string, bool) {
	var words []string
	for _, g := range groups {
		if g == "" {
			continue
		}
		w, ok := readDigits(g)
		if !ok {
			return "", false
		}
		words = append(words, w)
	}
	return strings.Join(words, " "), len(words) > 0
}

func validDate(day, month string) bool {
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return false
	}
	m, err := strconv.Atoi(month)
	return err == nil && m >= 1 && m <= 12
}

var (
	reDayFirst = regexp.MustCompile(`^(\d{1,2})([./])(\d{1,2})([./])(\d{4})$`)
	reISO      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// DateRecognizer matches 1.1.2014, 01/02/2014 and 2014-01-02.
var DateRecognizer = &NumericRecognizer{
	Secondary: SecDate,
	Pattern:   regexp.MustCompile(`^(?:\d{1,2}[./]\d{1,2}[./]\d{4}|\d{4}-\d{1,2}-\d{1,2})$`),
	read: func(groups []string) (string, bool) {
		s := groups[0]
		if m := reDayFirst.FindStringSubmatch(s); m != nil {
			if m[2] != m[4] || !validDate(m[1], m[3]) {
				return "", false
			}
			return readAll(m[1], m[3], m[5])
		}
		m := reISO.FindStringSubmatch(s)
		if m == nil || !validDate(m[3], m[2]) {
			return "", false
		}
		return readAll(m[1], m[2], m[3])
	},
}

// ClockRecognizer matches 20:30 and 20:30:15. Zero minutes and seconds
// are not read (20:00 is "yirmi").
var ClockRecognizer = &NumericRecognizer{
	Secondary: SecClock,
	Pattern:   regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)(?::([0-5]\d))?$`),
	read: func(groups []string) (string, bool) {
		parts := []string{groups[1]}
		for _, g := range groups[2:] {
			if g != "" && strings.Trim(g, "0") != "" {
				parts = append(parts, g)
			}
		}
		return readAll(parts...)
	},
}

// RatioRecognizer matches 1/2, read "bir bölü iki".
var RatioRecognizer = &NumericRecognizer{
	Secondary: SecRatio,
	Pattern:   regexp.MustCompile(`^(\d+)/(\d+)$`),
	read: func(groups []string) (string, bool) {
		a, ok := readDigits(groups[1])
		if !ok {
			return "", false
		}
		b, ok := readDigits(groups[2])
		if !ok {
			return "", false
		}
		return a + " " + wordOver + " " + b, true
	},
}

// RangeRecognizer matches 3-5.
var RangeRecognizer = &NumericRecognizer{
	Secondary: SecRange,
	Pattern:   regexp.MustCompile(`^(\d+)-(\d+)$`),
	read: func(groups []string) (string, bool) {
		return readAll(groups[1], groups[2])
	},
}

// PercentageRecognizer matches %2, %2.2 and %2,2.
var PercentageRecognizer = &NumericRecognizer{
	Secondary: SecPercentage,
	Pattern:   regexp.MustCompile(`^%(\d+(?:[.,]\d+)?)$`),
	read: func(groups []string) (string, bool) {
		s, ok := readDecimal(groups[1])
		if !ok {
			return "", false
		}
		return wordPercent + " " + s, true
	},
}

var (
	reInteger   = regexp.MustCompile(`^\d+$`)
	reThousands = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
	reReal      = regexp.MustCompile(`^\d+,\d+$`)
	reOrdinal   = regexp.MustCompile(`^\d+\.$`)
)

// NumberRecognizer matches cardinals (2014, 1.000.000), reals (2,5) and
// ordinals written with a period (3.).
type NumberRecognizer struct{}

func (NumberRecognizer) Category() SecondaryPos { return SecCardinal }

func (n NumberRecognizer) Matches(stem string) bool {
	return n.Spoken(stem) != ""
}

func (NumberRecognizer) secondary(stem string) SecondaryPos {
	switch {
	case reReal.MatchString(stem):
		return SecReal
	case reOrdinal.MatchString(stem):
		return SecOrdinal
	}
	return SecCardinal
}

func (n NumberRecognizer) Synthesize(stem string) *DictionaryItem {
	return dummy(stem, PosNumeral, n.secondary(stem), "")
}

func (NumberRecognizer) Spoken(stem string) string {
	var (
		s  string
		ok bool
	)
	switch {
	case reInteger.MatchString(stem):
		s, ok = readDigits(stem)
	case reThousands.MatchString(stem):
		s, ok = readDigits(strings.ReplaceAll(stem, ".", ""))
	case reReal.MatchString(stem):
		s, ok = readDecimal(stem)
	case reOrdinal.MatchString(stem):
		v, err := strconv.ParseUint(strings.TrimSuffix(stem, "."), 10, 64)
		if err == nil {
			s, ok = Ordinal(v), true
		}
	}
	if !ok {
		return ""
	}
	return s
}

// ---- Emoticons ----

var emoticons = map[string]bool{
	":)": true, ":-)": true, ":=)": true, ":D": true, ":-D": true,
	":(": true, ":-(": true, ":'(": true, ":P": true, ":-P": true,
	":p": true, ";)": true, ";-)": true, ":o": true, ":O": true,
	":/": true, ":|": true, ":*": true, ":3": true, "<3": true,
	"</3": true, "^_^": true, "^^": true, "-_-": true, "o_O": true,
	"O_o": true, "XD": true, "xD": true, ":S": true, ":@": true,
	"8)": true, "B)": true, ":]": true, ":[": true, "=)": true,
}

// EmoticonRecognizer matches a fixed set of text emoticons.
type EmoticonRecognizer struct{}

func (EmoticonRecognizer) Category() SecondaryPos { return SecEmoticon }

func (EmoticonRecognizer) Matches(stem string) bool { return emoticons[stem] }

func (EmoticonRecognizer) Synthesize(stem string) *DictionaryItem {
	return dummy(stem, PosNoun, SecEmoticon, "")
}

// ---- Email, URL, hashtag, mention ----

// PatternRecognizer synthesizes a noun for any token matching Pattern.
type PatternRecognizer struct {
	Secondary SecondaryPos
	Pattern   *regexp.Regexp
}

func (r *PatternRecognizer) Category() SecondaryPos { return r.Secondary }

func (r *PatternRecognizer) Matches(stem string) bool { return r.Pattern.MatchString(stem) }

func (r *PatternRecognizer) Synthesize(stem string) *DictionaryItem {
	return dummy(stem, PosNoun, r.Secondary, "")
}

var (
	EmailRecognizer = &PatternRecognizer{
		Secondary: SecEmail,
		Pattern:   regexp.MustCompile(`^[\p{L}\p{N}._%+-]+@[\p{L}\p{N}-]+(?:\.[\p{L}\p{N}-]+)+$`),
	}
	URLRecognizer = &PatternRecognizer{
		Secondary: SecURL,
		Pattern:   regexp.MustCompile(`^(?:https?://|www\.)[^\s'\x{2019}]+$`),
	}
	HashTagRecognizer = &PatternRecognizer{
		Secondary: SecHashTag,
		Pattern:   regexp.MustCompile(`^#[\p{L}\p{N}_]+$`),
	}
	MentionRecognizer = &PatternRecognizer{
		Secondary: SecMention,
		Pattern:   regexp.MustCompile(`^@[\p{L}\p{N}_]+$`),
	}
)

// ---- Unknown proper nouns and abbreviations ----

// ProperNounRecognizer accepts an unknown capitalized stem before an
// apostrophe: ABD'ye (abbreviation), Blah-Foo'ya (proper noun).
type ProperNounRecognizer struct {
	Lexicon *RootLexicon
}

func (ProperNounRecognizer) Category() SecondaryPos { return SecProperNoun }

func (ProperNounRecognizer) ApostropheOnly() bool { return true }

func (r ProperNounRecognizer) Matches(stem string) bool {
	if stem == "" || r.Lexicon.Contains(stem) {
		return false
	}
	letters := false
	for _, c := range stem {
		if unicode.IsDigit(c) {
			return false
		}
		if unicode.IsLetter(c) {
			letters = true
		}
	}
	if !letters {
		return false
	}
	if _, roman := ParseRoman(stem); roman {
		return false
	}
	return isCapitalized(stem) || strings.Contains(stem, ".")
}

func (r ProperNounRecognizer) Synthesize(stem string) *DictionaryItem {
	if !isAllUpper(stem) && !strings.Contains(stem, ".") {
		return dummy(stem, PosNoun, SecProperNoun, "")
	}
	return dummy(stem, PosNoun, SecAbbreviation, abbreviationReading(stem))
}
