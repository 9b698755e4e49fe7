package turkmorph

import (
	"fmt"
	"strings"
)

// PrimaryPos is the main part of speech of a dictionary item.
type PrimaryPos uint8

const (
	PosUnknown PrimaryPos = iota
	PosNoun
	PosAdjective
	PosAdverb
	PosConjunction
	PosInterjection
	PosVerb
	PosPronoun
	PosNumeral
	PosDeterminer
	PosPostPositive
	PosQuestion
	PosDuplicator
	PosPunctuation
)

var primaryNames = [...]string{
	PosUnknown:      "Unk",
	PosNoun:         "Noun",
	PosAdjective:    "Adj",
	PosAdverb:       "Adv",
	PosConjunction:  "Conj",
	PosInterjection: "Interj",
	PosVerb:         "Verb",
	PosPronoun:      "Pron",
	PosNumeral:      "Num",
	PosDeterminer:   "Det",
	PosPostPositive: "Postp",
	PosQuestion:     "Ques",
	PosDuplicator:   "Dup",
	PosPunctuation:  "Punc",
}

func (p PrimaryPos) String() string {
	if int(p) < len(primaryNames) {
		return primaryNames[p]
	}
	return fmt.Sprintf("PrimaryPos(%d)", p)
}

// MarshalText implements encoding.TextMarshaler.
func (p PrimaryPos) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PrimaryPos) UnmarshalText(b []byte) error {
	v, ok := ParsePrimaryPos(string(b))
	if !ok {
		return fmt.Errorf("unknown primary pos %q", b)
	}
	*p = v
	return nil
}

// ParsePrimaryPos accepts the short names used in dictionary lines
// ("Noun", "Adj", "Num", ...). Matching is case-insensitive.
func ParsePrimaryPos(s string) (PrimaryPos, bool) {
	for i, name := range primaryNames {
		if strings.EqualFold(name, s) {
			return PrimaryPos(i), true
		}
	}
	switch strings.ToLower(s) {
	case "adjective":
		return PosAdjective, true
	case "adverb":
		return PosAdverb, true
	case "pronoun":
		return PosPronoun, true
	case "numeral":
		return PosNumeral, true
	}
	return PosUnknown, false
}

// SecondaryPos refines a PrimaryPos.
type SecondaryPos uint8

const (
	SecNone SecondaryPos = iota
	SecProperNoun
	SecAbbreviation
	SecCardinal
	SecOrdinal
	SecDistribution
	SecReal
	SecRange
	SecPercentage
	SecRatio
	SecClock
	SecDate
	SecRomanNumeral
	SecEmoticon
	SecEmail
	SecURL
	SecHashTag
	SecMention
	SecPersonal
	SecDemonstrative
	SecReflexive
	SecQuantitive
	SecQuestion
	SecTime
)

var secondaryNames = [...]string{
	SecNone:          "None",
	SecProperNoun:    "Prop",
	SecAbbreviation:  "Abbrv",
	SecCardinal:      "Card",
	SecOrdinal:       "Ord",
	SecDistribution:  "Dist",
	SecReal:          "Real",
	SecRange:         "Range",
	SecPercentage:    "Percentage",
	SecRatio:         "Ratio",
	SecClock:         "Clock",
	SecDate:          "Date",
	SecRomanNumeral:  "RomanNumeral",
	SecEmoticon:      "Emoticon",
	SecEmail:         "Email",
	SecURL:           "Url",
	SecHashTag:       "HashTag",
	SecMention:       "Mention",
	SecPersonal:      "Pers",
	SecDemonstrative: "Demons",
	SecReflexive:     "Reflex",
	SecQuantitive:    "Quant",
	SecQuestion:      "Ques",
	SecTime:          "Time",
}

func (s SecondaryPos) String() string {
	if int(s) < len(secondaryNames) {
		return secondaryNames[s]
	}
	return fmt.Sprintf("SecondaryPos(%d)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s SecondaryPos) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SecondaryPos) UnmarshalText(b []byte) error {
	v, ok := ParseSecondaryPos(string(b))
	if !ok {
		return fmt.Errorf("unknown secondary pos %q", b)
	}
	*s = v
	return nil
}

// ParseSecondaryPos accepts the short names used in dictionary lines.
func ParseSecondaryPos(s string) (SecondaryPos, bool) {
	for i, name := range secondaryNames {
		if strings.EqualFold(name, s) {
			return SecondaryPos(i), true
		}
	}
	switch strings.ToLower(s) {
	case "propernoun":
		return SecProperNoun, true
	case "abbreviation":
		return SecAbbreviation, true
	case "cardinal":
		return SecCardinal, true
	case "ordinal":
		return SecOrdinal, true
	}
	return SecNone, false
}

// numeric reports whether s describes a number-like token.
func (s SecondaryPos) numeric() bool {
	switch s {
	case SecCardinal, SecOrdinal, SecDistribution, SecReal, SecRange,
		SecPercentage, SecRatio, SecClock, SecDate, SecRomanNumeral:
		return true
	}
	return false
}

// Attribute is a morphophonemic property of a root.
type Attribute uint8

const (
	// AttrVoicing: final p, ç, t, k (and g) voice before a vowel (kitap -> kitabı).
	AttrVoicing Attribute = iota
	// AttrNoVoicing blocks voicing inference (hukuk, top).
	AttrNoVoicing
	// AttrInverseHarmony: suffixes take front vowels after a back root (saat -> saati).
	AttrInverseHarmony
	// AttrDoubling: final consonant doubles before a vowel (hak -> hakkı).
	AttrDoubling
	// AttrLastVowelDrop: last vowel drops before a vowel (burun -> burnu).
	AttrLastVowelDrop
	// AttrProgressiveVowelDrop: verb final vowel drops before -Iyor (başla -> başlıyor).
	AttrProgressiveVowelDrop
	// AttrAoristA: aorist with -Ar (yap -> yapar).
	AttrAoristA
	// AttrAoristI: aorist with -Ir (gel -> gelir).
	AttrAoristI
	// AttrNoSuffix: the root takes no suffixes.
	AttrNoSuffix
	// AttrDummy marks items synthesized at analysis time.
	AttrDummy

	attributeCount
)

var attributeNames = [...]string{
	AttrVoicing:              "Voicing",
	AttrNoVoicing:            "NoVoicing",
	AttrInverseHarmony:       "InverseHarmony",
	AttrDoubling:             "Doubling",
	AttrLastVowelDrop:        "LastVowelDrop",
	AttrProgressiveVowelDrop: "ProgressiveVowelDrop",
	AttrAoristA:              "Aorist_A",
	AttrAoristI:              "Aorist_I",
	AttrNoSuffix:             "NoSuffix",
	AttrDummy:                "Dummy",
}

func (a Attribute) String() string {
	if a < attributeCount {
		return attributeNames[a]
	}
	return fmt.Sprintf("Attribute(%d)", a)
}

// ParseAttribute accepts "Voicing", "Aorist_A", "AoristA" and so on.
func ParseAttribute(s string) (Attribute, bool) {
	plain := strings.ReplaceAll(s, "_", "")
	for i, name := range attributeNames {
		if strings.EqualFold(strings.ReplaceAll(name, "_", ""), plain) {
			return Attribute(i), true
		}
	}
	return 0, false
}

// verbOnly reports whether a only makes sense on verbs.
func (a Attribute) verbOnly() bool {
	return a == AttrProgressiveVowelDrop || a == AttrAoristA || a == AttrAoristI
}

// AttributeSet is a set of Attributes.
type AttributeSet uint32

// NewAttributeSet builds a set from attrs.
func NewAttributeSet(attrs ...Attribute) AttributeSet {
	var s AttributeSet
	for _, a := range attrs {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s AttributeSet) Has(a Attribute) bool { return s&(1<<a) != 0 }

// With returns the set with a added.
func (s AttributeSet) With(a Attribute) AttributeSet { return s | 1<<a }

// Without returns the set with a removed.
func (s AttributeSet) Without(a Attribute) AttributeSet { return s &^ (1 << a) }

// List returns the attributes in declaration order.
func (s AttributeSet) List() []Attribute {
	var out []Attribute
	for a := Attribute(0); a < attributeCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s AttributeSet) String() string {
	attrs := s.List()
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

// MarshalJSON encodes the set as a list of names.
func (s AttributeSet) MarshalJSON() ([]byte, error) {
	attrs := s.List()
	var b strings.Builder
	b.WriteByte('[')
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`"` + a.String() + `"`)
	}
	b.WriteByte(']')
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes a list of attribute names.
func (s *AttributeSet) UnmarshalJSON(data []byte) error {
	str := strings.TrimSpace(string(data))
	if str == "null" {
		*s = 0
		return nil
	}
	if len(str) < 2 || str[0] != '[' || str[len(str)-1] != ']' {
		return fmt.Errorf("attribute set: expected JSON array, got %s", str)
	}
	var out AttributeSet
	for _, part := range strings.Split(str[1:len(str)-1], ",") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part == "" {
			continue
		}
		a, ok := ParseAttribute(part)
		if !ok {
			return fmt.Errorf("attribute set: unknown attribute %q", part)
		}
		out = out.With(a)
	}
	*s = out
	return nil
}
