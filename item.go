package turkmorph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidItem is returned when a dictionary item combines a part of
// speech with a secondary category or attribute it cannot carry.
var ErrInvalidItem = errors.New("invalid dictionary item")

// DictionaryItem is a root entry of the lexicon, or an entry synthesized
// by a token recognizer. Items are created by NewDictionaryItem and must
// not be modified afterwards; they are shared between analyses.
type DictionaryItem struct {
	// ID uniquely identifies the item within a lexicon, e.g. "dört_Num_Card".
	ID string `json:"id"`
	// Lemma is the citation form as written in the dictionary (zekâ, gelmek).
	Lemma string `json:"lemma"`
	// Root is the normalized form suffixes attach to (zeka, gel).
	Root string `json:"root"`
	// Pronunciation, when set, replaces Root for phonology. Abbreviations
	// without vowels are spelled out (TBMM -> tebememe).
	Pronunciation string `json:"pronunciation,omitempty"`
	// Primary is the main part of speech.
	Primary PrimaryPos `json:"primary"`
	// Secondary refines Primary.
	Secondary SecondaryPos `json:"secondary"`
	// Attributes holds morphophonemic attributes.
	Attributes AttributeSet `json:"attributes"`
}

// secondaryOwners lists which primary categories may carry a secondary one.
var secondaryOwners = map[SecondaryPos][]PrimaryPos{
	SecProperNoun:    {PosNoun},
	SecAbbreviation:  {PosNoun},
	SecEmoticon:      {PosNoun},
	SecEmail:         {PosNoun},
	SecURL:           {PosNoun},
	SecHashTag:       {PosNoun},
	SecMention:       {PosNoun},
	SecPersonal:      {PosPronoun},
	SecDemonstrative: {PosPronoun, PosDeterminer, PosAdjective},
	SecReflexive:     {PosPronoun},
	SecQuantitive:    {PosPronoun, PosDeterminer, PosAdjective, PosAdverb},
	SecQuestion:      {PosPronoun, PosDeterminer, PosAdjective, PosAdverb, PosQuestion},
	SecTime:          {PosNoun, PosAdverb},
}

// NewDictionaryItem validates and builds an item. An empty root defaults
// to the lemma, with the infinitive ending removed for verbs.
func NewDictionaryItem(lemma, root, pronunciation string, primary PrimaryPos, secondary SecondaryPos, attrs AttributeSet) (*DictionaryItem, error) {
	lemma = strings.TrimSpace(lemma)
	if lemma == "" {
		return nil, fmt.Errorf("%w: empty lemma", ErrInvalidItem)
	}
	if primary == PosUnknown {
		return nil, fmt.Errorf("%w: %s: unknown part of speech", ErrInvalidItem, lemma)
	}
	if err := checkSecondary(lemma, primary, secondary); err != nil {
		return nil, err
	}
	if attrs.Has(AttrVoicing) && attrs.Has(AttrNoVoicing) {
		return nil, fmt.Errorf("%w: %s: both Voicing and NoVoicing", ErrInvalidItem, lemma)
	}
	if primary != PosVerb {
		for _, a := range attrs.List() {
			if a.verbOnly() {
				return nil, fmt.Errorf("%w: %s: attribute %s needs a verb", ErrInvalidItem, lemma, a)
			}
		}
	}
	if attrs.Has(AttrAoristA) && attrs.Has(AttrAoristI) {
		return nil, fmt.Errorf("%w: %s: both Aorist_A and Aorist_I", ErrInvalidItem, lemma)
	}

	if root == "" {
		root = lemma
		if primary == PosVerb {
			root = verbRoot(lemma)
		}
	}
	root = NormalizeKey(root)
	if pronunciation == "" && secondary == SecAbbreviation {
		pronunciation = abbreviationReading(root)
	}

	item := &DictionaryItem{
		Lemma:         lemma,
		Root:          root,
		Pronunciation: NormalizeKey(pronunciation),
		Primary:       primary,
		Secondary:     secondary,
		Attributes:    attrs,
	}
	item.ID = itemID(lemma, primary, secondary)
	return item, nil
}

func checkSecondary(lemma string, primary PrimaryPos, secondary SecondaryPos) error {
	if secondary == SecNone {
		return nil
	}
	if secondary.numeric() {
		if primary != PosNumeral {
			return fmt.Errorf("%w: %s: %s needs Num, got %s", ErrInvalidItem, lemma, secondary, primary)
		}
		return nil
	}
	for _, p := range secondaryOwners[secondary] {
		if p == primary {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %s cannot carry %s", ErrInvalidItem, lemma, primary, secondary)
}

// itemID builds the unique key of an item.
func itemID(lemma string, primary PrimaryPos, secondary SecondaryPos) string {
	id := NormalizeKey(lemma) + "_" + primary.String()
	if secondary != SecNone {
		id += "_" + secondary.String()
	}
	return id
}

// verbRoot strips the infinitive -mak/-mek from a verb lemma.
func verbRoot(lemma string) string {
	key := NormalizeKey(lemma)
	for _, inf := range []string{"mak", "mek"} {
		if strings.HasSuffix(key, inf) && len(key) > len(inf) {
			return key[:len(key)-len(inf)]
		}
	}
	return key
}

// phonetic returns the string phonology is computed from.
func (d *DictionaryItem) phonetic() string {
	if d.Pronunciation != "" {
		return d.Pronunciation
	}
	return d.Root
}

// HasAttribute reports whether the item carries a.
func (d *DictionaryItem) HasAttribute(a Attribute) bool {
	return d.Attributes.Has(a)
}

// allowsApostrophe reports whether suffixes may follow the root after an
// apostrophe (Ankara'da, ABD'ye, 20:30'da).
func (d *DictionaryItem) allowsApostrophe() bool {
	switch d.Secondary {
	case SecProperNoun, SecAbbreviation:
		return true
	}
	return d.Attributes.Has(AttrDummy)
}

func (d *DictionaryItem) String() string {
	var b strings.Builder
	b.WriteString(d.Lemma)
	b.WriteString(" [P:")
	b.WriteString(d.Primary.String())
	if d.Secondary != SecNone {
		b.WriteString(",")
		b.WriteString(d.Secondary.String())
	}
	if d.Attributes != 0 {
		b.WriteString(";A:")
		b.WriteString(d.Attributes.String())
	}
	b.WriteString("]")
	return b.String()
}

// letterNames holds the Turkish reading of each letter, used to give
// abbreviations read letter by letter (ABD, TBMM, Dr) a pronunciation.
var letterNames = map[rune]string{
	'a': "a", 'b': "be", 'c': "ce", 'ç': "çe", 'd': "de", 'e': "e",
	'f': "fe", 'g': "ge", 'ğ': "ge", 'h': "he", 'ı': "ı", 'i': "i",
	'j': "je", 'k': "ke", 'l': "le", 'm': "me", 'n': "ne", 'o': "o",
	'ö': "ö", 'p': "pe", 'q': "ku", 'r': "re", 's': "se", 'ş': "şe",
	't': "te", 'u': "u", 'ü': "ü", 'v': "ve", 'w': "ve", 'x': "iks",
	'y': "ye", 'z': "ze",
}

// spellOut reads s letter by letter; non-letters are skipped.
func spellOut(s string) string {
	var b strings.Builder
	for _, r := range NormalizeKey(s) {
		b.WriteString(letterNames[r])
	}
	return b.String()
}

// abbreviationReading returns the letter by letter reading of short or
// vowelless abbreviations (AB, ABD, TBMM), and "" for those read as a
// word (Tübitak, NATO).
func abbreviationReading(s string) string {
	key := NormalizeKey(s)
	if len([]rune(key)) <= 3 || syllableCount(key) == 0 {
		return spellOut(key)
	}
	return ""
}
