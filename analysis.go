package turkmorph

import (
	"slices"
	"strings"
)

// AppliedSuffix is one morpheme of a parse together with the characters
// it consumed from the input.
type AppliedSuffix struct {
	Morpheme Morpheme `json:"morpheme"`
	// Surface is the typed text of the suffix; empty for morphemes without
	// a surface form (A3sg, Pnon, Nom, zero derivations).
	Surface string `json:"surface,omitempty"`
	// Derived is the part of speech after a derivational suffix.
	Derived PrimaryPos `json:"derived,omitempty"`
}

// SingleAnalysis is one complete parse of a word.
type SingleAnalysis struct {
	// Item is the lexicon root, or the item synthesized by a recognizer.
	Item *DictionaryItem `json:"item"`
	// Stem is the typed text matched by the root.
	Stem string `json:"stem"`
	// Separator holds the apostrophe between a proper noun or an
	// abbreviation and its suffixes (Ankara'da).
	Separator string          `json:"separator,omitempty"`
	Suffixes  []AppliedSuffix `json:"suffixes"`
	// Trailing holds the period after an abbreviation (Dr.).
	Trailing string `json:"trailing,omitempty"`
}

// Surface rebuilds the analyzed word from the parts of the analysis.
func (a *SingleAnalysis) Surface() string {
	var b strings.Builder
	b.WriteString(a.Stem)
	b.WriteString(a.Separator)
	for _, s := range a.Suffixes {
		b.WriteString(s.Surface)
	}
	b.WriteString(a.Trailing)
	return b.String()
}

// Lemma returns the lemma of the root item.
func (a *SingleAnalysis) Lemma() string {
	return a.Item.Lemma
}

// Morphemes returns the morphemes in order of application.
func (a *SingleAnalysis) Morphemes() []Morpheme {
	out := make([]Morpheme, len(a.Suffixes))
	for i, s := range a.Suffixes {
		out[i] = s.Morpheme
	}
	return out
}

// String formats the analysis as
//
//	[kitap:Noun] kitab:Noun+A3sg+ı:Acc
//	[kazan:Noun] kazan:Noun+A3sg|cığ:Dim→Noun+A3sg+a:Dat
//
// Derivations start with "|" and show the resulting part of speech.
func (a *SingleAnalysis) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(a.Item.Lemma)
	b.WriteString(":")
	b.WriteString(a.Item.Primary.String())
	if a.Item.Secondary != SecNone {
		b.WriteString(",")
		b.WriteString(a.Item.Secondary.String())
	}
	b.WriteString("] ")
	b.WriteString(a.Stem)
	b.WriteString(a.Separator)
	b.WriteString(":")
	b.WriteString(a.Item.Primary.String())
	for _, s := range a.Suffixes {
		if s.Derived != PosUnknown {
			b.WriteString("|")
		} else {
			b.WriteString("+")
		}
		if s.Surface != "" {
			b.WriteString(s.Surface)
			b.WriteString(":")
		}
		b.WriteString(s.Morpheme.String())
		if s.Derived != PosUnknown {
			b.WriteString("→")
			b.WriteString(s.Derived.String())
		}
	}
	b.WriteString(a.Trailing)
	return b.String()
}

// WordAnalysis holds every analysis found for one input word.
type WordAnalysis struct {
	// Input is the word as given to Analyze.
	Input string `json:"input"`
	// Normalized is the lowercased, NFC form used for matching.
	Normalized string            `json:"normalized"`
	Analyses   []*SingleAnalysis `json:"analyses"`
}

// clone copies w down to the suffix lists; dictionary items are shared.
func (w *WordAnalysis) clone() *WordAnalysis {
	out := &WordAnalysis{Input: w.Input, Normalized: w.Normalized}
	if w.Analyses == nil {
		return out
	}
	out.Analyses = make([]*SingleAnalysis, len(w.Analyses))
	for i, a := range w.Analyses {
		c := *a
		c.Suffixes = slices.Clone(a.Suffixes)
		out.Analyses[i] = &c
	}
	return out
}

// AnalysisCount returns the number of analyses; zero means the word was
// not recognized.
func (w *WordAnalysis) AnalysisCount() int {
	return len(w.Analyses)
}

// IsCorrect reports whether the word has at least one analysis.
func (w *WordAnalysis) IsCorrect() bool {
	return len(w.Analyses) > 0
}

// Lemmas returns the distinct lemmas of the analyses in order of first
// appearance.
func (w *WordAnalysis) Lemmas() []string {
	var out []string
	seen := make(map[string]bool)
	for _, a := range w.Analyses {
		if !seen[a.Item.Lemma] {
			seen[a.Item.Lemma] = true
			out = append(out, a.Item.Lemma)
		}
	}
	return out
}
