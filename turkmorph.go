// Package turkmorph provides Turkish morphological analysis: every word is
// decomposed into a root from the lexicon and a chain of suffixes checked
// against vowel harmony, consonant alternations and the morphotactics of
// the language. Dates, numbers, Roman numerals, emoticons and unknown
// proper nouns are recognized without a lexicon entry.
package turkmorph

import (
	"fmt"
	"regexp"
	"strings"
)

// Morphology is the analysis entry point. It is safe for concurrent use.
type Morphology struct {
	lexicon *RootLexicon

	// analyzer holds the stem index built from lexicon.
	analyzer *analyzer

	// recognizers is the ordered secondary token chain; nil when disabled.
	recognizers []Recognizer

	// cache is nil when caching is disabled.
	cache *analysisCache

	ignoreDiacritics bool
}

// New builds a Morphology from cfg.
func New(cfg Config) (*Morphology, error) {
	lex := cfg.Lexicon
	if len(cfg.Lines) > 0 {
		extra, err := LoadLines(cfg.Lines...)
		if err != nil {
			return nil, fmt.Errorf("dictionary lines: %w", err)
		}
		lex = lex.Merge(extra)
	}
	if lex == nil {
		lex = NewRootLexicon()
	}
	if lex.Len() == 0 && cfg.DisableRecognizers {
		return nil, ErrNoAnalysisSource
	}

	an, err := newAnalyzer(lex, cfg.IgnoreDiacritics)
	if err != nil {
		return nil, err
	}
	m := &Morphology{
		lexicon:          lex,
		analyzer:         an,
		ignoreDiacritics: cfg.IgnoreDiacritics,
	}
	if !cfg.DisableRecognizers {
		m.recognizers = DefaultRecognizers(lex)
	}
	if !cfg.DisableCache {
		if m.cache, err = newAnalysisCache(cfg.CacheSize); err != nil {
			return nil, fmt.Errorf("analysis cache: %w", err)
		}
	}
	return m, nil
}

// NewFromLines builds a Morphology with default settings from dictionary
// lines.
func NewFromLines(lines ...string) (*Morphology, error) {
	return New(Config{Lines: lines})
}

// NewFromFiles builds a Morphology with default settings from dictionary
// files (line format, or YAML for .yaml and .yml files).
func NewFromFiles(paths ...string) (*Morphology, error) {
	lex, err := LoadFiles(paths...)
	if err != nil {
		return nil, err
	}
	return New(Config{Lexicon: lex})
}

// Lexicon returns the root lexicon.
func (m *Morphology) Lexicon() *RootLexicon {
	return m.lexicon
}

// IgnoresDiacritics reports whether diacritic tolerant matching is on.
func (m *Morphology) IgnoresDiacritics() bool {
	return m.ignoreDiacritics
}

// CacheStats returns cache usage; ok is false when caching is disabled.
func (m *Morphology) CacheStats() (stats CacheStats, ok bool) {
	if m.cache == nil {
		return CacheStats{}, false
	}
	return m.cache.stats(), true
}

// Analyze returns every analysis of word. It never fails: an unknown or
// ungrammatical word yields a WordAnalysis without analyses.
func (m *Morphology) Analyze(word string) *WordAnalysis {
	if m.cache == nil {
		return m.analyze(word)
	}
	return m.cache.get(word, m.analyze)
}

// reToken splits text into whitespace separated tokens.
var reToken = regexp.MustCompile(`\S+`)

// edgePunct is trimmed from a token that has no analysis as written.
const edgePunct = `.,;:!?"()[]{}«»“”…`

// AnalyzeText analyzes each whitespace separated token of text. A token
// without analyses is retried without surrounding punctuation, so that a
// sentence final "geldi." is analyzed as "geldi" while "Dr." keeps its
// period.
func (m *Morphology) AnalyzeText(text string) []*WordAnalysis {
	var results []*WordAnalysis
	for _, tok := range reToken.FindAllString(text, -1) {
		wa := m.Analyze(tok)
		if !wa.IsCorrect() {
			if trimmed := strings.Trim(tok, edgePunct); trimmed != "" && trimmed != tok {
				wa = m.Analyze(trimmed)
			}
		}
		results = append(results, wa)
	}
	return results
}

// analyze computes the analysis of word without the cache.
func (m *Morphology) analyze(word string) *WordAnalysis {
	nfc := NFC(word)
	tok := newToken(nfc)
	wa := &WordAnalysis{Input: word, Normalized: string(tok.norm)}
	if tok.len() == 0 || tok.len() > maxWordRunes {
		return wa
	}
	wa.Analyses = m.analyzer.analyzeWord(tok)
	wa.Analyses = append(wa.Analyses, m.recognize(tok)...)
	return wa
}

// recognize runs the recognizer chain on tok. A recognizer is tried on the
// whole token first, then on the part before the first apostrophe with the
// rest parsed as suffixes.
func (m *Morphology) recognize(tok *token) []*SingleAnalysis {
	if len(m.recognizers) == 0 {
		return nil
	}
	whole := string(tok.typed)
	k := tok.apostrophe()
	empty := tok.slice(tok.len(), tok.len())

	var out []*SingleAnalysis
	for _, r := range m.recognizers {
		stem, sep, ending := whole, "", empty
		_, apostropheOnly := r.(ApostropheOnly)
		switch {
		case !apostropheOnly && r.Matches(whole):
		case k > 0 && k < tok.len()-1 && r.Matches(string(tok.typed[:k])):
			stem = string(tok.typed[:k])
			sep = string(tok.typed[k])
			ending = tok.slice(k+1, tok.len())
		default:
			continue
		}

		item := r.Synthesize(stem)
		if item == nil {
			continue
		}
		root := item
		if s, ok := r.(Spoken); ok {
			if root = m.numeral(s.Spoken(stem)); root == nil {
				continue
			}
		}
		for _, suffixes := range m.analyzer.inflect(root, ending) {
			out = append(out, &SingleAnalysis{Item: item, Stem: stem, Separator: sep, Suffixes: suffixes})
		}
	}
	return out
}

// numeral returns the item whose phonology a number token borrows: the
// lexicon numeral for the last word of its reading, or a built-in one.
func (m *Morphology) numeral(reading string) *DictionaryItem {
	if reading == "" {
		return nil
	}
	word := lastWord(reading)
	if items := m.lexicon.Find(word, PosNumeral); len(items) > 0 {
		return items[0]
	}
	return numeralItem(word)
}
