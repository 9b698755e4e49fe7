package turkmorph

import "errors"

// ErrNoAnalysisSource is returned by New when the lexicon is empty and
// recognizers are disabled, so that every word would get zero analyses.
var ErrNoAnalysisSource = errors.New("turkmorph: empty lexicon and no recognizers")

// Config describes a Morphology. The zero value analyzes with recognizers
// only. A Config is read once by New; changing it afterwards has no
// effect on the built Morphology.
type Config struct {
	// Lexicon is a prebuilt root lexicon.
	Lexicon *RootLexicon
	// Lines are dictionary lines merged after Lexicon.
	Lines []string

	// IgnoreDiacritics lets ASCII letters stand for their Turkish
	// counterparts (sira matches sıra and şıra).
	IgnoreDiacritics bool

	// DisableCache turns off the analysis cache.
	DisableCache bool
	// CacheSize is the number of cached words; zero means DefaultCacheSize.
	CacheSize int

	// DisableRecognizers turns off the secondary token recognizers.
	DisableRecognizers bool
}
