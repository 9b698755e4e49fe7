package turkmorph

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

func newMorphology(t *testing.T, cfg Config) *Morphology {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func fromLines(t *testing.T, lines ...string) *Morphology {
	t.Helper()
	return newMorphology(t, Config{Lines: lines})
}

func logAnalyses(t *testing.T, wa *WordAnalysis) {
	t.Helper()
	for _, a := range wa.Analyses {
		t.Logf("  %s", a)
	}
}

func expectCount(t *testing.T, m *Morphology, word string, want int) *WordAnalysis {
	t.Helper()
	wa := m.Analyze(word)
	if wa.AnalysisCount() != want {
		t.Errorf("Analyze(%q): %d analyses, want %d", word, wa.AnalysisCount(), want)
		logAnalyses(t, wa)
	}
	return wa
}

func expectSecondary(t *testing.T, wa *WordAnalysis, want SecondaryPos) {
	t.Helper()
	for _, a := range wa.Analyses {
		if a.Item.Secondary != want {
			t.Errorf("Analyze(%q): secondary %s, want %s", wa.Input, a.Item.Secondary, want)
		}
	}
}

func TestCircumflex(t *testing.T) {
	m := fromLines(t, "zekâ")
	expectCount(t, m, "zekâ", 1)
}

func TestProperNounApostrophe(t *testing.T) {
	m := fromLines(t, "Air")
	expectCount(t, m, "Air", 1)
	expectCount(t, m, "Air'rrr", 0)
}

func TestAbbreviationTrailingPeriod(t *testing.T) {
	m := fromLines(t, "Dr [P:Abbrv]")
	wa := expectCount(t, m, "Dr.", 1)
	if wa.AnalysisCount() == 1 && wa.Analyses[0].Trailing != "." {
		t.Errorf("Dr.: trailing %q, want %q", wa.Analyses[0].Trailing, ".")
	}
}

func TestRomanNumeralAndDate(t *testing.T) {
	m := fromLines(t, "dört [P:Num,Card;A:Voicing]")

	expectSecondary(t, expectCount(t, m, "IV", 1), SecRomanNumeral)
	expectSecondary(t, expectCount(t, m, "XXIV'ten", 1), SecRomanNumeral)
	expectSecondary(t, expectCount(t, m, "1.1.2014", 1), SecDate)
}

func TestRomanOrdinal(t *testing.T) {
	m := fromLines(t, "dördüncü [P:Num,Ord]")
	expectSecondary(t, expectCount(t, m, "XXIV.", 1), SecRomanNumeral)
}

func TestClock(t *testing.T) {
	m := fromLines(t, "otuz [P:Num,Card]")
	expectSecondary(t, expectCount(t, m, "20:30'da", 1), SecClock)
}

func TestPercentage(t *testing.T) {
	m := fromLines(t, "iki [P:Num,Card]")
	for _, w := range []string{"%2", "%2'si", "%2.2'si", "%2,2'si"} {
		expectSecondary(t, expectCount(t, m, w, 1), SecPercentage)
	}
}

func TestRatio(t *testing.T) {
	m := fromLines(t, "iki [P:Num,Card]")
	expectSecondary(t, expectCount(t, m, "1/2", 1), SecRatio)
}

func TestEmoticon(t *testing.T) {
	m := newMorphology(t, Config{})
	wa := expectCount(t, m, ":)", 1)
	expectSecondary(t, wa, SecEmoticon)
	if wa.AnalysisCount() == 1 {
		got := wa.Analyses[0].Morphemes()
		want := []Morpheme{MorphA3sg, MorphPnon, MorphNom}
		if !slices.Equal(got, want) {
			t.Errorf(":) morphemes = %v, want %v", got, want)
		}
	}
}

func TestUnknownProperNoun(t *testing.T) {
	m := newMorphology(t, Config{})
	expectSecondary(t, expectCount(t, m, "Blah-Foo'ya", 1), SecProperNoun)
	expectSecondary(t, expectCount(t, m, "ABD'ye", 1), SecAbbreviation)
}

func TestAbbreviationVoicing(t *testing.T) {
	m := fromLines(t, "Tübitak [P:Abbrv]")
	expectCount(t, m, "Tübitak'a", 1)
	expectCount(t, m, "Tübitaka", 1)
	expectCount(t, m, "Tübitağa", 0)
}

func TestAbbreviationInLexicon(t *testing.T) {
	m := fromLines(t, "ABD [P:Abbrv]")
	for w, want := range map[string]int{
		"ABD":    1,
		"ABD'ye": 1,
		"ABD'de": 1,
		"ABD'a":  0,
		"ABD'da": 0,
	} {
		expectSecondary(t, expectCount(t, m, w, want), SecAbbreviation)
	}

	// Lexicon entries and synthesized abbreviations read alike.
	empty := newMorphology(t, Config{})
	for _, w := range []string{"ABD'ye", "ABD'de", "ABD'a", "ABD'da"} {
		lexical, synthesized := m.Analyze(w).AnalysisCount(), empty.Analyze(w).AnalysisCount()
		if lexical != synthesized {
			t.Errorf("%q: %d analyses from the lexicon, %d synthesized", w, lexical, synthesized)
		}
	}
}

var tolerantLexicon = []string{
	"sıra",
	"şıra",
	"armut",
	"kazan",
	"ekonomik [P:Adj]",
	"insan",
}

func hasLemma(wa *WordAnalysis, lemma string) bool {
	return slices.Contains(wa.Lemmas(), lemma)
}

func TestIgnoreDiacritics(t *testing.T) {
	m := newMorphology(t, Config{Lines: tolerantLexicon, IgnoreDiacritics: true})

	wa := expectCount(t, m, "sira", 2)
	if !hasLemma(wa, "sıra") || !hasLemma(wa, "şıra") {
		t.Errorf("sira: lemmas %v, want sıra and şıra", wa.Lemmas())
	}

	tests := []struct {
		word  string
		lemma string
	}{
		{"ekonomık", "ekonomik"},
		{"siraci", "sıra"},
		{"siraci", "şıra"},
		{"armutcuga", "armut"},
		{"kazancıga", "kazan"},
		{"kazanciga", "kazan"},
		{"kazançiğimizdan", "kazan"},
		{"ınsanların", "insan"},
	}
	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.lemma, func(t *testing.T) {
			wa := m.Analyze(tt.word)
			if !hasLemma(wa, tt.lemma) {
				t.Errorf("Analyze(%q): lemmas %v, want %s", tt.word, wa.Lemmas(), tt.lemma)
				logAnalyses(t, wa)
			}
		})
	}
}

func TestIgnoreDiacriticsOff(t *testing.T) {
	m := newMorphology(t, Config{Lines: tolerantLexicon})
	if m.IgnoresDiacritics() {
		t.Fatal("IgnoresDiacritics() = true for default config")
	}
	expectCount(t, m, "sira", 0)
	expectCount(t, m, "sıra", 1)
}

var grammarLexicon = []string{
	"kitap",
	"ev",
	"öğretmen",
	"burun [A:LastVowelDrop]",
	"hak [A:Doubling]",
	"saat [A:InverseHarmony,NoVoicing]",
	"mavi [P:Adj]",
	"Ankara",
	"gelmek",
	"yapmak",
	"başlamak",
	"gitmek [A:Voicing]",
}

func TestInflection(t *testing.T) {
	m := fromLines(t, grammarLexicon...)

	tests := []struct {
		word string
		want string
	}{
		{"kitap", "[kitap:Noun] kitap:Noun+A3sg+Pnon+Nom"},
		{"kitabı", "[kitap:Noun] kitab:Noun+A3sg+Pnon+ı:Acc"},
		{"kitabı", "[kitap:Noun] kitab:Noun+A3sg+ı:P3sg+Nom"},
		{"kitapta", "[kitap:Noun] kitap:Noun+A3sg+Pnon+ta:Loc"},
		{"kitaplarımızdan", "[kitap:Noun] kitap:Noun+lar:A3pl+ımız:P1pl+dan:Abl"},
		{"kitapçı", "[kitap:Noun] kitap:Noun+A3sg+Pnon+Nom|çı:Agt→Noun+A3sg+Pnon+Nom"},
		{"evdeki", "[ev:Noun] ev:Noun+A3sg+Pnon+de:Loc|ki:Rel→Adj"},
		{"burnu", "[burun:Noun] burn:Noun+A3sg+Pnon+u:Acc"},
		{"hakkı", "[hak:Noun] hakk:Noun+A3sg+Pnon+ı:Acc"},
		{"saati", "[saat:Noun] saat:Noun+A3sg+Pnon+i:Acc"},
		{"maviye", "[mavi:Adj] mavi:Adj|Zero→Noun+A3sg+Pnon+ye:Dat"},
		{"öğretmendir", "[öğretmen:Noun] öğretmen:Noun+A3sg+Pnon+Nom|Zero→Verb+Pres+A3sg+dir:Cop"},
		{"Ankara'da", "[Ankara:Noun,Prop] Ankara':Noun+A3sg+Pnon+da:Loc"},
		{"geliyor", "[gelmek:Verb] gel:Verb+iyor:Prog1+A3sg"},
		{"başlıyor", "[başlamak:Verb] başl:Verb+ıyor:Prog1+A3sg"},
		{"başlamıyor", "[başlamak:Verb] başla:Verb+m:Neg+ıyor:Prog1+A3sg"},
		{"gelmedi", "[gelmek:Verb] gel:Verb+me:Neg+di:Past+A3sg"},
		{"gelir", "[gelmek:Verb] gel:Verb+ir:Aor+A3sg"},
		{"yapar", "[yapmak:Verb] yap:Verb+ar:Aor+A3sg"},
		{"gidiyorum", "[gitmek:Verb] gid:Verb+iyor:Prog1+um:A1sg"},
		{"gel", "[gelmek:Verb] gel:Verb+Imp+A2sg"},
		{"gelecekmiş", "[gelmek:Verb] gel:Verb+ecek:Fut+miş:Narr+A3sg"},
		{"geliyormuş", "[gelmek:Verb] gel:Verb+iyor:Prog1+muş:Narr+A3sg"},
		{"geldiyse", "[gelmek:Verb] gel:Verb+di:Past+yse:Cond+A3sg"},
		{"gelmeye", "[gelmek:Verb] gel:Verb|me:Inf2→Noun+A3sg+Pnon+ye:Dat"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			wa := m.Analyze(tt.word)
			var got []string
			for _, a := range wa.Analyses {
				got = append(got, a.String())
			}
			if !slices.Contains(got, tt.want) {
				t.Errorf("Analyze(%q) = %q, want it to contain %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestRejected(t *testing.T) {
	m := fromLines(t, grammarLexicon...)
	for _, w := range []string{
		"kitapı",   // voicing required before a vowel
		"kitabta",  // voiced stem before a consonant
		"kitap'ta", // apostrophe on a common noun
		"evda",     // harmony
		"burunu",
		"saatı",
		"gelyor",
		"gelmişmiş", // no second evidential
		"Ankara'",
	} {
		expectCount(t, m, w, 0)
	}
}

func TestReconstruction(t *testing.T) {
	m := newMorphology(t, Config{
		Lines:            append(slices.Clone(grammarLexicon), tolerantLexicon...),
		IgnoreDiacritics: true,
	})
	words := []string{
		"kitabı", "kitaplarımızdan", "Ankara’da", "maviye", "öğretmendir",
		"sira", "kazançiğimizdan", "armutcuga", "XXIV'ten", "%2,2'si",
		"20:30'da", ":)", "Blah-Foo'ya", "1.1.2014", "gidiyorum",
	}
	for _, w := range words {
		wa := m.Analyze(w)
		for _, a := range wa.Analyses {
			if got := a.Surface(); got != NFC(w) {
				t.Errorf("%q: analysis %s rebuilds %q", w, a, got)
			}
		}
	}
}

func TestDecomposedInput(t *testing.T) {
	m := fromLines(t, "göz")
	// "o" followed by a combining diaeresis.
	wa := expectCount(t, m, "go\u0308z", 1)
	if wa.Normalized != "göz" {
		t.Errorf("Normalized = %q, want %q", wa.Normalized, "göz")
	}
}

func TestLongWord(t *testing.T) {
	m := fromLines(t, "ev")
	long := make([]rune, maxWordRunes+1)
	for i := range long {
		long[i] = 'e'
	}
	expectCount(t, m, string(long), 0)
	expectCount(t, m, "", 0)
}

func analysisStrings(wa *WordAnalysis) []string {
	out := make([]string, len(wa.Analyses))
	for i, a := range wa.Analyses {
		out[i] = a.String()
	}
	return out
}

func TestCacheIdempotent(t *testing.T) {
	cached := fromLines(t, grammarLexicon...)
	uncached := newMorphology(t, Config{Lines: grammarLexicon, DisableCache: true})

	for _, w := range []string{"kitabı", "evdeki", "geliyor", "IV", "xyz"} {
		first := cached.Analyze(w)
		second := cached.Analyze(w)
		if !slices.Equal(analysisStrings(first), analysisStrings(second)) {
			t.Errorf("%q: first %v, second %v", w, analysisStrings(first), analysisStrings(second))
		}
		fresh := uncached.Analyze(w)
		if !slices.Equal(analysisStrings(first), analysisStrings(fresh)) {
			t.Errorf("%q: cached %v, uncached %v", w, analysisStrings(first), analysisStrings(fresh))
		}
	}
	if _, ok := uncached.CacheStats(); ok {
		t.Error("CacheStats ok with cache disabled")
	}
	stats, ok := cached.CacheStats()
	if !ok || stats.Hits != 5 || stats.Misses != 5 {
		t.Errorf("CacheStats = %+v, %v; want 5 hits and 5 misses", stats, ok)
	}
}

func TestCacheIsCaseSensitive(t *testing.T) {
	m := fromLines(t, "Ankara")
	a := m.Analyze("Ankara'da")
	b := m.Analyze("ankara'da")
	if s, _ := m.CacheStats(); s.Misses != 2 || s.Len != 2 {
		t.Fatalf("differently typed inputs share a cache entry: %+v", s)
	}
	if a.Input != "Ankara'da" || b.Input != "ankara'da" {
		t.Errorf("inputs = %q, %q", a.Input, b.Input)
	}
}

func TestToleranceMonotonic(t *testing.T) {
	lines := append(slices.Clone(grammarLexicon), tolerantLexicon...)
	strict := newMorphology(t, Config{Lines: lines, DisableCache: true})
	tolerant := newMorphology(t, Config{Lines: lines, DisableCache: true, IgnoreDiacritics: true})

	for _, w := range []string{"sıra", "kitabı", "kazancığa", "insanların", "ekonomik", "Ankara'da", "gidiyorum"} {
		have := analysisStrings(tolerant.Analyze(w))
		for _, s := range analysisStrings(strict.Analyze(w)) {
			if !slices.Contains(have, s) {
				t.Errorf("%q: %s lost with diacritic tolerance", w, s)
			}
		}
	}
}

func TestConcurrentAnalyze(t *testing.T) {
	m := fromLines(t, grammarLexicon...)
	words := []string{"kitabı", "evdeki", "geliyor", "burnu", "IV", "1.1.2014"}
	want := make(map[string]int)
	for _, w := range words {
		want[w] = m.Analyze(w).AnalysisCount()
	}

	fresh := fromLines(t, grammarLexicon...)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				if got := fresh.Analyze(w).AnalysisCount(); got != want[w] {
					t.Errorf("%q: %d analyses, want %d", w, got, want[w])
				}
			}
		}()
	}
	wg.Wait()
}

func TestNoAnalysisSource(t *testing.T) {
	_, err := New(Config{DisableRecognizers: true})
	if !errors.Is(err, ErrNoAnalysisSource) {
		t.Fatalf("New with nothing to analyze: err = %v, want ErrNoAnalysisSource", err)
	}
	if _, err := New(Config{Lines: []string{"ev"}, DisableRecognizers: true}); err != nil {
		t.Fatalf("New with lexicon only: %v", err)
	}
}

func TestBadLines(t *testing.T) {
	_, err := New(Config{Lines: []string{"ev", "kitap [P:Nope]"}})
	if err == nil {
		t.Fatal("New accepted an unknown part of speech")
	}
	t.Logf("error: %v", err)
}

func TestAnalyzeText(t *testing.T) {
	m := fromLines(t, grammarLexicon...)
	results := m.AnalyzeText("Ankara'da kitabı  geliyor.")
	if len(results) != 3 {
		t.Fatalf("AnalyzeText: %d results, want 3", len(results))
	}
	for _, wa := range results {
		if !wa.IsCorrect() {
			t.Errorf("%q has no analysis", wa.Input)
		}
	}
	if results[2].Input != "geliyor" {
		t.Errorf("last token analyzed as %q, want %q", results[2].Input, "geliyor")
	}
}

func BenchmarkAnalyze(b *testing.B) {
	m, err := New(Config{Lines: grammarLexicon, DisableCache: true})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Analyze("kitaplarımızdan")
	}
}
