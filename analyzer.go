package turkmorph

// maxWordRunes bounds the length of analyzable words; longer inputs get
// no analysis.
const maxWordRunes = 256

// maxZeroRun bounds consecutive suffixes without surface in one branch.
const maxZeroRun = 10

// token is a word as typed and in its normalized form. Both slices have
// the same length so that a normalized position is also a typed position.
type token struct {
	typed []rune
	norm  []rune
}

func newToken(s string) *token {
	typed := []rune(s)
	norm := make([]rune, len(typed))
	for i, r := range typed {
		norm[i] = normalizeRune(r)
	}
	return &token{typed: typed, norm: norm}
}

// slice returns the token for runes [i, j).
func (t *token) slice(i, j int) *token {
	return &token{typed: t.typed[i:j], norm: t.norm[i:j]}
}

func (t *token) len() int { return len(t.norm) }

// apostrophe returns the position of the first apostrophe, or -1.
func (t *token) apostrophe() int {
	for i, r := range t.norm {
		if r == '\'' {
			return i
		}
	}
	return -1
}

// branch is one partial parse on the work list.
type branch struct {
	state *MorphemeState
	item  *DictionaryItem
	// pos is the part of speech after the last derivation.
	pos PrimaryPos

	cursor int
	ctx    phonContext
	follow follow
	only   Morpheme

	// needsOvert is set by a zero derivation and cleared by the next suffix
	// with a surface form.
	needsOvert bool
	zeroRun    int

	suffixes []AppliedSuffix
	// boundary is the index in suffixes after the last derivation.
	boundary     int
	boundaryZero bool
}

func startBranch(t *stemTransition, cursor int) *branch {
	return &branch{
		state:  t.state,
		item:   t.item,
		pos:    t.item.Primary,
		cursor: cursor,
		ctx:    t.ctx,
		follow: t.next,
		only:   t.only,
	}
}

// accepts reports whether the parse may end here.
func (b *branch) accepts() bool {
	return b.state.Terminal &&
		b.follow != followVowel &&
		b.only == MorphNone &&
		!b.needsOvert
}

// analyzer matches words against the stem index and the suffix graph.
// It is immutable after construction.
type analyzer struct {
	index    *stemIndex
	tolerant bool
}

func newAnalyzer(lex *RootLexicon, tolerant bool) (*analyzer, error) {
	idx, err := newStemIndex(lex, tolerant)
	if err != nil {
		return nil, err
	}
	return &analyzer{index: idx, tolerant: tolerant}, nil
}

// analyzeWord returns the lexicon based analyses of tok, including the
// abbreviation reading of a word with a trailing period.
func (a *analyzer) analyzeWord(tok *token) []*SingleAnalysis {
	if tok.len() == 0 || tok.len() > maxWordRunes {
		return nil
	}
	out := a.analyze(tok)

	n := tok.len()
	if n > 1 && tok.norm[n-1] == '.' {
		for _, s := range a.analyze(tok.slice(0, n-1)) {
			if s.Item.Secondary != SecAbbreviation || s.Separator != "" || hasSurface(s.Suffixes) {
				continue
			}
			s.Trailing = string(tok.typed[n-1])
			out = append(out, s)
		}
	}
	return out
}

func hasSurface(suffixes []AppliedSuffix) bool {
	for _, s := range suffixes {
		if s.Surface != "" {
			return true
		}
	}
	return false
}

// analyze splits tok at every rune boundary into a stem found in the
// index and a remainder parsed by the suffix graph.
func (a *analyzer) analyze(tok *token) []*SingleAnalysis {
	if k := tok.apostrophe(); k >= 0 {
		return a.analyzeApostrophe(tok, k)
	}

	var out []*SingleAnalysis
	limit := min(tok.len(), a.index.maxKeyRunes)
	for i := 1; i <= limit; i++ {
		transitions := a.index.lookup(string(tok.norm[:i]), a.tolerant)
		if len(transitions) == 0 {
			continue
		}
		stem := string(tok.typed[:i])
		for _, t := range transitions {
			for _, suffixes := range a.walk(tok, startBranch(t, i)) {
				out = append(out, &SingleAnalysis{Item: t.item, Stem: stem, Suffixes: suffixes})
			}
		}
	}
	return out
}

// analyzeApostrophe handles Ankara'da: the part before the apostrophe must
// be the unchanged root of an item that allows an apostrophe, and some
// suffix has to follow.
func (a *analyzer) analyzeApostrophe(tok *token, k int) []*SingleAnalysis {
	if k == 0 || k == tok.len()-1 {
		return nil
	}
	stem := string(tok.typed[:k])
	sep := string(tok.typed[k])

	var out []*SingleAnalysis
	for _, t := range a.index.lookup(string(tok.norm[:k]), a.tolerant) {
		if t.surface != t.item.Root || t.only != MorphNone || !t.item.allowsApostrophe() {
			continue
		}
		start := startBranch(t, k+1)
		start.follow = followAny
		for _, suffixes := range a.walk(tok, start) {
			out = append(out, &SingleAnalysis{Item: t.item, Stem: stem, Separator: sep, Suffixes: suffixes})
		}
	}
	return out
}

// inflect parses ending as the suffix chain of item, trying every written
// form of the root. Recognizers use it to inflect synthesized roots.
func (a *analyzer) inflect(item *DictionaryItem, ending *token) [][]AppliedSuffix {
	var out [][]AppliedSuffix
	for _, t := range stemTransitions(item) {
		if t.only != MorphNone {
			continue
		}
		out = append(out, a.walk(ending, startBranch(t, 0))...)
	}
	return out
}

// walk explores the suffix graph from start with an explicit stack and
// returns the suffix chains of every branch that consumes the whole token
// and ends in a terminal state.
func (a *analyzer) walk(tok *token, start *branch) [][]AppliedSuffix {
	var done [][]AppliedSuffix
	stack := []*branch{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.cursor == tok.len() && b.accepts() {
			done = append(done, b.suffixes)
		}
		// Pushed in reverse so rules are explored in priority order.
		rules := b.state.rules
		for i := len(rules) - 1; i >= 0; i-- {
			if next := a.apply(tok, b, rules[i]); next != nil {
				stack = append(stack, next)
			}
		}
	}
	return done
}

// apply returns the branch after taking rule r from b, or nil when the
// rule does not fit the input or the branch.
func (a *analyzer) apply(tok *token, b *branch, r *SuffixRule) *branch {
	if b.only != MorphNone && r.Morpheme != b.only {
		return nil
	}
	if !r.applies(b) {
		return nil
	}

	surface, ctx := expand(r.Template, b.ctx)
	next := *b
	next.state = r.To
	next.only = r.only

	applied := AppliedSuffix{Morpheme: r.Morpheme}
	if surface == "" {
		if b.zeroRun >= maxZeroRun {
			return nil
		}
		next.zeroRun++
		if r.zero {
			next.needsOvert = true
		}
		// The pending constraint carries over to the next overt suffix.
		if r.next != followAny {
			next.follow = r.next
		}
	} else {
		expected := []rune(surface)
		if !b.follow.allows(expected[0]) {
			return nil
		}
		end := b.cursor + len(expected)
		if end > tok.len() {
			return nil
		}
		for j, e := range expected {
			if !equivalent(tok.norm[b.cursor+j], e, a.tolerant) {
				return nil
			}
		}
		applied.Surface = string(tok.typed[b.cursor:end])
		next.cursor = end
		next.ctx = ctx
		next.follow = r.next
		next.needsOvert = false
		next.zeroRun = 0
	}

	if r.derives != PosUnknown {
		applied.Derived = r.derives
	}
	next.suffixes = append(b.suffixes[:len(b.suffixes):len(b.suffixes)], applied)
	if r.derives != PosUnknown {
		next.pos = r.derives
		next.boundary = len(next.suffixes)
		next.boundaryZero = r.zero
	}
	return &next
}
