package turkmorph

// follow constrains the first letter of the next overt suffix.
type follow uint8

const (
	followAny follow = iota
	// followVowel: the next suffix must start with a vowel (kitab+ı).
	followVowel
	// followConsonant: the next suffix must start with a consonant, or the
	// word must end (kitap, kitap+lar).
	followConsonant
)

// allows reports whether a suffix starting with r satisfies f.
func (f follow) allows(r rune) bool {
	switch f {
	case followVowel:
		return isVowel(r)
	case followConsonant:
		return !isVowel(r)
	}
	return true
}

// MorphemeState is a node of the suffix graph.
type MorphemeState struct {
	// ID names the state, e.g. "p3sg_S"; terminal states end in "_ST".
	ID string
	// Morpheme is the morpheme whose application leads into this state.
	Morpheme Morpheme
	// Terminal marks states where a word may end.
	Terminal bool

	rules []*SuffixRule
}

// Rules returns the outgoing suffix rules in priority order.
func (s *MorphemeState) Rules() []*SuffixRule {
	return s.rules
}

func (s *MorphemeState) String() string { return s.ID }

// SuffixRule is an edge of the suffix graph: applying Morpheme with the
// surface produced by Template moves a parse from From to To.
type SuffixRule struct {
	From     *MorphemeState
	To       *MorphemeState
	Morpheme Morpheme
	// Template is the allomorph template, see expand. Empty means the
	// morpheme has no surface form.
	Template string

	cond condition
	// next constrains the suffix after this one.
	next follow
	// only, when set, is the sole morpheme allowed next.
	only Morpheme
	// derives is the part of speech after a derivation, PosUnknown otherwise.
	derives PrimaryPos
	// zero marks a derivation without surface; some overt suffix has to
	// follow it before the word may end.
	zero bool
}

func (r *SuffixRule) when(c condition) *SuffixRule {
	r.cond = and(r.cond, c)
	return r
}

func (r *SuffixRule) before(f follow) *SuffixRule {
	r.next = f
	return r
}

func (r *SuffixRule) onlyBefore(m Morpheme) *SuffixRule {
	r.only = m
	return r
}

func (r *SuffixRule) derive(p PrimaryPos) *SuffixRule {
	r.derives = p
	return r
}

func (r *SuffixRule) as(m Morpheme) *SuffixRule {
	r.Morpheme = m
	return r
}

// zeroDerive marks r as a surface-less derivation into p.
func (r *SuffixRule) zeroDerive(p PrimaryPos) *SuffixRule {
	r.derives = p
	r.zero = true
	return r
}

func (r *SuffixRule) applies(b *branch) bool {
	return r.cond == nil || r.cond(b)
}

func newState(id string, m Morpheme, terminal bool) *MorphemeState {
	return &MorphemeState{ID: id, Morpheme: m, Terminal: terminal}
}

// add appends a rule from s to to, carrying to's morpheme.
func (s *MorphemeState) add(to *MorphemeState, tpl string) *SuffixRule {
	r := &SuffixRule{From: s, To: to, Morpheme: to.Morpheme, Template: tpl}
	s.rules = append(s.rules, r)
	return r
}

// morphotactics is the static suffix graph.
type morphotactics struct {
	// root states by part of speech
	nounRoot *MorphemeState
	adjRoot  *MorphemeState
	numRoot  *MorphemeState
	pronRoot *MorphemeState
	verbRoot *MorphemeState
	bare     *MorphemeState

	// nominal inflection
	a3sg, a3pl                               *MorphemeState
	pnon, p1sg, p2sg, p3sg, p1pl, p2pl, p3pl *MorphemeState
	nom, dat, acc, abl, loc, ins, gen, equ   *MorphemeState
	pronA3sg                                 *MorphemeState

	// verbal inflection
	imp, neg                                *MorphemeState
	past, narr, prog, fut, aor, cond, neces *MorphemeState
	verbA3sg, verbPerson                    *MorphemeState

	// nominal copula
	nVerb, nPres, nA3sg *MorphemeState

	states []*MorphemeState
}

// graph is built once at package initialization and only read afterwards.
var graph = newMorphotactics()

func newMorphotactics() *morphotactics {
	m := &morphotactics{}
	st := func(id string, morph Morpheme, terminal bool) *MorphemeState {
		s := newState(id, morph, terminal)
		m.states = append(m.states, s)
		return s
	}

	m.nounRoot = st("noun_S", MorphNone, false)
	m.adjRoot = st("adj_ST", MorphNone, true)
	m.numRoot = st("num_S", MorphNone, false)
	m.pronRoot = st("pron_S", MorphNone, false)
	m.verbRoot = st("verb_S", MorphNone, false)
	m.bare = st("bare_ST", MorphNone, true)

	m.a3sg = st("a3sg_S", MorphA3sg, false)
	m.a3pl = st("a3pl_S", MorphA3pl, false)
	m.pronA3sg = st("pronA3sg_S", MorphA3sg, false)
	m.pnon = st("pnon_S", MorphPnon, false)
	m.p1sg = st("p1sg_S", MorphP1sg, false)
	m.p2sg = st("p2sg_S", MorphP2sg, false)
	m.p3sg = st("p3sg_S", MorphP3sg, false)
	m.p1pl = st("p1pl_S", MorphP1pl, false)
	m.p2pl = st("p2pl_S", MorphP2pl, false)
	m.p3pl = st("p3pl_S", MorphP3pl, false)
	m.nom = st("nom_ST", MorphNom, true)
	m.dat = st("dat_ST", MorphDat, true)
	m.acc = st("acc_ST", MorphAcc, true)
	m.abl = st("abl_ST", MorphAbl, true)
	m.loc = st("loc_ST", MorphLoc, true)
	m.ins = st("ins_ST", MorphIns, true)
	m.gen = st("gen_ST", MorphGen, true)
	m.equ = st("equ_ST", MorphEqu, true)

	m.imp = st("imp_S", MorphImp, false)
	m.neg = st("neg_S", MorphNeg, false)
	m.past = st("past_S", MorphPast, false)
	m.narr = st("narr_S", MorphNarr, false)
	m.prog = st("prog_S", MorphProg1, false)
	m.fut = st("fut_S", MorphFut, false)
	m.aor = st("aor_S", MorphAor, false)
	m.cond = st("cond_S", MorphCond, false)
	m.neces = st("neces_S", MorphNeces, false)
	m.verbA3sg = st("vA3sg_ST", MorphA3sg, true)
	m.verbPerson = st("vPerson_ST", MorphNone, true)

	m.nVerb = st("nVerb_S", MorphZero, false)
	m.nPres = st("nPres_S", MorphPres, false)
	m.nA3sg = st("nA3sg_S", MorphA3sg, false)

	m.connectNominal()
	m.connectDerivations()
	m.connectVerbal()
	m.connectCopula()
	return m
}

func (m *morphotactics) connectNominal() {
	m.nounRoot.add(m.a3sg, "")
	m.nounRoot.add(m.a3pl, "lAr")
	m.numRoot.add(m.a3sg, "")
	m.pronRoot.add(m.pronA3sg, "")
	m.pronA3sg.add(m.pnon, "")

	m.a3sg.add(m.pnon, "")
	m.a3sg.add(m.p1sg, "+Im")
	m.a3sg.add(m.p2sg, "+In")
	m.a3sg.add(m.p3sg, "+sI")
	m.a3sg.add(m.p1pl, "+ImIz")
	m.a3sg.add(m.p2pl, "+InIz")
	m.a3sg.add(m.p3pl, "lArI")

	m.a3pl.add(m.pnon, "")
	m.a3pl.add(m.p1sg, "Im")
	m.a3pl.add(m.p2sg, "In")
	m.a3pl.add(m.p3sg, "I")
	m.a3pl.add(m.p1pl, "ImIz")
	m.a3pl.add(m.p2pl, "InIz")
	m.a3pl.add(m.p3pl, "I")

	// Possessives ending in a consonant take the plain case forms; third
	// person possessives end in a vowel and take the n-buffered forms.
	for _, s := range []*MorphemeState{m.pnon, m.p1sg, m.p2sg, m.p1pl, m.p2pl} {
		s.add(m.nom, "")
		s.add(m.dat, "+yA")
		s.add(m.acc, "+yI")
		s.add(m.abl, "DAn")
		s.add(m.loc, "DA")
		s.add(m.ins, "+ylA")
		s.add(m.gen, "+nIn")
		s.add(m.equ, "CA")
	}
	for _, s := range []*MorphemeState{m.p3sg, m.p3pl} {
		s.add(m.nom, "")
		s.add(m.dat, "nA")
		s.add(m.acc, "nI")
		s.add(m.abl, "ndAn")
		s.add(m.loc, "ndA")
		s.add(m.ins, "+ylA")
		s.add(m.gen, "+nIn")
		s.add(m.equ, "ncA")
	}
}

func (m *morphotactics) connectDerivations() {
	derivable := and(posIs(PosNoun), bareNominal, secondaryNot(SecProperNoun, SecAbbreviation), notDummy)

	m.nom.add(m.nounRoot, "CIk").as(MorphDim).derive(PosNoun).before(followConsonant).when(derivable)
	m.nom.add(m.nounRoot, "CIğ").as(MorphDim).derive(PosNoun).before(followVowel).when(derivable)
	m.nom.add(m.nounRoot, "CI").as(MorphAgt).derive(PosNoun).when(derivable)
	m.nom.add(m.nounRoot, "lIk").as(MorphNess).derive(PosNoun).before(followConsonant).when(derivable)
	m.nom.add(m.nounRoot, "lIğ").as(MorphNess).derive(PosNoun).before(followVowel).when(derivable)

	withable := and(posIs(PosNoun), bareNominal, secondaryNot(SecAbbreviation), notDummy)
	m.nom.add(m.adjRoot, "lI").as(MorphWith).derive(PosAdjective).when(withable)
	m.nom.add(m.adjRoot, "sIz").as(MorphWithout).derive(PosAdjective).when(withable)

	m.loc.add(m.adjRoot, "ki").as(MorphRel).derive(PosAdjective)
	m.gen.add(m.adjRoot, "ki").as(MorphRel).derive(PosAdjective)

	m.adjRoot.add(m.nounRoot, "").as(MorphZero).zeroDerive(PosNoun)
	m.adjRoot.add(m.nounRoot, "lIk").as(MorphNess).derive(PosNoun).before(followConsonant)
	m.adjRoot.add(m.nounRoot, "lIğ").as(MorphNess).derive(PosNoun).before(followVowel)
	m.adjRoot.add(m.bare, "CA").as(MorphLy).derive(PosAdverb).when(posIs(PosAdjective))
}

func (m *morphotactics) connectVerbal() {
	root := m.verbRoot

	root.add(m.imp, "")
	m.neg.add(m.imp, "")
	m.imp.add(m.verbPerson, "").as(MorphA2sg)
	m.imp.add(m.verbPerson, "sIn").as(MorphA3sg)
	m.imp.add(m.verbPerson, "+yIn").as(MorphA2pl)
	m.imp.add(m.verbPerson, "+yInIz").as(MorphA2pl)
	m.imp.add(m.verbPerson, "sInlAr").as(MorphA3pl)

	root.add(m.neg, "mA")
	root.add(m.neg, "m").onlyBefore(MorphProg1)

	for _, s := range []*MorphemeState{root, m.neg} {
		s.add(m.past, "DI")
		s.add(m.narr, "mIş")
		s.add(m.prog, "Iyor")
		s.add(m.fut, "+yAcAk").before(followConsonant)
		s.add(m.fut, "+yAcAğ").before(followVowel)
		s.add(m.cond, "sA")
		s.add(m.neces, "mAlI")
		s.add(m.nounRoot, "mAk").as(MorphInf1).derive(PosNoun).before(followConsonant)
		s.add(m.nounRoot, "mA").as(MorphInf2).derive(PosNoun)
		s.add(m.adjRoot, "+yAn").as(MorphPresPart).derive(PosAdjective)
	}
	root.add(m.aor, "+Ar").when(hasAttr(AttrAoristA))
	root.add(m.aor, "+Ir").when(hasAttr(AttrAoristI))
	m.neg.add(m.aor, "z")

	// Past and conditional take the short person endings.
	for _, s := range []*MorphemeState{m.past, m.cond} {
		s.add(m.verbPerson, "m").as(MorphA1sg)
		s.add(m.verbPerson, "n").as(MorphA2sg)
		s.add(m.verbPerson, "").as(MorphA3sg)
		s.add(m.verbPerson, "k").as(MorphA1pl)
		s.add(m.verbPerson, "nIz").as(MorphA2pl)
		s.add(m.verbPerson, "lAr").as(MorphA3pl)
	}
	for _, s := range []*MorphemeState{m.narr, m.prog, m.fut, m.aor, m.neces} {
		s.add(m.verbPerson, "+yIm").as(MorphA1sg)
		s.add(m.verbPerson, "sIn").as(MorphA2sg)
		s.add(m.verbA3sg, "")
		s.add(m.verbPerson, "+yIz").as(MorphA1pl)
		s.add(m.verbPerson, "sInIz").as(MorphA2pl)
		s.add(m.verbPerson, "lAr").as(MorphA3pl)
		s.add(m.past, "+yDI")
		s.add(m.cond, "+ysA")
	}
	// Evidential and conditional copulas on a tense; narr itself takes no
	// second mIş.
	for _, s := range []*MorphemeState{m.prog, m.fut, m.aor, m.neces} {
		s.add(m.narr, "+ymIş")
	}
	m.past.add(m.cond, "+ysA")
	m.verbA3sg.add(m.verbPerson, "DIr").as(MorphCop)
}

func (m *morphotactics) connectCopula() {
	for _, s := range []*MorphemeState{m.nom, m.loc, m.abl, m.gen, m.ins} {
		s.add(m.nVerb, "").zeroDerive(PosVerb).when(copulaAllowed)
	}
	m.adjRoot.add(m.nVerb, "").as(MorphZero).zeroDerive(PosVerb).when(posIs(PosAdjective))

	m.nVerb.add(m.nPres, "")
	m.nPres.add(m.verbPerson, "+yIm").as(MorphA1sg)
	m.nPres.add(m.verbPerson, "sIn").as(MorphA2sg)
	m.nPres.add(m.nA3sg, "")
	m.nPres.add(m.verbPerson, "+yIz").as(MorphA1pl)
	m.nPres.add(m.verbPerson, "sInIz").as(MorphA2pl)
	m.nPres.add(m.verbPerson, "lAr").as(MorphA3pl)
	m.nA3sg.add(m.verbPerson, "DIr").as(MorphCop)

	m.nVerb.add(m.past, "+yDI")
	m.nVerb.add(m.narr, "+ymIş")
	m.nVerb.add(m.cond, "+ysA")
}

// rootState returns the state a root of the given category starts from.
func (m *morphotactics) rootState(item *DictionaryItem) *MorphemeState {
	if item.HasAttribute(AttrNoSuffix) {
		return m.bare
	}
	switch item.Primary {
	case PosNoun:
		return m.nounRoot
	case PosAdjective:
		return m.adjRoot
	case PosNumeral:
		return m.numRoot
	case PosPronoun:
		return m.pronRoot
	case PosVerb:
		return m.verbRoot
	}
	return m.bare
}

// States returns every state of the graph.
func States() []*MorphemeState {
	out := make([]*MorphemeState, len(graph.states))
	copy(out, graph.states)
	return out
}
