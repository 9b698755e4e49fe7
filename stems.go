package turkmorph

// stemTransition is one written form of a root together with the state
// and phonological context a parse starts from.
type stemTransition struct {
	// surface is the normalized written form matched against input.
	surface string
	item    *DictionaryItem
	state   *MorphemeState
	ctx     phonContext
	next    follow
	only    Morpheme
}

// stemTransitions returns every written form of item. A root with an
// alternation (kitap/kitab, burun/burn, hak/hakk) gets one form for
// vowel-initial continuations and one for everything else.
func stemTransitions(item *DictionaryItem) []*stemTransition {
	root := item.Root
	phon := item.phonetic()
	state := graph.rootState(item)
	inverse := item.HasAttribute(AttrInverseHarmony)

	mk := func(surface, phon string, next follow) *stemTransition {
		ctx := contextOf(phon)
		if inverse {
			ctx.lastVowel = frontCounterpart(ctx.lastVowel)
		}
		return &stemTransition{surface: surface, item: item, state: state, ctx: ctx, next: next}
	}

	base := mk(root, phon, followAny)
	out := []*stemTransition{base}
	if state == graph.bare {
		return out
	}

	alternates := false
	if item.HasAttribute(AttrVoicing) {
		if v, ok := voice(root); ok {
			vp, _ := voice(phon)
			out = append(out, mk(v, vp, followVowel))
			alternates = true
		}
	}
	if item.HasAttribute(AttrDoubling) {
		if last := lastRune(root); last != 0 && !isVowel(last) {
			out = append(out, mk(root+string(last), phon+string(last), followVowel))
			alternates = true
		}
	}
	if item.HasAttribute(AttrLastVowelDrop) {
		if d, ok := dropLastVowel(root); ok {
			dp, _ := dropLastVowel(phon)
			out = append(out, mk(d, dp, followVowel))
			alternates = true
		}
	}
	if alternates {
		base.next = followConsonant
	}

	if item.Primary == PosVerb && item.HasAttribute(AttrProgressiveVowelDrop) {
		if d, ok := dropLastVowel(root); ok {
			t := mk(d, d, followAny)
			t.only = MorphProg1
			out = append(out, t)
		}
	}
	return out
}
