package turkmorph

// condition is a suffix rule predicate over the parse built so far.
type condition func(b *branch) bool

// and combines conditions; nil conditions are ignored.
func and(conds ...condition) condition {
	var live []condition
	for _, c := range conds {
		if c != nil {
			live = append(live, c)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(b *branch) bool {
		for _, c := range live {
			if !c(b) {
				return false
			}
		}
		return true
	}
}

func not(c condition) condition {
	return func(b *branch) bool { return !c(b) }
}

// hasAttr holds when the root item carries a.
func hasAttr(a Attribute) condition {
	return func(b *branch) bool { return b.item.Attributes.Has(a) }
}

// posIs holds when the current part of speech, after any derivation, is
// one of ps.
func posIs(ps ...PrimaryPos) condition {
	return func(b *branch) bool {
		for _, p := range ps {
			if b.pos == p {
				return true
			}
		}
		return false
	}
}

// secondaryNot holds when the root item's secondary category is none of ss.
func secondaryNot(ss ...SecondaryPos) condition {
	return func(b *branch) bool {
		for _, s := range ss {
			if b.item.Secondary == s {
				return false
			}
		}
		return true
	}
}

// notDummy rejects items synthesized by token recognizers.
var notDummy condition = not(hasAttr(AttrDummy))

// bareInflection reports whether the morphemes since the last derivation
// are exactly A3sg+Pnon+Nom.
func bareInflection(b *branch) bool {
	since := b.suffixes[b.boundary:]
	return len(since) == 3 &&
		since[0].Morpheme == MorphA3sg &&
		since[1].Morpheme == MorphPnon &&
		since[2].Morpheme == MorphNom
}

// bareNominal holds for a bare noun that was not itself produced by a zero
// derivation, so that derivational suffixes attach to real nouns only.
func bareNominal(b *branch) bool {
	return !b.boundaryZero && bareInflection(b)
}

// copulaAllowed blocks the copula right after an Adj->Noun zero derivation
// with bare inflection; the adjective takes the copula directly.
func copulaAllowed(b *branch) bool {
	return !(b.boundaryZero && bareInflection(b))
}
