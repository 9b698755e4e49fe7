package turkmorph

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/couchbase/vellum"
)

// stemIndex maps written stem forms to stem transitions. Keys live in
// vellum FSTs whose values index into the transition groups; a second FST
// keyed by ASCII-folded forms serves diacritic tolerant lookups.
type stemIndex struct {
	exact       *vellum.FST
	exactGroups [][]*stemTransition

	folded       *vellum.FST
	foldedGroups [][]*stemTransition

	// maxKeyRunes bounds the prefixes worth looking up.
	maxKeyRunes int
}

func newStemIndex(lex *RootLexicon, tolerant bool) (*stemIndex, error) {
	exact := make(map[string][]*stemTransition)
	var folded map[string][]*stemTransition
	if tolerant {
		folded = make(map[string][]*stemTransition)
	}

	idx := &stemIndex{}
	for _, item := range lex.Items() {
		for _, t := range stemTransitions(item) {
			exact[t.surface] = append(exact[t.surface], t)
			if tolerant {
				k := ASCIIFold(t.surface)
				folded[k] = append(folded[k], t)
			}
			if n := len([]rune(t.surface)); n > idx.maxKeyRunes {
				idx.maxKeyRunes = n
			}
		}
	}

	var err error
	idx.exact, idx.exactGroups, err = buildFST(exact)
	if err != nil {
		return nil, fmt.Errorf("stem index: %w", err)
	}
	if tolerant {
		idx.folded, idx.foldedGroups, err = buildFST(folded)
		if err != nil {
			return nil, fmt.Errorf("folded stem index: %w", err)
		}
	}
	return idx, nil
}

// buildFST inserts the sorted keys of groups into a new FST whose values
// are positions in the returned slice.
func buildFST(groups map[string][]*stemTransition) (*vellum.FST, [][]*stemTransition, error) {
	if len(groups) == 0 {
		return nil, nil, nil
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, nil, err
	}
	ordered := make([][]*stemTransition, len(keys))
	for i, k := range keys {
		if err := builder.Insert([]byte(k), uint64(i)); err != nil {
			return nil, nil, err
		}
		ordered[i] = groups[k]
	}
	if err := builder.Close(); err != nil {
		return nil, nil, err
	}
	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, nil, err
	}
	return fst, ordered, nil
}

func get(fst *vellum.FST, groups [][]*stemTransition, key string) []*stemTransition {
	if fst == nil {
		return nil
	}
	v, ok, err := fst.Get([]byte(key))
	if err != nil || !ok {
		return nil
	}
	return groups[v]
}

// lookup returns the transitions whose written form equals prefix, plus,
// when tolerant, those equal to it modulo diacritics. Exact matches come
// first and no transition is returned twice.
func (x *stemIndex) lookup(prefix string, tolerant bool) []*stemTransition {
	found := get(x.exact, x.exactGroups, prefix)
	if !tolerant || x.folded == nil {
		return found
	}
	extra := get(x.folded, x.foldedGroups, ASCIIFold(prefix))
	if len(extra) == 0 {
		return found
	}
	out := make([]*stemTransition, 0, len(found)+len(extra))
	out = append(out, found...)
	seen := make(map[*stemTransition]bool, len(found))
	for _, t := range found {
		seen[t] = true
	}
	for _, t := range extra {
		if !seen[t] {
			out = append(out, t)
		}
	}
	return out
}
