package turkmorph

import (
	"github.com/RoaringBitmap/roaring"
)

// RootLexicon is an immutable, indexed set of dictionary items. Items are
// unique by ID; the lexicon is built once and shared read-only.
type RootLexicon struct {
	items []*DictionaryItem

	// byID maps DictionaryItem.ID → ordinal in items.
	byID map[string]uint32

	// byKey maps NormalizeKey(lemma) → ordinals of homonyms.
	byKey map[string]*roaring.Bitmap

	// byPrimary and bySecondary index ordinals by category.
	byPrimary   map[PrimaryPos]*roaring.Bitmap
	bySecondary map[SecondaryPos]*roaring.Bitmap
}

// NewRootLexicon indexes items. When two items share an ID the first one
// is kept.
func NewRootLexicon(items ...*DictionaryItem) *RootLexicon {
	lex := &RootLexicon{
		byID:        make(map[string]uint32, len(items)),
		byKey:       make(map[string]*roaring.Bitmap, len(items)),
		byPrimary:   make(map[PrimaryPos]*roaring.Bitmap),
		bySecondary: make(map[SecondaryPos]*roaring.Bitmap),
	}
	for _, it := range items {
		lex.add(it)
	}
	return lex
}

// add inserts it unless an item with the same ID is present.
func (l *RootLexicon) add(it *DictionaryItem) bool {
	if it == nil {
		return false
	}
	if _, dup := l.byID[it.ID]; dup {
		return false
	}
	ord := uint32(len(l.items))
	l.items = append(l.items, it)
	l.byID[it.ID] = ord

	key := NormalizeKey(it.Lemma)
	bitmapFor(l.byKey, key).Add(ord)
	bitmapFor(l.byPrimary, it.Primary).Add(ord)
	bitmapFor(l.bySecondary, it.Secondary).Add(ord)
	return true
}

func bitmapFor[K comparable](m map[K]*roaring.Bitmap, k K) *roaring.Bitmap {
	bm, ok := m[k]
	if !ok {
		bm = roaring.New()
		m[k] = bm
	}
	return bm
}

// Merge returns a new lexicon holding the items of l followed by the
// items of other. Neither input is modified.
func (l *RootLexicon) Merge(other *RootLexicon) *RootLexicon {
	var items []*DictionaryItem
	if l != nil {
		items = append(items, l.items...)
	}
	if other != nil {
		items = append(items, other.items...)
	}
	return NewRootLexicon(items...)
}

// Len returns the number of items.
func (l *RootLexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of all items in insertion order.
func (l *RootLexicon) Items() []*DictionaryItem {
	if l == nil {
		return nil
	}
	out := make([]*DictionaryItem, len(l.items))
	copy(out, l.items)
	return out
}

// ItemByID returns the item with the given ID, or nil.
func (l *RootLexicon) ItemByID(id string) *DictionaryItem {
	if l == nil {
		return nil
	}
	ord, ok := l.byID[id]
	if !ok {
		return nil
	}
	return l.items[ord]
}

// Contains reports whether any item has the given lemma.
func (l *RootLexicon) Contains(lemma string) bool {
	if l == nil {
		return false
	}
	_, ok := l.byKey[NormalizeKey(lemma)]
	return ok
}

// Lookup returns every item whose lemma normalizes to the same key.
func (l *RootLexicon) Lookup(lemma string) []*DictionaryItem {
	if l == nil {
		return nil
	}
	return l.collect(l.byKey[NormalizeKey(lemma)])
}

// Find returns the items with the given lemma and primary part of speech.
func (l *RootLexicon) Find(lemma string, primary PrimaryPos) []*DictionaryItem {
	if l == nil {
		return nil
	}
	key, ok := l.byKey[NormalizeKey(lemma)]
	if !ok {
		return nil
	}
	pos, ok := l.byPrimary[primary]
	if !ok {
		return nil
	}
	return l.collect(roaring.And(key, pos))
}

// ItemsOf returns every item with the given primary part of speech.
func (l *RootLexicon) ItemsOf(primary PrimaryPos) []*DictionaryItem {
	if l == nil {
		return nil
	}
	return l.collect(l.byPrimary[primary])
}

// ItemsWith returns every item with the given secondary part of speech.
func (l *RootLexicon) ItemsWith(secondary SecondaryPos) []*DictionaryItem {
	if l == nil {
		return nil
	}
	return l.collect(l.bySecondary[secondary])
}

func (l *RootLexicon) collect(bm *roaring.Bitmap) []*DictionaryItem {
	if bm == nil || bm.IsEmpty() {
		return nil
	}
	out := make([]*DictionaryItem, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, l.items[it.Next()])
	}
	return out
}
