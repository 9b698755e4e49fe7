package turkmorph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// aoristIVerbs are the monosyllabic verbs that take -Ir in the aorist
// (gelir, alır); other monosyllabic verbs take -Ar (yapar, gider).
var aoristIVerbs = map[string]bool{
	"al": true, "bil": true, "bul": true, "dur": true, "gel": true,
	"gör": true, "kal": true, "ol": true, "öl": true, "san": true,
	"var": true, "ver": true, "vur": true,
}

// ParseLine parses one dictionary line and returns the item it declares.
// Line format:
//
//	lemma [P:Primary,Secondary;A:Attr,Attr;Pr:pronunciation;R:root]
//
// Every bracket field is optional; the bracket block itself is optional.
// Missing categories and attributes are inferred from the lemma.
func ParseLine(line string) (*DictionaryItem, error) {
	line = strings.TrimSpace(line)
	lemma, meta := line, ""
	if open := strings.Index(line, "["); open >= 0 {
		end := strings.LastIndex(line, "]")
		if end < open {
			return nil, fmt.Errorf("%q: unclosed attribute block", line)
		}
		lemma = strings.TrimSpace(line[:open])
		meta = line[open+1 : end]
	}
	if lemma == "" {
		return nil, fmt.Errorf("%q: missing lemma", line)
	}

	var (
		primary   PrimaryPos
		secondary SecondaryPos
		attrs     AttributeSet
		pron      string
		root      string
		posGiven  bool
		secGiven  bool
	)
	for _, field := range strings.Split(meta, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("%q: malformed field %q", line, field)
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "P":
			var err error
			primary, secondary, secGiven, err = parsePos(value)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", line, err)
			}
			posGiven = true
		case "A":
			for _, name := range strings.Split(value, ",") {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				a, ok := ParseAttribute(name)
				if !ok {
					return nil, fmt.Errorf("%q: unknown attribute %q", line, name)
				}
				attrs = attrs.With(a)
			}
		case "Pr":
			pron = value
		case "R":
			root = value
		default:
			return nil, fmt.Errorf("%q: unknown field %q", line, key)
		}
	}

	if !posGiven {
		primary, secondary = inferPos(lemma)
	} else if !secGiven && primary == PosNoun && isCapitalized(lemma) {
		secondary = SecProperNoun
	}

	item, err := NewDictionaryItem(lemma, root, pron, primary, secondary, 0)
	if err != nil {
		return nil, err
	}
	attrs = inferAttributes(item, attrs)
	return NewDictionaryItem(lemma, root, pron, primary, secondary, attrs)
}

// parsePos reads the value of a P: field ("Noun,Prop", "Num,Card", "Abbrv").
func parsePos(value string) (PrimaryPos, SecondaryPos, bool, error) {
	parts := strings.Split(value, ",")
	first := strings.TrimSpace(parts[0])
	primary, ok := ParsePrimaryPos(first)
	secondary := SecNone
	secGiven := false
	if !ok {
		// A bare secondary ("Abbrv", "Prop") implies a noun.
		sec, ok := ParseSecondaryPos(first)
		if !ok {
			return 0, 0, false, fmt.Errorf("unknown part of speech %q", first)
		}
		primary, secondary, secGiven = PosNoun, sec, true
	}
	if len(parts) > 1 {
		name := strings.TrimSpace(parts[1])
		sec, ok := ParseSecondaryPos(name)
		if !ok {
			return 0, 0, false, fmt.Errorf("unknown secondary part of speech %q", name)
		}
		secondary, secGiven = sec, true
	}
	return primary, secondary, secGiven, nil
}

// inferPos guesses the categories of a lemma given without a P: field.
func inferPos(lemma string) (PrimaryPos, SecondaryPos) {
	if isCapitalized(lemma) {
		return PosNoun, SecProperNoun
	}
	key := NormalizeKey(lemma)
	if len([]rune(key)) > 3 && (strings.HasSuffix(key, "mak") || strings.HasSuffix(key, "mek")) {
		return PosVerb, SecNone
	}
	return PosNoun, SecNone
}

// inferAttributes adds the attributes a lemma of this shape usually has
// unless the dictionary line already decided them.
func inferAttributes(item *DictionaryItem, attrs AttributeSet) AttributeSet {
	root := item.Root
	switch item.Primary {
	case PosVerb:
		if isVowel(lastRune(root)) {
			attrs = attrs.With(AttrProgressiveVowelDrop)
		}
		if !attrs.Has(AttrAoristA) && !attrs.Has(AttrAoristI) {
			if syllableCount(root) == 1 && !aoristIVerbs[root] {
				attrs = attrs.With(AttrAoristA)
			} else {
				attrs = attrs.With(AttrAoristI)
			}
		}
	case PosNoun, PosAdjective:
		if item.Secondary == SecProperNoun || item.Secondary == SecAbbreviation {
			break
		}
		if attrs.Has(AttrVoicing) || attrs.Has(AttrNoVoicing) {
			break
		}
		if syllableCount(root) > 1 && strings.ContainsRune("pçtk", lastRune(root)) {
			attrs = attrs.With(AttrVoicing)
		}
	}
	return attrs
}

// LoadLines parses dictionary lines into a lexicon. Blank lines and
// lines starting with "#" are skipped.
func LoadLines(lines ...string) (*RootLexicon, error) {
	items := make([]*DictionaryItem, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		item, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return NewRootLexicon(items...), nil
}

// LoadReader reads a dictionary in line format from r.
func LoadReader(r io.Reader) (*RootLexicon, error) {
	var items []*DictionaryItem
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		item, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewRootLexicon(items...), nil
}

// LoadFile reads a dictionary file in line format.
func LoadFile(path string) (*RootLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lex, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// LoadFiles reads several dictionary files into one lexicon. Files ending
// in .yaml or .yml are read with LoadYAML.
func LoadFiles(paths ...string) (*RootLexicon, error) {
	var lex *RootLexicon
	for _, p := range paths {
		var (
			next *RootLexicon
			err  error
		)
		if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
			next, err = LoadYAML(p)
		} else {
			next, err = LoadFile(p)
		}
		if err != nil {
			return nil, err
		}
		lex = lex.Merge(next)
	}
	if lex == nil {
		lex = NewRootLexicon()
	}
	return lex, nil
}
