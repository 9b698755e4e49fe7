package turkmorph

import "fmt"

// Morpheme identifies an inflectional or derivational morpheme.
type Morpheme uint8

const (
	MorphNone Morpheme = iota

	// Nominal number, possession and case.
	MorphA3sg
	MorphA3pl
	MorphPnon
	MorphP1sg
	MorphP2sg
	MorphP3sg
	MorphP1pl
	MorphP2pl
	MorphP3pl
	MorphNom
	MorphDat
	MorphAcc
	MorphAbl
	MorphLoc
	MorphIns
	MorphGen
	MorphEqu

	// Derivations.
	MorphDim
	MorphAgt
	MorphNess
	MorphWith
	MorphWithout
	MorphRel
	MorphLy
	MorphZero
	MorphInf1
	MorphInf2
	MorphPresPart

	// Verbal.
	MorphImp
	MorphNeg
	MorphPast
	MorphNarr
	MorphProg1
	MorphFut
	MorphAor
	MorphCond
	MorphNeces
	MorphPres
	MorphCop
	MorphA1sg
	MorphA2sg
	MorphA1pl
	MorphA2pl

	morphemeCount
)

var morphemeNames = [...]string{
	MorphNone:     "None",
	MorphA3sg:     "A3sg",
	MorphA3pl:     "A3pl",
	MorphPnon:     "Pnon",
	MorphP1sg:     "P1sg",
	MorphP2sg:     "P2sg",
	MorphP3sg:     "P3sg",
	MorphP1pl:     "P1pl",
	MorphP2pl:     "P2pl",
	MorphP3pl:     "P3pl",
	MorphNom:      "Nom",
	MorphDat:      "Dat",
	MorphAcc:      "Acc",
	MorphAbl:      "Abl",
	MorphLoc:      "Loc",
	MorphIns:      "Ins",
	MorphGen:      "Gen",
	MorphEqu:      "Equ",
	MorphDim:      "Dim",
	MorphAgt:      "Agt",
	MorphNess:     "Ness",
	MorphWith:     "With",
	MorphWithout:  "Without",
	MorphRel:      "Rel",
	MorphLy:       "Ly",
	MorphZero:     "Zero",
	MorphInf1:     "Inf1",
	MorphInf2:     "Inf2",
	MorphPresPart: "PresPart",
	MorphImp:      "Imp",
	MorphNeg:      "Neg",
	MorphPast:     "Past",
	MorphNarr:     "Narr",
	MorphProg1:    "Prog1",
	MorphFut:      "Fut",
	MorphAor:      "Aor",
	MorphCond:     "Cond",
	MorphNeces:    "Neces",
	MorphPres:     "Pres",
	MorphCop:      "Cop",
	MorphA1sg:     "A1sg",
	MorphA2sg:     "A2sg",
	MorphA1pl:     "A1pl",
	MorphA2pl:     "A2pl",
}

func (m Morpheme) String() string {
	if m < morphemeCount {
		return morphemeNames[m]
	}
	return fmt.Sprintf("Morpheme(%d)", m)
}

// MarshalText implements encoding.TextMarshaler.
func (m Morpheme) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMorpheme returns the morpheme with the given name.
func ParseMorpheme(s string) (Morpheme, bool) {
	for i, name := range morphemeNames {
		if name == s {
			return Morpheme(i), true
		}
	}
	return MorphNone, false
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Morpheme) UnmarshalText(b []byte) error {
	v, ok := ParseMorpheme(string(b))
	if !ok {
		return fmt.Errorf("unknown morpheme %q", b)
	}
	*m = v
	return nil
}
