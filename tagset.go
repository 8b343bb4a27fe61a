package es

import "strings"

// Tag is a part-of-speech tag, either in the Parole source tagset emitted by
// the Spanish lexicon or in the Penn Treebank universal tagset.
type Tag string

// Tagset identifiers accepted by TagOptions.Tagset.
const (
	TagsetParole = "parole"
	TagsetPenn   = "penntreebank"
)

// parole maps Parole tags to Penn Treebank II tags.
// See http://nlp.lsi.upc.edu/freeling/doc/tagsets/tagset-es.html.
var parole = map[Tag]Tag{
	"AO":  "JJ",   // primera
	"AQ":  "JJ",   // absurdo
	"CC":  "CC",   // e
	"CS":  "IN",   // porque
	"DA":  "DT",   // el
	"DD":  "DT",   // ese
	"DI":  "DT",   // mucha
	"DP":  "PRP$", // mi, nuestra
	"DT":  "DT",   // cuántos
	"Fa":  ".",    // !
	"Fc":  ",",    // ,
	"Fd":  ":",    // :
	"Fe":  "\"",   // "
	"Fg":  ".",    // -
	"Fh":  ".",    // /
	"Fi":  ".",    // ?
	"Fp":  ".",    // .
	"Fr":  ".",    // >>
	"Fs":  ".",    // ...
	"Fpa": "(",    // (
	"Fpt": ")",    // )
	"Fx":  ".",    // ;
	"Fz":  ".",
	"I":   "UH",   // ehm
	"NC":  "NN",   // islam
	"NCS": "NN",   // guitarra
	"NCP": "NNS",  // guitarras
	"NP":  "NNP",  // Óscar
	"P0":  "PRP",  // se
	"PD":  "DT",   // ése
	"PI":  "DT",   // uno
	"PP":  "PRP",  // vos
	"PR":  "WP$",  // qué
	"PT":  "WP$",  // qué
	"PX":  "PRP$", // mío
	"RG":  "RB",   // tecnológicamente
	"RN":  "RB",   // no
	"SP":  "IN",   // por
	"VAG": "VBG",  // habiendo
	"VAI": "MD",   // había
	"VAN": "MD",   // haber
	"VAS": "MD",   // haya
	"VMG": "VBG",  // habiendo
	"VMI": "VB",   // habemos
	"VMM": "VB",   // compare
	"VMN": "VB",   // comparecer
	"VMP": "VBN",  // comparando
	"VMS": "VB",   // compararan
	"VSG": "VBG",  // comparando
	"VSI": "VB",   // será
	"VSN": "VB",   // ser
	"VSP": "VBN",  // sido
	"VSS": "VB",   // sea
	"W":   "NN",   // septiembre
	"Z":   "CD",   // 1,7
	"Zd":  "CD",   // 1,7
	"Zm":  "CD",   // £1,7
	"Zp":  "CD",   // 1,7%
}

// Normalize converts a Parole tag to its Penn Treebank tag.
// Tags missing from the table are returned unchanged, so Normalize is
// idempotent on its own output.
func Normalize(tag Tag) Tag {
	if t, ok := parole[tag]; ok {
		return t
	}
	return tag
}

// ParoleTags returns a copy of the Parole to Penn Treebank table.
func ParoleTags() map[Tag]Tag {
	out := make(map[Tag]Tag, len(parole))
	for k, v := range parole {
		out[k] = v
	}
	return out
}

// Family is the coarse tag category the lemma policy dispatches on.
type Family int

const (
	FamilyOther Family = iota
	FamilyDeterminer
	FamilyAdjective
	FamilyPluralNoun
	FamilyVerb
)

func (f Family) String() string {
	switch f {
	case FamilyDeterminer:
		return "determiner"
	case FamilyAdjective:
		return "adjective"
	case FamilyPluralNoun:
		return "plural-noun"
	case FamilyVerb:
		return "verb"
	default:
		return "other"
	}
}

// Classify returns the family of a Penn Treebank tag.
// Rules are tried in order and the first match wins:
// DT*, JJ*, exactly NNS, then VB* or MD*.
func Classify(tag Tag) Family {
	s := string(tag)
	switch {
	case strings.HasPrefix(s, "DT"):
		return FamilyDeterminer
	case strings.HasPrefix(s, "JJ"):
		return FamilyAdjective
	case s == "NNS":
		return FamilyPluralNoun
	case strings.HasPrefix(s, "VB"), strings.HasPrefix(s, "MD"):
		return FamilyVerb
	}
	return FamilyOther
}
