package es

// AbbreviationSet is a set of tokens, trailing period included, that the
// tokenizer must not split at a period.
type AbbreviationSet map[string]struct{}

// Has reports whether s is in the set.
func (a AbbreviationSet) Has(s string) bool {
	_, ok := a[s]
	return ok
}

// NewAbbreviationSet builds a set from the given tokens.
func NewAbbreviationSet(tokens ...string) AbbreviationSet {
	a := make(AbbreviationSet, len(tokens))
	for _, t := range tokens {
		a[t] = struct{}{}
	}
	return a
}

// Abbreviations holds common Spanish abbreviations. It is shared by every
// Parser and must not be modified.
var Abbreviations = NewAbbreviationSet(
	"a.C.", "a.m.", "apdo.", "aprox.", "Av.", "Avda.", "c.c.", "D.", "Da.", "d.C.",
	"d.j.C.", "dna.", "Dr.", "Dra.", "esq.", "etc.", "Gob.", "h.", "m.n.", "no.",
	"núm.", "pág.", "P.D.", "P.S.", "p.ej.", "p.m.", "Profa.", "q.e.p.d.", "S.A.",
	"S.L.", "Sr.", "Sra.", "Srta.", "s.s.s.", "tel.", "Ud.", "Vd.", "Uds.", "Vds.",
	"v.", "vol.", "W.C.",
)
