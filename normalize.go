package es

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeWord returns s in Unicode normalization form C, so that a
// decomposed "había" (a + combining acute) compares equal to the lexicon
// entry.
func NormalizeWord(s string) string {
	return norm.NFC.String(s)
}

// lowerer lowercases with Spanish casing rules.
// A cases.Caser keeps state and must not be shared between goroutines, so
// each Lemmatize call creates its own.
type lowerer struct {
	c cases.Caser
}

func newLowerer() lowerer {
	return lowerer{c: cases.Lower(language.Spanish)}
}

func (l lowerer) lower(s string) string {
	return l.c.String(NormalizeWord(s))
}
