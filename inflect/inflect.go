// Package inflect derives Spanish citation forms from a full-form
// dictionary.
package inflect

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/es"
	"golang.org/x/text/unicode/norm"

	espanol "github.com/cours-de-latin/es"
)

// Dictionary answers inflection queries from the golem Spanish word list.
// It implements espanol.Inflector and is safe for concurrent use.
type Dictionary struct {
	lem *golem.Lemmatizer
}

var _ espanol.Inflector = (*Dictionary)(nil)

// New loads the Spanish dictionary. Loading takes a moment and a few tens of
// megabytes; build one Dictionary per process.
func New() (*Dictionary, error) {
	lem, err := golem.New(es.New())
	if err != nil {
		return nil, err
	}
	return &Dictionary{lem: lem}, nil
}

// candidates returns the dictionary lemmas of word, or nil if unknown.
func (d *Dictionary) candidates(word string) []string {
	w := strings.ToLower(norm.NFC.String(word))
	if !d.lem.InDict(w) {
		return nil
	}
	return d.lem.Lemmas(w)
}

// Singularize returns the lemma of word closest to it in spelling, which for
// a plural noun or determiner is its singular. Unknown words are returned
// unchanged.
func (d *Dictionary) Singularize(word string, pos espanol.PartOfSpeech) string {
	c := d.candidates(word)
	if len(c) == 0 {
		return word
	}
	if pos == espanol.POSNoun {
		c = withoutVerbs(c)
	}
	return closest(word, c)
}

// withoutVerbs drops infinitives from c unless nothing else is left.
func withoutVerbs(c []string) []string {
	var out []string
	for _, l := range c {
		if !isInfinitive(l) {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return c
	}
	return out
}

// Infinitive returns the infinitive lemma of word, or "" if the dictionary
// has none.
func (d *Dictionary) Infinitive(word string) string {
	var best string
	for _, l := range d.candidates(word) {
		if isInfinitive(l) && (best == "" || commonPrefix(word, l) > commonPrefix(word, best)) {
			best = l
		}
	}
	return best
}

// Predicative returns the masculine singular of an adjective, e.g.
// rojas → rojo. Unknown words are returned unchanged.
func (d *Dictionary) Predicative(word string) string {
	c := d.candidates(word)
	if len(c) == 0 {
		return word
	}
	return closest(word, c)
}

// isInfinitive reports whether w ends like a Spanish infinitive, including
// the pronominal "-se" forms. It is a spelling heuristic only: nouns such
// as mujer or lugar also match, so it serves as a tie-break and never
// rejects a lone candidate.
func isInfinitive(w string) bool {
	w = strings.TrimSuffix(w, "se")
	return strings.HasSuffix(w, "ar") || strings.HasSuffix(w, "er") ||
		strings.HasSuffix(w, "ir") || strings.HasSuffix(w, "ír")
}

// closest picks the candidate sharing the longest prefix with word,
// preferring non-verbs on ties. Candidates keep dictionary order otherwise.
func closest(word string, candidates []string) string {
	best := candidates[0]
	for _, c := range candidates[1:] {
		pc, pb := commonPrefix(word, c), commonPrefix(word, best)
		if pc > pb || (pc == pb && isInfinitive(best) && !isInfinitive(c)) {
			best = c
		}
	}
	return best
}

// commonPrefix returns the number of leading runes a and b share,
// ignoring case.
func commonPrefix(a, b string) int {
	ra, rb := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}
