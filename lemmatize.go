package es

// PartOfSpeech is the word class passed to the inflection oracle.
type PartOfSpeech rune

const (
	POSNoun       PartOfSpeech = 'n'
	POSDeterminer PartOfSpeech = 'd'
)

// Inflector derives citation forms of Spanish words.
// Implementations return the word unchanged, or "" from Infinitive, when
// they do not know it.
type Inflector interface {
	// Singularize returns the singular of word, e.g. guitarras → guitarra.
	Singularize(word string, pos PartOfSpeech) string
	// Infinitive returns the infinitive of a conjugated verb, e.g.
	// había → haber, or "" if word is not a known verb form.
	Infinitive(word string) string
	// Predicative returns the uninflected form of an adjective, e.g.
	// rojas → rojo.
	Predicative(word string) string
}

// lemmaOf returns the lemma of word given its Penn Treebank tag.
func lemmaOf(inf Inflector, word string, tag Tag) string {
	var lemma string
	switch Classify(tag) {
	case FamilyDeterminer:
		lemma = inf.Singularize(word, POSDeterminer)
	case FamilyAdjective:
		lemma = inf.Predicative(word)
	case FamilyPluralNoun:
		lemma = inf.Singularize(word, POSNoun)
	case FamilyVerb:
		lemma = inf.Infinitive(word)
	default:
		lemma = word
	}
	if lemma == "" {
		lemma = word
	}
	return lemma
}

// Lemmatize sets the Lemma of each token, in place, and returns tokens.
// Determiners and plural nouns are singularized, adjectives reduced to their
// predicative form and verbs to their infinitive; other words are their own
// lemma. Lemmas are lowercase.
func Lemmatize(inf Inflector, tokens []Token) []Token {
	lc := newLowerer()
	for i := range tokens {
		t := &tokens[i]
		t.Lemma = lc.lower(lemmaOf(inf, t.Word, t.Tag))
	}
	return tokens
}
