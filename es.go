// Package es is the Spanish language adapter of a rule-based tagger.
//
// A language-independent Engine tokenizes text and tags it from a Parole
// lexicon. Parser fills in the Spanish configuration (abbreviations, default
// tags for unknown words, the Parole to Penn Treebank mapping) and derives a
// lemma for each token from an Inflector:
//
//	lex, err := es.LoadLexicon(es.DefaultLexiconConfig("data"))
//	...
//	p := es.New(lex, engine, inflector)
//	fmt.Println(es.Parse(p, "Las guitarras sonaban.", opts))
//	// Las/DT/la guitarras/NNS/guitarra sonaban/VB/sonar ././.
package es

// Language is the ISO 639-1 code handled by this package.
const Language = "es"
