package es

import "strings"

// Engine is the language-independent tokenizer and lexicon tagger the
// Spanish parser delegates to.
type Engine interface {
	// Tokenize splits text into sentences, each a string of tokens
	// separated by single spaces.
	Tokenize(text string, opts TokenizeOptions) []string
	// Tag returns the tagged tokens of each sentence in text. opts.Map,
	// if set, is applied to every tag.
	Tag(text string, opts TagOptions) Text
}

// Parser is the Spanish language adapter. It fills in Spanish defaults
// before delegating to the Engine and computes lemmata itself.
// A Parser is safe for concurrent use if its Engine and Inflector are.
type Parser struct {
	// Lexicon is the resource the engine was built from. It may be nil.
	Lexicon *Lexicon
	// Defaults are the tags for words missing from the lexicon.
	Defaults DefaultTags

	engine    Engine
	inflector Inflector
}

// New returns a Parser using engine for tokenization and tagging and inf
// for lemmata. It panics if engine or inf is nil.
func New(lex *Lexicon, engine Engine, inf Inflector) *Parser {
	if engine == nil {
		panic("es: New called with nil Engine")
	}
	if inf == nil {
		panic("es: New called with nil Inflector")
	}
	return &Parser{
		Lexicon:   lex,
		Defaults:  SpanishDefaults,
		engine:    engine,
		inflector: inf,
	}
}

// tokenizeDefaults are the options FindTokens applies when the caller
// leaves them unset.
func tokenizeDefaults() TokenizeOptions {
	return TokenizeOptions{
		Abbreviations: Abbreviations,
		Replace:       map[string]string{},
	}
}

// FindTokens returns the sentences of text with punctuation split from
// words. Unset options default to the Spanish abbreviations and an empty
// replacement table.
func (p *Parser) FindTokens(text string, opts TokenizeOptions) []string {
	return p.engine.Tokenize(text, opts.withDefaults(tokenizeDefaults()))
}

// FindTags tags text. Unless opts.Tagset is TagsetParole or opts.Map is
// set, tags are converted to Penn Treebank with Normalize.
func (p *Parser) FindTags(text string, opts TagOptions) Text {
	opts = opts.withDefaults(TagOptions{
		Tokens:  tokenizeDefaults(),
		Map:     Normalize,
		Default: p.Defaults,
	})
	return p.engine.Tag(text, opts)
}

// FindLemmata sets the lemma of each token of s and returns s.
func (p *Parser) FindLemmata(s Sentence) Sentence {
	return Lemmatize(p.inflector, s)
}

// Parse tokenizes, tags and optionally lemmatizes text and returns it in the
// slash format: "word/TAG/lemma" tokens separated by spaces, one sentence
// per line.
func (p *Parser) Parse(text string, opts ParseOptions) string {
	return p.parse(text, opts).format(opts.Format())
}

func (p *Parser) parse(text string, opts ParseOptions) Text {
	var sentences []string
	if opts.Tokenize {
		sentences = p.FindTokens(text, opts.Tokens)
	} else {
		sentences = strings.Split(text, "\n")
	}

	var out Text
	if !opts.Tags {
		for _, s := range sentences {
			words := strings.Fields(s)
			if len(words) == 0 {
				continue
			}
			sentence := make(Sentence, len(words))
			for i, w := range words {
				sentence[i] = Token{Word: w}
			}
			out = append(out, sentence)
		}
	} else {
		out = p.FindTags(strings.Join(sentences, "\n"), TagOptions{
			Tagset: opts.Tagset,
			Map:    opts.Map,
		})
	}

	if opts.Lemmata {
		for i := range out {
			out[i] = p.FindLemmata(out[i])
		}
	}
	return out
}
