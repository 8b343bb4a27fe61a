package es

// Tokenize returns the sentences of s, with punctuation split from words.
func Tokenize(p *Parser, s string) []string {
	return p.FindTokens(s, TokenizeOptions{})
}

// Parse returns s tagged in the slash format, e.g.
// "El/DT gato/NN negro/JJ ./.".
func Parse(p *Parser, s string, opts ParseOptions) string {
	return p.Parse(s, opts)
}

// ParseTree returns s parsed into sentences of tokens.
func ParseTree(p *Parser, s string, opts ParseOptions) Text {
	return Split(p.Parse(s, opts), opts.Format())
}

// TagWords returns the (word, tag) pairs of s in order, tags in Penn
// Treebank. If tokenize is false, s must hold one sentence per line with
// tokens separated by spaces.
func TagWords(p *Parser, s string, tokenize bool) []TaggedWord {
	opts := DefaultParseOptions()
	opts.Tokenize = tokenize
	var tags []TaggedWord
	for _, sentence := range ParseTree(p, s, opts) {
		for _, t := range sentence {
			tags = append(tags, TaggedWord{Word: t.Word, Tag: t.Tag})
		}
	}
	return tags
}
