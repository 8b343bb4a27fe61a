package es

// TagMap converts a tag assigned by the engine before it is returned.
type TagMap func(Tag) Tag

// DefaultTags are the tags the engine assigns to words missing from the
// lexicon.
type DefaultTags struct {
	Unknown Tag // any other unknown word
	Proper  Tag // capitalized word
	Number  Tag // numeral
}

// SpanishDefaults tags unknown words as common noun, proper noun or number.
var SpanishDefaults = DefaultTags{Unknown: "NCS", Proper: "NP", Number: "Z"}

// TokenizeOptions configures sentence splitting and tokenization.
// A nil field means "not set" and is filled from the parser defaults;
// a non-nil empty value is kept as given.
type TokenizeOptions struct {
	// Abbreviations are tokens never split at a period.
	Abbreviations AbbreviationSet
	// Replace maps substrings to replacements applied before tokenizing.
	Replace map[string]string
}

// withDefaults returns o with every unset field taken from base.
// Values set by the caller take precedence over base.
func (o TokenizeOptions) withDefaults(base TokenizeOptions) TokenizeOptions {
	if o.Abbreviations == nil {
		o.Abbreviations = base.Abbreviations
	}
	if o.Replace == nil {
		o.Replace = base.Replace
	}
	return o
}

// TagOptions configures part-of-speech tagging.
type TagOptions struct {
	// Tokenize makes the engine tokenize the input first; otherwise the
	// input holds one sentence per line with tokens separated by spaces.
	Tokenize bool
	// Tokens configures tokenization when Tokenize is set.
	Tokens TokenizeOptions
	// Tagset selects the output tagset. TagsetParole returns the lexicon's
	// own tags; anything else returns Penn Treebank tags.
	Tagset string
	// Map is applied to every assigned tag. When nil and Tagset is not
	// TagsetParole, Normalize is used.
	Map TagMap
	// Default overrides the parser's tags for unknown words. Empty fields
	// keep the parser's tag.
	Default DefaultTags
}

func (o TagOptions) withDefaults(base TagOptions) TagOptions {
	o.Tokens = o.Tokens.withDefaults(base.Tokens)
	if o.Map == nil && o.Tagset != TagsetParole {
		o.Map = base.Map
	}
	o.Default = o.Default.withDefaults(base.Default)
	return o
}

func (d DefaultTags) withDefaults(base DefaultTags) DefaultTags {
	if d.Unknown == "" {
		d.Unknown = base.Unknown
	}
	if d.Proper == "" {
		d.Proper = base.Proper
	}
	if d.Number == "" {
		d.Number = base.Number
	}
	return d
}

// ParseOptions configures Parse and ParseTree.
type ParseOptions struct {
	Tokenize bool
	Tags     bool
	Lemmata  bool
	Tagset   string
	Map      TagMap
	Tokens   TokenizeOptions
}

// DefaultParseOptions tokenizes and tags, without lemmata.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Tokenize: true, Tags: true}
}

// Format returns the token columns Parse produces for o.
func (o ParseOptions) Format() []Field {
	f := []Field{FieldWord}
	if o.Tags {
		f = append(f, FieldPOS)
	}
	if o.Lemmata {
		f = append(f, FieldLemma)
	}
	return f
}
