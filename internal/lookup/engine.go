// Package lookup is a minimal es.Engine: it tags each token with its
// lexicon entry, falling back to the default tags, without applying the
// lexicon's morphology or context rules.
package lookup

import (
	"sort"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/cours-de-latin/es"
)

// punctuation maps punctuation tokens to their Parole tags.
var punctuation = map[string]es.Tag{
	"!":   "Fa",
	"¡":   "Fa",
	",":   "Fc",
	":":   "Fd",
	"\"":  "Fe",
	"«":   "Fe",
	"»":   "Fe",
	"-":   "Fg",
	"/":   "Fh",
	"?":   "Fi",
	"¿":   "Fi",
	".":   "Fp",
	"...": "Fs",
	"…":   "Fs",
	"(":   "Fpa",
	")":   "Fpt",
	";":   "Fx",
}

// sentenceEnd holds the tokens that close a sentence.
var sentenceEnd = map[string]bool{
	".": true, "..": true, "...": true, "…": true, "!": true, "?": true,
}

// Engine tokenizes with Unicode word boundaries and tags from a Lexicon.
type Engine struct {
	lex *es.Lexicon
}

var _ es.Engine = (*Engine)(nil)

// NewEngine returns an Engine tagging from lex.
func NewEngine(lex *es.Lexicon) *Engine {
	return &Engine{lex: lex}
}

// Tokenize implements es.Engine.
func (e *Engine) Tokenize(text string, opts es.TokenizeOptions) []string {
	text = replace(text, opts.Replace)

	var (
		sentences []string
		current   []string
	)
	flush := func() {
		if len(current) > 0 {
			sentences = append(sentences, strings.Join(current, " "))
			current = nil
		}
	}

	for _, tok := range segment(text, opts.Abbreviations) {
		current = append(current, tok)
		if sentenceEnd[tok] {
			flush()
		}
	}
	flush()
	return sentences
}

// replace applies the substitutions in r, longest key first.
func replace(text string, r map[string]string) string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		text = strings.ReplaceAll(text, k, r[k])
	}
	return text
}

// segment splits text into tokens. A word followed by "." is kept whole
// when the pair is an abbreviation, and runs of "." become "...".
func segment(text string, abbreviations es.AbbreviationSet) []string {
	var out []string
	seg := words.FromString(text)
	for seg.Next() {
		tok := seg.Value()
		if isSpace(tok) {
			continue
		}
		if tok == "." && len(out) > 0 {
			last := out[len(out)-1]
			if abbreviations.Has(last+".") || last == "." || last == ".." {
				out[len(out)-1] = last + "."
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func isSpace(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// Tag implements es.Engine.
func (e *Engine) Tag(text string, opts es.TagOptions) es.Text {
	var sentences []string
	if opts.Tokenize {
		sentences = e.Tokenize(text, opts.Tokens)
	} else {
		sentences = strings.Split(text, "\n")
	}

	var out es.Text
	for _, s := range sentences {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			continue
		}
		sentence := make(es.Sentence, len(fields))
		for i, w := range fields {
			tag := e.tag(w, opts.Default)
			if opts.Map != nil {
				tag = opts.Map(tag)
			}
			sentence[i] = es.Token{Word: w, Tag: tag}
		}
		out = append(out, sentence)
	}
	return out
}

func (e *Engine) tag(word string, def es.DefaultTags) es.Tag {
	if t, ok := e.lex.Lookup(word); ok {
		return t
	}
	if t, ok := e.lex.Lookup(strings.ToLower(word)); ok {
		return t
	}
	if t, ok := punctuation[word]; ok {
		return t
	}
	switch {
	case isNumber(word):
		return def.Number
	case unicode.IsUpper([]rune(word)[0]):
		return def.Proper
	}
	return def.Unknown
}

// isNumber reports whether s looks like a numeral: digits with optional
// separators and a currency or percent sign, e.g. "1,7", "£1,7", "1,7%".
func isNumber(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case strings.ContainsRune(".,%$€£-", r):
		default:
			return false
		}
	}
	return digits > 0
}
