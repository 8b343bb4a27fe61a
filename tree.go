package es

import "strings"

// Token is a tagged word. Lemma is empty until the lemma policy runs.
type Token struct {
	Word  string
	Tag   Tag
	Lemma string
}

// Sentence is an ordered list of tokens.
type Sentence []Token

// Words returns the surface forms of s.
func (s Sentence) Words() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.Word
	}
	return out
}

// Text is an ordered list of sentences.
type Text []Sentence

// TaggedWord is a (word, tag) pair as returned by TagWords.
type TaggedWord struct {
	Word string
	Tag  Tag
}

// Field identifies one slash-separated column of a parsed token.
type Field int

const (
	FieldWord Field = iota
	FieldPOS
	FieldLemma
)

const (
	fieldSep    = "/"
	slashEntity = "&slash;"
)

// DefaultFormat is the column layout of Parse output without lemmata.
var DefaultFormat = []Field{FieldWord, FieldPOS}

func escapeField(s string) string {
	return strings.ReplaceAll(s, fieldSep, slashEntity)
}

func unescapeField(s string) string {
	return strings.ReplaceAll(s, slashEntity, fieldSep)
}

// formatToken renders t as "word/TAG/lemma" restricted to the given columns.
func formatToken(t Token, format []Field) string {
	parts := make([]string, 0, len(format))
	for _, f := range format {
		switch f {
		case FieldWord:
			parts = append(parts, escapeField(t.Word))
		case FieldPOS:
			parts = append(parts, escapeField(string(t.Tag)))
		case FieldLemma:
			parts = append(parts, escapeField(t.Lemma))
		}
	}
	return strings.Join(parts, fieldSep)
}

// format renders the text in the slash format: tokens separated by a space,
// sentences by a newline.
func (t Text) format(cols []Field) string {
	lines := make([]string, len(t))
	for i, s := range t {
		toks := make([]string, len(s))
		for j, tok := range s {
			toks[j] = formatToken(tok, cols)
		}
		lines[i] = strings.Join(toks, " ")
	}
	return strings.Join(lines, "\n")
}

// Split parses a string produced by Parse back into a Text. format lists the
// columns of each token; nil means DefaultFormat. Missing columns are left
// empty, extra columns are ignored. A "&slash;" in a field always reads
// back as "/", so a word spelled with a literal "&slash;" does not survive
// a Parse and Split round trip.
func Split(s string, format []Field) Text {
	if format == nil {
		format = DefaultFormat
	}
	var text Text
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		sentence := make(Sentence, 0, len(fields))
		for _, f := range fields {
			cols := strings.Split(f, fieldSep)
			var tok Token
			for i, field := range format {
				if i >= len(cols) {
					break
				}
				v := unescapeField(cols[i])
				switch field {
				case FieldWord:
					tok.Word = v
				case FieldPOS:
					tok.Tag = Tag(v)
				case FieldLemma:
					tok.Lemma = v
				}
			}
			sentence = append(sentence, tok)
		}
		text = append(text, sentence)
	}
	return text
}
