package es

import "strings"

// fakeInflector answers from fixed tables and records the word classes it
// was asked to singularize.
type fakeInflector struct {
	singular    map[string]string
	infinitive  map[string]string
	predicative map[string]string
	posSeen     []PartOfSpeech
}

func newFakeInflector() *fakeInflector {
	return &fakeInflector{
		singular: map[string]string{
			"guitarras": "guitarra",
			"Guitarras": "Guitarra",
			"gatos":     "gato",
			"las":       "la",
			"Las":       "La",
			"ÁRBOLES":   "ÁRBOL",
		},
		infinitive: map[string]string{
			"había":   "haber",
			"duerme":  "dormir",
			"sonaban": "sonar",
		},
		predicative: map[string]string{
			"negras": "negro",
		},
	}
}

func (f *fakeInflector) Singularize(word string, pos PartOfSpeech) string {
	f.posSeen = append(f.posSeen, pos)
	if s, ok := f.singular[word]; ok {
		return s
	}
	return word
}

func (f *fakeInflector) Infinitive(word string) string {
	return f.infinitive[word]
}

func (f *fakeInflector) Predicative(word string) string {
	if s, ok := f.predicative[word]; ok {
		return s
	}
	return word
}

// emptyInflector knows no words at all and reports misses as "".
type emptyInflector struct{}

func (emptyInflector) Singularize(string, PartOfSpeech) string { return "" }
func (emptyInflector) Infinitive(string) string                { return "" }
func (emptyInflector) Predicative(string) string               { return "" }

// fakeEngine splits sentences after "." tokens, tags from a fixed table
// and records the options it received.
type fakeEngine struct {
	tags         map[string]Tag
	tokenizeOpts []TokenizeOptions
	tagOpts      []TagOptions
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{tags: map[string]Tag{
		"Las":       "DA",
		"guitarras": "NCP",
		"sonaban":   "VMI",
		"negras":    "AQ",
		"había":     "VAI",
		"gato":      "NCS",
		"duerme":    "VMI",
		"El":        "DA",
		".":         "Fp",
	}}
}

func (e *fakeEngine) Tokenize(text string, opts TokenizeOptions) []string {
	e.tokenizeOpts = append(e.tokenizeOpts, opts)
	var sentences []string
	var current []string
	for _, w := range strings.Fields(strings.ReplaceAll(text, ".", " .")) {
		current = append(current, w)
		if w == "." {
			sentences = append(sentences, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " "))
	}
	return sentences
}

func (e *fakeEngine) Tag(text string, opts TagOptions) Text {
	e.tagOpts = append(e.tagOpts, opts)
	var lines []string
	if opts.Tokenize {
		lines = e.Tokenize(text, opts.Tokens)
	} else {
		lines = strings.Split(text, "\n")
	}
	var out Text
	for _, line := range lines {
		var s Sentence
		for _, w := range strings.Fields(line) {
			tag, ok := e.tags[w]
			if !ok {
				tag = opts.Default.Unknown
			}
			if opts.Map != nil {
				tag = opts.Map(tag)
			}
			s = append(s, Token{Word: w, Tag: tag})
		}
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}
