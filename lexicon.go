package es

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrResourceUnavailable is wrapped by every error LoadLexicon returns.
var ErrResourceUnavailable = errors.New("es: lexicon resource unavailable")

// LexiconConfig names the files of a lexicon resource.
type LexiconConfig struct {
	// Path is the word-form file: one "word TAG" entry per line.
	Path string
	// Morphology holds suffix rules for unknown words.
	Morphology string
	// Context holds contextual disambiguation rules.
	Context string
	// Language is the ISO 639-1 code of the lexicon.
	Language string
}

// DefaultLexiconConfig returns the Spanish resource layout inside dir.
func DefaultLexiconConfig(dir string) LexiconConfig {
	return LexiconConfig{
		Path:       filepath.Join(dir, "es-lexicon.txt"),
		Morphology: filepath.Join(dir, "es-morphology.txt"),
		Context:    filepath.Join(dir, "es-context.txt"),
		Language:   Language,
	}
}

// Rule is one line of a morphology or context rule file, split on
// whitespace, e.g. ["NCS", "ción", "fhassuf", "4", "NCS", "x"].
type Rule []string

// Lexicon is a loaded lexicon resource. It is read-only after LoadLexicon
// returns and safe for concurrent use.
type Lexicon struct {
	Language string

	entries    map[string]Tag
	morphology []Rule
	context    []Rule
}

// LoadLexicon reads the three files named by cfg.
func LoadLexicon(cfg LexiconConfig) (*Lexicon, error) {
	lex := &Lexicon{
		Language: cfg.Language,
		entries:  make(map[string]Tag),
	}
	if err := lex.loadEntries(cfg.Path); err != nil {
		return nil, err
	}
	var err error
	if lex.morphology, err = loadRules(cfg.Morphology); err != nil {
		return nil, err
	}
	if lex.context, err = loadRules(cfg.Context); err != nil {
		return nil, err
	}
	return lex, nil
}

// Lookup returns the tag of word as listed in the lexicon.
func (l *Lexicon) Lookup(word string) (Tag, bool) {
	t, ok := l.entries[NormalizeWord(word)]
	return t, ok
}

// Len returns the number of word forms.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Morphology returns the suffix rules in file order.
func (l *Lexicon) Morphology() []Rule {
	return l.morphology
}

// Context returns the contextual rules in file order.
func (l *Lexicon) Context() []Rule {
	return l.context
}

func (l *Lexicon) loadEntries(path string) error {
	return readLines(path, func(n int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("%w: %s:%d: want \"word TAG\", got %q",
				ErrResourceUnavailable, path, n, strings.Join(fields, " "))
		}
		l.entries[NormalizeWord(fields[0])] = Tag(fields[1])
		return nil
	})
}

func loadRules(path string) ([]Rule, error) {
	var rules []Rule
	err := readLines(path, func(_ int, fields []string) error {
		rules = append(rules, Rule(fields))
		return nil
	})
	return rules, err
}

// readLines calls fn with the whitespace-separated fields of each line of
// path, skipping blank lines and ";;;" comments.
func readLines(path string, fn func(n int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		if err := fn(n, strings.Fields(line)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrResourceUnavailable, path, err)
	}
	return nil
}
