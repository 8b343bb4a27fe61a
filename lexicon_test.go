package es

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

const dataDir = "testdata"

func TestLoadLexicon(t *testing.T) {
	lex, err := LoadLexicon(DefaultLexiconConfig(dataDir))
	if err != nil {
		t.Fatalf("LoadLexicon(%q): %v", dataDir, err)
	}
	t.Logf("Loaded %d word forms, %d morphology rules, %d context rules",
		lex.Len(), len(lex.Morphology()), len(lex.Context()))

	if lex.Language != "es" {
		t.Errorf("Language = %q, want es", lex.Language)
	}
	if lex.Len() != 19 {
		t.Errorf("Len = %d, want 19", lex.Len())
	}
	if got := len(lex.Morphology()); got != 2 {
		t.Errorf("%d morphology rules, want 2", got)
	}
	want := Rule{"VMI", "NCS", "PREVTAG", "DA"}
	if got := lex.Context()[0]; !reflect.DeepEqual(got, want) {
		t.Errorf("Context()[0] = %q, want %q", got, want)
	}
}

func TestLexiconLookup(t *testing.T) {
	lex, err := LoadLexicon(DefaultLexiconConfig(dataDir))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want Tag
		ok   bool
	}{
		{"guitarras", "NCP", true},
		{"había", "VAI", true},
		{"habi\u0301a", "VAI", true},
		{".", "Fp", true},
		{"Guitarras", "", false},
		{"xyz", "", false},
	}
	for _, tt := range tests {
		got, ok := lex.Lookup(tt.word)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%+q) = %q, %v; want %q, %v", tt.word, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadLexiconMissingFile(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*LexiconConfig)
	}{
		{"lexicon", func(c *LexiconConfig) { c.Path = filepath.Join(dataDir, "missing.txt") }},
		{"morphology", func(c *LexiconConfig) { c.Morphology = filepath.Join(dataDir, "missing.txt") }},
		{"context", func(c *LexiconConfig) { c.Context = filepath.Join(dataDir, "missing.txt") }},
	}
	for _, tt := range tests {
		cfg := DefaultLexiconConfig(dataDir)
		tt.cfg(&cfg)
		lex, err := LoadLexicon(cfg)
		if lex != nil {
			t.Errorf("%s: got a Lexicon with a missing file", tt.name)
		}
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("%s: err = %v, want ErrResourceUnavailable", tt.name, err)
		}
	}
}

func TestLoadLexiconMalformed(t *testing.T) {
	cfg := DefaultLexiconConfig(dataDir)
	cfg.Path = filepath.Join(dataDir, "bad-lexicon.txt")
	_, err := LoadLexicon(cfg)
	if !errors.Is(err, ErrResourceUnavailable) {
		t.Fatalf("err = %v, want ErrResourceUnavailable", err)
	}
	t.Logf("malformed lexicon: %v", err)
}
