package lookup

import (
	"fmt"

	"github.com/cours-de-latin/es"
	"github.com/cours-de-latin/es/inflect"
)

// Load reads the Spanish lexicon resource from dataDir and returns a Parser
// backed by an Engine over it and the inflect dictionary.
func Load(dataDir string) (*es.Parser, error) {
	lex, err := es.LoadLexicon(es.DefaultLexiconConfig(dataDir))
	if err != nil {
		return nil, err
	}
	dict, err := inflect.New()
	if err != nil {
		return nil, fmt.Errorf("load inflection dictionary: %w", err)
	}
	return es.New(lex, NewEngine(lex), dict), nil
}
