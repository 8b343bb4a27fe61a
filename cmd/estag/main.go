// Command estag tags Spanish text from the command line.
//
//	estag parse --lemmata "A quien se hace de miel las moscas le comen."
//	estag tag --pretty "El gato duerme."
//	estag tokenize "El Dr. García llegó. Luego se fue."
//
// The lexicon directory is taken from --data, or from ESTAG_DATA, which may
// also be set in a .env file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/es"
	"github.com/cours-de-latin/es/internal/lookup"
)

type loadFunc func(dataDir string) (*es.Parser, error)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd(lookup.Load).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(load loadFunc) *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:          "estag",
		Short:        "Tokenize, tag and lemmatize Spanish text",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", envOr("ESTAG_DATA", "data"),
		"directory holding es-lexicon.txt, es-morphology.txt and es-context.txt")

	parser := func() (*es.Parser, error) {
		p, err := load(dataDir)
		if err != nil {
			return nil, fmt.Errorf("load lexicon from %s: %w", dataDir, err)
		}
		return p, nil
	}

	root.AddCommand(
		newParseCmd(parser),
		newTagCmd(parser),
		newTokenizeCmd(parser),
	)
	return root
}

func newParseCmd(parser func() (*es.Parser, error)) *cobra.Command {
	var (
		lemmata  bool
		parole   bool
		pretty   bool
		noTokens bool
	)
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Print text in word/TAG/lemma format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser()
			if err != nil {
				return err
			}
			opts := es.DefaultParseOptions()
			opts.Lemmata = lemmata
			opts.Tokenize = !noTokens
			if parole {
				opts.Tagset = es.TagsetParole
			}
			text := strings.Join(args, " ")
			if pretty {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(es.ParseTree(p, text, opts), opts.Format()))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), es.Parse(p, text, opts))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&lemmata, "lemmata", "l", false, "append the lemma of each word")
	cmd.Flags().BoolVar(&parole, "parole", false, "print Parole tags instead of Penn Treebank")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print a table")
	cmd.Flags().BoolVar(&noTokens, "pretokenized", false, "input is already one sentence per line, tokens separated by spaces")
	return cmd
}

func newTagCmd(parser func() (*es.Parser, error)) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "tag TEXT...",
		Short: "Print one word and its tag per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser()
			if err != nil {
				return err
			}
			tags := es.TagWords(p, strings.Join(args, " "), true)
			if pretty {
				s := make(es.Sentence, len(tags))
				for i, t := range tags {
					s[i] = es.Token{Word: t.Word, Tag: t.Tag}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(es.Text{s}, es.DefaultFormat))
				return nil
			}
			for _, t := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.Word, t.Tag)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print a table")
	return cmd
}

func newTokenizeCmd(parser func() (*es.Parser, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize TEXT...",
		Short: "Print one tokenized sentence per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser()
			if err != nil {
				return err
			}
			for _, s := range es.Tokenize(p, strings.Join(args, " ")) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
