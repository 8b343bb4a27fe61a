// Command server exposes the Spanish tagger as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/tokenize?text=<text>
//	GET  /api/tag?text=<text>[&tokenize=false]
//	POST /api/parse   body: {"text":"...","lemmata":true,"tagset":"parole"}
//	GET  /api/tagset
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/rs/cors"

	"github.com/cours-de-latin/es"
	"github.com/cours-de-latin/es/internal/lookup"
)

// ---- JSON response types ------------------------------------------------

type tokenJSON struct {
	Word  string `json:"word"`
	Tag   string `json:"tag,omitempty"`
	Lemma string `json:"lemma,omitempty"`
}

type tokenizeResponse struct {
	Sentences []string `json:"sentences"`
}

type tagResponse struct {
	Tags []tokenJSON `json:"tags"`
}

type parseRequest struct {
	Text     string `json:"text"`
	Tokenize *bool  `json:"tokenize"`
	Lemmata  bool   `json:"lemmata"`
	Tagset   string `json:"tagset"`
}

type parseResponse struct {
	Parsed    string        `json:"parsed"`
	Sentences [][]tokenJSON `json:"sentences"`
}

type tagsetEntry struct {
	Parole string `json:"parole"`
	Penn   string `json:"penn"`
}

type tagsetResponse struct {
	Tags []tagsetEntry `json:"tags"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toTokensJSON(s es.Sentence) []tokenJSON {
	out := make([]tokenJSON, len(s))
	for i, t := range s {
		out[i] = tokenJSON{Word: t.Word, Tag: string(t.Tag), Lemma: t.Lemma}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleTokenize(p *es.Parser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, tokenizeResponse{Sentences: es.Tokenize(p, text)})
	}
}

func handleTag(p *es.Parser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		tokenize := true
		if v := r.URL.Query().Get("tokenize"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "'tokenize' must be a boolean")
				return
			}
			tokenize = b
		}

		tags := es.TagWords(p, text, tokenize)
		out := make([]tokenJSON, len(tags))
		for i, t := range tags {
			out[i] = tokenJSON{Word: t.Word, Tag: string(t.Tag)}
		}
		writeJSON(w, http.StatusOK, tagResponse{Tags: out})
	}
}

func handleParse(p *es.Parser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body parseRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		opts := es.DefaultParseOptions()
		if body.Tokenize != nil {
			opts.Tokenize = *body.Tokenize
		}
		opts.Lemmata = body.Lemmata
		opts.Tagset = body.Tagset

		parsed := es.Parse(p, body.Text, opts)
		tree := es.Split(parsed, opts.Format())
		sentences := make([][]tokenJSON, len(tree))
		for i, s := range tree {
			sentences[i] = toTokensJSON(s)
		}
		writeJSON(w, http.StatusOK, parseResponse{Parsed: parsed, Sentences: sentences})
	}
}

func handleTagset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		m := es.ParoleTags()
		out := make([]tagsetEntry, 0, len(m))
		for k, v := range m {
			out = append(out, tagsetEntry{Parole: string(k), Penn: string(v)})
		}
		// sort for deterministic output
		sort.Slice(out, func(i, j int) bool {
			return out[i].Parole < out[j].Parole
		})
		writeJSON(w, http.StatusOK, tagsetResponse{Tags: out})
	}
}

func newHandler(p *es.Parser) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tokenize", handleTokenize(p))
	mux.HandleFunc("/api/tag", handleTag(p))
	mux.HandleFunc("/api/parse", handleParse(p))
	mux.HandleFunc("/api/tagset", handleTagset())
	return cors.Default().Handler(mux)
}

// ---- main ---------------------------------------------------------------

func main() {
	dataDir := flag.String("data", "data", "path to the Spanish lexicon directory")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading lexicon from %s …", *dataDir)
	p, err := lookup.Load(*dataDir)
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}
	log.Printf("lexicon loaded: %d word forms", p.Lexicon.Len())

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, newHandler(p)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
