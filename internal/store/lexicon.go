package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/soldict/internal/lang"
)

// Lexicon is the YAML interchange form of a word list:
//
//	entries:
//	  - sol: kan
//	    extra: N
//	    meanings:
//	      - eng: house
type Lexicon struct {
	Entries []lang.Entry `yaml:"entries"`
}

// ReadLexicon parses a YAML lexicon. Unknown fields are rejected so that
// typos like "meaning:" fail loudly instead of dropping glosses.
func ReadLexicon(r io.Reader) ([]lang.Entry, error) {
	var lex Lexicon
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&lex); err != nil {
		if errors.Is(err, io.EOF) {
			return []lang.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateLexicon(lex.Entries); err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}
	if lex.Entries == nil {
		lex.Entries = []lang.Entry{}
	}
	return lex.Entries, nil
}

// LoadLexicon reads and parses a YAML lexicon file.
func LoadLexicon(path string) ([]lang.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}
	return ReadLexicon(bytes.NewReader(data))
}

// WriteLexicon encodes entries in the form ReadLexicon accepts.
func WriteLexicon(w io.Writer, entries []lang.Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Lexicon{Entries: entries}); err != nil {
		return fmt.Errorf("encode lexicon: %w", err)
	}
	return enc.Close()
}

func validateLexicon(entries []lang.Entry) error {
	for i, e := range entries {
		if e.Sol == "" {
			return fmt.Errorf("entries[%d]: sol is required", i)
		}
		for j, m := range e.Meanings {
			for k, sec := range m.Sections {
				if sec.Title == "" {
					return fmt.Errorf("entries[%d].meanings[%d].sections[%d]: title is required", i, j, k)
				}
			}
		}
		for k, sec := range e.Sections {
			if sec.Title == "" {
				return fmt.Errorf("entries[%d].sections[%d]: title is required", i, k)
			}
		}
	}
	return nil
}
