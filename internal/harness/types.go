package harness

import "github.com/roach88/soldict/internal/phonology"

// SentenceResult is the transcription of one sentence.
type SentenceResult struct {
	Input    string `json:"input"`
	Phonemic string `json:"phonemic"`
	Phonetic string `json:"phonetic"`
}

// LookupResult is the analysis of one surface form. Terminals are entry
// hashes; affixes render as "stem + -suffix", one per stem entry.
type LookupResult struct {
	Query     string   `json:"query"`
	Terminals []string `json:"terminals"`
	Affixes   []string `json:"affixes"`
	Entries   int      `json:"entries"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every expect clause and assertion held.
	Pass bool `json:"pass"`

	// ConfigHash identifies the compiled configuration the scenario ran on.
	ConfigHash string `json:"config_hash"`

	// Derivations holds one derivation per derive step, in order.
	Derivations []phonology.Derivation `json:"derivations"`

	Sentences []SentenceResult `json:"sentences"`
	Lookups   []LookupResult   `json:"lookups"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:        true,
		Derivations: []phonology.Derivation{},
		Sentences:   []SentenceResult{},
		Lookups:     []LookupResult{},
		Errors:      []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Derivation returns the derivation of word, if it was derived.
func (r *Result) Derivation(word string) (phonology.Derivation, bool) {
	for _, d := range r.Derivations {
		if d.Word == word {
			return d, true
		}
	}
	return phonology.Derivation{}, false
}

// Lookup returns the lookup of query, if it was run.
func (r *Result) Lookup(query string) (LookupResult, bool) {
	for _, l := range r.Lookups {
		if l.Query == query {
			return l, true
		}
	}
	return LookupResult{}, false
}
