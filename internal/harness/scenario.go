package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/soldict/internal/lang"
)

// Scenario defines a derivation scenario: a phonology configuration, an
// optional lexicon, and the words, sentences and lookups to check against it.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Config is a CUE file or directory with syllable and soundChange.
	// Relative paths resolve against the scenario file's directory.
	Config string `yaml:"config"`

	// Changes, when set, replaces the configured rule list. Each rule is in
	// rule notation, e.g. "kʰ -> x / _ {V}".
	Changes []string `yaml:"changes,omitempty"`

	// Lexicon is imported into a fresh store before lookups run. Entries
	// without a hash get "test-0001", "test-0002", ...
	Lexicon []lang.Entry `yaml:"lexicon,omitempty"`

	// Derive lists romanized words to derive.
	Derive []DeriveStep `yaml:"derive,omitempty"`

	// Sentences lists romanized sentences to transcribe and derive.
	Sentences []SentenceStep `yaml:"sentences,omitempty"`

	// Lookup lists surface forms to analyze against the lexicon.
	Lookup []LookupStep `yaml:"lookup,omitempty"`

	// Assertions validate the derivations and lookups as a whole.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// DeriveStep derives one word. Expected fields left empty are not checked.
type DeriveStep struct {
	Input  string        `yaml:"input"`
	Expect *DeriveExpect `yaml:"expect,omitempty"`
}

// DeriveExpect is the expected derivation of a word.
type DeriveExpect struct {
	Phonemic string   `yaml:"phonemic,omitempty"`
	Phonetic string   `yaml:"phonetic,omitempty"`
	Steps    []string `yaml:"steps,omitempty"`
}

// SentenceStep transcribes one sentence.
type SentenceStep struct {
	Input  string          `yaml:"input"`
	Expect *SentenceExpect `yaml:"expect,omitempty"`
}

// SentenceExpect holds slash-delimited transcriptions, e.g. "/kʰan˧ | caŋ˥˩/".
type SentenceExpect struct {
	Phonemic string `yaml:"phonemic,omitempty"`
	Phonetic string `yaml:"phonetic,omitempty"`
}

// LookupStep analyzes one surface form.
type LookupStep struct {
	Query  string        `yaml:"query"`
	Expect *LookupExpect `yaml:"expect,omitempty"`
}

// LookupExpect lists the expected analyses. Terminals are entry hashes;
// affixes render as "stem + -suffix".
type LookupExpect struct {
	Terminals []string `yaml:"terminals"`
	Affixes   []string `yaml:"affixes"`
}

// Assertion validates derivations or lookups.
type Assertion struct {
	// Type specifies the assertion type:
	// - "derivation_contains": Form appears among Word's steps
	// - "derivation_order": Forms appear among Word's steps in order
	// - "derivation_count": Word's derivation has exactly Count steps
	// - "lookup_count": Query's lookup mentions exactly Count entries
	Type string `yaml:"type"`

	// Word is a derived input (derivation_*).
	Word string `yaml:"word,omitempty"`

	// Form is a single expected step (derivation_contains).
	Form string `yaml:"form,omitempty"`

	// Forms is the expected step order (derivation_order).
	Forms []string `yaml:"forms,omitempty"`

	// Query is a looked-up form (lookup_count).
	Query string `yaml:"query,omitempty"`

	// Count is the expected number (derivation_count, lookup_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertDerivationContains = "derivation_contains"
	AssertDerivationOrder    = "derivation_order"
	AssertDerivationCount    = "derivation_count"
	AssertLookupCount        = "lookup_count"
)

// LoadScenario reads and parses a scenario YAML file, resolving Config
// relative to the file's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving Config relative to basePath.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve the config path BEFORE validation
	if scenario.Config != "" && !filepath.IsAbs(scenario.Config) && basePath != "" {
		scenario.Config = filepath.Join(basePath, scenario.Config)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Config == "" {
		return fmt.Errorf("config is required")
	}
	if _, err := os.Stat(s.Config); os.IsNotExist(err) {
		return fmt.Errorf("config not found: %s", s.Config)
	}

	if len(s.Derive) == 0 && len(s.Sentences) == 0 && len(s.Lookup) == 0 {
		return fmt.Errorf("at least one of derive, sentences or lookup is required")
	}

	for i, step := range s.Derive {
		if step.Input == "" {
			return fmt.Errorf("derive[%d]: input is required", i)
		}
	}
	for i, step := range s.Sentences {
		if step.Input == "" {
			return fmt.Errorf("sentences[%d]: input is required", i)
		}
	}
	for i, step := range s.Lookup {
		if step.Query == "" {
			return fmt.Errorf("lookup[%d]: query is required", i)
		}
	}
	if len(s.Lookup) > 0 && len(s.Lexicon) == 0 {
		return fmt.Errorf("lookup requires a lexicon")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertDerivationContains:
		if a.Word == "" || a.Form == "" {
			return fmt.Errorf("assertions[%d]: word and form are required for derivation_contains", index)
		}
	case AssertDerivationOrder:
		if a.Word == "" || len(a.Forms) == 0 {
			return fmt.Errorf("assertions[%d]: word and forms are required for derivation_order", index)
		}
	case AssertDerivationCount:
		if a.Word == "" {
			return fmt.Errorf("assertions[%d]: word is required for derivation_count", index)
		}
		if a.Count < 1 {
			return fmt.Errorf("assertions[%d]: count must be at least 1 for derivation_count", index)
		}
	case AssertLookupCount:
		if a.Query == "" {
			return fmt.Errorf("assertions[%d]: query is required for lookup_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for lookup_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
