package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/soldict/internal/compiler"
	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/morph"
	"github.com/roach88/soldict/internal/phonology"
	"github.com/roach88/soldict/internal/store"
	"github.com/roach88/soldict/internal/testutil"
)

// Harness runs scenarios. Transcribers are shared through a content-keyed
// cache, so scenarios over the same configuration compile it once.
type Harness struct {
	cache  *phonology.Cache
	logger *slog.Logger
}

// New creates a harness. A nil logger discards output.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{cache: phonology.NewCache(), logger: logger}
}

// Run executes a scenario with a fresh harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(context.Background(), scenario)
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Compile the configuration, replacing its rules if the scenario does
// 2. Import the lexicon into a fresh in-memory store and read it back
// 3. Derive words and sentences, check expect clauses
// 4. Run lookups, check expect clauses
// 5. Evaluate assertions
//
// Returned errors are setup failures; expectation mismatches are recorded
// in the result.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	tr, err := h.transcriber(scenario)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	result.ConfigHash = tr.Hash()

	for i, step := range scenario.Derive {
		d := tr.Derive(step.Input)
		result.Derivations = append(result.Derivations, d)
		checkDerivation(result, i, step, d)
		h.logger.Info("word derived",
			"scenario", scenario.Name,
			"word", d.Word,
			"phonetic", d.Phonetic,
		)
	}

	for i, step := range scenario.Sentences {
		s := SentenceResult{
			Input:    step.Input,
			Phonemic: tr.Phonemic(step.Input),
			Phonetic: tr.Phonetic(step.Input),
		}
		result.Sentences = append(result.Sentences, s)
		if exp := step.Expect; exp != nil {
			if exp.Phonemic != "" && exp.Phonemic != s.Phonemic {
				result.AddError(fmt.Sprintf("sentences[%d] %q: phonemic %q, want %q", i, step.Input, s.Phonemic, exp.Phonemic))
			}
			if exp.Phonetic != "" && exp.Phonetic != s.Phonetic {
				result.AddError(fmt.Sprintf("sentences[%d] %q: phonetic %q, want %q", i, step.Input, s.Phonetic, exp.Phonetic))
			}
		}
	}

	if len(scenario.Lookup) > 0 {
		entries, err := h.importLexicon(ctx, scenario.Lexicon)
		if err != nil {
			return nil, err
		}
		affixes := morph.Affixes(entries)
		for i, step := range scenario.Lookup {
			l := lookupResult(step.Query, morph.Find(entries, affixes, step.Query))
			result.Lookups = append(result.Lookups, l)
			checkLookup(result, i, step, l)
		}
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func (h *Harness) transcriber(scenario *Scenario) (*phonology.Transcriber, error) {
	cfg, err := compiler.LoadConfig(scenario.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(scenario.Changes) > 0 {
		changes := make([]lang.Change, 0, len(scenario.Changes))
		for i, s := range scenario.Changes {
			c, err := phonology.ParseChange(s)
			if err != nil {
				return nil, fmt.Errorf("changes[%d]: %w", i, err)
			}
			changes = append(changes, c)
		}
		cfg.SoundChange = cfg.SoundChange.WithChanges(changes)
	}

	tr, err := h.cache.Get(cfg.Inventory, cfg.SoundChange)
	if err != nil {
		return nil, fmt.Errorf("failed to compile config: %w", err)
	}
	return tr, nil
}

// importLexicon round-trips entries through a fresh in-memory store so that
// scenarios see the lexicon exactly as the CLI would.
func (h *Harness) importLexicon(ctx context.Context, entries []lang.Entry) ([]lang.Entry, error) {
	st, err := store.Open(":memory:",
		store.WithHashGenerator(testutil.NewSequentialHashes("")),
		store.WithLogger(h.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	if _, err := st.Import(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to import lexicon: %w", err)
	}
	return st.Entries(ctx)
}

func checkDerivation(result *Result, i int, step DeriveStep, d phonology.Derivation) {
	exp := step.Expect
	if exp == nil {
		return
	}
	if exp.Phonemic != "" && exp.Phonemic != d.Phonemic {
		result.AddError(fmt.Sprintf("derive[%d] %q: phonemic %q, want %q", i, step.Input, d.Phonemic, exp.Phonemic))
	}
	if exp.Phonetic != "" && exp.Phonetic != d.Phonetic {
		result.AddError(fmt.Sprintf("derive[%d] %q: phonetic %q, want %q", i, step.Input, d.Phonetic, exp.Phonetic))
	}
	if exp.Steps != nil && !slices.Equal(exp.Steps, d.Steps) {
		result.AddError(fmt.Sprintf("derive[%d] %q: steps %q, want %q", i, step.Input, d.Steps, exp.Steps))
	}
}

func lookupResult(query string, l morph.Lookup) LookupResult {
	out := LookupResult{
		Query:     query,
		Terminals: []string{},
		Affixes:   []string{},
		Entries:   len(l.Entries()),
	}
	for _, t := range l.Terminal {
		out.Terminals = append(out.Terminals, t.Entry.Hash)
	}
	for _, a := range l.Affix {
		for range a.Children {
			out.Affixes = append(out.Affixes, a.Cut+" + "+a.Affix.Entry.Sol)
		}
	}
	return out
}

func checkLookup(result *Result, i int, step LookupStep, l LookupResult) {
	exp := step.Expect
	if exp == nil {
		return
	}
	want := exp.Terminals
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(want, l.Terminals) {
		result.AddError(fmt.Sprintf("lookup[%d] %q: terminals %q, want %q", i, step.Query, l.Terminals, want))
	}
	want = exp.Affixes
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(want, l.Affixes) {
		result.AddError(fmt.Sprintf("lookup[%d] %q: affixes %q, want %q", i, step.Query, l.Affixes, want))
	}
}
