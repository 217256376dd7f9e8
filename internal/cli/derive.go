package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/soldict/internal/dictionary"
	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/phonology"
)

// DeriveOptions holds flags for the derive command.
type DeriveOptions struct {
	*RootOptions
	Changes     []string // replaces the configured rules when set
	All         bool     // derive every lexicon entry
	ChangedOnly bool     // with All, skip entries no rule touches
}

// EntryDerivation is one lexicon entry derived word by word. Trial holds the
// derivation under --change rules, when given.
type EntryDerivation struct {
	Hash  string                     `json:"hash"`
	Sol   string                     `json:"sol"`
	Words []phonology.WordDerivation `json:"words"`
	Trial []phonology.WordDerivation `json:"trial,omitempty"`
}

// NewDeriveCommand creates the derive command.
func NewDeriveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeriveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "derive <word>... | --all",
		Short: "Show the sound-change derivation of words",
		Long: `Show every intermediate form of each word as the sound changes run.

Steps that leave a word unchanged are omitted, so the first step is the
phonemic form and the last is the surface form.

Use --change to try a rule list without editing the config; each flag is
one rule written "from -> to / left _ right", applied in flag order.

With --all every lexicon entry is derived. --changed-only then skips the
entries no rule touches. Combined with --change, only the entries whose
derivation the new rules alter are listed, old steps above new.

Examples:
  soldict derive kan djàng
  soldict derive kan --change "kʰ -> h / _ {V}"
  soldict derive --all --changed-only
  soldict derive --all --change "kʰ -> h / _ {V}"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.All {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(opts, args, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Changes, "change", nil, "sound change replacing the configured rules (repeatable)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "derive every lexicon entry")
	cmd.Flags().BoolVar(&opts.ChangedOnly, "changed-only", false, "with --all, skip entries no rule changes")

	return cmd
}

func runDerive(opts *DeriveOptions, words []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.ChangedOnly && !opts.All {
		return formatter.Fail(ExitCommandError, ErrCodeBadArgument, "--changed-only needs --all")
	}

	tr, err := LoadTranscriber(opts.Config)
	if err != nil {
		return failLoad(formatter, err)
	}

	var trial *phonology.Transcriber
	if len(opts.Changes) > 0 {
		changes := make([]lang.Change, 0, len(opts.Changes))
		for i, s := range opts.Changes {
			c, err := phonology.ParseChange(s)
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeBadArgument, fmt.Sprintf("change %d: %v", i+1, err))
			}
			changes = append(changes, c)
		}
		trial, err = tr.WithChanges(changes)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidRules, err.Error())
		}
		formatter.VerboseLog("Using %d rule(s) from --change", len(changes))
	}

	if opts.All {
		return deriveLexicon(cmd, opts, formatter, tr, trial)
	}

	if trial != nil {
		tr = trial
	}
	derivations := make([]phonology.Derivation, 0, len(words))
	for _, w := range words {
		derivations = append(derivations, tr.Derive(w))
	}

	if formatter.JSON() {
		return formatter.Success(derivations)
	}

	rows := make([][]string, 0, len(derivations))
	for _, d := range derivations {
		rows = append(rows, []string{d.Word, phonology.Steps(d.Steps)})
	}
	Table(formatter.Writer, rows)
	return nil
}

// deriveLexicon derives every entry in display order. With a trial
// transcriber only entries whose steps differ between the two are kept.
func deriveLexicon(cmd *cobra.Command, opts *DeriveOptions, f *OutputFormatter, tr, trial *phonology.Transcriber) error {
	entries, err := LoadEntries(cmd.Context(), opts.DB, opts.Logger())
	if err != nil {
		return failLoad(f, err)
	}

	out := []EntryDerivation{}
	for _, e := range dictionary.Sort(entries) {
		d := tr.DeriveSentence(e.Sol)
		ed := EntryDerivation{Hash: e.Hash, Sol: e.Sol, Words: d.Words}

		switch {
		case trial != nil:
			t := trial.DeriveSentence(e.Sol)
			if d.SameSteps(t) {
				continue
			}
			ed.Trial = t.Words
		case opts.ChangedOnly && !d.Changed():
			continue
		}
		out = append(out, ed)
	}
	f.VerboseLog("Derived %d of %d entries", len(out), len(entries))

	if f.JSON() {
		return f.Success(out)
	}

	if len(out) == 0 {
		fmt.Fprintln(f.Writer, Mark(false)+" no entries")
		return nil
	}

	rows := make([][]string, 0, len(out))
	for _, ed := range out {
		rows = append(rows, []string{ed.Sol, wordSteps(ed.Words)})
		if ed.Trial != nil {
			rows = append(rows, []string{"", wordSteps(ed.Trial)})
		}
	}
	Table(f.Writer, rows)
	return nil
}

// wordSteps renders each word's steps, words separated by a space.
func wordSteps(words []phonology.WordDerivation) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = phonology.Steps(w.Steps)
	}
	return strings.Join(parts, " ")
}
