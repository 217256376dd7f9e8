package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/morph"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <phrase>...",
		Short: "Analyze words against the lexicon",
		Long: `Look up each word of a phrase: exact matches, then every stem + suffix
reading whose stem is in the lexicon with the part the suffix attaches to.

Words are split on spaces and hyphens.

Examples:
  soldict lookup lumta
  soldict lookup "kan-si lum" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, strings.Join(args, " "), cmd)
		},
	}

	return cmd
}

func runLookup(opts *RootOptions, phrase string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	entries, err := LoadEntries(cmd.Context(), opts.DB, opts.Logger())
	if err != nil {
		return failLoad(formatter, err)
	}
	affixes := morph.Affixes(entries)
	formatter.VerboseLog("Loaded %d entries, %d affixes", len(entries), len(affixes))

	results := morph.FindPhrase(entries, affixes, phrase)

	if formatter.JSON() {
		return formatter.Success(results)
	}

	w := formatter.Writer
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.Word)
		if r.Lookup.Empty() {
			fmt.Fprintf(w, "  %s no match\n", Mark(false))
			continue
		}
		for _, t := range r.Lookup.Terminal {
			fmt.Fprintf(w, "  %s\n", describe(t.Entry))
		}
		for _, a := range r.Lookup.Affix {
			for _, c := range a.Children {
				fmt.Fprintf(w, "  %s + %s\n", describe(c.Entry), describe(a.Affix.Entry))
			}
		}
	}
	return nil
}

// describe renders an entry as its spelling, tag and glosses.
func describe(e lang.Entry) string {
	return fmt.Sprintf("%s (%s) %s", e.Sol, e.Extra, strings.Join(e.Glosses(), "; "))
}
