package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/soldict/internal/lang"
	"github.com/roach88/soldict/internal/rhyme"
)

// RhymesOptions holds flags for the rhymes command.
type RhymesOptions struct {
	*RootOptions
	Initial string
	Vowel   string
	Tone    string
	Final   string
	NoTone  bool
}

// TallyCell is one non-empty cell of a rhyme table.
type TallyCell struct {
	Rhyme string `json:"rhyme"`
	Vowel string `json:"vowel"`
	Tone  string `json:"tone,omitempty"`
	Final string `json:"final"`
	Count int    `json:"count"`
}

// TallyResult is the rhyme table of a lexicon.
type TallyResult struct {
	Syllables int         `json:"syllables"`
	Cells     []TallyCell `json:"cells"`
}

// DrillResult is the entries matching a partial rhyme.
type DrillResult struct {
	Match  string        `json:"match"`
	Groups []rhyme.Group `json:"groups"`
}

// NewRhymesCommand creates the rhymes command.
func NewRhymesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RhymesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rhymes",
		Short: "Tabulate or search the lexicon's syllables",
		Long: `Without match flags, count the distinct syllables of the lexicon by
vowel, tone and final. With any of --initial, --vowel, --tone or --final,
list the entries containing a matching syllable, grouped by initial.

Values are phonetic. Use "∅" for an absent initial or final.

Examples:
  soldict rhymes
  soldict rhymes --no-tone
  soldict rhymes --vowel a --final n`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRhymes(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Initial, "initial", "", "match syllables with this initial")
	cmd.Flags().StringVar(&opts.Vowel, "vowel", "", "match syllables with this vowel")
	cmd.Flags().StringVar(&opts.Tone, "tone", "", "match syllables with this tone")
	cmd.Flags().StringVar(&opts.Final, "final", "", "match syllables with this final")
	cmd.Flags().BoolVar(&opts.NoTone, "no-tone", false, "merge tones in the table")

	return cmd
}

// match collects the match flags that were set. A flag set to "" still
// counts, so --tone "" selects the toneless syllables.
func (o *RhymesOptions) match(cmd *cobra.Command) rhyme.Match {
	m := rhyme.Match{}
	flags := []struct {
		name  string
		key   rhyme.Key
		value string
	}{
		{"initial", rhyme.Initial, o.Initial},
		{"vowel", rhyme.Vowel, o.Vowel},
		{"tone", rhyme.Tone, o.Tone},
		{"final", rhyme.Final, o.Final},
	}
	for _, f := range flags {
		if cmd.Flags().Changed(f.name) {
			m[f.key] = f.value
		}
	}
	return m
}

func runRhymes(opts *RhymesOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	tr, err := LoadTranscriber(opts.Config)
	if err != nil {
		return failLoad(formatter, err)
	}
	entries, err := LoadEntries(cmd.Context(), opts.DB, opts.Logger())
	if err != nil {
		return failLoad(formatter, err)
	}

	if m := opts.match(cmd); len(m) > 0 {
		return outputDrill(formatter, m, rhyme.Drill(entries, tr.Parser(), m))
	}

	rhymes := rhyme.Collect(entries, tr.Parser())
	formatter.VerboseLog("Collected %d distinct syllables from %d entries", len(rhymes), len(entries))

	inv := tr.Parser().Inventory()
	table := rhyme.Tally(rhymes, inv)
	if opts.NoTone {
		table = rhyme.TallyNoTone(rhymes, inv)
	}
	return outputTally(formatter, table)
}

func outputTally(formatter *OutputFormatter, table *rhyme.Table) error {
	result := TallyResult{Syllables: table.Total(), Cells: []TallyCell{}}
	for _, v := range table.Vowels {
		for _, tone := range table.Tones {
			for _, f := range table.Finals {
				n := table.Count(v, tone, f)
				if n == 0 {
					continue
				}
				result.Cells = append(result.Cells, TallyCell{
					Rhyme: table.Cell(v, tone, f).String(rhyme.StringOptions{}),
					Vowel: v,
					Tone:  tone,
					Final: f,
					Count: n,
				})
			}
		}
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}

	rows := make([][]string, 0, len(result.Cells))
	for _, c := range result.Cells {
		rows = append(rows, []string{c.Rhyme, strconv.Itoa(c.Count)})
	}
	Table(formatter.Writer, rows)
	fmt.Fprintf(formatter.Writer, "%d syllable(s)\n", result.Syllables)
	return nil
}

func outputDrill(formatter *OutputFormatter, m rhyme.Match, groups []rhyme.Group) error {
	result := DrillResult{Match: m.String(rhyme.StringOptions{AlwaysInitial: true, AlwaysFinal: true}), Groups: groups}

	if formatter.JSON() {
		return formatter.Success(result)
	}

	w := formatter.Writer
	if len(groups) == 0 {
		fmt.Fprintf(w, "%s no syllables match %s\n", Mark(false), result.Match)
		return nil
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Initial, sols(g.Entries)})
	}
	Table(w, rows)
	return nil
}

func sols(entries []lang.Entry) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Sol
	}
	return strings.Join(out, " ")
}
