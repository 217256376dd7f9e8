package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/soldict/internal/rhyme"
)

// StatsResult is the phoneme and tag frequencies of a lexicon.
type StatsResult struct {
	Entries  int           `json:"entries"`
	Phonemes rhyme.Tallies `json:"phonemes"`
	Parts    []rhyme.Count `json:"parts"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count phonemes and parts of speech in the lexicon",
		Long: `Count how often each initial, vowel, final and tone occurs across the
lexicon, and how many entries carry each tag.

Every inventory phoneme is listed, unused ones with a zero count.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	tr, err := LoadTranscriber(opts.Config)
	if err != nil {
		return failLoad(formatter, err)
	}
	entries, err := LoadEntries(cmd.Context(), opts.DB, opts.Logger())
	if err != nil {
		return failLoad(formatter, err)
	}

	result := StatsResult{
		Entries:  len(entries),
		Phonemes: rhyme.PhonemeTallies(entries, tr.Parser()),
		Parts:    rhyme.PartTally(entries),
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%d entries\n", result.Entries)
	sections := []struct {
		title  string
		counts []rhyme.Count
	}{
		{"initial", result.Phonemes.Initial},
		{"vowel", result.Phonemes.Vowel},
		{"final", result.Phonemes.Final},
		{"tone", result.Phonemes.Tone},
		{"part", result.Parts},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "\n%s\n", s.title)
		rows := make([][]string, 0, len(s.counts))
		for _, c := range s.counts {
			rows = append(rows, []string{"  " + c.Value, strconv.Itoa(c.N)})
		}
		Table(w, rows)
	}
	return nil
}
