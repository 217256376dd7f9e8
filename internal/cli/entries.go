package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/soldict/internal/dictionary"
)

// EntriesOptions holds flags for the entries command.
type EntriesOptions struct {
	*RootOptions
	Examples bool // list translation examples instead of entries
}

// NewEntriesCommand creates the entries command.
func NewEntriesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EntriesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "entries [sol]",
		Short: "List dictionary entries in dictionary order",
		Long: `List the lexicon in dictionary order with transcription, homograph
numbers and links. With an argument, list only the entries spelled that
way; homograph numbers still count the whole lexicon.

Examples:
  soldict entries
  soldict entries kan
  soldict entries --examples`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sol := ""
			if len(args) == 1 {
				sol = args[0]
			}
			return runEntries(opts, sol, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Examples, "examples", false, "list translation examples")

	return cmd
}

func runEntries(opts *EntriesOptions, sol string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	tr, err := LoadTranscriber(opts.Config)
	if err != nil {
		return failLoad(formatter, err)
	}
	entries, err := LoadEntries(cmd.Context(), opts.DB, opts.Logger())
	if err != nil {
		return failLoad(formatter, err)
	}

	full := dictionary.Build(entries, tr.Phonemic)
	if sol != "" {
		var matched []dictionary.FullEntry
		for _, e := range full {
			if e.Sol == sol {
				matched = append(matched, e)
			}
		}
		full = matched
	}

	if opts.Examples {
		return outputExamples(formatter, dictionary.Examples(full))
	}

	if formatter.JSON() {
		if full == nil {
			full = []dictionary.FullEntry{}
		}
		return formatter.Success(full)
	}

	if len(full) == 0 {
		fmt.Fprintf(formatter.Writer, "%s no entries\n", Mark(false))
		return nil
	}

	rows := make([][]string, 0, len(full))
	for _, e := range full {
		rows = append(rows, []string{
			dim(strconv.Itoa(e.Index)),
			e.Link,
			e.IPA,
			e.Extra,
			strings.Join(e.Glosses(), "; "),
		})
	}
	Table(formatter.Writer, rows)
	return nil
}

func outputExamples(formatter *OutputFormatter, examples []dictionary.Example) error {
	if formatter.JSON() {
		return formatter.Success(examples)
	}

	w := formatter.Writer
	for _, ex := range examples {
		fmt.Fprintf(w, "%s %d. %s\n", ex.Entry.Link, ex.Nth, ex.Entry.Meanings[ex.Nth-1].Eng)
		for _, s := range ex.Sections {
			il, err := dictionary.ParseInterlinear(s.Content)
			if err != nil {
				fmt.Fprintf(w, "  %s %v\n", Mark(false), err)
				continue
			}
			fmt.Fprintf(w, "  %s\n  %s\n", il.Sol, il.Eng)
		}
	}
	return nil
}
