package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/soldict/internal/store"
)

// ImportSummary reports what an import changed.
type ImportSummary struct {
	Lexicon string `json:"lexicon"`
	DB      string `json:"db"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Total   int    `json:"total"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <lexicon.yaml>",
		Short: "Import a YAML lexicon into the database",
		Long: `Import a YAML lexicon into the database, creating it if needed.

Entries with a hash replace the stored entry with that hash; entries
without one are created with a fresh identifier. The import is a single
transaction: either every entry is written or none is.

Examples:
  soldict import lexicon.yaml
  soldict import lexicon.yaml --db sol.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	entries, err := store.LoadLexicon(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("lexicon not found: %s", path))
		}
		return formatter.Fail(ExitCommandError, ErrCodeLexicon, err.Error())
	}
	formatter.VerboseLog("Read %d entries from %s", len(entries), path)

	s, err := store.Open(opts.DB, store.WithLogger(opts.Logger()))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, err.Error())
	}
	defer s.Close()

	res, err := s.Import(cmd.Context(), entries)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err.Error())
	}

	total, err := s.Count(cmd.Context())
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, err.Error())
	}

	summary := ImportSummary{
		Lexicon: path,
		DB:      opts.DB,
		Created: res.Created,
		Updated: res.Updated,
		Total:   total,
	}

	if formatter.JSON() {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer, "%s Imported %d entries into %s (%d created, %d updated, %d total)\n",
		Mark(true), len(entries), opts.DB, summary.Created, summary.Updated, summary.Total)
	return nil
}
