package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/soldict/internal/store"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the database as a YAML lexicon",
		Long: `Write every entry of the database to stdout in the YAML form that
import reads, hashes included, so an export can be edited and imported back.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, cmd)
		},
	}

	return cmd
}

func runExport(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	entries, err := LoadEntries(cmd.Context(), opts.DB, opts.Logger())
	if err != nil {
		return failLoad(formatter, err)
	}

	if formatter.JSON() {
		return formatter.Success(entries)
	}
	if err := store.WriteLexicon(formatter.Writer, entries); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error())
	}
	return nil
}
