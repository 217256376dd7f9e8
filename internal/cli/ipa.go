package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// IPAResult is the transcription of one romanized sentence.
type IPAResult struct {
	Input    string `json:"input"`
	Phonemic string `json:"phonemic"`
	Phonetic string `json:"phonetic"`
}

// NewIPACommand creates the ipa command.
func NewIPACommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipa <sentence>...",
		Short: "Transcribe romanized text to IPA",
		Long: `Transcribe a romanized sentence to IPA, before and after sound changes.

Arguments are joined with spaces. Commas become the break marker "|".

Examples:
  soldict ipa kan djàng
  soldict ipa "kan, djàng" --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIPA(rootOpts, strings.Join(args, " "), cmd)
		},
	}

	return cmd
}

func runIPA(opts *RootOptions, sentence string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	tr, err := LoadTranscriber(opts.Config)
	if err != nil {
		return failLoad(formatter, err)
	}
	formatter.VerboseLog("Loaded config %s (%s)", opts.Config, tr.Hash())

	result := IPAResult{
		Input:    sentence,
		Phonemic: tr.Phonemic(sentence),
		Phonetic: tr.Phonetic(sentence),
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s\n", result.Phonemic)
	if result.Phonetic != result.Phonemic {
		fmt.Fprintf(formatter.Writer, "%s\n", result.Phonetic)
	}
	return nil
}
