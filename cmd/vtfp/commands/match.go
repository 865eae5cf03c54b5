package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seillac/vtfp/internal/printer"
	"github.com/seillac/vtfp/pkg/vtfp"
)

var matchCmd = &cobra.Command{
	Use:   "match <value-a> <value-b>",
	Short: "Compare two fingerprint values for equivalence",
	Long: `Compare two fingerprint values, tolerating abbreviation. Each value
may be a urn:smpte:imf-vtfp URN or a bare hex digest, full-length or
truncated to no fewer than 4 hex characters. Letter case is ignored.

Exits 0 when the values match, 1 when they do not or are malformed.

Examples:
  vtfp match urn:smpte:imf-vtfp:612937d58f83 612937d5
  vtfp match urn:smpte:imf-vtfp:612937d58f83 urn:smpte:imf-vtfp:45e6b0e1`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ok, err := vtfp.Match(args[0], args[1])
	if err != nil {
		return printer.Error(
			"malformed fingerprint value",
			err.Error(),
			[]string{"Values must be urn:smpte:imf-vtfp URNs or 4-40 hex characters."},
		)
	}

	if !ok {
		printer.Result("no match\n")
		return fmt.Errorf("values do not match")
	}

	printer.Result("match\n")
	return nil
}
