package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seillac/vtfp/internal/cpl"
	"github.com/seillac/vtfp/internal/printer"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vtfp",
	Short: "vtfp - IMF Virtual Track Fingerprint calculator",
	Long: `vtfp computes IMF Virtual Track Fingerprints over the resource
sequences of a composition playlist's virtual tracks.

A fingerprint identifies a track's effective edit-unit access pattern:
compositions that fragment the same timeline differently still produce
the same fingerprint. Fingerprints are reported as URN values of the
form urn:smpte:imf-vtfp:<hex> and may be abbreviated to as few as 4
hex characters.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing; formatted colored
	// errors are printed by the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// loadDocument opens and parses a CPL file, mapping failures to formatted
// CLI errors.
func loadDocument(path string) (*cpl.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, printer.Error(
			"cannot open CPL file",
			err.Error(),
			nil,
		)
	}
	defer f.Close()

	doc, err := cpl.Parse(f)
	if err != nil {
		return nil, printer.Error(
			"cannot parse CPL file",
			err.Error(),
			[]string{"The file must be a SMPTE IMF Composition Playlist (ST 2067-3, 2013 or 2016 namespace)."},
		)
	}
	return doc, nil
}
