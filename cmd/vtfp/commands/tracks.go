package commands

import (
	"github.com/spf13/cobra"

	"github.com/seillac/vtfp/internal/printer"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks <cpl-file>",
	Short: "List the virtual tracks of a composition playlist",
	Long: `List every virtual track found in the composition playlist, one per
line: the TrackId as a urn:uuid value, followed by the sequence kind.

Examples:
  # List tracks, then fingerprint one of them
  vtfp tracks composition.xml
  vtfp fingerprint composition.xml --track <track-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runTracks,
}

func init() {
	rootCmd.AddCommand(tracksCmd)
}

func runTracks(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	tracks := doc.Tracks()
	if len(tracks) == 0 {
		return printer.Error(
			"no virtual tracks found",
			"The composition playlist contains no sequences.",
			nil,
		)
	}

	for _, track := range tracks {
		printer.Result("urn:uuid:%s %s\n", track.ID, track.Sequence)
	}
	return nil
}
