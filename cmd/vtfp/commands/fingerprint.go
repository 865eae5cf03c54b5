package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seillac/vtfp/internal/cpl"
	"github.com/seillac/vtfp/internal/printer"
)

var (
	fingerprintTrack  string
	fingerprintAll    bool
	fingerprintLength int
	fingerprintOutput string
)

// trackReport is one track's entry in --all output.
type trackReport struct {
	TrackID     string `json:"track_id" yaml:"track_id"`
	Sequence    string `json:"sequence" yaml:"sequence"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <cpl-file>",
	Short: "Compute the fingerprint URN of a virtual track",
	Long: `Compute the Virtual Track Fingerprint of one virtual track (--track)
or of every track in the composition (--all).

The fingerprint is printed as a urn:smpte:imf-vtfp URN. By default the
full 40-character hex digest is printed; -n truncates it to as few as
4 characters.

Output Formats (--all only):
  default - one "urn:uuid:<track-id> <fingerprint-urn>" line per track
  json    - JSON array of track reports
  yaml    - YAML list of track reports

Examples:
  # Fingerprint a single track
  vtfp fingerprint composition.xml --track f8b5b2a1-1c3d-4e5f-9a6b-7c8d9e0f1a2b

  # Abbreviated 10-character form
  vtfp fingerprint composition.xml --track <track-id> -n 10

  # Fingerprint the whole composition as YAML
  vtfp fingerprint composition.xml --all --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runFingerprint,
}

func init() {
	fingerprintCmd.Flags().StringVarP(&fingerprintTrack, "track", "t", "", "TrackId of the virtual track (urn:uuid prefix optional)")
	fingerprintCmd.Flags().BoolVar(&fingerprintAll, "all", false, "Fingerprint every virtual track")
	fingerprintCmd.Flags().IntVarP(&fingerprintLength, "length", "n", 40, "Hex digest length in the printed URN (4-40)")
	fingerprintCmd.Flags().StringVarP(&fingerprintOutput, "output", "o", "default", "Output format for --all: default, json or yaml")

	rootCmd.AddCommand(fingerprintCmd)
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	if fingerprintAll == (fingerprintTrack != "") {
		return printer.Error(
			"select a track",
			"Exactly one of --track or --all must be given.",
			[]string{"List the composition's tracks:\n  vtfp tracks " + args[0]},
		)
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	if fingerprintAll {
		return fingerprintAllTracks(doc)
	}
	return fingerprintOneTrack(doc, fingerprintTrack)
}

func fingerprintOneTrack(doc *cpl.Document, trackArg string) error {
	trackID, err := uuid.Parse(trimUUIDPrefix(trackArg))
	if err != nil {
		return printer.Error(
			"invalid track id",
			fmt.Sprintf("%q is not a valid UUID.", trackArg),
			nil,
		)
	}

	urn, err := trackURN(doc, trackID)
	switch {
	case errors.Is(err, cpl.ErrUnknownTrack):
		return printer.Error(
			"unknown track",
			fmt.Sprintf("The composition has no virtual track %s.", trackID),
			[]string{"List the composition's tracks:\n  vtfp tracks <cpl-file>"},
		)
	case err != nil:
		return printer.Error("fingerprint failed", err.Error(), nil)
	}

	printer.Result("%s\n", urn)
	return nil
}

// fingerprintAllTracks reports every track it can fingerprint, warning about
// and skipping the ones it cannot (e.g. a track with no resources).
func fingerprintAllTracks(doc *cpl.Document) error {
	var reports []trackReport
	for _, track := range doc.Tracks() {
		urn, err := trackURN(doc, track.ID)
		if err != nil {
			printer.Warning("skipping track %s: %v\n", track.ID, err)
			continue
		}
		reports = append(reports, trackReport{
			TrackID:     "urn:uuid:" + track.ID.String(),
			Sequence:    track.Sequence,
			Fingerprint: urn,
		})
	}

	if len(reports) == 0 {
		return printer.Error(
			"no fingerprints computed",
			"The composition has no virtual track with a usable resource sequence.",
			nil,
		)
	}

	switch fingerprintOutput {
	case "default":
		for _, r := range reports {
			printer.Result("%s %s\n", r.TrackID, r.Fingerprint)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	case "yaml":
		out, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		printer.Result("%s", out)
	default:
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", fingerprintOutput),
			[]string{"Valid formats: default, json, yaml"},
		)
	}
	return nil
}

// trackURN computes one track's fingerprint URN at the requested truncation
// length.
func trackURN(doc *cpl.Document, trackID uuid.UUID) (string, error) {
	resources, err := doc.TrackResources(trackID)
	if err != nil {
		return "", err
	}

	fp, err := resources.Compute()
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint track %s: %w", trackID, err)
	}

	urn, err := fp.TruncatedURN(fingerprintLength)
	if err != nil {
		return "", fmt.Errorf("-n must be between 4 and 40: %w", err)
	}
	return urn, nil
}

// trimUUIDPrefix strips an optional urn:uuid: prefix from a track id
// argument.
func trimUUIDPrefix(s string) string {
	const prefix = "urn:uuid:"
	if len(s) > len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}
