package vtfp

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors returned by fingerprint and URN operations. Callers should
// test with errors.Is; returned errors may wrap these with detail.
var (
	// ErrEmptyTimeline is returned when a virtual track has no resources.
	// A track with zero resources has no defined fingerprint.
	ErrEmptyTimeline = errors.New("virtual track has no resources")

	// ErrMixedVariant is returned when ordinary and stereoscopic resources
	// appear in the same track. A virtual track is uniformly one or the other.
	ErrMixedVariant = errors.New("virtual track mixes ordinary and stereoscopic resources")

	// ErrMalformedURN is returned when text input does not match the
	// urn:smpte:imf-vtfp grammar (fixed prefix plus 4-40 hex characters).
	ErrMalformedURN = errors.New("malformed fingerprint URN")

	// ErrInvalidField is returned for out-of-range resource fields, such as a
	// RepeatCount or SourceDuration of zero.
	ErrInvalidField = errors.New("invalid resource field")

	// ErrOverflow is returned when merging resources would overflow a 64-bit
	// accumulated RepeatCount or SourceDuration.
	ErrOverflow = errors.New("resource merge overflows 64-bit range")
)

// ResourceItem is one contiguous access into a single track file: starting at
// EntryPoint, SourceDuration edit units are played, RepeatCount times in a row.
type ResourceItem struct {
	TrackFileID    uuid.UUID // Identifier of the referenced track file
	EntryPoint     uint64    // Edit-unit offset of the first accessed unit
	SourceDuration uint64    // Number of edit units accessed (>= 1)
	RepeatCount    uint64    // Consecutive plays of the region (>= 1)
}

// Validate checks that the resource fields are in range.
func (r ResourceItem) Validate() error {
	if r.SourceDuration == 0 {
		return fmt.Errorf("%w: SourceDuration must be >= 1", ErrInvalidField)
	}
	if r.RepeatCount == 0 {
		return fmt.Errorf("%w: RepeatCount must be >= 1", ErrInvalidField)
	}
	return nil
}

// congruentWith reports whether r and other reference the identical track file
// region. Congruency never considers RepeatCount.
func (r ResourceItem) congruentWith(other ResourceItem) bool {
	return r.TrackFileID == other.TrackFileID &&
		r.EntryPoint == other.EntryPoint &&
		r.SourceDuration == other.SourceDuration
}

// continuedBy reports whether other begins exactly where r ends in the same
// track file, with both regions played once. Such a pair is one contiguous
// access split across two records.
func (r ResourceItem) continuedBy(other ResourceItem) bool {
	return r.TrackFileID == other.TrackFileID &&
		r.RepeatCount == 1 &&
		other.RepeatCount == 1 &&
		r.EntryPoint+r.SourceDuration == other.EntryPoint
}

// EyeReference identifies one eye's track file access within a stereoscopic
// resource. Duration and repeat count live on the enclosing item.
type EyeReference struct {
	TrackFileID uuid.UUID
	EntryPoint  uint64
}

// StereoResourceItem is one stereoscopic-pair access: a left-eye and a
// right-eye track file region of common duration, played RepeatCount times.
// Stereoscopic resources never merge; each record stands alone in the
// canonical list.
type StereoResourceItem struct {
	SourceDuration uint64
	RepeatCount    uint64
	Left           EyeReference
	Right          EyeReference
}

// Validate checks that the resource fields are in range.
func (s StereoResourceItem) Validate() error {
	if s.SourceDuration == 0 {
		return fmt.Errorf("%w: SourceDuration must be >= 1", ErrInvalidField)
	}
	if s.RepeatCount == 0 {
		return fmt.Errorf("%w: RepeatCount must be >= 1", ErrInvalidField)
	}
	return nil
}

// TrackResources is the classified resource sequence of one virtual track, as
// delivered by the composition playlist extractor. Exactly one of the two
// slices is populated for a well-formed track.
type TrackResources struct {
	Ordinary []ResourceItem
	Stereo   []StereoResourceItem
}

// Compute dispatches on the track's variant and returns its fingerprint.
// Returns ErrMixedVariant if both variants are present and ErrEmptyTimeline if
// neither is.
func (t TrackResources) Compute() (Fingerprint, error) {
	switch {
	case len(t.Ordinary) > 0 && len(t.Stereo) > 0:
		return Fingerprint{}, ErrMixedVariant
	case len(t.Ordinary) > 0:
		return Compute(t.Ordinary)
	case len(t.Stereo) > 0:
		return ComputeStereo(t.Stereo)
	default:
		return Fingerprint{}, ErrEmptyTimeline
	}
}
