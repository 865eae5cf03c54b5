package vtfp

import (
	"fmt"
	"math"
)

// Canonicalize reduces an ordered resource sequence to the minimal list
// representing the same effective access pattern. Two merge rules apply,
// always against the most recently appended item:
//
//   - Congruent: the current item references the identical region as the
//     previous one (RepeatCount excluded). The repeat counts are summed.
//   - Continuation: both items play once and the current region starts exactly
//     where the previous one ends. The durations are summed.
//
// Congruence is checked first; when a degenerate item satisfies both
// relations, the repeat counts are the values that accumulate. The relative
// order of surviving items is the input order.
func Canonicalize(items []ResourceItem) ([]ResourceItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyTimeline
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("resource %d: %w", i, err)
		}
	}
	return canonicalize(items)
}

// canonicalize performs the single left-to-right merge pass. Inputs are
// assumed validated. The input slice is never modified.
func canonicalize(items []ResourceItem) ([]ResourceItem, error) {
	canonical := make([]ResourceItem, 0, len(items))

	for _, present := range items {
		if len(canonical) > 0 {
			previous := &canonical[len(canonical)-1]

			if previous.congruentWith(present) {
				if previous.RepeatCount > math.MaxUint64-present.RepeatCount {
					return nil, fmt.Errorf("%w: accumulated RepeatCount", ErrOverflow)
				}
				previous.RepeatCount += present.RepeatCount
				continue
			}

			if previous.continuedBy(present) {
				if previous.SourceDuration > math.MaxUint64-present.SourceDuration {
					return nil, fmt.Errorf("%w: accumulated SourceDuration", ErrOverflow)
				}
				previous.SourceDuration += present.SourceDuration
				continue
			}
		}

		canonical = append(canonical, present)
	}

	return canonical, nil
}

// CanonicalizeStereo validates a stereoscopic resource sequence. Merging is
// defined only for the ordinary resource shape, so every stereoscopic record
// is already canonical and passes through unchanged.
func CanonicalizeStereo(items []StereoResourceItem) ([]StereoResourceItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyTimeline
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("resource %d: %w", i, err)
		}
	}
	canonical := make([]StereoResourceItem, len(items))
	copy(canonical, items)
	return canonical, nil
}
