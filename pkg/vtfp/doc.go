// Package vtfp computes IMF Virtual Track Fingerprints.
//
// # Overview
//
// A virtual track is an ordered sequence of resource records, each describing
// a contiguous run of edit units read from a track file. The same effective
// timeline can be fragmented into records in many ways: a single run may be
// split at arbitrary points, and an identical region may be repeated either
// via RepeatCount or by writing the record twice. The fingerprint identifies
// the timeline itself, not its fragmentation: every equivalent record
// sequence yields the same 20-octet value.
//
// # Pipeline
//
// Canonicalization merges congruent repeats and contiguous continuations in a
// single left-to-right pass (Canonicalize). The canonical list is serialized
// into a fixed-width big-endian byte stream (Encode) and digested with SHA-1
// (Compute). The digest has textual forms: 40 lowercase hex characters, and a
// URN under the urn:smpte:imf-vtfp scheme which may be truncated to as few as
// 4 hex characters (Fingerprint.URN, Fingerprint.TruncatedURN). Match
// compares two URN or hex values under that truncation rule.
//
// Stereoscopic-pair tracks use the same pipeline with their own record shape
// and encoding layout (ComputeStereo); stereoscopic records never merge.
//
// # Usage Example
//
//	items := []vtfp.ResourceItem{
//		{TrackFileID: fileID, EntryPoint: 0, SourceDuration: 1440, RepeatCount: 1},
//		{TrackFileID: fileID, EntryPoint: 1440, SourceDuration: 960, RepeatCount: 1},
//	}
//
//	fp, err := vtfp.Compute(items)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(fp.URN())
//	// urn:smpte:imf-vtfp:<40 hex characters>
//
// # Design Principles
//
//   - Determinism: identical input sequences always produce identical output
//   - Purity: no I/O, no shared state; computations on separate tracks are
//     independent and safe to run concurrently
//   - Strictness: malformed input (empty track, mixed variants, bad URN text)
//     is an error, never a silently repaired value
package vtfp
