package vtfp

import "crypto/sha1"

// Fingerprint is the finalized 20-octet SHA-1 digest over a canonical
// resource list's byte encoding. Equal fingerprints identify virtual tracks
// with the same effective access pattern.
type Fingerprint [sha1.Size]byte

// Compute canonicalizes an ordered ordinary resource sequence and digests its
// canonical encoding. The digest is finalized only after the full encoding of
// the full list; no partial-stream digest is ever produced.
func Compute(items []ResourceItem) (Fingerprint, error) {
	canonical, err := Canonicalize(items)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint(sha1.Sum(Encode(canonical))), nil
}

// ComputeStereo is Compute for a stereoscopic-pair resource sequence.
func ComputeStereo(items []StereoResourceItem) (Fingerprint, error) {
	canonical, err := CanonicalizeStereo(items)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint(sha1.Sum(EncodeStereo(canonical))), nil
}
