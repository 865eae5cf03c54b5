package vtfp

import (
	"crypto/sha1"
	"testing"

	"github.com/google/uuid"
)

var (
	stereoLeftFile  = uuid.MustParse("0d4e3a91-6c2f-4b7e-8f1a-9be20c7d5e44")
	stereoRightFile = uuid.MustParse("b7c05f22-91d8-4a36-a2e4-1f83d6e9ab55")
)

// Golden fingerprints for the reference timeline used across this package's
// tests (see TestCanonicalize_FragmentationInvariance for the canonical
// list). Computed from the canonical encoding defined in encode.go.
const (
	goldenOrdinaryHex = "612937d58f83f92eb7afb3942a19dd88cc8595b3"
	goldenStereoHex   = "45e6b0e1e61c0766e34e3937b3fce7720d5a002a"
)

func goldenOrdinaryItems() []ResourceItem {
	return []ResourceItem{
		{TrackFileID: testFileA, EntryPoint: 0, SourceDuration: 120, RepeatCount: 1},
		{TrackFileID: testFileA, EntryPoint: 0, SourceDuration: 24, RepeatCount: 3},
		{TrackFileID: testFileB, EntryPoint: 48, SourceDuration: 72, RepeatCount: 1},
	}
}

// TestCompute_GoldenVector tests the full pipeline against the golden
// ordinary fingerprint, from both the canonical list and a fragmented
// equivalent of it
func TestCompute_GoldenVector(t *testing.T) {
	fp, err := Compute(goldenOrdinaryItems())
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	if fp.Hex() != goldenOrdinaryHex {
		t.Errorf("Compute() = %s, want %s", fp.Hex(), goldenOrdinaryHex)
	}

	fragmented := []ResourceItem{
		{TrackFileID: testFileA, EntryPoint: 0, SourceDuration: 60, RepeatCount: 1},
		{TrackFileID: testFileA, EntryPoint: 60, SourceDuration: 60, RepeatCount: 1},
		{TrackFileID: testFileA, EntryPoint: 0, SourceDuration: 24, RepeatCount: 1},
		{TrackFileID: testFileA, EntryPoint: 0, SourceDuration: 24, RepeatCount: 2},
		{TrackFileID: testFileB, EntryPoint: 48, SourceDuration: 72, RepeatCount: 1},
	}
	fp2, err := Compute(fragmented)
	if err != nil {
		t.Fatalf("Compute() on fragmented input failed: %v", err)
	}
	if fp2 != fp {
		t.Errorf("fragmented input fingerprint %s differs from canonical %s", fp2.Hex(), fp.Hex())
	}
}

// TestComputeStereo_GoldenVector tests the stereoscopic encoding path against
// its golden fingerprint. The field values mirror the ordinary golden
// timeline, confirming the two paths never collide.
func TestComputeStereo_GoldenVector(t *testing.T) {
	left := EyeReference{TrackFileID: stereoLeftFile, EntryPoint: 0}
	right := EyeReference{TrackFileID: stereoRightFile, EntryPoint: 0}
	items := []StereoResourceItem{
		{SourceDuration: 120, RepeatCount: 1, Left: left, Right: right},
		{SourceDuration: 24, RepeatCount: 3,
			Left:  EyeReference{TrackFileID: stereoLeftFile, EntryPoint: 120},
			Right: EyeReference{TrackFileID: stereoRightFile, EntryPoint: 120}},
	}

	fp, err := ComputeStereo(items)
	if err != nil {
		t.Fatalf("ComputeStereo() failed: %v", err)
	}
	if fp.Hex() != goldenStereoHex {
		t.Errorf("ComputeStereo() = %s, want %s", fp.Hex(), goldenStereoHex)
	}
	if fp.Hex() == goldenOrdinaryHex {
		t.Error("stereoscopic fingerprint collides with the ordinary golden vector")
	}
}

// TestCompute_Deterministic tests that repeated computation over the same
// sequence yields identical output
func TestCompute_Deterministic(t *testing.T) {
	first, err := Compute(goldenOrdinaryItems())
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Compute(goldenOrdinaryItems())
		if err != nil {
			t.Fatalf("Compute() failed on iteration %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("iteration %d produced %s, want %s", i, again.Hex(), first.Hex())
		}
	}
}

// TestCompute_OrderSensitive tests that reordering the canonical entries
// changes the fingerprint
func TestCompute_OrderSensitive(t *testing.T) {
	items := goldenOrdinaryItems()
	reordered := []ResourceItem{items[2], items[0], items[1]}

	a, err := Compute(items)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	b, err := Compute(reordered)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	if a == b {
		t.Error("reordered timeline produced the same fingerprint")
	}
}

// TestCompute_MatchesDirectDigest tests the digest finalization contract: the
// fingerprint is exactly SHA-1 over the canonical encoding
func TestCompute_MatchesDirectDigest(t *testing.T) {
	canonical, err := Canonicalize(goldenOrdinaryItems())
	if err != nil {
		t.Fatalf("Canonicalize() failed: %v", err)
	}
	want := Fingerprint(sha1.Sum(Encode(canonical)))

	got, err := Compute(goldenOrdinaryItems())
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	if got != want {
		t.Errorf("Compute() = %s, want %s", got.Hex(), want.Hex())
	}
}
