package vtfp

import "encoding/binary"

// Canonical byte layout fed to the digest. Fields are big-endian with fixed
// widths, entries concatenated in list order with no separators or padding.
// The two variants use distinct layouts and are never mixed in one stream.

const (
	ordinaryEntrySize = 16 + 8 + 8 + 8   // TrackFileID, EntryPoint, SourceDuration, RepeatCount
	stereoEntrySize   = 8 + 8 + (16+8)*2 // SourceDuration, RepeatCount, then each eye's TrackFileID and EntryPoint
)

// Encode serializes a canonical ordinary resource list into its digest input
// form. The TrackFileID contributes its 16 raw octets in UUID network order.
func Encode(canonical []ResourceItem) []byte {
	buf := make([]byte, 0, len(canonical)*ordinaryEntrySize)
	for _, item := range canonical {
		buf = append(buf, item.TrackFileID[:]...)
		buf = binary.BigEndian.AppendUint64(buf, item.EntryPoint)
		buf = binary.BigEndian.AppendUint64(buf, item.SourceDuration)
		buf = binary.BigEndian.AppendUint64(buf, item.RepeatCount)
	}
	return buf
}

// EncodeStereo serializes a canonical stereoscopic resource list into its
// digest input form. The shared duration and repeat count precede the two eye
// references, left eye first.
func EncodeStereo(canonical []StereoResourceItem) []byte {
	buf := make([]byte, 0, len(canonical)*stereoEntrySize)
	for _, item := range canonical {
		buf = binary.BigEndian.AppendUint64(buf, item.SourceDuration)
		buf = binary.BigEndian.AppendUint64(buf, item.RepeatCount)
		buf = append(buf, item.Left.TrackFileID[:]...)
		buf = binary.BigEndian.AppendUint64(buf, item.Left.EntryPoint)
		buf = append(buf, item.Right.TrackFileID[:]...)
		buf = binary.BigEndian.AppendUint64(buf, item.Right.EntryPoint)
	}
	return buf
}
