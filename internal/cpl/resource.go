package cpl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seillac/vtfp/pkg/vtfp"
)

// extractResource classifies a Resource element by its xsi:type and appends
// the extracted item to the track's accumulated resources. Ordinary and
// stereoscopic-pair resources are the only recognised subtypes; the
// fingerprint core reports a mixed track when both end up on one TrackId.
func extractResource(res *node, acc *vtfp.TrackResources) error {
	if isStereoResource(res) {
		item, err := extractStereoResource(res)
		if err != nil {
			return err
		}
		acc.Stereo = append(acc.Stereo, item)
		return nil
	}

	item, err := extractOrdinaryResource(res)
	if err != nil {
		return err
	}
	acc.Ordinary = append(acc.Ordinary, item)
	return nil
}

// isStereoResource checks the element's xsi:type attribute for the
// stereoscopic resource subtype.
func isStereoResource(res *node) bool {
	for _, attr := range res.Attrs {
		if attr.Name.Local != "type" {
			continue
		}
		// The attribute value is QName text; the prefix varies per document.
		if local := attr.Value[strings.IndexByte(attr.Value, ':')+1:]; local == "StereoImageTrackFileResourceType" {
			return true
		}
	}
	return false
}

// extractOrdinaryResource reads one track file resource. EntryPoint defaults
// to 0 and RepeatCount to 1. When SourceDuration is absent or zero the
// resource plays its full remainder, so IntrinsicDuration stands in for it
// and becomes required.
func extractOrdinaryResource(res *node) (vtfp.ResourceItem, error) {
	var item vtfp.ResourceItem

	idText := findText(res, "TrackFileId")
	if idText == "" {
		return item, fmt.Errorf("resource has no TrackFileId")
	}
	fileID, err := parseUUID(idText)
	if err != nil {
		return item, fmt.Errorf("invalid TrackFileId: %w", err)
	}
	item.TrackFileID = fileID

	item.EntryPoint, err = optionalUint(res, "EntryPoint", 0)
	if err != nil {
		return item, err
	}
	item.RepeatCount, err = optionalUint(res, "RepeatCount", 1)
	if err != nil {
		return item, err
	}
	item.SourceDuration, err = optionalUint(res, "SourceDuration", 0)
	if err != nil {
		return item, err
	}

	if item.SourceDuration == 0 {
		item.SourceDuration, err = requiredUint(res, "IntrinsicDuration")
		if err != nil {
			return item, fmt.Errorf("resource %s: SourceDuration absent and %w", fileID, err)
		}
	}

	return item, nil
}

// extractStereoResource reads one stereoscopic-pair resource: shared duration
// and repeat count, plus a track file reference per eye.
func extractStereoResource(res *node) (vtfp.StereoResourceItem, error) {
	var item vtfp.StereoResourceItem
	var err error

	item.RepeatCount, err = optionalUint(res, "RepeatCount", 1)
	if err != nil {
		return item, err
	}
	item.SourceDuration, err = optionalUint(res, "SourceDuration", 0)
	if err != nil {
		return item, err
	}
	if item.SourceDuration == 0 {
		item.SourceDuration, err = requiredUint(res, "IntrinsicDuration")
		if err != nil {
			return item, fmt.Errorf("stereoscopic resource: SourceDuration absent and %w", err)
		}
	}

	item.Left, err = extractEye(res, "LeftEye")
	if err != nil {
		return item, err
	}
	item.Right, err = extractEye(res, "RightEye")
	if err != nil {
		return item, err
	}

	return item, nil
}

// extractEye reads one eye's track file reference from a stereoscopic
// resource.
func extractEye(res *node, eyeName string) (vtfp.EyeReference, error) {
	var eye vtfp.EyeReference

	eyeNode := child(res, eyeName)
	if eyeNode == nil {
		return eye, fmt.Errorf("stereoscopic resource has no %s", eyeName)
	}

	idText := findText(eyeNode, "TrackFileId")
	if idText == "" {
		return eye, fmt.Errorf("%s has no TrackFileId", eyeName)
	}
	fileID, err := parseUUID(idText)
	if err != nil {
		return eye, fmt.Errorf("%s: invalid TrackFileId: %w", eyeName, err)
	}
	eye.TrackFileID = fileID

	eye.EntryPoint, err = optionalUint(eyeNode, "EntryPoint", 0)
	if err != nil {
		return eye, fmt.Errorf("%s: %w", eyeName, err)
	}

	return eye, nil
}

// optionalUint reads a direct-child numeric element, returning def when the
// element is absent. Scalar fields are matched on direct children only so a
// stereoscopic resource's eye subtrees cannot shadow them.
func optionalUint(n *node, local string, def uint64) (uint64, error) {
	text := childText(n, local)
	if text == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", local, text, err)
	}
	return v, nil
}

// requiredUint is optionalUint for elements that must be present.
func requiredUint(n *node, local string) (uint64, error) {
	text := childText(n, local)
	if text == "" {
		return 0, fmt.Errorf("required property %s is missing", local)
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", local, text, err)
	}
	return v, nil
}
