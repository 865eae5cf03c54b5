// Package cpl reads SMPTE IMF Composition Playlist documents far enough to
// feed the fingerprint core: it lists the virtual tracks of a composition and
// extracts the ordered, classified resource sequence of a named track.
//
// It is deliberately not a general CPL library. Only the elements the
// fingerprint needs are read; everything else in the document is ignored.
// Segment boundaries are ignored too: resources from all segments of a track
// are concatenated in document order.
package cpl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/seillac/vtfp/pkg/vtfp"
)

// Recognised CompositionPlaylist root namespaces (ST 2067-3 editions).
const (
	NamespaceCPL2013 = "http://www.smpte-ra.org/schemas/2067-3/2013"
	NamespaceCPL2016 = "http://www.smpte-ra.org/schemas/2067-3/2016"
)

var (
	// ErrNotCPL is returned when the document root is not a
	// CompositionPlaylist in a recognised namespace.
	ErrNotCPL = errors.New("document root is not a valid SMPTE IMF CPL")

	// ErrUnknownTrack is returned when the requested TrackId does not appear
	// in the composition.
	ErrUnknownTrack = errors.New("no virtual track with the given TrackId")
)

// Track identifies one virtual track of a composition.
type Track struct {
	ID       uuid.UUID // The track's TrackId value
	Sequence string    // Element name of the track's sequences (e.g. MainImageSequence)
}

// Document is a parsed composition, reduced to its virtual tracks and their
// resource sequences.
type Document struct {
	tracks    []Track
	resources map[uuid.UUID]vtfp.TrackResources
}

// node is a generic parsed XML element. The CPL schema versions place
// sequence-level elements in different namespaces, so elements are matched by
// local name after the root namespace has been validated (the same strategy
// the reference extractor uses for gathering sequences).
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// Parse reads a CPL document and extracts every virtual track's resource
// sequence. Resources of the same TrackId are concatenated across segments
// in document order.
func Parse(r io.Reader) (*Document, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse CPL document: %w", err)
	}

	if root.XMLName.Local != "CompositionPlaylist" {
		return nil, fmt.Errorf("%w: root element is %s", ErrNotCPL, root.XMLName.Local)
	}
	if root.XMLName.Space != NamespaceCPL2013 && root.XMLName.Space != NamespaceCPL2016 {
		return nil, fmt.Errorf("%w: unrecognised namespace %s", ErrNotCPL, root.XMLName.Space)
	}

	doc := &Document{resources: make(map[uuid.UUID]vtfp.TrackResources)}

	// Every child of a SequenceList element is one sequence, whatever its
	// element name. Segment boundaries are not tracked.
	for _, seqList := range findAll(&root, "SequenceList") {
		for i := range seqList.Children {
			if err := doc.addSequence(&seqList.Children[i]); err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}

// addSequence extracts one sequence element's TrackId and resources and
// appends them to the track's accumulated sequence.
func (d *Document) addSequence(seq *node) error {
	idText := findText(seq, "TrackId")
	if idText == "" {
		return fmt.Errorf("sequence %s has no TrackId", seq.XMLName.Local)
	}
	trackID, err := parseUUID(idText)
	if err != nil {
		return fmt.Errorf("sequence %s: invalid TrackId: %w", seq.XMLName.Local, err)
	}

	if _, seen := d.resources[trackID]; !seen {
		d.tracks = append(d.tracks, Track{ID: trackID, Sequence: seq.XMLName.Local})
	}

	acc := d.resources[trackID]
	for _, res := range findAll(seq, "Resource") {
		if err := extractResource(res, &acc); err != nil {
			return fmt.Errorf("track %s: %w", trackID, err)
		}
	}
	d.resources[trackID] = acc

	return nil
}

// Tracks returns the composition's virtual tracks in document order, one
// entry per distinct TrackId.
func (d *Document) Tracks() []Track {
	return d.tracks
}

// TrackResources returns the classified resource sequence of the named
// virtual track.
func (d *Document) TrackResources(trackID uuid.UUID) (vtfp.TrackResources, error) {
	res, ok := d.resources[trackID]
	if !ok {
		return vtfp.TrackResources{}, fmt.Errorf("%w: %s", ErrUnknownTrack, trackID)
	}
	return res, nil
}

// parseUUID parses a UUID value that may carry the urn:uuid: prefix.
func parseUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "urn:uuid:")
	return uuid.Parse(s)
}

// findAll returns every descendant element with the given local name, in
// document order. A matching element's own subtree is not searched further.
func findAll(n *node, local string) []*node {
	var out []*node
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == local {
			out = append(out, child)
			continue
		}
		out = append(out, findAll(child, local)...)
	}
	return out
}

// findText returns the trimmed text of the first descendant element with the
// given local name, or "" if absent.
func findText(n *node, local string) string {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == local {
			return strings.TrimSpace(child.Text)
		}
		if t := findText(child, local); t != "" {
			return t
		}
	}
	return ""
}

// childText is findText restricted to direct children.
func childText(n *node, local string) string {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return strings.TrimSpace(n.Children[i].Text)
		}
	}
	return ""
}

// child returns the first direct child element with the given local name.
func child(n *node, local string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return &n.Children[i]
		}
	}
	return nil
}
