package domtree

import (
	"encoding/json"
	"strings"

	"page-analyzer/pkg/apperr"
)

// snapshotNode mirrors the object shape produced by the in-page serialization
// script. Text nodes carry only text.
type snapshotNode struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs"`
	Style    map[string]string `json:"style"`
	Rect     snapshotRect      `json:"rect"`
	Text     string            `json:"text"`
	Children []snapshotNode    `json:"children"`
}

type snapshotRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type snapshotDoc struct {
	URL           string       `json:"url"`
	Title         string       `json:"title"`
	DocDirection  string       `json:"docDirection"`
	BodyDirection string       `json:"bodyDirection"`
	Root          snapshotNode `json:"root"`
}

// DecodeSnapshot converts the raw value returned by evaluating the snapshot
// script into a Tree. The value round-trips through JSON since the browser
// driver hands it over as untyped maps.
func DecodeSnapshot(raw any) (*Tree, error) {
	const op = "DecodeSnapshot"

	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, apperr.Wrap(op, apperr.CodeCaptureFailed, err, map[string]any{
			apperr.MetaReason: "snapshot_marshal_failed",
			apperr.MetaStage:  apperr.StageCapture,
		})
	}

	var doc snapshotDoc
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, apperr.Wrap(op, apperr.CodeCaptureFailed, err, map[string]any{
			apperr.MetaReason: "snapshot_decode_failed",
			apperr.MetaStage:  apperr.StageCapture,
		})
	}

	if doc.Root.Tag == "" {
		return nil, apperr.WrapErrorWithReason(op, apperr.CodeCaptureFailed, "empty_snapshot")
	}

	tree := &Tree{
		URL:           doc.URL,
		Title:         doc.Title,
		DocDirection:  strings.ToLower(doc.DocDirection),
		BodyDirection: strings.ToLower(doc.BodyDirection),
		Root:          linkSnapshot(&doc.Root, nil),
	}

	return tree, nil
}

func linkSnapshot(src *snapshotNode, parent *Node) *Node {
	n := &Node{
		Tag:    strings.ToLower(src.Tag),
		Attrs:  src.Attrs,
		Style:  src.Style,
		Text:   src.Text,
		Parent: parent,
		Rect: Rect{
			X:      src.Rect.X,
			Y:      src.Rect.Y,
			Width:  src.Rect.Width,
			Height: src.Rect.Height,
		},
	}

	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}

	if n.Style == nil {
		n.Style = map[string]string{}
	}

	for i := range src.Children {
		if child := linkSnapshot(&src.Children[i], n); child != nil {
			n.Children = append(n.Children, child)
		}
	}

	return n
}
