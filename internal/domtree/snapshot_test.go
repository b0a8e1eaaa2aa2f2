package domtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshot(t *testing.T) {
	raw := map[string]any{
		"url":           "https://example.test/",
		"title":         "Example",
		"docDirection":  "",
		"bodyDirection": "LTR",
		"root": map[string]any{
			"tag":   "HTML",
			"attrs": map[string]any{"lang": "en"},
			"style": map[string]any{"display": "block"},
			"rect":  map[string]any{"x": 0, "y": 0, "width": 1280, "height": 720},
			"children": []any{
				map[string]any{"tag": "#text", "text": "hello"},
				map[string]any{
					"tag":   "input",
					"attrs": map[string]any{"name": "q"},
					"rect":  map[string]any{"width": 200, "height": 30},
				},
			},
		},
	}

	tree, err := DecodeSnapshot(raw)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/", tree.URL)
	assert.Equal(t, "Example", tree.Title)
	assert.Equal(t, "ltr", tree.BodyDirection)
	assert.Equal(t, "html", tree.Root.Tag)
	assert.Equal(t, "en", tree.Root.Attr("lang"))

	require.Len(t, tree.Root.Children, 2)
	assert.True(t, tree.Root.Children[0].IsText())
	assert.Equal(t, "hello", tree.Root.Children[0].Text)

	input := tree.Root.Children[1]
	assert.Equal(t, "input", input.Tag)
	assert.Equal(t, tree.Root, input.Parent)
	assert.Equal(t, 200.0, input.Rect.Width)
}

func TestDecodeSnapshotRejectsEmpty(t *testing.T) {
	_, err := DecodeSnapshot(map[string]any{"url": "x"})
	assert.Error(t, err)
}
