package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVisibleDefaults(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><input name="email"></body></html>`)

	assert.True(t, svc.isVisible(firstByTag(t, tree, "input")))
}

func TestIsVisibleRejectsZeroSize(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><input style="width:0;height:0"></body></html>`)

	assert.False(t, svc.isVisible(firstByTag(t, tree, "input")))
}

func TestIsVisibleRejectsOwnStyles(t *testing.T) {
	svc := newTestService(t)

	cases := map[string]string{
		"display none":      `<input style="display:none">`,
		"visibility hidden": `<input style="visibility:hidden">`,
		"zero opacity":      `<input style="opacity:0">`,
		"hidden attribute":  `<input hidden>`,
	}

	for name, markup := range cases {
		t.Run(name, func(t *testing.T) {
			tree := parseTree(t, `<html><body>`+markup+`</body></html>`)
			assert.False(t, svc.isVisible(firstByTag(t, tree, "input")))
		})
	}
}

func TestIsVisibleInheritsHiddenAncestor(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body>
		<div style="display:none"><input name="inside"></div>
		<div><input name="outside"></div>
	</body></html>`)

	inputs := tree.Root.ByTag("input")
	assert.Len(t, inputs, 2)
	assert.False(t, svc.isVisible(inputs[0]))
	assert.True(t, svc.isVisible(inputs[1]))
}

func TestIsVisibleKeepsOffscreenElements(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><input style="position:absolute;left:-9999px"></body></html>`)

	// scrolled or positioned off-screen still counts as visible
	assert.True(t, svc.isVisible(firstByTag(t, tree, "input")))
}

func TestIsVisibleNilNode(t *testing.T) {
	svc := newTestService(t)

	assert.False(t, svc.isVisible(nil))
}

func TestOpacityIsZero(t *testing.T) {
	assert.True(t, opacityIsZero("0"))
	assert.True(t, opacityIsZero("0.0"))
	assert.False(t, opacityIsZero("0.5"))
	assert.False(t, opacityIsZero(""))
	assert.False(t, opacityIsZero("garbage"))
}
