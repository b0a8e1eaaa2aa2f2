package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLabelByFor(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body>
		<label for="e1">Email</label>
		<input id="e1" type="email">
	</body></html>`)

	assert.Equal(t, "Email", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelWrapper(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body>
		<label>Remember me <input type="checkbox"></label>
	</body></html>`)

	assert.Equal(t, "Remember me", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelAria(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body>
		<input type="search" aria-label="Search products">
	</body></html>`)

	assert.Equal(t, "Search products", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelAriaLabelledBy(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body>
		<span id="ph-caption">Phone number</span>
		<input type="tel" aria-labelledby="missing ph-caption">
	</body></html>`)

	assert.Equal(t, "Phone number", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelPrevSibling(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><div>
		<label>Password:</label>
		<input type="password">
	</div></body></html>`)

	// trailing colon is stripped
	assert.Equal(t, "Password", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelAmongSiblings(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><div>
		<input type="text">
		<span>hint</span>
		<label>Username</label>
	</div></body></html>`)

	assert.Equal(t, "Username", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelPrecedingText(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><div>City <input type="text"></div></body></html>`)

	assert.Equal(t, "City", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelTitle(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><input type="text" title="Tax code"></body></html>`)

	assert.Equal(t, "Tax code", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelPrecedence(t *testing.T) {
	svc := newTestService(t)
	// an explicit for-association beats the aria-label on the control itself
	tree := parseTree(t, `<html><body>
		<label for="f1">From label</label>
		<input id="f1" aria-label="From aria" title="From title">
	</body></html>`)

	assert.Equal(t, "From label", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelNone(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><input type="text"></body></html>`)

	assert.Equal(t, "", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}

func TestResolveLabelIgnoresLongLooseText(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><div>
		This is a very long paragraph of explanatory text that should never be mistaken for a field caption
		<input type="text">
	</div></body></html>`)

	assert.Equal(t, "", svc.resolveLabel(tree, firstByTag(t, tree, "input")))
}
