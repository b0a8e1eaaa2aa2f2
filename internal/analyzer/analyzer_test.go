package analyzer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"page-analyzer/internal/entity"
)

const loginPage = `<html lang="en">
<head><title>Sign in - Example</title></head>
<body>
	<form id="login-form" action="/session" method="post">
		<label for="email">Email</label>
		<input id="email" type="email" name="email" required>
		<label for="password">Password</label>
		<input id="password" type="password" name="password" required>
		<input type="hidden" name="csrf" value="tok">
		<input type="submit" value="Sign in">
	</form>
	<input type="search" name="q" placeholder="Search docs">
	<div role="button">Need help?</div>
	<a href="/forgot">Forgot password?</a>
	<a>No href, skipped</a>
</body>
</html>`

func TestAnalyzeLoginPage(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, loginPage)

	result := svc.Analyze(context.Background(), tree)
	require.NotNil(t, result)

	assert.Equal(t, "https://example.test/page", result.URL)
	assert.Equal(t, "Sign in - Example", result.Title)

	require.Len(t, result.Forms, 1)
	form := result.Forms[0]
	assert.Equal(t, "login-form", form.ID)
	assert.Equal(t, "/session", form.Action)
	assert.Equal(t, "post", form.Method)

	// hidden and submit inputs never appear as fields
	require.Len(t, form.Fields, 2)
	assert.Equal(t, "email", form.Fields[0].Type)
	assert.Equal(t, "Email", form.Fields[0].Label)
	assert.Equal(t, "email", form.Fields[0].VarName)
	assert.True(t, form.Fields[0].Required)
	assert.Equal(t, "#email", form.Fields[0].Selector.Value)
	assert.Equal(t, "password", form.Fields[1].Type)
	assert.Equal(t, "password", form.Fields[1].VarName)

	// form fields and standalone inputs are mutually exclusive
	require.Len(t, result.StandaloneInputs, 1)
	assert.Equal(t, "search", result.StandaloneInputs[0].Type)
	assert.Equal(t, "q", result.StandaloneInputs[0].Name)

	// the submit control and the role=button div are buttons
	require.Len(t, result.Buttons, 2)
	assert.Equal(t, "Sign in", result.Buttons[0].Text)
	assert.Equal(t, "Need help?", result.Buttons[1].Text)

	// anchors without href are dropped
	require.Len(t, result.Links, 1)
	assert.Equal(t, "Forgot password?", result.Links[0].Text)
	assert.Equal(t, "/forgot", result.Links[0].Href)

	assert.True(t, result.Metadata.HasLogin)
	assert.True(t, result.Metadata.HasSearch)
	assert.Equal(t, entity.DirectionLTR, result.Metadata.Direction)
	assert.Equal(t, "en", result.Metadata.Language)
}

func TestAnalyzeSkipsHiddenFields(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><form>
		<input type="text" name="visible">
		<input type="text" name="styled-away" style="display:none">
		<input type="text" name="collapsed" style="width:0;height:0">
	</form></body></html>`)

	result := svc.Analyze(context.Background(), tree)

	require.Len(t, result.Forms, 1)
	require.Len(t, result.Forms[0].Fields, 1)
	assert.Equal(t, "visible", result.Forms[0].Fields[0].Name)
}

func TestAnalyzeVarNameCollisions(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body>
		<input type="text" aria-label="Email">
		<input type="text" aria-label="Email">
		<input type="text" aria-label="Email">
	</body></html>`)

	result := svc.Analyze(context.Background(), tree)

	require.Len(t, result.StandaloneInputs, 3)
	assert.Equal(t, "email", result.StandaloneInputs[0].VarName)
	assert.Equal(t, "email_1", result.StandaloneInputs[1].VarName)
	assert.Equal(t, "email_2", result.StandaloneInputs[2].VarName)
}

func TestAnalyzeLinkCap(t *testing.T) {
	svc := newTestService(t)

	var sb strings.Builder
	sb.WriteString(`<html><body>`)
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, `<a href="/p/%d">Page %d</a>`, i, i)
	}
	sb.WriteString(`</body></html>`)

	result := svc.Analyze(context.Background(), parseTree(t, sb.String()))

	assert.Len(t, result.Links, 20)
	assert.Equal(t, "/p/0", result.Links[0].Href)
}

func TestAnalyzeNilTree(t *testing.T) {
	svc := newTestService(t)

	result := svc.Analyze(context.Background(), nil)

	require.NotNil(t, result)
	assert.Empty(t, result.URL)
	assert.Empty(t, result.Forms)
	assert.Equal(t, entity.DirectionLTR, result.Metadata.Direction)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, loginPage)

	first := svc.Analyze(context.Background(), tree)
	second := svc.Analyze(context.Background(), tree)

	require.Equal(t, first, second)
}

func TestAnalyzeEmptyForm(t *testing.T) {
	svc := newTestService(t)
	tree := parseTree(t, `<html><body><form id="ghost"></form></body></html>`)

	result := svc.Analyze(context.Background(), tree)

	// the form itself is still catalogued, with no fields
	require.Len(t, result.Forms, 1)
	assert.Equal(t, "ghost", result.Forms[0].ID)
	assert.Empty(t, result.Forms[0].Fields)
}
