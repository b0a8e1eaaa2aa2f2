package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"page-analyzer/internal/entity"
)

func TestRenderTextFullPage(t *testing.T) {
	svc := newTestService(t)

	result := &entity.PageAnalysisResult{
		URL:   "https://shop.test/login",
		Title: "Sign in",
		Forms: []entity.FormRecord{{
			ID: "login-form",
			Fields: []entity.ElementRecord{
				{
					Kind:     entity.ElementKindInput,
					Type:     "email",
					Label:    "Email",
					Required: true,
					Selector: entity.SelectorStrategy{Value: "#email", Confidence: 0.90, Tier: entity.TierStableID},
				},
				{
					Kind:     entity.ElementKindInput,
					Type:     "password",
					VarName:  "password",
					Selector: entity.SelectorStrategy{Value: `input[name="password"]`, Confidence: 0.85, Tier: entity.TierName},
				},
			},
		}},
		Buttons: []entity.ElementRecord{{
			Kind:     entity.ElementKindButton,
			Text:     "Sign in",
			Selector: entity.SelectorStrategy{Value: "button.submit-button", Confidence: 0.55, Tier: entity.TierClass},
		}},
		Links: []entity.ElementRecord{{
			Kind: entity.ElementKindLink,
			Text: "Forgot password?",
			Href: "/forgot",
		}},
		Metadata: entity.Metadata{
			HasLogin:  true,
			Direction: entity.DirectionLTR,
			Language:  "en",
		},
	}

	text := svc.RenderText(result)

	assert.Contains(t, text, "URL: https://shop.test/login\n")
	assert.Contains(t, text, "Title: Sign in\n")
	assert.Contains(t, text, "Forms (1):\n")
	assert.Contains(t, text, `  Form 1 (id="login-form"):`)
	assert.Contains(t, text, "    - email: Email [#email] (90% confidence) *required\n")
	assert.Contains(t, text, `    - password: password [input[name="password"]] (85% confidence)`+"\n")
	assert.Contains(t, text, "Buttons (1):\n")
	assert.Contains(t, text, `  - "Sign in" [button.submit-button] (55% confidence)`+"\n")
	assert.Contains(t, text, "Links (1):\n")
	assert.Contains(t, text, `  - "Forgot password?" -> /forgot`+"\n")
	assert.Contains(t, text, "Detected: Login page\n")
	assert.Contains(t, text, "Page Direction: LTR (en)\n")

	assert.NotContains(t, text, "Standalone Inputs")
	assert.NotContains(t, text, "Detected: Signup page")
	assert.NotContains(t, text, "Detected: Checkout/Payment page")
}

func TestRenderTextOmitsEmptySections(t *testing.T) {
	svc := newTestService(t)

	text := svc.RenderText(&entity.PageAnalysisResult{
		URL:      "https://example.test/",
		Title:    "Empty",
		Metadata: entity.Metadata{Direction: entity.DirectionRTL, Language: "ar"},
	})

	assert.NotContains(t, text, "Forms")
	assert.NotContains(t, text, "Buttons")
	assert.NotContains(t, text, "Links")
	assert.NotContains(t, text, "Detected:")
	assert.Contains(t, text, "Page Direction: RTL (ar)\n")
}

func TestRenderTextAnonymousForm(t *testing.T) {
	svc := newTestService(t)

	text := svc.RenderText(&entity.PageAnalysisResult{
		Forms:    []entity.FormRecord{{}},
		Metadata: entity.Metadata{Direction: entity.DirectionLTR},
	})

	assert.Contains(t, text, "  Form 1:\n")
	assert.Contains(t, text, "Page Direction: LTR\n")
}

func TestRenderTextCapsButtonsAndLinks(t *testing.T) {
	svc := newTestService(t)

	result := &entity.PageAnalysisResult{Metadata: entity.Metadata{Direction: entity.DirectionLTR}}
	for i := 0; i < 12; i++ {
		result.Buttons = append(result.Buttons, entity.ElementRecord{
			Kind: entity.ElementKindButton,
			Text: fmt.Sprintf("Button %d", i),
		})
		result.Links = append(result.Links, entity.ElementRecord{
			Kind: entity.ElementKindLink,
			Text: fmt.Sprintf("Link %d", i),
			Href: fmt.Sprintf("/l/%d", i),
		})
	}

	text := svc.RenderText(result)

	// headers carry the real totals, bodies stop at the render cap
	assert.Contains(t, text, "Buttons (12):\n")
	assert.Contains(t, text, "Links (12):\n")
	assert.Equal(t, 10, strings.Count(text, `  - "Button`))
	assert.Equal(t, 10, strings.Count(text, `  - "Link`))
	assert.NotContains(t, text, `"Button 10"`)
}

func TestRenderTextNilResult(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "", svc.RenderText(nil))
}
