package analyzer

import (
	"fmt"
	"strings"

	"page-analyzer/internal/entity"
)

// RenderText produces the condensed plain-text rendering consumed by the
// text-generation collaborator. Empty sections are omitted entirely;
// detection lines appear only when their flag is set.
func (s *Service) RenderText(result *entity.PageAnalysisResult) string {
	if result == nil {
		return ""
	}

	limit := s.config.AnalyzerConfig.RenderLimit

	var sb strings.Builder

	fmt.Fprintf(&sb, "URL: %s\n", result.URL)
	fmt.Fprintf(&sb, "Title: %s\n", result.Title)

	if len(result.Forms) > 0 {
		fmt.Fprintf(&sb, "\nForms (%d):\n", len(result.Forms))

		for i, form := range result.Forms {
			if form.ID != "" {
				fmt.Fprintf(&sb, "  Form %d (id=%q):\n", i+1, form.ID)
			} else {
				fmt.Fprintf(&sb, "  Form %d:\n", i+1)
			}

			for _, field := range form.Fields {
				sb.WriteString(renderField(field))
			}
		}
	}

	if len(result.StandaloneInputs) > 0 {
		fmt.Fprintf(&sb, "\nStandalone Inputs (%d):\n", len(result.StandaloneInputs))

		for _, field := range result.StandaloneInputs {
			sb.WriteString(renderField(field))
		}
	}

	if len(result.Buttons) > 0 {
		fmt.Fprintf(&sb, "\nButtons (%d):\n", len(result.Buttons))

		for i, button := range result.Buttons {
			if i >= limit {
				break
			}

			fmt.Fprintf(&sb, "  - %q [%s] (%.0f%% confidence)\n",
				button.Text, button.Selector.Value, button.Selector.Confidence*100)
		}
	}

	if len(result.Links) > 0 {
		fmt.Fprintf(&sb, "\nLinks (%d):\n", len(result.Links))

		for i, link := range result.Links {
			if i >= limit {
				break
			}

			fmt.Fprintf(&sb, "  - %q -> %s\n", link.Text, link.Href)
		}
	}

	sb.WriteString("\n")

	if result.Metadata.HasLogin {
		sb.WriteString("Detected: Login page\n")
	}

	if result.Metadata.HasSignup {
		sb.WriteString("Detected: Signup page\n")
	}

	if result.Metadata.HasSearch {
		sb.WriteString("Detected: Search functionality\n")
	}

	if result.Metadata.HasCheckout {
		sb.WriteString("Detected: Checkout/Payment page\n")
	}

	direction := strings.ToUpper(string(result.Metadata.Direction))

	if result.Metadata.Language != "" {
		fmt.Fprintf(&sb, "Page Direction: %s (%s)\n", direction, result.Metadata.Language)
	} else {
		fmt.Fprintf(&sb, "Page Direction: %s\n", direction)
	}

	return sb.String()
}

func renderField(field entity.ElementRecord) string {
	label := field.Label
	if label == "" {
		label = field.VarName
	}

	line := fmt.Sprintf("    - %s: %s [%s] (%.0f%% confidence)",
		field.Type, label, field.Selector.Value, field.Selector.Confidence*100)

	if field.Required {
		line += " *required"
	}

	return line + "\n"
}
