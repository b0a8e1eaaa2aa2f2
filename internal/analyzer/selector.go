package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"page-analyzer/internal/domtree"
	"page-analyzer/internal/entity"
	"page-analyzer/pkg/logg"
)

// Tier confidences are contract constants: a selector's score states how
// resilient its source attribute tends to be under markup churn.
const (
	confTestID      = 0.95
	confCypressID   = 0.95
	confStableID    = 0.90
	confName        = 0.85
	confAriaLabel   = 0.80
	confPlaceholder = 0.75
	confRoleText    = 0.65
	confRole        = 0.60
	confClass       = 0.55
	confPosition    = 0.40
	confTagOnly     = 0.20

	maxRoleTextLen = 30
)

var testIDAttrs = []string{"data-testid", "data-test-id", "data-test", "data-qa"}

var interactiveRoles = map[string]bool{
	"button":   true,
	"link":     true,
	"tab":      true,
	"menuitem": true,
	"checkbox": true,
	"radio":    true,
	"switch":   true,
	"option":   true,
}

var (
	simpleIdent  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	utilityClass = regexp.MustCompile(`^-?[a-z]{1,4}-?\d`)
)

// synthesizeSelector runs the strategy waterfall top to bottom and returns the
// first applicable tier's locator. Tier order is total and strict: a higher
// tier wins even when lower tiers would also apply.
func (s *Service) synthesizeSelector(n *domtree.Node) (strategy entity.SelectorStrategy) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("selector synthesis fault, using bare tag",
				zap.String(logg.Tag, n.Tag), zap.Any("panic", r))

			strategy = entity.SelectorStrategy{
				Value:      n.Tag,
				Confidence: confTagOnly,
				Tier:       entity.TierTagOnly,
			}
		}
	}()

	tag := n.Tag

	for _, attr := range testIDAttrs {
		if v := n.Attr(attr); v != "" {
			return entity.SelectorStrategy{
				Value:      fmt.Sprintf(`%s[%s="%s"]`, tag, attr, escapeAttr(v)),
				Confidence: confTestID,
				Tier:       entity.TierTestID,
			}
		}
	}

	if v := n.Attr("data-cy"); v != "" {
		return entity.SelectorStrategy{
			Value:      fmt.Sprintf(`%s[data-cy="%s"]`, tag, escapeAttr(v)),
			Confidence: confCypressID,
			Tier:       entity.TierCypressID,
		}
	}

	if id := n.Attr("id"); id != "" && !s.idPatterns.IsUnstable(id) {
		value := "#" + id
		if !simpleIdent.MatchString(id) {
			value = fmt.Sprintf(`[id="%s"]`, escapeAttr(id))
		}

		return entity.SelectorStrategy{
			Value:      value,
			Confidence: confStableID,
			Tier:       entity.TierStableID,
		}
	}

	if name := n.Attr("name"); name != "" {
		return entity.SelectorStrategy{
			Value:      fmt.Sprintf(`%s[name="%s"]`, tag, escapeAttr(name)),
			Confidence: confName,
			Tier:       entity.TierName,
		}
	}

	if aria := n.Attr("aria-label"); aria != "" {
		return entity.SelectorStrategy{
			Value:      fmt.Sprintf(`%s[aria-label="%s"]`, tag, escapeAttr(aria)),
			Confidence: confAriaLabel,
			Tier:       entity.TierAriaLabel,
		}
	}

	if isInputLike(tag) {
		if placeholder := n.Attr("placeholder"); placeholder != "" {
			typ := n.Attr("type")
			if typ == "" {
				typ = "text"
			}

			return entity.SelectorStrategy{
				Value: fmt.Sprintf(`%s[type="%s"][placeholder="%s"]`,
					tag, escapeAttr(typ), escapeAttr(placeholder)),
				Confidence: confPlaceholder,
				Tier:       entity.TierPlaceholder,
			}
		}
	}

	if role := n.Attr("role"); role != "" {
		text := strings.TrimSpace(n.TextContent())
		if interactiveRoles[role] && text != "" && len(text) <= maxRoleTextLen {
			return entity.SelectorStrategy{
				Value: fmt.Sprintf(`[role="%s"]:has-text("%s")`,
					escapeAttr(role), escapeAttr(text)),
				Confidence: confRoleText,
				Tier:       entity.TierRole,
			}
		}

		return entity.SelectorStrategy{
			Value:      fmt.Sprintf(`[role="%s"]`, escapeAttr(role)),
			Confidence: confRole,
			Tier:       entity.TierRole,
		}
	}

	if class := s.pickClass(n); class != "" {
		return entity.SelectorStrategy{
			Value:      fmt.Sprintf(`%s.%s`, tag, class),
			Confidence: confClass,
			Tier:       entity.TierClass,
		}
	}

	return s.positionalSelector(n)
}

// positionalSelector is the always-applicable last tier: tag plus 1-based
// occurrence index among same-tag siblings.
func (s *Service) positionalSelector(n *domtree.Node) entity.SelectorStrategy {
	index := 1

	if n.Parent != nil {
		for _, sib := range n.Parent.Children {
			if sib == n {
				break
			}

			if sib.Tag == n.Tag {
				index++
			}
		}
	}

	return entity.SelectorStrategy{
		Value:      fmt.Sprintf("%s:nth-of-type(%d)", n.Tag, index),
		Confidence: confPosition,
		Tier:       entity.TierPosition,
	}
}

// pickClass selects a single curated class name. Utility atoms, CSS-in-JS
// hashes, underscore-prefixed and generated-looking names are all excluded.
func (s *Service) pickClass(n *domtree.Node) string {
	for _, class := range strings.Fields(n.Attr("class")) {
		if len(class) < 3 || strings.HasPrefix(class, "_") {
			continue
		}

		if utilityClass.MatchString(class) {
			continue
		}

		if strings.HasPrefix(class, "css-") || strings.HasPrefix(class, "sc-") || strings.HasPrefix(class, "jsx-") {
			continue
		}

		if !simpleIdent.MatchString(class) {
			continue
		}

		if s.idPatterns.IsUnstable(class) {
			continue
		}

		return class
	}

	return ""
}

func isInputLike(tag string) bool {
	return tag == "input" || tag == "textarea" || tag == "select"
}

// escapeAttr makes a value safe to embed inside a double-quoted attribute
// selector fragment.
func escapeAttr(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	v = strings.ReplaceAll(v, "\n", " ")

	return v
}
