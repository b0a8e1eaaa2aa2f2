package analyzer

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"page-analyzer/internal/domtree"
)

// isVisible decides whether a node is meaningfully visible to a user.
// Elements scrolled outside the viewport still count as visible; they can be
// scrolled to. A fault during evaluation defaults to visible so borderline
// elements are included rather than silently dropped.
func (s *Service) isVisible(n *domtree.Node) (visible bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("visibility check fault, defaulting to visible",
				zap.Any("panic", r))

			visible = true
		}
	}()

	if n == nil {
		return false
	}

	if n.Rect.Width == 0 && n.Rect.Height == 0 {
		return false
	}

	if n.StyleProp("display") == "none" || n.StyleProp("visibility") == "hidden" {
		return false
	}

	if opacityIsZero(n.StyleProp("opacity")) {
		return false
	}

	for _, anc := range n.Ancestors() {
		if anc.StyleProp("display") == "none" || anc.StyleProp("visibility") == "hidden" {
			return false
		}
	}

	return true
}

func opacityIsZero(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}

	return f == 0
}
