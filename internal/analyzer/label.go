package analyzer

import (
	"strings"

	"page-analyzer/internal/domtree"
)

const (
	minLooseTextLen = 2
	maxLooseTextLen = 50
)

// resolveLabel finds the best human-readable label for a control through an
// ordered cascade; the first step yielding a non-empty candidate wins. A fault
// inside one step is swallowed and the cascade moves on.
func (s *Service) resolveLabel(tree *domtree.Tree, n *domtree.Node) string {
	steps := []func(*domtree.Tree, *domtree.Node) string{
		labelByFor,
		labelFromWrapper,
		labelFromAriaLabel,
		labelFromAriaLabelledBy,
		labelFromPrevSibling,
		labelAmongSiblings,
		labelFromPrecedingText,
		labelFromTitle,
	}

	for _, step := range steps {
		if text := runLabelStep(step, tree, n); text != "" {
			return text
		}
	}

	return ""
}

func runLabelStep(step func(*domtree.Tree, *domtree.Node) string, tree *domtree.Tree, n *domtree.Node) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	return cleanLabel(step(tree, n))
}

func cleanLabel(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ":")

	return strings.TrimSpace(text)
}

// labelByFor looks for <label for="..."> referencing the control's id.
func labelByFor(tree *domtree.Tree, n *domtree.Node) string {
	id := n.Attr("id")
	if id == "" {
		return ""
	}

	for _, lbl := range tree.Root.ByTag("label") {
		if lbl.Attr("for") == id {
			return lbl.TextContent()
		}
	}

	return ""
}

// labelFromWrapper handles controls nested inside a label element; the
// control's own text is stripped from the wrapper text.
func labelFromWrapper(_ *domtree.Tree, n *domtree.Node) string {
	wrapper := wrappingLabel(n)
	if wrapper == nil {
		return ""
	}

	text := wrapper.TextContent()
	if own := n.TextContent(); own != "" {
		text = strings.Replace(text, own, "", 1)
	}

	return text
}

func wrappingLabel(n *domtree.Node) *domtree.Node {
	for _, anc := range n.Ancestors() {
		if anc.Tag == "label" {
			return anc
		}
	}

	return nil
}

func labelFromAriaLabel(_ *domtree.Tree, n *domtree.Node) string {
	return n.Attr("aria-label")
}

func labelFromAriaLabelledBy(tree *domtree.Tree, n *domtree.Node) string {
	ref := n.Attr("aria-labelledby")
	if ref == "" {
		return ""
	}

	// the attribute may reference several ids; the first resolvable one wins
	for _, id := range strings.Fields(ref) {
		if target := tree.ByID(id); target != nil {
			if text := strings.TrimSpace(target.TextContent()); text != "" {
				return text
			}
		}
	}

	return ""
}

func labelFromPrevSibling(_ *domtree.Tree, n *domtree.Node) string {
	prev := prevElementSibling(n)
	if prev != nil && prev.Tag == "label" {
		return prev.TextContent()
	}

	return ""
}

// labelAmongSiblings scans the control's siblings for a label element,
// skipping any label already consulted as the ancestor wrapper.
func labelAmongSiblings(_ *domtree.Tree, n *domtree.Node) string {
	if n.Parent == nil {
		return ""
	}

	wrapper := wrappingLabel(n)

	for _, sib := range n.Parent.Children {
		if sib == n || sib.IsText() || sib.Tag != "label" || sib == wrapper {
			continue
		}

		if text := strings.TrimSpace(sib.TextContent()); text != "" {
			return text
		}
	}

	return ""
}

// labelFromPrecedingText picks up loose text placed right before the control,
// when it is short enough to plausibly be a caption.
func labelFromPrecedingText(_ *domtree.Tree, n *domtree.Node) string {
	prev := n.PrevSibling()
	if prev == nil || !prev.IsText() {
		return ""
	}

	text := strings.TrimSpace(prev.Text)
	if len(text) < minLooseTextLen || len(text) > maxLooseTextLen {
		return ""
	}

	return text
}

func labelFromTitle(_ *domtree.Tree, n *domtree.Node) string {
	return n.Attr("title")
}

func prevElementSibling(n *domtree.Node) *domtree.Node {
	for prev := n.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		if !prev.IsText() {
			return prev
		}
	}

	return nil
}
