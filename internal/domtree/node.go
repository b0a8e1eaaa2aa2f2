package domtree

import "strings"

// TextTag marks text nodes inside Node.Children.
const TextTag = "#text"

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Node is one element (or text node) of a materialized document tree. The
// analysis engine only ever reads it; providers build it once and hand it over.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Style    map[string]string
	Rect     Rect
	Text     string
	Parent   *Node
	Children []*Node
}

// Tree is the read-only capability surface the engine works against,
// regardless of whether a live browser or a static parser produced it.
type Tree struct {
	Root          *Node
	URL           string
	Title         string
	DocDirection  string
	BodyDirection string
}

func (n *Node) IsText() bool {
	return n.Tag == TextTag
}

func (n *Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}

	return n.Attrs[name]
}

func (n *Node) HasAttr(name string) bool {
	if n.Attrs == nil {
		return false
	}

	_, ok := n.Attrs[name]

	return ok
}

func (n *Node) StyleProp(name string) string {
	if n.Style == nil {
		return ""
	}

	return n.Style[name]
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}

	var sb strings.Builder

	for _, c := range n.Children {
		sb.WriteString(c.TextContent())
	}

	return sb.String()
}

// PrevSibling returns the node immediately before n in its parent, or nil.
func (n *Node) PrevSibling() *Node {
	if n.Parent == nil {
		return nil
	}

	var prev *Node

	for _, c := range n.Parent.Children {
		if c == n {
			return prev
		}

		prev = c
	}

	return nil
}

func (n *Node) NextSibling() *Node {
	if n.Parent == nil {
		return nil
	}

	for i, c := range n.Parent.Children {
		if c == n && i+1 < len(n.Parent.Children) {
			return n.Parent.Children[i+1]
		}
	}

	return nil
}

// Ancestors returns the chain from the node's parent up to the root.
func (n *Node) Ancestors() []*Node {
	var out []*Node

	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}

	return out
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}

	return false
}

// Walk visits the node and every descendant in document order. Returning
// false from the visitor stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.Walk(visit) {
			return false
		}
	}

	return true
}

// FindAll collects descendants (including n itself) matching pred, in
// document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node

	n.Walk(func(cur *Node) bool {
		if !cur.IsText() && pred(cur) {
			out = append(out, cur)
		}

		return true
	})

	return out
}

func (n *Node) ByTag(tag string) []*Node {
	return n.FindAll(func(c *Node) bool {
		return c.Tag == tag
	})
}

func (t *Tree) ByID(id string) *Node {
	if t.Root == nil || id == "" {
		return nil
	}

	var found *Node

	t.Root.Walk(func(cur *Node) bool {
		if !cur.IsText() && cur.Attr("id") == id {
			found = cur

			return false
		}

		return true
	})

	return found
}

// Body returns the body element, or the root when the tree has none.
func (t *Tree) Body() *Node {
	if t.Root == nil {
		return nil
	}

	if nodes := t.Root.ByTag("body"); len(nodes) > 0 {
		return nodes[0]
	}

	return t.Root
}

// VisibleText renders the page text with script/style subtrees dropped,
// suitable for keyword matching.
func (t *Tree) VisibleText() string {
	if t.Root == nil {
		return ""
	}

	var sb strings.Builder

	var render func(n *Node)
	render = func(n *Node) {
		if n.IsText() {
			sb.WriteString(n.Text)
			sb.WriteString(" ")

			return
		}

		if n.Tag == "script" || n.Tag == "style" || n.Tag == "noscript" {
			return
		}

		for _, c := range n.Children {
			render(c)
		}
	}

	render(t.Root)

	return strings.Join(strings.Fields(sb.String()), " ")
}
