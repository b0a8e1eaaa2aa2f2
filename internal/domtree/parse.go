package domtree

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"page-analyzer/pkg/apperr"
)

// Static HTML carries no layout, so parsed elements get a nominal rect unless
// an inline width/height collapses them to zero.
const (
	defaultWidth  = 120
	defaultHeight = 24
)

// ParseHTML builds a Tree from a static HTML document. Inline style
// declarations stand in for computed style; the hidden attribute maps to
// display:none.
func ParseHTML(r io.Reader, url string) (*Tree, error) {
	const op = "ParseHTML"

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, apperr.Wrap(op, apperr.CodeParseFailed, err, map[string]any{
			apperr.MetaReason: "html_parse_failed",
			apperr.MetaStage:  apperr.StageParse,
			apperr.MetaURL:    url,
		})
	}

	tree := &Tree{
		URL:   url,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	if root := doc.Find("html").First(); root.Length() > 0 {
		tree.Root = convert(root.Get(0), nil)
	} else if len(doc.Nodes) > 0 {
		tree.Root = convert(doc.Nodes[0], nil)
	}

	if tree.Root == nil {
		return nil, apperr.WrapErrorWithReason(op, apperr.CodeParseFailed, "empty_document")
	}

	if body := tree.Body(); body != nil {
		tree.BodyDirection = body.StyleProp("direction")
		if tree.BodyDirection == "" {
			tree.BodyDirection = body.Attr("dir")
		}
	}

	tree.DocDirection = tree.Root.Attr("dir")

	return tree, nil
}

func convert(src *html.Node, parent *Node) *Node {
	switch src.Type {
	case html.TextNode:
		text := strings.TrimSpace(src.Data)
		if text == "" {
			return nil
		}

		return &Node{Tag: TextTag, Text: text, Parent: parent}
	case html.ElementNode:
		// fall through
	default:
		return nil
	}

	n := &Node{
		Tag:    strings.ToLower(src.Data),
		Attrs:  make(map[string]string, len(src.Attr)),
		Parent: parent,
	}

	for _, a := range src.Attr {
		n.Attrs[strings.ToLower(a.Key)] = a.Val
	}

	n.Style = parseInlineStyle(n.Attrs["style"])

	if n.HasAttr("hidden") {
		n.Style["display"] = "none"
	}

	n.Rect = rectFromStyle(n.Style)

	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c, n); child != nil {
			n.Children = append(n.Children, child)
		}
	}

	return n
}

func parseInlineStyle(style string) map[string]string {
	out := make(map[string]string)

	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}

		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.ToLower(strings.TrimSpace(value))

		if name != "" && value != "" {
			out[name] = value
		}
	}

	return out
}

func rectFromStyle(style map[string]string) Rect {
	rect := Rect{Width: defaultWidth, Height: defaultHeight}

	if w, ok := stylePixels(style["width"]); ok {
		rect.Width = w
	}

	if h, ok := stylePixels(style["height"]); ok {
		rect.Height = h
	}

	return rect
}

func stylePixels(value string) (float64, bool) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	if value == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
