// Package htmlsnap builds dom.Node snapshots from raw HTML.
//
// Static HTML has no layout engine, so geometry is approximated with a
// deterministic vertical flow: every rendered element spans the viewport
// width, leaves get one line height, containers the sum of their children.
// Elements hidden by inline style, the hidden attribute, or a non-rendered
// ancestor (head, hidden inputs) get a zero box and a display:none style.
//
// The approximation is good enough for tests, fixtures, and offline
// analysis of saved pages; live extractions should use the Playwright
// adapter in pkg/browser, which reports real geometry and computed style.
package htmlsnap

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/entrhq/pagegraph/pkg/dom"
)

// Default layout values for the synthetic flow.
const (
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 720.0
	DefaultLineHeight     = 20.0
)

// Options configures snapshot construction.
type Options struct {
	// Viewport is the synthetic page area. Zero means 1280x720.
	Viewport dom.Viewport

	// LineHeight is the height assigned to leaf elements in the synthetic
	// flow. Zero means 20.
	LineHeight float64
}

func (o Options) withDefaults() Options {
	if o.Viewport.Width == 0 && o.Viewport.Height == 0 {
		o.Viewport = dom.Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	if o.LineHeight == 0 {
		o.LineHeight = DefaultLineHeight
	}
	return o
}

// skippedElements are dropped from snapshots entirely: they contribute
// neither nodes nor text. Scripts are special-cased so JSON-LD payloads
// survive for structured-data extraction.
var skippedElements = map[string]bool{
	"style":    true,
	"noscript": true,
	"template": true,
	"embed":    true,
	"object":   true,
}

// Parse reads an HTML document and returns the snapshot root (the <html>
// element), ready for analysis.
func Parse(r io.Reader, opts Options) (*dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	opts = opts.withDefaults()

	rootEl := findRootElement(doc)
	if rootEl == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	root := convert(rootEl)
	layout(root, 0, opts)
	return root, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts Options) (*dom.Node, error) {
	return Parse(strings.NewReader(s), opts)
}

// EffectiveViewport returns the viewport an Options value implies after
// defaulting, for passing along to the analyzer.
func (o Options) EffectiveViewport() dom.Viewport {
	return o.withDefaults().Viewport
}

func findRootElement(doc *html.Node) *html.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// convert turns an element node and its descendants into a dom.Node tree.
// Comments, skipped elements, and non-LD scripts vanish; SVG internals are
// dropped so the svg element itself stays an opaque leaf.
func convert(n *html.Node) *dom.Node {
	tag := strings.ToLower(n.Data)
	node := dom.NewNode(tag)
	for _, attr := range n.Attr {
		node.SetAttr(attr.Key, attr.Val)
	}

	if tag == "svg" || tag == "iframe" || tag == "canvas" {
		node.Text = collectText(n)
		return node
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text.WriteString(c.Data)
		case html.ElementNode:
			childTag := strings.ToLower(c.Data)
			if skippedElements[childTag] {
				continue
			}
			if childTag == "script" && !isJSONLD(c) {
				continue
			}
			child := convert(c)
			node.Kids = append(node.Kids, child)
			text.WriteString(child.Text)
		}
	}
	node.Text = text.String()
	return node
}

func isJSONLD(n *html.Node) bool {
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == "type" && strings.EqualFold(strings.TrimSpace(attr.Val), "application/ld+json") {
			return true
		}
	}
	return false
}

func collectText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else if c.Type == html.ElementNode {
			b.WriteString(collectText(c))
		}
	}
	return b.String()
}

// nonRenderedTags start a zero-box subtree regardless of styling. Scripts
// are here because the kept JSON-LD payloads are data, not rendered content.
var nonRenderedTags = map[string]bool{
	"head":   true,
	"title":  true,
	"meta":   true,
	"link":   true,
	"base":   true,
	"script": true,
}

// layout assigns synthetic geometry in a single vertical flow pass and
// returns the element's computed height. Hidden subtrees get zero boxes and
// keep their authored display:none so the visibility evaluator excludes
// them for the right reason.
func layout(n *dom.Node, y float64, opts Options) float64 {
	n.Style = styleFor(n)

	if n.Style.Display == "none" || nonRenderedTags[n.Tag] || isHiddenInput(n) {
		zeroSubtree(n)
		return 0
	}

	childY := y
	total := 0.0
	for _, child := range n.Kids {
		h := layout(child, childY, opts)
		childY += h
		total += h
	}
	height := total
	if height < opts.LineHeight {
		height = opts.LineHeight
	}

	n.Box = dom.Rect{X: 0, Y: y, Width: opts.Viewport.Width, Height: height}
	return height
}

func zeroSubtree(n *dom.Node) {
	n.Box = dom.Rect{}
	for _, child := range n.Kids {
		// Children keep their own styles but inherit the zero box; an
		// invisible ancestor already stops graph descent.
		child.Style = styleFor(child)
		zeroSubtree(child)
	}
}

func isHiddenInput(n *dom.Node) bool {
	if n.Tag != "input" {
		return false
	}
	return strings.EqualFold(dom.AttrValue(n, "type"), "hidden")
}

// styleFor resolves the style subset from inline styling and the hidden
// attribute, over a neutral visible default.
func styleFor(n *dom.Node) dom.Style {
	style := dom.DefaultStyle()
	if _, ok := dom.Attr(n, "hidden"); ok {
		style.Display = "none"
	}

	inline := dom.AttrValue(n, "style")
	for _, decl := range strings.Split(inline, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.ToLower(strings.TrimSpace(value))
		switch name {
		case "display":
			style.Display = value
		case "visibility":
			style.Visibility = value
		case "opacity":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				style.Opacity = f
			}
		case "z-index":
			style.ZIndex = value
		}
	}
	return style
}
