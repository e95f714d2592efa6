package htmlsnap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/pagegraph/pkg/dom"
)

func findByTag(root *dom.Node, tag string) *dom.Node {
	if root.Tag == tag {
		return root
	}
	for _, k := range root.Kids {
		if found := findByTag(k, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestParseBasicDocument(t *testing.T) {
	root, err := ParseString(`<html><head><title>Shop</title></head><body>
		<h1>Welcome</h1>
		<p>Browse our products.</p>
	</body></html>`, Options{})
	require.NoError(t, err)

	assert.Equal(t, "html", root.Tag)

	head := findByTag(root, "head")
	require.NotNil(t, head)
	assert.Equal(t, dom.Rect{}, head.Box, "head must not occupy layout space")

	h1 := findByTag(root, "h1")
	require.NotNil(t, h1)
	assert.Equal(t, "Welcome", h1.Text)
	assert.Equal(t, DefaultViewportWidth, h1.Box.Width)
	assert.Equal(t, DefaultLineHeight, h1.Box.Height)
}

func TestParseVerticalFlow(t *testing.T) {
	root, err := ParseString(`<html><body>
		<p>one</p>
		<p>two</p>
		<div><p>three</p><p>four</p></div>
	</body></html>`, Options{})
	require.NoError(t, err)

	body := findByTag(root, "body")
	require.NotNil(t, body)
	require.Len(t, body.Kids, 3)

	kids := body.Kids
	assert.Equal(t, 0.0, kids[0].Box.Y)
	assert.Equal(t, DefaultLineHeight, kids[1].Box.Y)
	assert.Equal(t, 2*DefaultLineHeight, kids[2].Box.Y)

	// The container is as tall as its children combined.
	assert.Equal(t, 2*DefaultLineHeight, kids[2].Box.Height)
	assert.Equal(t, 4*DefaultLineHeight, body.Box.Height)
}

func TestParseHiddenStyling(t *testing.T) {
	root, err := ParseString(`<html><body>
		<div style="display: none"><p>gone</p></div>
		<div hidden>also gone</div>
		<input type="hidden" name="csrf" value="tok123abc">
		<p style="visibility: hidden">kept in flow</p>
		<p style="opacity: 0.5">translucent</p>
	</body></html>`, Options{})
	require.NoError(t, err)

	body := findByTag(root, "body")
	require.NotNil(t, body)

	divs := []*dom.Node{}
	for _, k := range body.Kids {
		if k.Tag == "div" {
			divs = append(divs, k)
		}
	}
	require.Len(t, divs, 2)
	assert.Equal(t, "none", divs[0].Style.Display)
	assert.Equal(t, dom.Rect{}, divs[0].Box)
	assert.Equal(t, dom.Rect{}, divs[0].Kids[0].Box)
	assert.Equal(t, "none", divs[1].Style.Display)

	input := findByTag(root, "input")
	require.NotNil(t, input)
	assert.Equal(t, dom.Rect{}, input.Box)

	var ps []*dom.Node
	for _, k := range body.Kids {
		if k.Tag == "p" {
			ps = append(ps, k)
		}
	}
	require.Len(t, ps, 2)
	assert.Equal(t, "hidden", ps[0].Style.Visibility)
	assert.NotEqual(t, dom.Rect{}, ps[0].Box, "visibility:hidden keeps its box")
	assert.Equal(t, 0.5, ps[1].Style.Opacity)
}

func TestParseSkipsNonContent(t *testing.T) {
	root, err := ParseString(`<html><body>
		<style>p { color: red }</style>
		<script>console.log("app")</script>
		<script type="application/ld+json">{"@type":"Product"}</script>
		<noscript>enable js</noscript>
		<p>content</p>
	</body></html>`, Options{})
	require.NoError(t, err)

	assert.Nil(t, findByTag(root, "style"))
	assert.Nil(t, findByTag(root, "noscript"))

	script := findByTag(root, "script")
	require.NotNil(t, script, "JSON-LD script must survive")
	assert.Contains(t, script.Text, `"@type":"Product"`)
	assert.Equal(t, dom.Rect{}, script.Box, "JSON-LD payload must not occupy layout space")

	body := findByTag(root, "body")
	require.NotNil(t, body)
	assert.NotContains(t, body.Text, "console.log")
	assert.Contains(t, body.Text, "content")
}

func TestParseOpaqueLeaves(t *testing.T) {
	root, err := ParseString(`<html><body>
		<svg><circle r="5"></circle></svg>
		<iframe src="https://other.example.com"><p>fallback</p></iframe>
	</body></html>`, Options{})
	require.NoError(t, err)

	svg := findByTag(root, "svg")
	require.NotNil(t, svg)
	assert.Empty(t, svg.Kids)

	frame := findByTag(root, "iframe")
	require.NotNil(t, frame)
	assert.Empty(t, frame.Kids)
	assert.Equal(t, "https://other.example.com", dom.AttrValue(frame, "src"))
}

func TestParseCustomViewport(t *testing.T) {
	opts := Options{Viewport: dom.Viewport{Width: 400, Height: 800}, LineHeight: 16}
	root, err := ParseString(`<html><body><p>hi</p></body></html>`, opts)
	require.NoError(t, err)

	p := findByTag(root, "p")
	require.NotNil(t, p)
	assert.Equal(t, 400.0, p.Box.Width)
	assert.Equal(t, 16.0, p.Box.Height)

	assert.Equal(t, dom.Viewport{Width: 400, Height: 800}, opts.EffectiveViewport())
}

func TestParseDeterministic(t *testing.T) {
	page := `<html><body><div><a href="/x">x</a></div><p>y</p></body></html>`

	a, err := ParseString(page, Options{})
	require.NoError(t, err)
	b, err := Parse(strings.NewReader(page), Options{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
