package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/pagegraph/pkg/dom"
	"github.com/entrhq/pagegraph/pkg/graph"
)

// countingElement wraps a Node and counts style lookups so memoization can
// be observed from outside.
type countingElement struct {
	*dom.Node
	styleCalls int
}

func (c *countingElement) ComputedStyle() (dom.Style, error) {
	c.styleCalls++
	return c.Node.ComputedStyle()
}

func TestRunCacheMemoizesStyle(t *testing.T) {
	el := &countingElement{Node: dom.NewNode("button")}
	el.Box = dom.Rect{X: 0, Y: 0, Width: 100, Height: 40}

	cache := newRunCache(16, dom.Viewport{Width: 1280, Height: 720})

	cache.entry(el)
	cache.flags(el)
	cache.flags(el)

	assert.Equal(t, 1, el.styleCalls)
}

func TestRunCacheKeysByIdentity(t *testing.T) {
	// Two structurally identical elements are distinct cache entries.
	a := &countingElement{Node: dom.NewNode("button")}
	b := &countingElement{Node: dom.NewNode("button")}
	a.Box = dom.Rect{Width: 100, Height: 40}
	b.Box = dom.Rect{Width: 100, Height: 40}

	cache := newRunCache(16, dom.Viewport{Width: 1280, Height: 720})
	cache.flags(a)
	cache.flags(b)

	assert.Equal(t, 1, a.styleCalls)
	assert.Equal(t, 1, b.styleCalls)
}

func TestRunCacheFlags(t *testing.T) {
	el := dom.NewNode("input").SetAttr("type", "password")
	el.Box = dom.Rect{X: 0, Y: 10, Width: 200, Height: 30}

	cache := newRunCache(16, dom.Viewport{Width: 1280, Height: 720})
	f := cache.flags(el)

	assert.True(t, f.visible)
	assert.True(t, f.interactive)
	assert.True(t, f.sensitive)
	assert.Equal(t, graph.TypeInput, f.elemType)
}

func TestRunCacheStyleErrorMeansNotVisible(t *testing.T) {
	el := dom.NewNode("div")
	el.Box = dom.Rect{Width: 100, Height: 40}
	el.StyleErr = dom.ErrStyleUnavailable

	cache := newRunCache(16, dom.Viewport{Width: 1280, Height: 720})
	f := cache.flags(el)

	assert.False(t, f.visible)
}

func TestRunCacheEvictionRecomputes(t *testing.T) {
	cache := newRunCache(1, dom.Viewport{Width: 1280, Height: 720})

	a := &countingElement{Node: dom.NewNode("div")}
	b := &countingElement{Node: dom.NewNode("div")}
	a.Box = dom.Rect{Width: 10, Height: 10}
	b.Box = dom.Rect{Width: 10, Height: 10}

	cache.entry(a)
	cache.entry(b) // evicts a
	cache.entry(a)

	assert.Equal(t, 2, a.styleCalls)
	assert.Equal(t, 1, b.styleCalls)
}
