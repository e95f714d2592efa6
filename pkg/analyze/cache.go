package analyze

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/entrhq/pagegraph/pkg/dom"
	"github.com/entrhq/pagegraph/pkg/graph"
)

// cacheEntry memoizes the per-element computations several pipeline stages
// need: resolved style, geometry, and the derived flags.
type cacheEntry struct {
	style    dom.Style
	styleErr error
	box      dom.Rect

	visible     bool
	sensitive   bool
	interactive bool
	elemType    graph.ElementType

	hasFlags bool
}

// runCache is the per-run memoization store, keyed by element identity. It
// is constructed fresh at the start of every extraction call and becomes
// unreachable when the call returns, so no data can leak between unrelated
// pages or sessions. The LRU bound keeps pathological documents from
// hoarding memory; evicted entries are simply recomputed.
type runCache struct {
	entries  *lru.Cache[dom.Element, *cacheEntry]
	viewport dom.Viewport
}

func newRunCache(size int, vp dom.Viewport) *runCache {
	// lru.New only fails for non-positive sizes, which Options defaulting
	// already rules out.
	entries, _ := lru.New[dom.Element, *cacheEntry](size)
	return &runCache{entries: entries, viewport: vp}
}

// entry returns the memo for el, creating it on first access. Style and
// geometry are read once per element; a failed style lookup is remembered so
// the fail-safe "not visible" decision stays consistent within the pass.
func (c *runCache) entry(el dom.Element) *cacheEntry {
	if e, ok := c.entries.Get(el); ok {
		return e
	}
	e := &cacheEntry{box: el.BoundingBox()}
	e.style, e.styleErr = el.ComputedStyle()
	c.entries.Add(el, e)
	return e
}

// flags computes and memoizes the derived per-element flags.
func (c *runCache) flags(el dom.Element) *cacheEntry {
	e := c.entry(el)
	if e.hasFlags {
		return e
	}
	e.visible = e.styleErr == nil && IsVisible(e.box, e.style, c.viewport)
	e.sensitive = IsSensitive(el)
	e.interactive = IsInteractive(el)
	e.elemType = Classify(el)
	e.hasFlags = true
	return e
}
