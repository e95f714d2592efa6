package analyze

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/entrhq/pagegraph/pkg/dom"
	"github.com/entrhq/pagegraph/pkg/graph"
	"github.com/entrhq/pagegraph/pkg/logging"
)

// Default values for analyzer options.
const (
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 720.0
	DefaultMaxTextLength  = 200
	DefaultCacheSize      = 4096
)

// Options configures an Analyzer.
type Options struct {
	// Viewport is the visible page area used for visibility and scoring.
	// Zero means the default 1280x720.
	Viewport dom.Viewport

	// Weights is the scoring policy. The zero value means DefaultWeights.
	Weights Weights

	// MaxTextLength caps the text stored per node. Zero means default.
	MaxTextLength int

	// CacheSize bounds the per-run memoization cache. Zero means default.
	CacheSize int

	// Logger receives traversal statistics. Optional.
	Logger *logging.Logger
}

// Analyzer assembles ActionGraphs from document snapshots. It holds no
// per-extraction state: every Extract call builds its own cache and result,
// so one Analyzer can serve many concurrent calls as long as each call gets
// its own snapshot.
type Analyzer struct {
	opts Options
}

// New creates an Analyzer, applying defaults for unset options.
func New(opts Options) *Analyzer {
	if opts.Viewport.Width == 0 && opts.Viewport.Height == 0 {
		opts.Viewport = dom.Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights()
	}
	if opts.MaxTextLength == 0 {
		opts.MaxTextLength = DefaultMaxTextLength
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	return &Analyzer{opts: opts}
}

// Extract performs one depth-first pass over the snapshot rooted at root and
// returns the assembled ActionGraph. The only error condition is a missing
// root handle; all malformed content inside the tree is skipped locally.
//
// Subtrees below an element that is itself not visible are pruned entirely,
// including descendants that might be independently visible (such as an
// absolutely positioned child of an invisible wrapper). This mirrors the
// extraction semantics downstream executors rely on: what the graph
// excludes, the agent does not act on.
func (a *Analyzer) Extract(root dom.Element, pageURL string) (*graph.ActionGraph, error) {
	if root == nil {
		return nil, ErrInvalidRoot
	}

	r := &run{
		cache:   newRunCache(a.opts.CacheSize, a.opts.Viewport),
		opts:    a.opts,
		root:    root,
		started: time.Now(),
	}

	node, actions := r.visit(root, "e0", nil, false)

	g := &graph.ActionGraph{
		URL:   pageURL,
		Nodes: []graph.ElementNode{},
		Edges: actions,
	}
	if node != nil {
		g.Nodes = append(g.Nodes, *node)
	}
	if g.Edges == nil {
		g.Edges = []graph.Action{}
	}

	nodeCount := 0
	g.WalkNodes(func(*graph.ElementNode) bool {
		nodeCount++
		return true
	})

	g.Metadata = map[string]interface{}{
		"runId":       uuid.New().String(),
		"extractedAt": r.started.UTC().Format(time.RFC3339),
		"nodeCount":   nodeCount,
		"actionCount": len(g.Edges),
		"viewport": map[string]float64{
			"width":  a.opts.Viewport.Width,
			"height": a.opts.Viewport.Height,
		},
	}

	if a.opts.Logger != nil {
		a.opts.Logger.Debugf("extracted %d nodes and %d actions from %s in %s",
			nodeCount, len(g.Edges), pageURL, time.Since(r.started))
	}

	return g, nil
}

// run carries the state of one extraction pass. It is created per call and
// discarded with it; nothing here outlives the pass.
type run struct {
	cache   *runCache
	opts    Options
	root    dom.Element
	started time.Time
}

// visit analyzes one element and its subtree. It returns the element's node
// and the actions accumulated below it, or (nil, nil) when the element is
// skipped. The function is pure with respect to the run: it mutates nothing
// shared, composing results bottom-up.
func (r *run) visit(el dom.Element, id string, ancestors []dom.Element, landmark bool) (*graph.ElementNode, []graph.Action) {
	if el == nil || el.TagName() == "" {
		// Malformed element: skip the subtree, siblings continue.
		return nil, nil
	}

	f := r.cache.flags(el)
	if !f.visible {
		return nil, nil
	}

	node := &graph.ElementNode{
		ID:            id,
		Type:          f.elemType,
		Tag:           strings.ToLower(el.TagName()),
		Text:          truncate(strings.TrimSpace(el.TextContent()), r.opts.MaxTextLength),
		Attributes:    attributeMap(el),
		BoundingBox:   graph.BoundingBox(f.box),
		IsVisible:     true,
		IsInteractive: f.interactive,
		IsSensitive:   f.sensitive,
		Selector:      BuildSelector(el, ancestors, r.root),
	}
	node.Score = Score(el, true, f.interactive, landmark, r.cache.viewport, r.opts.Weights)

	// Redaction covers the node itself, not just its actions.
	if f.sensitive {
		delete(node.Attributes, "value")
	}

	actions := SynthesizeActions(el, node)

	// Iframe boundaries are not crossed: the frame is an opaque leaf and
	// nothing from the embedded document appears in the graph.
	if f.elemType == graph.TypeIframe {
		return node, actions
	}

	childAncestors := make([]dom.Element, len(ancestors)+1)
	copy(childAncestors, ancestors)
	childAncestors[len(ancestors)] = el
	childLandmark := landmark || IsLandmark(el)

	for i, child := range el.Children() {
		childNode, childActions := r.visit(child, fmt.Sprintf("%s.%d", id, i), childAncestors, childLandmark)
		if childNode == nil {
			continue
		}
		node.Children = append(node.Children, *childNode)
		actions = append(actions, childActions...)
	}

	return node, actions
}

// attributeMap copies the authored attributes into the node, keeping key
// case as authored. On duplicate names the last occurrence wins.
func attributeMap(el dom.Element) map[string]string {
	attrs := el.Attributes()
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value
	}
	return m
}
