package browser

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/entrhq/pagegraph/pkg/dom"
)

// extractorJS serializes the rendered element tree in a single page
// evaluation. Geometry and computed style are resolved inside the browser;
// a failed style lookup is flagged per element instead of aborting the
// capture. Text is capped per element to keep payloads bounded on
// pathological pages.
const extractorJS = `
() => {
	const MAX_TEXT = 4000;

	function convert(el) {
		const rect = el.getBoundingClientRect();

		let style = null;
		try {
			const cs = window.getComputedStyle(el);
			style = {
				display: cs.display,
				visibility: cs.visibility,
				opacity: parseFloat(cs.opacity),
				zIndex: cs.zIndex
			};
			if (isNaN(style.opacity)) style.opacity = 1;
		} catch (e) {
			style = null;
		}

		const attrs = [];
		for (const a of el.attributes) {
			attrs.push({ name: a.name, value: a.value });
		}

		const listeners = [];
		if (typeof el.onclick === 'function') listeners.push('click');

		const children = [];
		// Iframe content stays opaque: the embedded document is never
		// descended into.
		if (el.tagName.toLowerCase() !== 'iframe') {
			for (const c of el.children) children.push(convert(c));
		}

		return {
			tag: el.tagName.toLowerCase(),
			attrs: attrs,
			text: (el.textContent || '').substring(0, MAX_TEXT),
			box: { x: rect.x, y: rect.y, width: rect.width, height: rect.height },
			style: style,
			listeners: listeners,
			children: children
		};
	}

	return {
		url: location.href,
		title: document.title,
		viewport: { width: window.innerWidth, height: window.innerHeight },
		root: convert(document.documentElement)
	};
}`

// wireSnapshot mirrors the extractor script's return shape.
type wireSnapshot struct {
	URL      string       `json:"url"`
	Title    string       `json:"title"`
	Viewport dom.Viewport `json:"viewport"`
	Root     *wireNode    `json:"root"`
}

type wireNode struct {
	Tag       string          `json:"tag"`
	Attrs     []dom.Attribute `json:"attrs"`
	Text      string          `json:"text"`
	Box       dom.Rect        `json:"box"`
	Style     *dom.Style      `json:"style"`
	Listeners []string        `json:"listeners"`
	Children  []*wireNode     `json:"children"`
}

// Snapshot captures the current page as an immutable dom.Node tree. It
// waits for network idle first so the capture reflects a stable page.
func (s *Session) Snapshot() (*Snapshot, error) {
	if err := s.WaitForIdle(time.Duration(DefaultTimeout) * time.Millisecond); err != nil {
		return nil, err
	}

	result, err := s.Page.Evaluate(extractorJS)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate extractor script: %w", err)
	}

	wire, err := decodeWireSnapshot(result)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		URL:      wire.URL,
		Title:    wire.Title,
		Viewport: wire.Viewport,
		Root:     wire.Root.toNode(),
	}, nil
}

// decodeWireSnapshot converts the loosely typed evaluation result into the
// wire structs by round-tripping through JSON, the same shape the script
// produced in the page.
func decodeWireSnapshot(result interface{}) (*wireSnapshot, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	var wire wireSnapshot
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot payload: %w", err)
	}
	if wire.Root == nil {
		return nil, fmt.Errorf("snapshot payload has no root element")
	}
	return &wire, nil
}

// toNode converts a wire node subtree into the immutable dom.Node form the
// analyzer consumes. A missing style becomes a StyleErr so the visibility
// evaluator excludes the element fail-safe.
func (w *wireNode) toNode() *dom.Node {
	node := &dom.Node{
		Tag:       w.Tag,
		Attrs:     w.Attrs,
		Text:      w.Text,
		Box:       w.Box,
		Listeners: w.Listeners,
	}
	if w.Style != nil {
		node.Style = *w.Style
	} else {
		node.StyleErr = dom.ErrStyleUnavailable
	}

	for _, child := range w.Children {
		if child == nil {
			continue
		}
		node.Kids = append(node.Kids, child.toNode())
	}
	return node
}
