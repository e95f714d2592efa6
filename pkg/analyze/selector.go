package analyze

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/entrhq/pagegraph/pkg/dom"
)

// commonIDs are ids too generic to be trusted as unique anchors.
var commonIDs = map[string]bool{
	"content": true,
	"main":    true,
	"header":  true,
	"footer":  true,
	"nav":     true,
	"menu":    true,
}

// utilityClasses are class tokens that carry layout or state rather than
// identity. Matching is substring-based, so "btn-primary" is filtered too.
var utilityClasses = []string{
	"container", "wrapper", "row", "col", "btn", "button",
	"active", "disabled", "hidden", "visible", "flex", "grid",
}

// volatileClassGlobs match generated class names (CSS-in-JS, scoped styles)
// that change between builds and would break re-location.
var volatileClassGlobs = []glob.Glob{
	glob.MustCompile("css-*"),
	glob.MustCompile("sc-*"),
	glob.MustCompile("jss*"),
	glob.MustCompile("svelte-*"),
	glob.MustCompile("astro-*"),
}

// segment is one level of a generated selector path.
type segment struct {
	tag   string
	class string // chosen class token, empty if none usable
	nth   int    // 1-based position among parent's element children, 0 if unused
}

func (s segment) String() string {
	var b strings.Builder
	b.WriteString(s.tag)
	if s.class != "" {
		b.WriteString(".")
		b.WriteString(s.class)
	}
	if s.nth > 0 {
		fmt.Fprintf(&b, ":nth-child(%d)", s.nth)
	}
	return b.String()
}

// BuildSelector synthesizes a selector string that re-locates el within the
// document rooted at root. ancestors is el's ancestor chain, outermost
// first, ending with el's direct parent.
//
// Strategy: a stable id attribute wins outright. Otherwise path segments of
// tag + class (+ positional disambiguator when same-shaped siblings exist)
// are prepended one ancestor at a time until the path matches exactly one
// element. If no combination is unique the full structural path from the
// root is emitted instead; that path is unique by construction, so the
// generator never fails.
func BuildSelector(el dom.Element, ancestors []dom.Element, root dom.Element) string {
	if id := dom.AttrValue(el, "id"); id != "" && !commonIDs[strings.ToLower(id)] {
		return "#" + id
	}

	chain := make([]dom.Element, 0, len(ancestors)+1)
	chain = append(chain, ancestors...)
	chain = append(chain, el)

	var segs []segment
	for depth := len(chain) - 1; depth > 0; depth-- {
		parent := chain[depth-1]
		segs = append([]segment{segmentFor(chain[depth], parent)}, segs...)
		if countMatches(root, segs) == 1 {
			return renderSegments(segs)
		}
	}

	return structuralPath(chain)
}

// segmentFor builds a path segment for el under parent: tag, the first
// non-volatile class token, and a positional disambiguator when a sibling
// shares the same tag and class.
func segmentFor(el, parent dom.Element) segment {
	seg := segment{
		tag:   strings.ToLower(el.TagName()),
		class: pickClass(el),
	}
	if hasTwin(el, parent, seg) {
		seg.nth = childIndex(parent, el)
	}
	return seg
}

// pickClass returns the first class token usable as a selector anchor, or ""
// when every token looks volatile or utility-like. Filtering is a quality
// heuristic, not a correctness requirement; positional disambiguation covers
// whatever it rejects.
func pickClass(el dom.Element) string {
	for _, token := range strings.Fields(dom.AttrValue(el, "class")) {
		if isVolatileClass(token) {
			continue
		}
		return token
	}
	return ""
}

func isVolatileClass(token string) bool {
	lower := strings.ToLower(token)
	for _, u := range utilityClasses {
		if strings.Contains(lower, u) {
			return true
		}
	}
	for _, g := range volatileClassGlobs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

// hasTwin reports whether parent has another element child matching the same
// tag and class as seg.
func hasTwin(el, parent dom.Element, seg segment) bool {
	for _, sibling := range parent.Children() {
		if sibling == el {
			continue
		}
		if segMatchesShape(sibling, seg) {
			return true
		}
	}
	return false
}

// childIndex returns the 1-based position of el among parent's element
// children, or 0 if el is not found.
func childIndex(parent, el dom.Element) int {
	for i, c := range parent.Children() {
		if c == el {
			return i + 1
		}
	}
	return 0
}

// segMatchesShape checks tag and class only, ignoring position.
func segMatchesShape(el dom.Element, seg segment) bool {
	if strings.ToLower(el.TagName()) != seg.tag {
		return false
	}
	if seg.class == "" {
		return true
	}
	for _, token := range strings.Fields(dom.AttrValue(el, "class")) {
		if token == seg.class {
			return true
		}
	}
	return false
}

// segMatches checks a full segment against el under parent.
func segMatches(el, parent dom.Element, seg segment) bool {
	if !segMatchesShape(el, seg) {
		return false
	}
	if seg.nth == 0 {
		return true
	}
	if parent == nil {
		return false
	}
	return childIndex(parent, el) == seg.nth
}

// countMatches counts the elements under root matched by the segment chain.
// Segments are joined by the direct-child combinator but the chain itself
// may be anchored at any depth, mirroring how the rendered selector would
// behave in a document query.
func countMatches(root dom.Element, segs []segment) int {
	count := 0
	var walk func(el dom.Element, stack []dom.Element)
	walk = func(el dom.Element, stack []dom.Element) {
		if matchesChain(el, stack, segs) {
			count++
		}
		stack = append(stack, el)
		for _, child := range el.Children() {
			walk(child, stack)
		}
	}
	walk(root, nil)
	return count
}

// matchesChain reports whether el, with the given ancestor stack (outermost
// first), is matched by the segment chain ending at el.
func matchesChain(el dom.Element, stack []dom.Element, segs []segment) bool {
	if len(segs) == 0 || len(segs)-1 > len(stack) {
		return false
	}
	var parent dom.Element
	if len(stack) > 0 {
		parent = stack[len(stack)-1]
	}
	if !segMatches(el, parent, segs[len(segs)-1]) {
		return false
	}
	current := parent
	for i := len(segs) - 2; i >= 0; i-- {
		idx := len(stack) - (len(segs) - 1 - i)
		var grand dom.Element
		if idx > 0 {
			grand = stack[idx-1]
		}
		if current == nil || !segMatches(current, grand, segs[i]) {
			return false
		}
		current = grand
	}
	return true
}

// structuralPath renders the full tag:nth-child path from the document root.
// Every level is positionally qualified, so the result is always unique.
func structuralPath(chain []dom.Element) string {
	segs := make([]segment, len(chain))
	segs[0] = segment{tag: strings.ToLower(chain[0].TagName())}
	for i := 1; i < len(chain); i++ {
		segs[i] = segment{
			tag: strings.ToLower(chain[i].TagName()),
			nth: childIndex(chain[i-1], chain[i]),
		}
	}
	return renderSegments(segs)
}

func renderSegments(segs []segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, " > ")
}
