package dom

// Node is the in-memory Element implementation shared by all snapshot
// adapters. A Node tree is built once per snapshot and never mutated
// afterwards; the analysis core only ever sees it through the Element
// interface.
type Node struct {
	Tag       string      `json:"tag"`
	Attrs     []Attribute `json:"attrs,omitempty"`
	Text      string      `json:"text,omitempty"`
	Box       Rect        `json:"box"`
	Style     Style       `json:"style"`
	Listeners []string    `json:"listeners,omitempty"`
	Kids      []*Node     `json:"children,omitempty"`

	// StyleErr marks a failed style computation reported by the snapshot
	// source. The evaluator treats such elements as not visible.
	StyleErr error `json:"-"`
}

// NewNode returns a Node with the given tag and a neutral visible style.
// Adapters overwrite Style and Box with host-reported values; fixtures that
// only care about structure can use the defaults as-is.
func NewNode(tag string) *Node {
	return &Node{Tag: tag, Style: DefaultStyle()}
}

// DefaultStyle is the style of an ordinary rendered element: displayed,
// visible, fully opaque.
func DefaultStyle() Style {
	return Style{Display: "block", Visibility: "visible", Opacity: 1}
}

// TagName implements Element.
func (n *Node) TagName() string { return n.Tag }

// Attributes implements Element.
func (n *Node) Attributes() []Attribute { return n.Attrs }

// TextContent implements Element.
func (n *Node) TextContent() string { return n.Text }

// Children implements Element.
func (n *Node) Children() []Element {
	children := make([]Element, len(n.Kids))
	for i, k := range n.Kids {
		children[i] = k
	}
	return children
}

// BoundingBox implements Element.
func (n *Node) BoundingBox() Rect { return n.Box }

// ComputedStyle implements Element.
func (n *Node) ComputedStyle() (Style, error) {
	if n.StyleErr != nil {
		return Style{}, n.StyleErr
	}
	return n.Style, nil
}

// EventListeners implements Element.
func (n *Node) EventListeners() []string { return n.Listeners }

// SetAttr appends an attribute during snapshot construction. It is intended
// for adapters and test fixtures, not for post-snapshot mutation.
func (n *Node) SetAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attribute{Name: name, Value: value})
	return n
}
