package dom

import "errors"

// ErrStyleUnavailable marks an element whose computed style could not be
// resolved by the snapshot source. The analysis core treats such elements
// as not visible rather than failing.
var ErrStyleUnavailable = errors.New("computed style unavailable")

// Rect is an element's bounding box in viewport coordinates, as reported by
// the snapshot source (getBoundingClientRect-equivalent geometry).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Style is the resolved subset of computed style the analysis core consumes.
type Style struct {
	Display    string  `json:"display"`
	Visibility string  `json:"visibility"`
	Opacity    float64 `json:"opacity"`
	ZIndex     string  `json:"zIndex"`
}

// Viewport is the visible area of the page at snapshot time.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Attribute is one authored name/value pair. Names keep their authored case.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Element is the minimal read-only view of one document element.
//
// Implementations must be stable for the duration of one extraction pass:
// repeated calls on the same element return the same data. ComputedStyle may
// fail (detached elements, host quirks); the core treats a failed style
// lookup as "not visible" rather than propagating the error.
//
// Implementations must also be comparable (in practice: pointer types, like
// Node). The analysis core keys per-run caches by element identity, and a
// non-comparable implementation would panic on lookup.
type Element interface {
	// TagName returns the lowercase tag name, or "" if the element is
	// malformed and carries no tag information.
	TagName() string

	// Attributes returns the authored attributes in document order.
	Attributes() []Attribute

	// TextContent returns the element's text content, untrimmed.
	TextContent() string

	// Children returns the element children in document order.
	Children() []Element

	// BoundingBox returns the element's geometry in viewport coordinates.
	BoundingBox() Rect

	// ComputedStyle returns the resolved style subset for the element.
	ComputedStyle() (Style, error)

	// EventListeners returns the event types with registered handlers on
	// this element, as far as the snapshot source can observe them.
	EventListeners() []string
}

// Attr returns the value of the named attribute on el, matching the authored
// name exactly, and whether it is present.
func Attr(el Element, name string) (string, bool) {
	for _, a := range el.Attributes() {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the value of the named attribute, or "" if absent.
func AttrValue(el Element, name string) string {
	v, _ := Attr(el, name)
	return v
}

// HasListener reports whether el exposes a registered handler for the given
// event type.
func HasListener(el Element, event string) bool {
	for _, l := range el.EventListeners() {
		if l == event {
			return true
		}
	}
	return false
}
