package graph

// ElementType classifies an analyzed element by its intended semantics.
// ARIA roles take precedence over tag names during classification, so an
// element's type reflects what the page author declared, not just the markup.
type ElementType string

const (
	TypeLink       ElementType = "LINK"
	TypeButton     ElementType = "BUTTON"
	TypeCheckbox   ElementType = "CHECKBOX"
	TypeRadio      ElementType = "RADIO"
	TypeToggle     ElementType = "TOGGLE"
	TypeSlider     ElementType = "SLIDER"
	TypeInput      ElementType = "INPUT"
	TypeSelect     ElementType = "SELECT"
	TypeTab        ElementType = "TAB"
	TypeTextarea   ElementType = "TEXTAREA"
	TypeVideo      ElementType = "VIDEO"
	TypeAudio      ElementType = "AUDIO"
	TypeTable      ElementType = "TABLE"
	TypeTableRow   ElementType = "TABLE_ROW"
	TypeTableCell  ElementType = "TABLE_CELL"
	TypeForm       ElementType = "FORM"
	TypeSVG        ElementType = "SVG"
	TypeCanvas     ElementType = "CANVAS"
	TypeIframe     ElementType = "IFRAME"
	TypeDatepicker ElementType = "DATEPICKER"
	TypeFileInput  ElementType = "FILE_INPUT"
	TypeOther      ElementType = "OTHER"
)

// ActionType names one kind of interaction an agent can perform.
type ActionType string

const (
	ActionClick    ActionType = "click"
	ActionTypeInto ActionType = "type"
	ActionSelect   ActionType = "select"
	ActionCheck    ActionType = "check"
	ActionToggle   ActionType = "toggle"
	ActionDrag     ActionType = "drag"
	ActionHover    ActionType = "hover"
	ActionNavigate ActionType = "navigate"
	ActionUpload   ActionType = "upload"
	ActionScroll   ActionType = "scroll"
	ActionWait     ActionType = "wait"
)

// BoundingBox is an element's position and size in viewport coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the box area in square pixels.
func (b BoundingBox) Area() float64 {
	return b.Width * b.Height
}

// ElementNode is one analyzed element of the page.
//
// Children hold the element's analyzed descendants in document order. The
// parent relation is implicit via traversal; nodes never store a back
// reference, so a graph is always acyclic and safe to serialize.
type ElementNode struct {
	ID            string            `json:"id"`
	Type          ElementType       `json:"type"`
	Tag           string            `json:"tag"`
	Text          string            `json:"text,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	BoundingBox   BoundingBox       `json:"boundingBox"`
	IsVisible     bool              `json:"isVisible"`
	IsInteractive bool              `json:"isInteractive"`
	IsSensitive   bool              `json:"isSensitive"`
	Score         float64           `json:"score"`
	Selector      string            `json:"selector"`
	Children      []ElementNode     `json:"children,omitempty"`
}

// Action is one candidate interaction on an element of the same graph.
//
// Value is optional and must be absent when the source element is sensitive;
// the assembler redacts it before the action is ever attached to a graph.
type Action struct {
	Type        ActionType        `json:"type"`
	ElementID   string            `json:"elementId"`
	Description string            `json:"description"`
	Confidence  float64           `json:"confidence"`
	Value       string            `json:"value,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// ActionGraph is the complete output of one extraction pass: the analyzed
// element tree plus the flat list of candidate actions.
type ActionGraph struct {
	URL      string                 `json:"url"`
	Nodes    []ElementNode          `json:"nodes"`
	Edges    []Action               `json:"edges"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
