package analyze

import (
	"strings"

	"github.com/entrhq/pagegraph/pkg/dom"
	"github.com/entrhq/pagegraph/pkg/graph"
)

// roleTypes maps explicit ARIA roles to element types. A role declares the
// author's intended semantics and therefore overrides the tag.
var roleTypes = map[string]graph.ElementType{
	"button":   graph.TypeButton,
	"link":     graph.TypeLink,
	"checkbox": graph.TypeCheckbox,
	"radio":    graph.TypeRadio,
	"switch":   graph.TypeToggle,
	"slider":   graph.TypeSlider,
	"textbox":  graph.TypeInput,
	"combobox": graph.TypeSelect,
	"tab":      graph.TypeTab,
	"menuitem": graph.TypeButton,
}

// tagTypes maps tag names to element types when no role matched.
var tagTypes = map[string]graph.ElementType{
	"a":        graph.TypeLink,
	"button":   graph.TypeButton,
	"textarea": graph.TypeTextarea,
	"select":   graph.TypeSelect,
	"video":    graph.TypeVideo,
	"audio":    graph.TypeAudio,
	"table":    graph.TypeTable,
	"tr":       graph.TypeTableRow,
	"td":       graph.TypeTableCell,
	"th":       graph.TypeTableCell,
	"form":     graph.TypeForm,
	"svg":      graph.TypeSVG,
	"canvas":   graph.TypeCanvas,
	"iframe":   graph.TypeIframe,
}

// inputTypes sub-dispatches <input> on its type attribute.
var inputTypes = map[string]graph.ElementType{
	"checkbox": graph.TypeCheckbox,
	"radio":    graph.TypeRadio,
	"range":    graph.TypeSlider,
	"date":     graph.TypeDatepicker,
	"file":     graph.TypeFileInput,
}

// Classify determines the element type using a two-tier table lookup: the
// ARIA role table first, then the tag table with an <input type=...>
// sub-dispatch. Anything unmatched is OTHER.
func Classify(el dom.Element) graph.ElementType {
	if role := strings.ToLower(dom.AttrValue(el, "role")); role != "" {
		if t, ok := roleTypes[role]; ok {
			return t
		}
	}

	tag := strings.ToLower(el.TagName())
	if tag == "input" {
		inputType := strings.ToLower(dom.AttrValue(el, "type"))
		if t, ok := inputTypes[inputType]; ok {
			return t
		}
		return graph.TypeInput
	}
	if t, ok := tagTypes[tag]; ok {
		return t
	}
	return graph.TypeOther
}
