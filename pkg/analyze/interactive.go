package analyze

import (
	"strings"

	"github.com/entrhq/pagegraph/pkg/dom"
)

// interactiveTags are tags that are interactive by nature.
var interactiveTags = map[string]bool{
	"a":        true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"video":    true,
	"audio":    true,
}

// interactiveRoles are ARIA roles implying interactivity: the classifier's
// role vocabulary plus listbox.
var interactiveRoles = map[string]bool{
	"button":   true,
	"link":     true,
	"checkbox": true,
	"radio":    true,
	"switch":   true,
	"slider":   true,
	"textbox":  true,
	"combobox": true,
	"tab":      true,
	"menuitem": true,
	"listbox":  true,
}

// IsInteractive reports whether an element can be interacted with. The check
// is a disjunction: a naturally interactive tag, an interactive ARIA role, a
// registered click handler, an onclick attribute, or a tabindex attribute
// each suffice on their own.
func IsInteractive(el dom.Element) bool {
	if interactiveTags[strings.ToLower(el.TagName())] {
		return true
	}
	if interactiveRoles[strings.ToLower(dom.AttrValue(el, "role"))] {
		return true
	}
	if dom.HasListener(el, "click") {
		return true
	}
	if _, ok := dom.Attr(el, "onclick"); ok {
		return true
	}
	if _, ok := dom.Attr(el, "tabindex"); ok {
		return true
	}
	return false
}
