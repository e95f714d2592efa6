package analyze

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/entrhq/pagegraph/pkg/dom"
	"github.com/entrhq/pagegraph/pkg/graph"
)

// actionSpec pairs a candidate action with the confidence its table position
// implies: the primary action for a type scores higher than secondaries, and
// both score higher than the interactive-fallback click.
type actionSpec struct {
	action     graph.ActionType
	confidence float64
}

// actionTable maps element types to their candidate actions. The table is
// data, not control flow; new mappings are additive.
var actionTable = map[graph.ElementType][]actionSpec{
	graph.TypeLink:       {{graph.ActionNavigate, 0.9}, {graph.ActionClick, 0.8}},
	graph.TypeButton:     {{graph.ActionClick, 0.9}},
	graph.TypeInput:      {{graph.ActionTypeInto, 0.9}, {graph.ActionClick, 0.7}},
	graph.TypeTextarea:   {{graph.ActionTypeInto, 0.9}, {graph.ActionClick, 0.7}},
	graph.TypeCheckbox:   {{graph.ActionCheck, 0.9}, {graph.ActionClick, 0.8}},
	graph.TypeRadio:      {{graph.ActionCheck, 0.9}, {graph.ActionClick, 0.8}},
	graph.TypeToggle:     {{graph.ActionCheck, 0.9}, {graph.ActionClick, 0.8}},
	graph.TypeSelect:     {{graph.ActionSelect, 0.9}},
	graph.TypeSlider:     {{graph.ActionDrag, 0.9}},
	graph.TypeVideo:      {{graph.ActionClick, 0.8}, {graph.ActionToggle, 0.8}},
	graph.TypeAudio:      {{graph.ActionClick, 0.8}, {graph.ActionToggle, 0.8}},
	graph.TypeFileInput:  {{graph.ActionUpload, 0.9}},
	graph.TypeDatepicker: {{graph.ActionTypeInto, 0.8}, {graph.ActionClick, 0.7}},
	graph.TypeTab:        {{graph.ActionClick, 0.9}},
}

// fallbackConfidence is used when an interactive element's type has no table
// entry and the generic click is all we can offer.
const fallbackConfidence = 0.5

// sensitivePenalty lowers confidence on actions whose value was withheld.
const sensitivePenalty = 0.1

// SynthesizeActions derives the candidate actions for an analyzed element.
// Non-interactive elements yield nothing. Sensitive elements never carry a
// value, and their confidence is reduced to reflect the withheld input.
func SynthesizeActions(el dom.Element, node *graph.ElementNode) []graph.Action {
	if !node.IsInteractive {
		return nil
	}

	specs, ok := actionTable[node.Type]
	if !ok {
		specs = []actionSpec{{graph.ActionClick, fallbackConfidence}}
	}

	subject := actionSubject(el, node)
	actions := make([]graph.Action, 0, len(specs))
	for _, spec := range specs {
		action := graph.Action{
			Type:        spec.action,
			ElementID:   node.ID,
			Description: describeAction(spec.action, subject),
			Confidence:  spec.confidence,
			Metadata:    actionMetadata(el),
		}

		if node.IsSensitive {
			action.Confidence = clamp01(action.Confidence - sensitivePenalty)
			if action.Metadata == nil {
				action.Metadata = map[string]string{}
			}
			action.Metadata["redacted"] = "true"
		} else if spec.action == graph.ActionTypeInto || spec.action == graph.ActionSelect {
			action.Value = dom.AttrValue(el, "value")
		}

		actions = append(actions, action)
	}
	return actions
}

// actionSubject picks the human-readable subject for descriptions: visible
// text first, then an accessible label, then a generic type-at-selector
// template.
func actionSubject(el dom.Element, node *graph.ElementNode) string {
	if node.Text != "" {
		return truncate(node.Text, 80)
	}
	for _, name := range []string{"aria-label", "title", "alt", "placeholder", "name"} {
		if v := strings.TrimSpace(dom.AttrValue(el, name)); v != "" {
			return truncate(v, 80)
		}
	}
	return fmt.Sprintf("%s at %s", node.Type, node.Selector)
}

func describeAction(t graph.ActionType, subject string) string {
	switch t {
	case graph.ActionClick:
		return fmt.Sprintf("Click %s", subject)
	case graph.ActionTypeInto:
		return fmt.Sprintf("Type into %s", subject)
	case graph.ActionSelect:
		return fmt.Sprintf("Select an option in %s", subject)
	case graph.ActionCheck:
		return fmt.Sprintf("Check %s", subject)
	case graph.ActionToggle:
		return fmt.Sprintf("Toggle %s", subject)
	case graph.ActionDrag:
		return fmt.Sprintf("Drag %s", subject)
	case graph.ActionHover:
		return fmt.Sprintf("Hover over %s", subject)
	case graph.ActionNavigate:
		return fmt.Sprintf("Navigate to %s", subject)
	case graph.ActionUpload:
		return fmt.Sprintf("Upload a file to %s", subject)
	case graph.ActionScroll:
		return fmt.Sprintf("Scroll %s", subject)
	case graph.ActionWait:
		return fmt.Sprintf("Wait for %s", subject)
	default:
		return fmt.Sprintf("Interact with %s", subject)
	}
}

// actionMetadata collects auxiliary targeting signals. Only populated keys
// are included; nil is returned when there is nothing to report.
func actionMetadata(el dom.Element) map[string]string {
	md := map[string]string{}
	for key, attr := range map[string]string{
		"role":      "role",
		"ariaLabel": "aria-label",
		"href":      "href",
		"inputType": "type",
	} {
		if v := dom.AttrValue(el, attr); v != "" {
			md[key] = v
		}
	}
	if len(md) == 0 {
		return nil
	}
	return md
}

// truncate caps s at max bytes, backing up to a rune boundary so the result
// stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
