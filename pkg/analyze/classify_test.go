package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/pagegraph/pkg/dom"
	"github.com/entrhq/pagegraph/pkg/graph"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		el   *dom.Node
		want graph.ElementType
	}{
		{name: "anchor", el: dom.NewNode("a"), want: graph.TypeLink},
		{name: "button tag", el: dom.NewNode("button"), want: graph.TypeButton},
		{name: "textarea", el: dom.NewNode("textarea"), want: graph.TypeTextarea},
		{name: "select", el: dom.NewNode("select"), want: graph.TypeSelect},
		{name: "table header cell", el: dom.NewNode("th"), want: graph.TypeTableCell},
		{name: "iframe", el: dom.NewNode("iframe"), want: graph.TypeIframe},
		{name: "svg", el: dom.NewNode("svg"), want: graph.TypeSVG},
		{
			name: "text input",
			el:   dom.NewNode("input").SetAttr("type", "text"),
			want: graph.TypeInput,
		},
		{
			name: "input without type attribute",
			el:   dom.NewNode("input"),
			want: graph.TypeInput,
		},
		{
			name: "checkbox input",
			el:   dom.NewNode("input").SetAttr("type", "checkbox"),
			want: graph.TypeCheckbox,
		},
		{
			name: "range input",
			el:   dom.NewNode("input").SetAttr("type", "range"),
			want: graph.TypeSlider,
		},
		{
			name: "date input",
			el:   dom.NewNode("input").SetAttr("type", "date"),
			want: graph.TypeDatepicker,
		},
		{
			name: "file input",
			el:   dom.NewNode("input").SetAttr("type", "file"),
			want: graph.TypeFileInput,
		},
		{
			name: "role overrides tag",
			el:   dom.NewNode("div").SetAttr("role", "button"),
			want: graph.TypeButton,
		},
		{
			name: "role overrides input sub-dispatch",
			el:   dom.NewNode("input").SetAttr("type", "text").SetAttr("role", "combobox"),
			want: graph.TypeSelect,
		},
		{
			name: "switch role",
			el:   dom.NewNode("span").SetAttr("role", "switch"),
			want: graph.TypeToggle,
		},
		{
			name: "unknown role falls through to tag",
			el:   dom.NewNode("a").SetAttr("role", "presentation"),
			want: graph.TypeLink,
		},
		{name: "plain div", el: dom.NewNode("div"), want: graph.TypeOther},
		{name: "custom element", el: dom.NewNode("my-widget"), want: graph.TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.el))
		})
	}
}
