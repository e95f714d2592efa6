package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/pagegraph/pkg/dom"
)

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		el   *dom.Node
		want bool
	}{
		{name: "anchor", el: dom.NewNode("a"), want: true},
		{name: "button", el: dom.NewNode("button"), want: true},
		{name: "input", el: dom.NewNode("input"), want: true},
		{name: "video", el: dom.NewNode("video"), want: true},
		{
			name: "div with interactive role",
			el:   dom.NewNode("div").SetAttr("role", "checkbox"),
			want: true,
		},
		{
			name: "div with onclick attribute",
			el:   dom.NewNode("div").SetAttr("onclick", "open()"),
			want: true,
		},
		{
			name: "div with tabindex",
			el:   dom.NewNode("div").SetAttr("tabindex", "0"),
			want: true,
		},
		{
			name: "div with registered click listener",
			el:   &dom.Node{Tag: "div", Style: dom.DefaultStyle(), Listeners: []string{"click"}},
			want: true,
		},
		{
			name: "div with only a hover listener",
			el:   &dom.Node{Tag: "div", Style: dom.DefaultStyle(), Listeners: []string{"mouseover"}},
		},
		{
			name: "div with non-interactive role",
			el:   dom.NewNode("div").SetAttr("role", "presentation"),
		},
		{name: "plain div", el: dom.NewNode("div")},
		{name: "paragraph", el: dom.NewNode("p")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInteractive(tt.el))
		})
	}
}
