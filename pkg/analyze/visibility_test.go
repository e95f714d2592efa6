package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/pagegraph/pkg/dom"
)

func TestIsVisible(t *testing.T) {
	vp := dom.Viewport{Width: 1280, Height: 720}
	visible := dom.DefaultStyle()

	tests := []struct {
		name  string
		box   dom.Rect
		style dom.Style
		want  bool
	}{
		{
			name:  "ordinary element",
			box:   dom.Rect{X: 10, Y: 10, Width: 100, Height: 40},
			style: visible,
			want:  true,
		},
		{
			name:  "zero width",
			box:   dom.Rect{X: 10, Y: 10, Width: 0, Height: 40},
			style: visible,
		},
		{
			name:  "zero height",
			box:   dom.Rect{X: 10, Y: 10, Width: 100, Height: 0},
			style: visible,
		},
		{
			name:  "display none",
			box:   dom.Rect{X: 10, Y: 10, Width: 100, Height: 40},
			style: dom.Style{Display: "none", Visibility: "visible", Opacity: 1},
		},
		{
			name:  "visibility hidden",
			box:   dom.Rect{X: 10, Y: 10, Width: 100, Height: 40},
			style: dom.Style{Display: "block", Visibility: "hidden", Opacity: 1},
		},
		{
			name:  "zero opacity",
			box:   dom.Rect{X: 10, Y: 10, Width: 100, Height: 40},
			style: dom.Style{Display: "block", Visibility: "visible", Opacity: 0},
		},
		{
			name:  "entirely below the fold",
			box:   dom.Rect{X: 10, Y: 721, Width: 100, Height: 40},
			style: visible,
		},
		{
			name:  "entirely above the viewport",
			box:   dom.Rect{X: 10, Y: -50, Width: 100, Height: 40},
			style: visible,
		},
		{
			name:  "entirely right of the viewport",
			box:   dom.Rect{X: 1281, Y: 10, Width: 100, Height: 40},
			style: visible,
		},
		{
			name:  "entirely left of the viewport",
			box:   dom.Rect{X: -200, Y: 10, Width: 100, Height: 40},
			style: visible,
		},
		{
			name:  "partially inside the viewport",
			box:   dom.Rect{X: 1200, Y: 700, Width: 200, Height: 100},
			style: visible,
			want:  true,
		},
		{
			name:  "low but nonzero opacity",
			box:   dom.Rect{X: 10, Y: 10, Width: 100, Height: 40},
			style: dom.Style{Display: "block", Visibility: "visible", Opacity: 0.01},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVisible(tt.box, tt.style, vp))
		})
	}
}
