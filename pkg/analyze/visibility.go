package analyze

import "github.com/entrhq/pagegraph/pkg/dom"

// IsVisible reports whether an element with the given geometry and computed
// style is currently visible inside the viewport.
//
// The rules apply in order, first match wins: zero-area box, display:none,
// visibility:hidden, zero opacity, and a box entirely outside the viewport
// all mean not visible. Elements that would become visible after scrolling
// are deliberately excluded; the semantics are "currently visible", not
// "visible if scrolled to".
func IsVisible(box dom.Rect, style dom.Style, vp dom.Viewport) bool {
	if box.Width == 0 || box.Height == 0 {
		return false
	}
	if style.Display == "none" {
		return false
	}
	if style.Visibility == "hidden" {
		return false
	}
	if style.Opacity == 0 {
		return false
	}
	if box.Y+box.Height < 0 || box.Y > vp.Height {
		return false
	}
	if box.X+box.Width < 0 || box.X > vp.Width {
		return false
	}
	return true
}
