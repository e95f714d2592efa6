package analyze

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/pagegraph/pkg/dom"
)

// Weights tunes the importance scorer. The values are policy, not contract:
// any non-negative combination keeps the scorer's guarantees (monotone in
// each factor, result in [0,1], invisible elements exactly 0).
type Weights struct {
	// Interactivity is the weight of the element being interactive.
	Interactivity float64 `yaml:"interactivity"`

	// Size is the weight of on-screen area relative to the viewport.
	Size float64 `yaml:"size"`

	// AboveFold is the bonus weight for elements starting inside the
	// first viewport height.
	AboveFold float64 `yaml:"above_fold"`

	// Label is the weight for non-empty text or an accessible label.
	Label float64 `yaml:"label"`

	// Landmark is the weight for having a semantic landmark ancestor
	// (header, nav, main, footer, section).
	Landmark float64 `yaml:"landmark"`

	// SizeSaturation is the fraction of the viewport area at which the
	// size factor stops growing. Diminishing returns above it.
	SizeSaturation float64 `yaml:"size_saturation"`
}

// DefaultWeights returns the built-in scoring policy.
func DefaultWeights() Weights {
	return Weights{
		Interactivity:  0.40,
		Size:           0.20,
		AboveFold:      0.15,
		Label:          0.15,
		Landmark:       0.10,
		SizeSaturation: 0.25,
	}
}

// LoadWeights reads a scoring policy from a YAML file. Missing fields fall
// back to the defaults; negative weights are rejected.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()

	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("failed to read weights file: %w", err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("failed to parse weights file: %w", err)
	}
	if err := w.validate(); err != nil {
		return w, err
	}
	return w, nil
}

func (w Weights) validate() error {
	for name, v := range map[string]float64{
		"interactivity":   w.Interactivity,
		"size":            w.Size,
		"above_fold":      w.AboveFold,
		"label":           w.Label,
		"landmark":        w.Landmark,
		"size_saturation": w.SizeSaturation,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must not be negative, got %v", name, v)
		}
	}
	if w.SizeSaturation == 0 {
		return fmt.Errorf("size_saturation must be positive")
	}
	return nil
}

// Score computes an element's importance in [0,1] as a weighted sum of
// independent factors. Visibility is a gate: invisible elements score
// exactly 0 regardless of anything else.
func Score(el dom.Element, visible, interactive, landmark bool, vp dom.Viewport, w Weights) float64 {
	if !visible {
		return 0
	}

	score := 0.0
	if interactive {
		score += w.Interactivity
	}
	score += w.Size * sizeFactor(el.BoundingBox(), vp, w.SizeSaturation)
	if el.BoundingBox().Y < vp.Height {
		score += w.AboveFold
	}
	if hasLabel(el) {
		score += w.Label
	}
	if landmark {
		score += w.Landmark
	}

	return clamp01(score)
}

// sizeFactor maps relative on-screen area to [0,1], saturating once the
// element covers saturation * viewport area.
func sizeFactor(box dom.Rect, vp dom.Viewport, saturation float64) float64 {
	vpArea := vp.Width * vp.Height
	if vpArea <= 0 {
		return 0
	}
	f := (box.Width * box.Height) / (vpArea * saturation)
	if f > 1 {
		return 1
	}
	return f
}

// hasLabel reports non-empty visible text or an accessible label.
func hasLabel(el dom.Element) bool {
	if strings.TrimSpace(el.TextContent()) != "" {
		return true
	}
	for _, name := range []string{"aria-label", "title", "alt", "placeholder"} {
		if strings.TrimSpace(dom.AttrValue(el, name)) != "" {
			return true
		}
	}
	return false
}

// landmarkTags are the semantic ancestors granting the landmark bonus.
var landmarkTags = map[string]bool{
	"header":  true,
	"nav":     true,
	"main":    true,
	"footer":  true,
	"section": true,
}

// IsLandmark reports whether an element is a semantic landmark container.
func IsLandmark(el dom.Element) bool {
	return landmarkTags[strings.ToLower(el.TagName())]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
