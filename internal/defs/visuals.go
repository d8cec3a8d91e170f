// internal/defs/visuals.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
)

// Visuals contains parameters for drawing an entity in the viewer.
type Visuals struct {
	Color  string  `json:"color" yaml:"color"` // "#rrggbb" или "#rrggbbaa"
	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
}

// RGBA parses Color. Malformed or empty colors fall back to white.
func (v Visuals) RGBA() color.RGBA {
	c, err := parseHexColor(v.Color)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
		return c, err
	case 8:
		_, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
		return c, err
	default:
		return c, fmt.Errorf("bad color %q", s)
	}
}
