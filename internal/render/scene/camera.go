// internal/render/scene/camera.go
package scene

import "go-tower-sim/pkg/vmath"

// Camera maps world units to screen pixels. The world origin sits in the
// middle of the screen.
type Camera struct {
	Scale            float64
	Width, Height    int
	OffsetX, OffsetY float64
}

func NewCamera(width, height int, scale float64) Camera {
	return Camera{Scale: scale, Width: width, Height: height}
}

// ToScreen converts a world position to pixel coordinates.
func (c Camera) ToScreen(p vmath.Vec2) (float32, float32) {
	x := p.X*c.Scale + float64(c.Width)/2 + c.OffsetX
	y := p.Y*c.Scale + float64(c.Height)/2 + c.OffsetY
	return float32(x), float32(y)
}

// ToWorld converts pixel coordinates back to world units.
func (c Camera) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x) - float64(c.Width)/2 - c.OffsetX) / c.Scale,
		Y: (float64(y) - float64(c.Height)/2 - c.OffsetY) / c.Scale,
	}
}

// Length converts a world distance to pixels.
func (c Camera) Length(d float64) float32 {
	return float32(d * c.Scale)
}
