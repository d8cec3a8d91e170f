package waypoint_test

import (
	"testing"

	"go-tower-sim/pkg/hexmap"
	"go-tower-sim/pkg/vmath"
	"go-tower-sim/pkg/waypoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathIsImmutable(t *testing.T) {
	pts := []vmath.Vec2{{X: 0, Y: 0}, {X: 3, Y: 4}}
	p, err := waypoint.New(pts...)
	require.NoError(t, err)

	pts[1] = vmath.Vec2{X: 100, Y: 100}
	assert.Equal(t, vmath.Vec2{X: 3, Y: 4}, p.At(1))

	out := p.Points()
	out[0] = vmath.Vec2{X: -1}
	assert.Equal(t, vmath.Vec2{}, p.Start())
	assert.InDelta(t, 5.0, p.Length(), 1e-9)
}

func TestEmptyPath(t *testing.T) {
	_, err := waypoint.New()
	assert.ErrorIs(t, err, waypoint.ErrEmptyPath)
}

func TestFromHexes(t *testing.T) {
	route := []hexmap.Hex{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}}
	p, err := waypoint.FromHexes(route, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, vmath.Vec2{}, p.Start())
	x, y := route[2].ToPixel(1)
	assert.Equal(t, vmath.Vec2{X: x, Y: y}, p.Goal())
}
