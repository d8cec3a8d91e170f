package vmath_test

import (
	"math"
	"testing"

	"go-tower-sim/pkg/vmath"

	"github.com/stretchr/testify/assert"
)

func TestVecDistAndNormalize(t *testing.T) {
	a := vmath.Vec2{X: 1, Y: 1}
	b := vmath.Vec2{X: 4, Y: 5}
	assert.InDelta(t, 5.0, a.Dist(b), 1e-9)

	n := b.Sub(a).Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
	assert.Equal(t, vmath.Vec2{}, vmath.Vec2{}.Normalize())
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		t        float64
		want     float64
	}{
		{"half way", 0, math.Pi / 2, 0.5, math.Pi / 4},
		{"wraps across pi", 3 * math.Pi / 4, -3 * math.Pi / 4, 0.5, math.Pi},
		{"clamped", 0, 1, 5, 1},
		{"no movement", 1, 2, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vmath.LerpAngle(tt.from, tt.to, tt.t)
			assert.InDelta(t, math.Abs(tt.want), math.Abs(got), 1e-9)
		})
	}
}

func TestDistToSegment(t *testing.T) {
	a, b := vmath.Vec2{}, vmath.Vec2{X: 10}
	assert.InDelta(t, 3.0, vmath.DistToSegment(vmath.Vec2{X: 5, Y: 3}, a, b), 1e-9)
	assert.InDelta(t, 5.0, vmath.DistToSegment(vmath.Vec2{X: 13, Y: 4}, a, b), 1e-9)
	assert.InDelta(t, 5.0, vmath.DistToSegment(vmath.Vec2{X: 3, Y: 4}, a, a), 1e-9)
}
