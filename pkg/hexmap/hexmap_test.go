package hexmap_test

import (
	"testing"

	"go-tower-sim/pkg/hexmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHexMapTileCount(t *testing.T) {
	// 1 + 3r(r+1) tiles in a hexagon of radius r.
	for r := 0; r <= 4; r++ {
		assert.Len(t, hexmap.NewHexMap(r).Tiles, 1+3*r*(r+1))
	}
}

func TestPixelRoundTrip(t *testing.T) {
	for _, h := range []hexmap.Hex{{Q: 0, R: 0}, {Q: 2, R: -1}, {Q: -3, R: 3}, {Q: 1, R: 1}} {
		x, y := h.ToPixel(2)
		assert.Equal(t, h, hexmap.PixelToHex(x, y, 2))
	}
}

func TestAStarStraightLine(t *testing.T) {
	hm := hexmap.NewHexMap(3)
	path := hexmap.AStar(hexmap.Hex{Q: -3, R: 0}, hexmap.Hex{Q: 3, R: 0}, hm)
	require.NotNil(t, path)
	assert.Len(t, path, 7)
	assert.Equal(t, hexmap.Hex{Q: -3, R: 0}, path[0])
	assert.Equal(t, hexmap.Hex{Q: 3, R: 0}, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Distance(path[i]))
	}
}

func TestRouteAroundWallAndThroughCheckpoint(t *testing.T) {
	hm := hexmap.NewHexMap(3)
	hm.Entry = hexmap.Hex{Q: -3, R: 0}
	hm.Exit = hexmap.Hex{Q: 3, R: 0}
	hm.Checkpoints = []hexmap.Hex{{Q: 0, R: 2}}
	hm.Block(hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 0, R: -1})

	route, err := hm.Route()
	require.NoError(t, err)
	assert.Contains(t, route, hexmap.Hex{Q: 0, R: 2})
	assert.NotContains(t, route, hexmap.Hex{Q: 0, R: 0})
	for i := 1; i < len(route); i++ {
		assert.Equal(t, 1, route[i-1].Distance(route[i]), "route must be contiguous")
	}
}

func TestRouteBlocked(t *testing.T) {
	hm := hexmap.NewHexMap(1)
	hm.Entry = hexmap.Hex{Q: -1, R: 0}
	hm.Exit = hexmap.Hex{Q: 1, R: 0}
	for h := range hm.Tiles {
		if h != hm.Entry && h != hm.Exit {
			hm.Block(h)
		}
	}
	_, err := hm.Route()
	assert.ErrorIs(t, err, hexmap.ErrNoPath)
}
