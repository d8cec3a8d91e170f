// pkg/hexmap/map.go
package hexmap

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned when the route between two hexes is blocked.
var ErrNoPath = errors.New("hexmap: no path")

// HexMap is a hexagon-shaped grid of tiles. Blocked tiles cannot be walked on.
type HexMap struct {
	Radius      int
	Tiles       map[Hex]bool // true = проходимый
	Entry       Hex
	Exit        Hex
	Checkpoints []Hex
}

// NewHexMap creates a fully passable map of the given radius around the origin.
func NewHexMap(radius int) *HexMap {
	hm := &HexMap{
		Radius: radius,
		Tiles:  make(map[Hex]bool),
	}
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			hm.Tiles[Hex{Q: q, R: r}] = true
		}
	}
	return hm
}

// Contains reports whether h lies on the map.
func (hm *HexMap) Contains(h Hex) bool {
	_, ok := hm.Tiles[h]
	return ok
}

// IsPassable reports whether h can be walked on.
func (hm *HexMap) IsPassable(h Hex) bool {
	return hm.Tiles[h]
}

// Block marks tiles as impassable. Hexes outside the map are ignored.
func (hm *HexMap) Block(hexes ...Hex) {
	for _, h := range hexes {
		if hm.Contains(h) {
			hm.Tiles[h] = false
		}
	}
}

// Route returns the walkable hex sequence Entry → Checkpoints... → Exit.
func (hm *HexMap) Route() ([]Hex, error) {
	stops := append([]Hex{hm.Entry}, hm.Checkpoints...)
	stops = append(stops, hm.Exit)

	var full []Hex
	for i := 0; i+1 < len(stops); i++ {
		segment := AStar(stops[i], stops[i+1], hm)
		if segment == nil {
			return nil, fmt.Errorf("segment %d (%v -> %v): %w", i, stops[i], stops[i+1], ErrNoPath)
		}
		if len(full) == 0 {
			full = segment
		} else {
			full = append(full, segment[1:]...)
		}
	}
	return full, nil
}
