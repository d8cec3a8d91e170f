// pkg/hexmap/hex.go
package hexmap

import "math"

// Sqrt3 используется при переводе в пиксели.
var Sqrt3 = math.Sqrt(3)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 0, R: -1}, {Q: -1, R: 0},
	{Q: -1, R: 1}, {Q: 0, R: 1}, {Q: 1, R: -1},
}

// ToPixel конвертирует гекс в координаты мира (pointy top ориентация)
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// PixelToHex конвертирует координаты мира в гекс
func PixelToHex(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return axialRound(q, r)
}

func axialRound(q, r float64) Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Neighbors возвращает всех возможных соседей гекса
func (h Hex) Neighbors() []Hex {
	out := make([]Hex, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		out = append(out, h.Add(d))
	}
	return out
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
