package hex

import (
	"fmt"
	"math"
)

// Orientation selects how hexes sit relative to the screen axes. The
// ordinal values are stable because serialized worlds store them.
type Orientation int

const (
	// PointyTop hexes have a corner pointing up (odd-r offset layout).
	PointyTop Orientation = iota
	// FlatTop hexes have a flat edge on top (odd-q offset layout).
	FlatTop
)

// String returns the short name used in configs and CLI flags.
func (o Orientation) String() string {
	switch o {
	case PointyTop:
		return "pointy"
	case FlatTop:
		return "flat"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation maps the short names "pointy" and "flat" back to
// their Orientation. It returns false for anything else.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "pointy":
		return PointyTop, true
	case "flat":
		return FlatTop, true
	default:
		return PointyTop, false
	}
}

// matrices holds the forward and inverse conversion matrices plus the
// corner start angle (in sixths of a full turn) for one orientation.
type matrices struct {
	f0, f1, f2, f3 float64 // hex -> pixel
	b0, b1, b2, b3 float64 // pixel -> hex
	startAngle     float64
}

var pointyMatrices = matrices{
	f0: math.Sqrt(3), f1: math.Sqrt(3) / 2, f2: 0, f3: 3.0 / 2,
	b0: math.Sqrt(3) / 3, b1: -1.0 / 3, b2: 0, b3: 2.0 / 3,
	startAngle: 0.5,
}

var flatMatrices = matrices{
	f0: 3.0 / 2, f1: 0, f2: math.Sqrt(3) / 2, f3: math.Sqrt(3),
	b0: 2.0 / 3, b1: 0, b2: -1.0 / 3, b3: math.Sqrt(3) / 3,
	startAngle: 0,
}

func (o Orientation) matrices() matrices {
	if o == FlatTop {
		return flatMatrices
	}
	return pointyMatrices
}

// Layout fixes the mapping between hex space and pixel space: the
// orientation, the hex size (center-to-corner distance) and the pixel
// position of the cube origin.
type Layout struct {
	Orientation Orientation
	Size        float64
	OriginX     float64
	OriginY     float64
}

const (
	// DefaultSize is the hex size assumed when a serialized world
	// carries none.
	DefaultSize = 10.0
)

// DefaultLayout returns the pointy-top layout with DefaultSize hexes
// centered on the pixel origin.
func DefaultLayout() Layout {
	return Layout{Orientation: PointyTop, Size: DefaultSize}
}

// ToPixel returns the pixel position of the center of c. The forward
// matrix applies to the axial (q, r) pair, so FromPixel restores the
// exact coordinate for any hex center.
func (l Layout) ToPixel(c Coord) (x, y float64) {
	m := l.Orientation.matrices()
	q, r := c.Axial()
	x = (m.f0*float64(q)+m.f1*float64(r))*l.Size + l.OriginX
	y = (m.f2*float64(q)+m.f3*float64(r))*l.Size + l.OriginY
	return x, y
}

// FromPixel returns the coordinate of the hex containing the pixel
// (x, y). It inverts ToPixel up to cube rounding, so feeding a hex
// center back in always returns that hex.
func (l Layout) FromPixel(x, y float64) Coord {
	m := l.Orientation.matrices()
	px := (x - l.OriginX) / l.Size
	py := (y - l.OriginY) / l.Size
	q := m.b0*px + m.b1*py
	r := m.b2*px + m.b3*py
	return Round(q, -q-r, r)
}

// Corner returns the pixel position of one corner of c. Corner 0 sits
// at the orientation's start angle and indices advance clockwise in
// screen space; values outside 0..5 wrap naturally.
func (l Layout) Corner(c Coord, corner int) (x, y float64) {
	m := l.Orientation.matrices()
	cx, cy := l.ToPixel(c)
	angle := 2 * math.Pi * (m.startAngle + float64(corner)) / 6
	return cx + l.Size*math.Cos(angle), cy + l.Size*math.Sin(angle)
}

// Corners returns the six corner positions of c in index order as
// (x, y) pairs.
func (l Layout) Corners(c Coord) [6][2]float64 {
	var out [6][2]float64
	for i := range out {
		x, y := l.Corner(c, i)
		out[i] = [2]float64{x, y}
	}
	return out
}

// Round snaps fractional cube components to the nearest valid Coord.
// Each component rounds independently; the one that drifted farthest
// from its rounded value is then recomputed from the other two so the
// cube constraint holds. Drift ties resolve to x first, then y, the
// same rule Linedraw applies to its samples.
func Round(x, y, z float64) Coord {
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	switch {
	case dx >= dy && dx >= dz:
		rx = -ry - rz
	case dy >= dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Coord{X: int(rx), Y: int(ry), Z: int(rz)}
}
