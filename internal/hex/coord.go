// Package hex implements cube-coordinate math for hexagonal grids:
// conversions between cube, axial, offset and pixel space, distances,
// neighborhoods, line drawing and cube rounding. It has no dependencies
// beyond the standard library to keep world logic pure and testable.
//
// The model follows the classic treatment at
// https://www.redblobgames.com/grids/hexagons/: every hex is addressed
// by three integers (x, y, z) constrained to x+y+z = 0.
package hex

import (
	"errors"
	"fmt"
)

// ErrInvalidCoord reports cube components that do not satisfy x+y+z = 0.
var ErrInvalidCoord = errors.New("hex: invalid cube coordinate")

// Coord is a hex position in cube coordinates. The components always
// satisfy X+Y+Z = 0, so Coord values are comparable and usable as map
// keys with structural equality.
type Coord struct {
	X, Y, Z int
}

// New returns the coordinate (x, y, -x-y). Deriving the third component
// keeps the cube constraint satisfied by construction.
func New(x, y int) Coord {
	return Coord{X: x, Y: y, Z: -x - y}
}

// Cube returns the coordinate (x, y, z), or ErrInvalidCoord when the
// components do not sum to zero.
func Cube(x, y, z int) (Coord, error) {
	if x+y+z != 0 {
		return Coord{}, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidCoord, x, y, z)
	}
	return Coord{X: x, Y: y, Z: z}, nil
}

// FromAxial converts axial (q, r) to cube coordinates: x=q, z=r, y=-q-r.
func FromAxial(q, r int) Coord {
	return Coord{X: q, Y: -q - r, Z: r}
}

// Axial returns the axial (q, r) form, dropping the redundant component.
func (c Coord) Axial() (q, r int) {
	return c.X, c.Z
}

// FromOffset converts staggered offset coordinates (col, row) to cube
// form. PointyTop grids use odd-r staggering (odd rows shifted right),
// FlatTop grids odd-q (odd columns shifted down).
func FromOffset(col, row int, o Orientation) Coord {
	if o == FlatTop {
		x := col
		z := row - (col-(col&1))/2
		return Coord{X: x, Y: -x - z, Z: z}
	}
	x := col - (row-(row&1))/2
	z := row
	return Coord{X: x, Y: -x - z, Z: z}
}

// Offset returns the staggered offset (col, row) form for the given
// orientation. It inverts FromOffset exactly.
func (c Coord) Offset(o Orientation) (col, row int) {
	if o == FlatTop {
		return c.X, c.Z + (c.X-(c.X&1))/2
	}
	return c.X + (c.Z-(c.Z&1))/2, c.Z
}

// Add returns the componentwise sum c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the componentwise difference c-o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Scale returns c with every component multiplied by k.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Distance returns the number of hex steps between c and o. On a cube
// grid that is half the Manhattan distance of the component deltas.
func (c Coord) Distance(o Coord) int {
	return (abs(c.X-o.X) + abs(c.Y-o.Y) + abs(c.Z-o.Z)) / 2
}

// Directions lists the six unit offsets from a hex to its neighbors.
// The order is fixed and shared by Neighbors and Neighbor, so callers
// may rely on direction indices staying stable.
var Directions = [6]Coord{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// Neighbor returns the adjacent coordinate in the given direction.
// Indices wrap modulo 6, so negative and large values are accepted.
func (c Coord) Neighbor(direction int) Coord {
	i := direction % 6
	if i < 0 {
		i += 6
	}
	return c.Add(Directions[i])
}

// Range returns every coordinate within radius steps of c, including c
// itself. The result holds 3*radius*(radius+1)+1 coordinates; a negative
// radius yields nil.
func (c Coord) Range(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	out := make([]Coord, 0, 3*radius*(radius+1)+1)
	for dx := -radius; dx <= radius; dx++ {
		lo := max(-radius, -dx-radius)
		hi := min(radius, -dx+radius)
		for dy := lo; dy <= hi; dy++ {
			out = append(out, Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z - dx - dy})
		}
	}
	return out
}

// String formats the coordinate as "(x, y, z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
