package world

import "github.com/vovakirdan/hextide/internal/hex"

// Grid is a sparse hexagonal world: a mapping from cube coordinate to
// terrain cell plus the pixel-space layout shared by every consumer.
// A coordinate is part of the world exactly when a cell is stored for
// it; there is no rectangular boundary, and removing a cell removes
// the coordinate from the world.
type Grid struct {
	layout hex.Layout
	cells  map[hex.Coord]*Cell
}

// New returns an empty grid with the given pixel layout.
func New(layout hex.Layout) *Grid {
	return &Grid{
		layout: layout,
		cells:  make(map[hex.Coord]*Cell),
	}
}

// Layout returns the grid's pixel-space layout.
func (g *Grid) Layout() hex.Layout {
	return g.layout
}

// At returns the cell stored at c, or nil when c is not part of the
// grid. The returned cell is the live record: mutating it mutates the
// world.
func (g *Grid) At(c hex.Coord) *Cell {
	return g.cells[c]
}

// Set stores cell at c, replacing whatever was there before.
func (g *Grid) Set(c hex.Coord, cell *Cell) {
	g.cells[c] = cell
}

// Remove deletes the cell at c. Removing an absent coordinate is a
// no-op, not an error.
func (g *Grid) Remove(c hex.Coord) {
	delete(g.cells, c)
}

// Contains returns true if a cell is stored at c.
func (g *Grid) Contains(c hex.Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of stored cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Coords returns every stored coordinate in unspecified order.
func (g *Grid) Coords() []hex.Coord {
	out := make([]hex.Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	return out
}

// FillRectangle stores fresh cells of the given terrain over a
// width x height block of axial coordinates, rows sheared by half the
// column index. The filled region is a parallelogram in pixel space,
// not a screen rectangle; existing worlds depend on this exact shape.
func (g *Grid) FillRectangle(width, height int, terrain string) {
	for q := 0; q < width; q++ {
		qOffset := q / 2
		for r := -qOffset; r < height-qOffset; r++ {
			g.Set(hex.FromAxial(q, r), NewCell(terrain))
		}
	}
}

// FillHexagon stores fresh cells of the given terrain over every
// coordinate within radius steps of center.
func (g *Grid) FillHexagon(radius int, center hex.Coord, terrain string) {
	for _, c := range center.Range(radius) {
		g.Set(c, NewCell(terrain))
	}
}
