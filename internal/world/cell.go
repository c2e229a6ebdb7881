// Package world provides the sparse hexagonal world model: terrain
// cells keyed by cube coordinate, cost-weighted pathfinding over them,
// bulk region fills, and a JSON snapshot codec for save documents. It
// depends only on the hex package so the model stays pure and testable.
//
// A Grid and its cells belong to a single owner. Nothing in this
// package synchronizes access; callers that share a grid across
// goroutines must bring their own locking.
package world

// DefaultTerrain is the terrain tag cells carry when none is given.
const DefaultTerrain = "ocean"

// DefaultMoveCost is the movement cost of an unremarkable cell.
const DefaultMoveCost = 1.0

// Cell is the terrain record stored at one grid coordinate. Terrain is
// an open vocabulary: any string tags a type, and unknown tags travel
// through serialization untouched so data-driven content keeps working.
// Meta carries extension data such as a settlement name.
type Cell struct {
	Terrain     string
	MoveCost    float64
	BlocksSight bool
	Meta        map[string]string
}

// NewCell returns a cell of the given terrain with default movement
// cost, no sight blocking and empty metadata.
func NewCell(terrain string) *Cell {
	return &Cell{
		Terrain:  terrain,
		MoveCost: DefaultMoveCost,
		Meta:     map[string]string{},
	}
}
