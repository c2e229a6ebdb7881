package worldgen

import "github.com/vovakirdan/hextide/internal/world"

// Terrain tags used by the built-in generators. The grid itself accepts
// any string; this is just the vocabulary the shipped content and the
// explorer theme agree on.
const (
	TerrainOcean    = "ocean"
	TerrainReef     = "reef"
	TerrainLand     = "land"
	TerrainForest   = "forest"
	TerrainDesert   = "desert"
	TerrainMountain = "mountain"
	TerrainRiver    = "river"
	TerrainPort     = "port"
)

// terrainDef fixes the movement cost and sight profile of a built-in tag.
type terrainDef struct {
	cost   float64
	blocks bool
}

var terrainDefs = map[string]terrainDef{
	TerrainOcean:    {cost: 1.0},
	TerrainReef:     {cost: 2.0},
	TerrainLand:     {cost: 1.0},
	TerrainForest:   {cost: 1.5},
	TerrainDesert:   {cost: 2.0},
	TerrainMountain: {cost: 3.0, blocks: true},
	TerrainRiver:    {cost: 2.0},
	TerrainPort:     {cost: 1.0},
}

// NewTerrainCell returns a cell carrying the built-in cost and sight
// profile for tag. Unknown tags get the plain cell defaults.
func NewTerrainCell(tag string) *world.Cell {
	cell := world.NewCell(tag)
	if def, ok := terrainDefs[tag]; ok {
		cell.MoveCost = def.cost
		cell.BlocksSight = def.blocks
	}
	return cell
}
