package worldgen

import (
	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/world"
)

// voyageRadius is the fixed radius of the hand-authored chart.
const voyageRadius = 5

func init() {
	Register("voyage", func() Generator { return voyageGenerator{} })
}

// voyageGenerator builds the demo sea chart: an ocean disc crossed by a
// river, with a mountain ridge in the southwest, a forest in the
// northeast and a single named port.
type voyageGenerator struct{}

func (voyageGenerator) ID() string    { return "voyage" }
func (voyageGenerator) Title() string { return "Voyage (demo sea chart)" }

// Generate ignores the seed and the size options: the chart is
// hand-authored and identical every run. Only opts.Layout applies.
func (voyageGenerator) Generate(opts Options, seed int64) *world.Grid {
	g := world.New(opts.Layout)
	g.FillHexagon(voyageRadius, hex.New(0, 0), TerrainOcean)

	// A river wandering across the middle of the chart.
	for q := -2; q <= 2; q++ {
		g.Set(hex.FromAxial(q, -q), NewTerrainCell(TerrainRiver))
	}

	// The mountain ridge overwrites the river's southwest end.
	for q := -4; q <= -2; q++ {
		for r := 2; r <= 4; r++ {
			g.Set(hex.FromAxial(q, r), NewTerrainCell(TerrainMountain))
		}
	}

	for q := 1; q <= 3; q++ {
		for r := -4; r <= -2; r++ {
			g.Set(hex.FromAxial(q, r), NewTerrainCell(TerrainForest))
		}
	}

	port := NewTerrainCell(TerrainPort)
	port.Meta["name"] = "Port Royal"
	g.Set(hex.FromAxial(3, -1), port)

	return g
}
