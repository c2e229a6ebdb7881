package worldgen

import (
	"math"
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/world"
)

func init() {
	Register("island", func() Generator { return islandGenerator{} })
}

// islandGenerator synthesizes an island from layered simplex noise.
// Elevation shaped by a radial falloff keeps the rim under water,
// moisture picks between desert, open land and forest, and a few ports
// get placed along the coastline.
type islandGenerator struct{}

func (islandGenerator) ID() string    { return "island" }
func (islandGenerator) Title() string { return "Island (simplex noise)" }

func (islandGenerator) Generate(opts Options, seed int64) *world.Grid {
	if seed == 0 {
		seed = rand.Int63()
	}

	elevNoise := opensimplex.NewNormalized(seed)
	moistNoise := opensimplex.NewNormalized(seed + 1)

	radius := opts.Radius
	if radius < 1 {
		radius = 1
	}

	g := world.New(opts.Layout)
	for _, c := range hex.New(0, 0).Range(radius) {
		q, r := c.Axial()

		// Axial to cartesian keeps the noise field isotropic:
		// x = q + r/2, y = r*sqrt(3)/2.
		x := float64(q) + float64(r)*0.5
		y := float64(r) * math.Sqrt(3) / 2

		elev := octaveNoise(elevNoise, x, y, 4, 0.09, 0.5)
		moist := octaveNoise(moistNoise, x, y, 3, 0.06, 0.5)

		// Radial falloff sinks the rim so the island stays an island.
		dist := math.Sqrt(x*x+y*y) / float64(radius)
		falloff := 1 - math.Pow(dist, 3)
		if falloff < 0 {
			falloff = 0
		}
		elev *= falloff

		g.Set(c, NewTerrainCell(classify(elev, moist, opts)))
	}

	placePorts(g, seed, opts.Ports)
	return g
}

// classify derives a terrain tag from the sampled layers. Shallows just
// under the sea level threshold become reefs.
func classify(elev, moist float64, opts Options) string {
	switch {
	case elev < opts.SeaLevel*0.9:
		return TerrainOcean
	case elev < opts.SeaLevel:
		return TerrainReef
	case elev > opts.MountainLevel:
		return TerrainMountain
	case moist < 0.3:
		return TerrainDesert
	case moist > 0.6:
		return TerrainForest
	default:
		return TerrainLand
	}
}

// placePorts promotes up to n coastal cells (walkable land next to open
// water) into named ports. Candidates are collected in a fixed
// coordinate order and shuffled with a seed-derived RNG so the same
// seed always founds the same harbor towns.
func placePorts(g *world.Grid, seed int64, n int) {
	if n <= 0 {
		return
	}

	coords := g.Coords()
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Z != coords[j].Z {
			return coords[i].Z < coords[j].Z
		}
		return coords[i].X < coords[j].X
	})

	var candidates []hex.Coord
	for _, c := range coords {
		switch g.At(c).Terrain {
		case TerrainLand, TerrainForest, TerrainDesert:
		default:
			continue
		}
		for _, nb := range c.Neighbors() {
			if cell := g.At(nb); cell != nil && cell.Terrain == TerrainOcean {
				candidates = append(candidates, c)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return
	}

	rng := rand.New(rand.NewSource(seed + 100))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}

	for i := 0; i < n; i++ {
		port := NewTerrainCell(TerrainPort)
		port.Meta["name"] = portNames[i%len(portNames)]
		g.Set(candidates[i], port)
	}
}

// portNames seed the harbor towns; worlds wanting more ports than names
// wrap around.
var portNames = []string{
	"Port Royal", "Tortuga", "Nassau", "Havana",
	"Kingston", "Bridgetown", "Maracaibo", "Santiago",
}

// octaveNoise layers multiple noise frequencies into fractal terrain.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
