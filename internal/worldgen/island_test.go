package worldgen

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/hextide/internal/hex"
)

func TestIslandDeterministicBySeed(t *testing.T) {
	gen, err := Create("island")
	if err != nil {
		t.Fatalf("Create(island) error: %v", err)
	}
	opts := DefaultOptions()
	opts.Radius = 8

	a, err := gen.Generate(opts, 42).EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	b, err := gen.Generate(opts, 42).EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different islands")
	}
}

func TestIslandFillsTheDisc(t *testing.T) {
	gen, _ := Create("island")
	opts := DefaultOptions()
	opts.Radius = 6

	g := gen.Generate(opts, 7)

	if want := 3*6*7 + 1; g.Len() != want {
		t.Errorf("Len() = %d, expected %d", g.Len(), want)
	}
	center := hex.New(0, 0)
	for _, c := range g.Coords() {
		if d := center.Distance(c); d > opts.Radius {
			t.Errorf("cell %v outside radius (distance %d)", c, d)
		}
	}
}

func TestIslandUsesKnownVocabulary(t *testing.T) {
	known := map[string]bool{
		TerrainOcean: true, TerrainReef: true, TerrainLand: true,
		TerrainForest: true, TerrainDesert: true, TerrainMountain: true,
		TerrainPort: true,
	}

	gen, _ := Create("island")
	opts := DefaultOptions()
	opts.Radius = 8

	g := gen.Generate(opts, 3)
	for _, c := range g.Coords() {
		cell := g.At(c)
		if !known[cell.Terrain] {
			t.Errorf("cell %v has unexpected terrain %q", c, cell.Terrain)
		}
		// Every cell carries its tag's cost and sight profile.
		if def, ok := terrainDefs[cell.Terrain]; ok {
			if cell.MoveCost != def.cost || cell.BlocksSight != def.blocks {
				t.Errorf("cell %v (%s) has cost %f blocks %v, expected %f %v",
					c, cell.Terrain, cell.MoveCost, cell.BlocksSight, def.cost, def.blocks)
			}
		}
	}
}

func TestIslandPortsSitOnTheCoast(t *testing.T) {
	gen, _ := Create("island")
	opts := DefaultOptions()
	opts.Radius = 10
	opts.Ports = 4

	g := gen.Generate(opts, 11)

	ports := 0
	for _, c := range g.Coords() {
		cell := g.At(c)
		if cell.Terrain != TerrainPort {
			continue
		}
		ports++
		if cell.Meta["name"] == "" {
			t.Errorf("port at %v has no name", c)
		}
		coastal := false
		for _, nb := range c.Neighbors() {
			if ncell := g.At(nb); ncell != nil && ncell.Terrain == TerrainOcean {
				coastal = true
				break
			}
		}
		if !coastal {
			t.Errorf("port at %v has no ocean neighbor", c)
		}
	}
	if ports > opts.Ports {
		t.Errorf("placed %d ports, expected at most %d", ports, opts.Ports)
	}
}

func TestIslandZeroPorts(t *testing.T) {
	gen, _ := Create("island")
	opts := DefaultOptions()
	opts.Radius = 6
	opts.Ports = 0

	g := gen.Generate(opts, 5)
	for _, c := range g.Coords() {
		if g.At(c).Terrain == TerrainPort {
			t.Fatalf("found a port at %v with Ports = 0", c)
		}
	}
}
