package worldgen

import "testing"

func TestNewTerrainCell(t *testing.T) {
	tests := []struct {
		tag    string
		cost   float64
		blocks bool
	}{
		{TerrainOcean, 1.0, false},
		{TerrainReef, 2.0, false},
		{TerrainForest, 1.5, false},
		{TerrainMountain, 3.0, true},
		{TerrainRiver, 2.0, false},
		{TerrainPort, 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			cell := NewTerrainCell(tc.tag)
			if cell.Terrain != tc.tag {
				t.Errorf("Terrain = %q, expected %q", cell.Terrain, tc.tag)
			}
			if cell.MoveCost != tc.cost {
				t.Errorf("MoveCost = %f, expected %f", cell.MoveCost, tc.cost)
			}
			if cell.BlocksSight != tc.blocks {
				t.Errorf("BlocksSight = %v, expected %v", cell.BlocksSight, tc.blocks)
			}
			if cell.Meta == nil {
				t.Error("Meta is nil, expected empty map")
			}
		})
	}
}

func TestNewTerrainCellUnknownTag(t *testing.T) {
	cell := NewTerrainCell("lava")
	if cell.Terrain != "lava" {
		t.Errorf("Terrain = %q, expected %q", cell.Terrain, "lava")
	}
	if cell.MoveCost != 1.0 {
		t.Errorf("MoveCost = %f, expected the plain default 1.0", cell.MoveCost)
	}
	if cell.BlocksSight {
		t.Error("BlocksSight = true, expected false for an unknown tag")
	}
}
