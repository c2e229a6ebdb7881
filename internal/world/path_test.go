package world

import (
	"testing"

	"github.com/vovakirdan/hextide/internal/hex"
)

// pathCost sums the movement cost of every entered cell; the start
// cell is free.
func pathCost(g *Grid, path []hex.Coord) float64 {
	var total float64
	for _, c := range path[1:] {
		total += g.At(c).MoveCost
	}
	return total
}

func assertWalkable(t *testing.T, g *Grid, path []hex.Coord, start, goal hex.Coord) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("expected a path, got none")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, expected %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %v, expected %v", path[len(path)-1], goal)
	}
	for i, c := range path {
		if !g.Contains(c) {
			t.Errorf("path step %d (%v) is not a stored cell", i, c)
		}
		if i > 0 {
			if d := path[i-1].Distance(c); d != 1 {
				t.Errorf("path steps %d and %d at distance %d, expected 1", i-1, i, d)
			}
		}
	}
}

func TestPathNeighbors(t *testing.T) {
	g := New(hex.DefaultLayout())
	g.FillHexagon(1, hex.New(0, 0), "ocean")

	// An interior cell sees all six neighbors.
	center := hex.New(0, 0)
	if got := g.PathNeighbors(center); len(got) != 6 {
		t.Errorf("PathNeighbors(center) returned %d entries, expected 6", len(got))
	}

	// A rim cell only sees the stored ones.
	rim := hex.New(1, -1)
	neighbors := g.PathNeighbors(rim)
	if len(neighbors) != 3 {
		t.Fatalf("PathNeighbors(rim) returned %d entries, expected 3", len(neighbors))
	}
	for _, n := range neighbors {
		if !g.Contains(n.Coord) {
			t.Errorf("PathNeighbors returned unstored coord %v", n.Coord)
		}
		if n.Cost != 1.0 {
			t.Errorf("neighbor %v cost = %f, expected 1.0", n.Coord, n.Cost)
		}
	}

	// Costs come from the entered cell.
	g.At(hex.New(1, 0)).MoveCost = 3.5
	for _, n := range g.PathNeighbors(center) {
		if n.Coord == hex.New(1, 0) && n.Cost != 3.5 {
			t.Errorf("neighbor cost = %f, expected 3.5", n.Cost)
		}
	}
}

func TestFindPathUniformCosts(t *testing.T) {
	g := New(hex.DefaultLayout())
	g.FillHexagon(2, hex.New(0, 0), "ocean")

	tests := []struct {
		name        string
		start, goal hex.Coord
	}{
		{"across the middle", hex.New(0, 0), hex.New(2, -2)},
		{"rim to rim", hex.New(-2, 2), hex.New(2, -2)},
		{"adjacent", hex.New(0, 0), hex.New(1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := g.FindPath(tc.start, tc.goal)
			assertWalkable(t, g, path, tc.start, tc.goal)
			// With uniform unit costs the path length is exactly
			// hex distance + 1.
			if want := tc.start.Distance(tc.goal) + 1; len(path) != want {
				t.Errorf("path length = %d, expected %d", len(path), want)
			}
		})
	}
}

func TestFindPathSameStartAndGoal(t *testing.T) {
	g := New(hex.DefaultLayout())
	g.FillHexagon(1, hex.New(0, 0), "ocean")

	c := hex.New(1, 0)
	path := g.FindPath(c, c)
	if len(path) != 1 || path[0] != c {
		t.Errorf("FindPath(c, c) = %v, expected [%v]", path, c)
	}
}

func TestFindPathMissingEndpoints(t *testing.T) {
	g := New(hex.DefaultLayout())
	g.Set(hex.New(0, 0), NewCell("ocean"))
	g.Set(hex.New(1, 0), NewCell("ocean"))

	// Goal was never stored.
	if path := g.FindPath(hex.New(0, 0), hex.New(2, 0)); len(path) != 0 {
		t.Errorf("FindPath to unstored goal = %v, expected empty", path)
	}
	// Start was never stored.
	if path := g.FindPath(hex.New(-1, 0), hex.New(1, 0)); len(path) != 0 {
		t.Errorf("FindPath from unstored start = %v, expected empty", path)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := New(hex.DefaultLayout())
	// Two stored cells with a gap between them.
	g.Set(hex.New(0, 0), NewCell("ocean"))
	g.Set(hex.New(3, -3), NewCell("ocean"))

	if path := g.FindPath(hex.New(0, 0), hex.New(3, -3)); len(path) != 0 {
		t.Errorf("FindPath across a gap = %v, expected empty", path)
	}
}

func TestFindPathDetoursAroundExpensiveTerrain(t *testing.T) {
	g := New(hex.DefaultLayout())
	g.FillHexagon(2, hex.New(0, 0), "ocean")

	// Make the two middle cells of the x=1 column prohibitively
	// expensive, leaving the cheap crossings at the column's ends.
	for _, c := range []hex.Coord{{X: 1, Y: -1, Z: 0}, {X: 1, Y: 0, Z: -1}} {
		cell := g.At(c)
		cell.Terrain = "mountain"
		cell.MoveCost = 100
	}

	start := hex.New(0, 0)
	goal := hex.New(2, -2)
	path := g.FindPath(start, goal)
	assertWalkable(t, g, path, start, goal)

	// The unique cheapest route crosses at (1, -2, 1).
	expected := []hex.Coord{{X: 0, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 1}, {X: 1, Y: -2, Z: 1}, {X: 2, Y: -2, Z: 0}}
	if len(path) != len(expected) {
		t.Fatalf("path = %v, expected %v", path, expected)
	}
	for i := range expected {
		if path[i] != expected[i] {
			t.Fatalf("path = %v, expected %v", path, expected)
		}
	}
	if cost := pathCost(g, path); cost != 3 {
		t.Errorf("path cost = %f, expected 3", cost)
	}
}

func TestFindPathSubUnitCostsStillWalkable(t *testing.T) {
	// Costs below 1 make the distance heuristic inadmissible; the
	// search must still terminate with a valid, if not necessarily
	// cheapest, path.
	g := New(hex.DefaultLayout())
	g.FillHexagon(2, hex.New(0, 0), "marsh")
	for _, c := range g.Coords() {
		g.At(c).MoveCost = 0.5
	}

	start := hex.New(-2, 2)
	goal := hex.New(2, -2)
	path := g.FindPath(start, goal)
	assertWalkable(t, g, path, start, goal)
}
