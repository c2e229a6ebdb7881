package world

import (
	"container/heap"

	"github.com/vovakirdan/hextide/internal/hex"
)

// Neighbor pairs an adjacent in-world coordinate with the cost of
// stepping onto it.
type Neighbor struct {
	Coord hex.Coord
	Cost  float64
}

// PathNeighbors returns the stored neighbors of c together with the
// cost of entering each. Neighbors without a stored cell are skipped;
// the cost of the cell being left plays no part.
func (g *Grid) PathNeighbors(c hex.Coord) []Neighbor {
	out := make([]Neighbor, 0, 6)
	for _, n := range c.Neighbors() {
		if cell := g.At(n); cell != nil {
			out = append(out, Neighbor{Coord: n, Cost: cell.MoveCost})
		}
	}
	return out
}

// FindPath returns a cheapest path from start to goal as the sequence
// of coordinates stepped on, both endpoints included. It returns nil
// when either endpoint has no stored cell or no route exists; absence
// of a path is an answer, not an error.
//
// The search is A* with the hex distance heuristic and a closed set
// that is never reopened. Every movement cost of at least 1 keeps the
// heuristic admissible and the result optimal; cells cheaper than 1
// let the heuristic overestimate, and the path found may then not be
// the cheapest one.
func (g *Grid) FindPath(start, goal hex.Coord) []hex.Coord {
	if !g.Contains(start) || !g.Contains(goal) {
		return nil
	}
	if start == goal {
		return []hex.Coord{start}
	}

	gScore := map[hex.Coord]float64{start: 0}
	cameFrom := make(map[hex.Coord]hex.Coord)
	closed := make(map[hex.Coord]bool)

	open := &pathQueue{{coord: start, f: float64(start.Distance(goal))}}
	heap.Init(open)

	for open.Len() > 0 {
		current := heap.Pop(open).(pathNode).coord
		if closed[current] {
			continue // stale entry superseded by a cheaper push
		}
		if current == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		closed[current] = true

		for _, nb := range g.PathNeighbors(current) {
			if closed[nb.Coord] {
				continue
			}
			tentative := gScore[current] + nb.Cost
			if best, seen := gScore[nb.Coord]; seen && tentative >= best {
				continue
			}
			gScore[nb.Coord] = tentative
			cameFrom[nb.Coord] = current
			heap.Push(open, pathNode{
				coord: nb.Coord,
				f:     tentative + float64(nb.Coord.Distance(goal)),
			})
		}
	}
	return nil
}

func reconstructPath(cameFrom map[hex.Coord]hex.Coord, start, goal hex.Coord) []hex.Coord {
	path := []hex.Coord{goal}
	for at := goal; at != start; {
		at = cameFrom[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// pathNode is one open-set entry. Cheaper rediscoveries push a second
// entry instead of updating in place; the closed check on pop discards
// the stale one.
type pathNode struct {
	coord hex.Coord
	f     float64
}

type pathQueue []pathNode

func (q pathQueue) Len() int           { return len(q) }
func (q pathQueue) Less(i, j int) bool { return q[i].f < q[j].f }
func (q pathQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *pathQueue) Push(x any) {
	*q = append(*q, x.(pathNode))
}

func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
