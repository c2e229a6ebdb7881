package hex

// Linedraw returns the hexes crossed by a straight line from c to o,
// both endpoints included. The line is sampled by interpolating in cube
// space once per step and snapping each sample with Round, so the
// result always holds Distance(c, o)+1 coordinates. A zero-length line
// is just [c].
func (c Coord) Linedraw(o Coord) []Coord {
	n := c.Distance(o)
	if n == 0 {
		return []Coord{c}
	}

	out := make([]Coord, 0, n+1)
	step := 1.0 / float64(n)
	for i := 0; i <= n; i++ {
		t := step * float64(i)
		fx := float64(c.X)*(1-t) + float64(o.X)*t
		fy := float64(c.Y)*(1-t) + float64(o.Y)*t
		fz := float64(c.Z)*(1-t) + float64(o.Z)*t
		out = append(out, Round(fx, fy, fz))
	}
	return out
}

// LineOfSight returns true if no blocker sits strictly between c and o.
// Blockers on either endpoint never block the line, so a unit standing
// on a mountain can still be seen.
func (c Coord) LineOfSight(o Coord, blockers map[Coord]bool) bool {
	line := c.Linedraw(o)
	if len(line) < 3 {
		return true
	}
	for _, h := range line[1 : len(line)-1] {
		if blockers[h] {
			return false
		}
	}
	return true
}
