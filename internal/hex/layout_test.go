package hex

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOrientationString(t *testing.T) {
	if PointyTop.String() != "pointy" {
		t.Errorf("PointyTop.String() = %q", PointyTop.String())
	}
	if FlatTop.String() != "flat" {
		t.Errorf("FlatTop.String() = %q", FlatTop.String())
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in       string
		expected Orientation
		ok       bool
	}{
		{"pointy", PointyTop, true},
		{"flat", FlatTop, true},
		{"", PointyTop, false},
		{"hexagonal", PointyTop, false},
	}

	for _, tc := range tests {
		got, ok := ParseOrientation(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseOrientation(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestToPixelKnownValues(t *testing.T) {
	sqrt3 := math.Sqrt(3)

	tests := []struct {
		name   string
		layout Layout
		c      Coord
		x, y   float64
	}{
		{
			name:   "pointy origin",
			layout: Layout{Orientation: PointyTop, Size: 10},
			c:      Coord{0, 0, 0},
			x:      0, y: 0,
		},
		{
			name:   "pointy one step east",
			layout: Layout{Orientation: PointyTop, Size: 10},
			c:      FromAxial(1, 0),
			x:      sqrt3 * 10, y: 0,
		},
		{
			name:   "pointy one row down",
			layout: Layout{Orientation: PointyTop, Size: 10},
			c:      FromAxial(0, 1),
			x:      sqrt3 / 2 * 10, y: 15,
		},
		{
			name:   "flat one step east",
			layout: Layout{Orientation: FlatTop, Size: 10},
			c:      FromAxial(1, 0),
			x:      15, y: sqrt3 / 2 * 10,
		},
		{
			name:   "flat one row down",
			layout: Layout{Orientation: FlatTop, Size: 10},
			c:      FromAxial(0, 1),
			x:      0, y: sqrt3 * 10,
		},
		{
			name:   "origin offset applies",
			layout: Layout{Orientation: PointyTop, Size: 10, OriginX: 100, OriginY: 50},
			c:      Coord{0, 0, 0},
			x:      100, y: 50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := tc.layout.ToPixel(tc.c)
			if !almostEqual(x, tc.x) || !almostEqual(y, tc.y) {
				t.Errorf("ToPixel(%v) = (%f, %f), expected (%f, %f)", tc.c, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestPixelRoundTrip(t *testing.T) {
	layouts := []Layout{
		{Orientation: PointyTop, Size: 10},
		{Orientation: PointyTop, Size: 23.5, OriginX: -40, OriginY: 128},
		{Orientation: FlatTop, Size: 10},
		{Orientation: FlatTop, Size: 5.25, OriginX: 17, OriginY: -3},
	}

	coords := New(0, 0).Range(4)
	coords = append(coords, New(20, -7), New(-13, 5), New(8, 31))

	for _, l := range layouts {
		for _, c := range coords {
			x, y := l.ToPixel(c)
			if got := l.FromPixel(x, y); got != c {
				t.Fatalf("FromPixel(ToPixel(%v)) = %v under %+v", c, got, l)
			}
		}
	}
}

func TestFromPixelNearCenter(t *testing.T) {
	l := Layout{Orientation: PointyTop, Size: 10}
	c := FromAxial(1, 0)
	cx, cy := l.ToPixel(c)

	// Probes well inside the hex (inradius is ~8.66 for size 10).
	probes := [][2]float64{
		{cx, cy},
		{cx + 3, cy + 2},
		{cx - 2.5, cy + 3},
		{cx + 1, cy - 4},
	}
	for _, p := range probes {
		if got := l.FromPixel(p[0], p[1]); got != c {
			t.Errorf("FromPixel(%f, %f) = %v, expected %v", p[0], p[1], got, c)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		x, y, z  float64
		expected Coord
	}{
		{"already integral", 1, -1, 0, Coord{1, -1, 0}},
		{"origin", 0, 0, 0, Coord{0, 0, 0}},
		{"z drifted most", 1.2, -0.7, -0.5, Coord{1, -1, 0}},
		{"valid after rounding", 2.9, -2.1, -0.8, Coord{3, -2, -1}},
		{"x wins drift tie", -1.4, 0.6, 0.8, Coord{-2, 1, 1}},
		{"y drifted most", 0.1, -1.6, 1.4, Coord{0, -1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Round(tc.x, tc.y, tc.z)
			if got != tc.expected {
				t.Errorf("Round(%f, %f, %f) = %v, expected %v", tc.x, tc.y, tc.z, got, tc.expected)
			}
			if got.X+got.Y+got.Z != 0 {
				t.Errorf("Round produced invalid coord %v", got)
			}
		})
	}
}

func TestCorners(t *testing.T) {
	l := Layout{Orientation: PointyTop, Size: 10}
	origin := Coord{0, 0, 0}

	// Pointy-top corner 0 sits at 30 degrees, corner 1 straight down
	// the positive y axis.
	x, y := l.Corner(origin, 0)
	if !almostEqual(x, 10*math.Cos(math.Pi/6)) || !almostEqual(y, 5) {
		t.Errorf("Corner(0) = (%f, %f)", x, y)
	}
	x, y = l.Corner(origin, 1)
	if !almostEqual(x, 0) || !almostEqual(y, 10) {
		t.Errorf("Corner(1) = (%f, %f), expected (0, 10)", x, y)
	}

	// Flat-top corner 0 sits on the positive x axis.
	fl := Layout{Orientation: FlatTop, Size: 10}
	x, y = fl.Corner(origin, 0)
	if !almostEqual(x, 10) || !almostEqual(y, 0) {
		t.Errorf("flat Corner(0) = (%f, %f), expected (10, 0)", x, y)
	}

	// Every corner is exactly Size away from the center.
	c := FromAxial(2, -1)
	cx, cy := l.ToPixel(c)
	for i, corner := range l.Corners(c) {
		d := math.Hypot(corner[0]-cx, corner[1]-cy)
		if !almostEqual(d, 10) {
			t.Errorf("corner %d at distance %f from center, expected 10", i, d)
		}
	}

	// Indices wrap: corner 6 is corner 0 again.
	x0, y0 := l.Corner(c, 0)
	x6, y6 := l.Corner(c, 6)
	if !almostEqual(x0, x6) || !almostEqual(y0, y6) {
		t.Errorf("Corner(6) = (%f, %f), expected Corner(0) = (%f, %f)", x6, y6, x0, y0)
	}
}
