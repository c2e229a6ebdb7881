package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/world"
	"github.com/vovakirdan/hextide/internal/worldgen"
)

func TestGlyphForTerrain(t *testing.T) {
	tests := []struct {
		terrain string
		rune    rune
		color   Color
	}{
		{"ocean", '~', ColorBlue},
		{"land", '.', ColorGreen},
		{"mountain", '^', ColorGray},
		{"port", 'P', ColorBrightYellow},
	}

	for _, tt := range tests {
		g := glyphFor(world.NewCell(tt.terrain))
		if g.Rune != tt.rune || g.Color != tt.color {
			t.Errorf("glyphFor(%s) = %q/%d, expected %q/%d", tt.terrain, g.Rune, g.Color, tt.rune, tt.color)
		}
	}
}

func TestGlyphForUnknownTerrain(t *testing.T) {
	g := glyphFor(world.NewCell("swamp"))
	if g != unknownGlyph {
		t.Errorf("unknown terrain should render as %q, got %q", unknownGlyph.Rune, g.Rune)
	}
}

// Every tag the generators emit must have a dedicated symbol; hitting
// the fallback would mean the theme lost track of the vocabulary.
func TestGeneratorTerrainsHaveGlyphs(t *testing.T) {
	tags := []string{
		worldgen.TerrainOcean,
		worldgen.TerrainReef,
		worldgen.TerrainLand,
		worldgen.TerrainForest,
		worldgen.TerrainDesert,
		worldgen.TerrainMountain,
		worldgen.TerrainRiver,
		worldgen.TerrainPort,
	}

	for _, tag := range tags {
		if glyphFor(worldgen.NewTerrainCell(tag)) == unknownGlyph {
			t.Errorf("terrain %s has no dedicated glyph", tag)
		}
	}
}

func TestMapViewProjectsCenterToMiddle(t *testing.T) {
	c := NewCanvas(40, 20)
	v := newMapView(hex.PointyTop, 4, 0.58)
	v.centerOn(hex.Coord{})

	sx, sy := v.project(c, hex.Coord{})
	if sx != 20 || sy != 10 {
		t.Errorf("origin projected to (%d, %d), expected canvas center (20, 10)", sx, sy)
	}
}

func TestMapViewNeighborSpacing(t *testing.T) {
	c := NewCanvas(40, 20)
	v := newMapView(hex.PointyTop, 4, 0.58)
	v.centerOn(hex.Coord{})

	// The eastern neighbor must sit exactly span columns away on the
	// same row; that is what the span-derived hex size guarantees.
	sx, sy := v.project(c, hex.New(1, -1))
	if sx != 24 || sy != 10 {
		t.Errorf("east neighbor projected to (%d, %d), expected (24, 10)", sx, sy)
	}

	sx, sy = v.project(c, hex.New(-1, 1))
	if sx != 16 || sy != 10 {
		t.Errorf("west neighbor projected to (%d, %d), expected (16, 10)", sx, sy)
	}
}

func TestMapViewUnprojectRoundTrip(t *testing.T) {
	for _, orientation := range []hex.Orientation{hex.PointyTop, hex.FlatTop} {
		c := NewCanvas(80, 40)
		v := newMapView(orientation, 4, 0.58)
		v.centerOn(hex.Coord{})

		for _, coord := range hex.New(0, 0).Range(3) {
			sx, sy := v.project(c, coord)
			got := v.unproject(c, sx, sy)
			if got != coord {
				t.Errorf("%v: project/unproject of %v gave %v at (%d, %d)", orientation, coord, got, sx, sy)
			}
		}
	}
}

func TestMapViewSetSpanClamps(t *testing.T) {
	v := newMapView(hex.PointyTop, 0, 0)
	if v.span != minSpan {
		t.Errorf("span = %d, expected clamp to %d", v.span, minSpan)
	}

	v.setSpan(100)
	if v.span != maxSpan {
		t.Errorf("span = %d, expected clamp to %d", v.span, maxSpan)
	}
}

func TestMapViewPan(t *testing.T) {
	c := NewCanvas(40, 20)
	v := newMapView(hex.PointyTop, 4, 0.58)
	v.centerOn(hex.Coord{})

	v.pan(1, 0)

	// Panning east by one step shifts everything one span left on screen.
	sx, sy := v.project(c, hex.Coord{})
	if sx != 16 || sy != 10 {
		t.Errorf("after pan origin projected to (%d, %d), expected (16, 10)", sx, sy)
	}
}

func TestDrawWorldOverlays(t *testing.T) {
	g := world.New(hex.DefaultLayout())
	g.FillHexagon(2, hex.Coord{}, "ocean")

	c := NewCanvas(40, 20)
	v := newMapView(hex.PointyTop, 4, 0.58)
	v.centerOn(hex.Coord{})

	target := hex.New(2, -2)
	drawWorld(c, g, v, viewState{
		cursor: hex.Coord{},
		target: &target,
		path: map[hex.Coord]bool{
			{}:             true,
			hex.New(1, -1): true,
			target:         true,
		},
	})

	// Cursor on top at the canvas center
	if got := c.Get(20, 10); got.Rune != '@' || got.Color != ColorBrightWhite {
		t.Errorf("cursor cell = %q/%d, expected '@'/bright white", got.Rune, got.Color)
	}

	// Path marker one hop east; cursor and target cells keep their own markers
	if got := c.Get(24, 10); got.Rune != '*' || got.Color != ColorBrightMagenta {
		t.Errorf("path cell = %q/%d, expected '*'/bright magenta", got.Rune, got.Color)
	}

	// Target two hops east
	if got := c.Get(28, 10); got.Rune != 'X' || got.Color != ColorBrightRed {
		t.Errorf("target cell = %q/%d, expected 'X'/bright red", got.Rune, got.Color)
	}

	// Plain terrain to the west
	if got := c.Get(16, 10); got.Rune != '~' || got.Color != ColorBlue {
		t.Errorf("terrain cell = %q/%d, expected '~'/blue", got.Rune, got.Color)
	}
}

func TestDrawWorldCoordLabels(t *testing.T) {
	g := world.New(hex.DefaultLayout())
	g.FillHexagon(1, hex.Coord{}, "ocean")

	c := NewCanvas(60, 20)
	v := newMapView(hex.PointyTop, 6, 0.58)
	v.centerOn(hex.Coord{})

	drawWorld(c, g, v, viewState{cursor: hex.New(1, -1), showCoords: true})

	// The origin's axial label starts one column right of its center
	if got := c.Get(31, 10); got.Rune != '0' {
		t.Errorf("label cell = %q, expected '0'", got.Rune)
	}
	if got := c.Get(32, 10); got.Rune != ',' {
		t.Errorf("label cell = %q, expected ','", got.Rune)
	}

	// Labels need room: at narrow spans they are suppressed
	v.setSpan(4)
	v.centerOn(hex.Coord{})
	drawWorld(c, g, v, viewState{cursor: hex.New(1, -1), showCoords: true})
	if got := c.Get(31, 10); got.Rune != ' ' {
		t.Errorf("narrow span should not draw labels, got %q", got.Rune)
	}
}

func TestRenderCanvasKeepsRunsTogether(t *testing.T) {
	c := NewCanvas(6, 2)
	c.DrawText(0, 0, "~~~", ColorBlue)
	c.Set(3, 0, '@', ColorBrightWhite)
	c.DrawText(0, 1, "..", ColorGreen)

	out := RenderCanvas(c)

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 1 newline for 2 rows, got %d", strings.Count(out, "\n"))
	}

	// Same-color runs stay contiguous regardless of the color profile
	if !strings.Contains(out, "~~~") {
		t.Error("blue run should render as one contiguous chunk")
	}
	if !strings.Contains(out, "..") {
		t.Error("green run should render as one contiguous chunk")
	}
}
