package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/world"
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:       lipgloss.NewStyle(),
	ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < c.Width() {
			startColor := c.Get(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				g := c.Get(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// terrainGlyphs maps terrain names to their map symbols. Terrain is an
// open vocabulary, so anything unlisted falls back to unknownGlyph.
var terrainGlyphs = map[string]Glyph{
	"ocean":    {Rune: '~', Color: ColorBlue},
	"reef":     {Rune: '*', Color: ColorCyan},
	"river":    {Rune: '~', Color: ColorBrightCyan},
	"land":     {Rune: '.', Color: ColorGreen},
	"forest":   {Rune: 'f', Color: ColorBrightGreen},
	"desert":   {Rune: 'd', Color: ColorYellow},
	"mountain": {Rune: '^', Color: ColorGray},
	"port":     {Rune: 'P', Color: ColorBrightYellow},
}

var unknownGlyph = Glyph{Rune: '?', Color: ColorWhite}

// glyphFor returns the map symbol for a cell.
func glyphFor(cell *world.Cell) Glyph {
	if g, ok := terrainGlyphs[cell.Terrain]; ok {
		return g
	}
	return unknownGlyph
}

// Hex spacing limits for the map view.
const (
	minSpan = 2
	maxSpan = 12
)

// mapView projects world cells onto the canvas. Its layout lives in
// character space: Size is chosen so neighboring centers sit span columns
// apart, and y is squashed by aspect because terminal cells are taller
// than they are wide.
type mapView struct {
	span   int
	aspect float64
	layout hex.Layout
	camX   float64 // camera center in character-space pixels
	camY   float64
}

// newMapView builds a view for the given orientation and hex spacing.
func newMapView(o hex.Orientation, span int, aspect float64) mapView {
	if aspect <= 0 {
		aspect = 0.58
	}
	v := mapView{aspect: aspect, layout: hex.Layout{Orientation: o}}
	v.setSpan(span)
	return v
}

// setSpan changes the distance between neighboring hex centers,
// clamped to keep the map readable.
func (v *mapView) setSpan(span int) {
	v.span = min(max(span, minSpan), maxSpan)
	size := float64(v.span) / math.Sqrt(3)
	if v.layout.Orientation == hex.FlatTop {
		size = float64(v.span) / 1.5
	}
	v.layout = hex.Layout{Orientation: v.layout.Orientation, Size: size}
}

// project maps a world cell to canvas coordinates.
func (v mapView) project(c *Canvas, coord hex.Coord) (int, int) {
	px, py := v.layout.ToPixel(coord)
	sx := int(math.Round(px-v.camX)) + c.Width()/2
	sy := int(math.Round((py-v.camY)*v.aspect)) + c.Height()/2
	return sx, sy
}

// unproject maps canvas coordinates back to the hex under them.
func (v mapView) unproject(c *Canvas, sx, sy int) hex.Coord {
	px := float64(sx-c.Width()/2) + v.camX
	py := float64(sy-c.Height()/2)/v.aspect + v.camY
	return v.layout.FromPixel(px, py)
}

// centerOn points the camera at the given cell.
func (v *mapView) centerOn(coord hex.Coord) {
	v.camX, v.camY = v.layout.ToPixel(coord)
}

// pan shifts the camera by one hex step in the given screen direction.
func (v *mapView) pan(dx, dy int) {
	v.camX += float64(dx * v.span)
	v.camY += float64(dy*v.span) / 2
}

// viewState carries the per-frame overlay state for drawWorld.
type viewState struct {
	cursor     hex.Coord
	target     *hex.Coord
	path       map[hex.Coord]bool
	showCoords bool
}

// drawWorld paints the visible part of the grid onto the canvas.
// Cells are drawn as single glyphs at their projected centers; the
// path, target and cursor are drawn on top, in that order.
func drawWorld(c *Canvas, g *world.Grid, v mapView, st viewState) {
	c.Clear()

	for _, coord := range g.Coords() {
		sx, sy := v.project(c, coord)
		if sx < 0 || sx >= c.Width() || sy < 0 || sy >= c.Height() {
			continue
		}
		gl := glyphFor(g.At(coord))
		c.Set(sx, sy, gl.Rune, gl.Color)
	}

	// Axial labels need room between centers.
	if st.showCoords && v.span >= 6 {
		for _, coord := range g.Coords() {
			sx, sy := v.project(c, coord)
			if sy < 0 || sy >= c.Height() {
				continue
			}
			q, r := coord.Axial()
			label := fmt.Sprintf("%d,%d", q, r)
			if len(label) >= v.span {
				label = label[:v.span-1]
			}
			c.DrawText(sx+1, sy, label, ColorGray)
		}
	}

	for coord := range st.path {
		if coord == st.cursor || (st.target != nil && coord == *st.target) {
			continue
		}
		sx, sy := v.project(c, coord)
		c.Set(sx, sy, '*', ColorBrightMagenta)
	}

	if st.target != nil {
		sx, sy := v.project(c, *st.target)
		c.Set(sx, sy, 'X', ColorBrightRed)
	}

	sx, sy := v.project(c, st.cursor)
	c.Set(sx, sy, '@', ColorBrightWhite)
}
