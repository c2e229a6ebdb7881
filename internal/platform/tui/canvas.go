package tui

// Color represents a foreground color for a canvas cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for map elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Glyph is a single colored character on the canvas.
type Glyph struct {
	Rune  rune
	Color Color
}

// blank is what cleared canvas cells hold.
var blank = Glyph{Rune: ' ', Color: ColorDefault}

// Canvas is a 2D buffer of colored characters for rendering the map.
// It decouples map drawing from the terminal: drawing code places glyphs,
// the platform turns the buffer into styled terminal output.
type Canvas struct {
	width  int
	height int
	cells  [][]Glyph
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Glyph, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Glyph, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions. Content is discarded; callers
// redraw every frame anyway.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
	c.Clear()
}

// Clear fills the entire canvas with blanks.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Glyph{Rune: r, Color: color}
}

// Get returns the glyph at the given position.
// Returns a blank for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Glyph {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	for i, r := range text {
		c.Set(x+i, y, r, color)
	}
}

// String converts the canvas to a plain string without color codes.
// Useful for tests and screenshots.
func (c *Canvas) String() string {
	buf := make([]rune, 0, (c.width+1)*c.height)
	for y := 0; y < c.height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < c.width; x++ {
			buf = append(buf, c.cells[y][x].Rune)
		}
	}
	return string(buf)
}
