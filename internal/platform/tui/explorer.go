// Package tui provides the terminal explorer for hextide worlds,
// including SSH serving via Wish.
package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hextide/internal/config"
	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/world"
)

// Explorer layout constants
const (
	minWidthForSidebar = 72 // Minimum width to show the info sidebar
	sidebarWidth       = 26 // Width of the info sidebar
)

// ExplorerModel is the Bubble Tea model for the interactive map view.
// It never mutates the grid; worlds are explored read-only.
type ExplorerModel struct {
	grid     *world.Grid
	name     string
	canvas   *Canvas
	view     mapView
	keys     ExplorerKeyMap
	help     help.Model
	blockers map[hex.Coord]bool

	cursor       hex.Coord
	target       *hex.Coord
	path         []hex.Coord
	pathSet      map[hex.Coord]bool
	pathCost     float64
	pathComputed bool
	cursorMode   bool
	showCoords   bool

	width    int
	height   int
	quitting bool
	back     bool
}

// NewExplorerModel creates an explorer over the given world.
func NewExplorerModel(g *world.Grid, name string, cfg config.ExplorerConfig, width, height int) ExplorerModel {
	m := ExplorerModel{
		grid:       g,
		name:       name,
		keys:       DefaultExplorerKeyMap(),
		help:       help.New(),
		blockers:   buildBlockers(g),
		cursor:     startCursor(g),
		cursorMode: true,
		showCoords: cfg.ShowCoords,
		width:      width,
		height:     height,
	}
	m.view = newMapView(g.Layout().Orientation, cfg.HexSpan, cfg.Aspect)
	m.view.centerOn(m.cursor)
	m.canvas = NewCanvas(m.mapWidth(), m.mapHeight())
	m.help.Width = width
	return m
}

// Init initializes the explorer model.
func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the explorer.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvas.Resize(m.mapWidth(), m.mapHeight())
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ExplorerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Mode):
		m.cursorMode = !m.cursorMode

	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)

	case key.Matches(msg, m.keys.Target):
		t := m.cursor
		m.target = &t
		m.clearPath()

	case key.Matches(msg, m.keys.Path):
		m.computePath()

	case key.Matches(msg, m.keys.Coords):
		m.showCoords = !m.showCoords

	case key.Matches(msg, m.keys.ZoomIn):
		m.view.setSpan(m.view.span + 1)
		m.view.centerOn(m.cursor)

	case key.Matches(msg, m.keys.ZoomOut):
		m.view.setSpan(m.view.span - 1)
		m.view.centerOn(m.cursor)

	case key.Matches(msg, m.keys.Center):
		m.view.centerOn(m.cursor)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse selects the cell under a left click.
func (m ExplorerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// The map starts below the title line.
	mx, my := msg.X, msg.Y-1
	if mx < 0 || mx >= m.canvas.Width() || my < 0 || my >= m.canvas.Height() {
		return m, nil
	}

	coord := m.view.unproject(m.canvas, mx, my)
	if m.grid.Contains(coord) {
		m.cursor = coord
	}
	return m, nil
}

// move routes an arrow press to camera panning or cursor stepping.
func (m *ExplorerModel) move(dx, dy int) {
	if !m.cursorMode {
		m.view.pan(dx, dy)
		return
	}
	m.moveCursor(dx, dy)
}

// moveCursor snaps the cursor to the nearest stored cell in the given
// screen direction. Distance ties prefer the cell most aligned with the
// movement axis, then the lowest (Z, X), so movement is stable on any grid.
func (m *ExplorerModel) moveCursor(dx, dy int) {
	fx, fy := m.view.layout.ToPixel(m.cursor)

	var best hex.Coord
	found := false
	bestDist := 0
	bestOrtho := 0.0

	for _, c := range m.grid.Coords() {
		if c == m.cursor {
			continue
		}
		px, py := m.view.layout.ToPixel(c)
		if dx != 0 && (px-fx)*float64(dx) < 0.1 {
			continue
		}
		if dy != 0 && (py-fy)*float64(dy) < 0.1 {
			continue
		}

		dist := m.cursor.Distance(c)
		ortho := math.Abs(py - fy)
		if dy != 0 {
			ortho = math.Abs(px - fx)
		}

		better := !found ||
			dist < bestDist ||
			(dist == bestDist && ortho < bestOrtho-1e-9) ||
			(dist == bestDist && math.Abs(ortho-bestOrtho) <= 1e-9 && lessZX(c, best))
		if better {
			best, bestDist, bestOrtho, found = c, dist, ortho, true
		}
	}

	if found {
		m.cursor = best
		m.view.centerOn(best)
	}
}

// computePath runs A* from the cursor to the target. When no target is
// set, the nearest port becomes the target.
func (m *ExplorerModel) computePath() {
	if m.target == nil {
		m.target = m.nearestPort()
		if m.target == nil {
			return
		}
	}

	m.path = m.grid.FindPath(m.cursor, *m.target)
	m.pathSet = make(map[hex.Coord]bool, len(m.path))
	m.pathCost = 0
	for i, c := range m.path {
		m.pathSet[c] = true
		if i > 0 {
			m.pathCost += m.grid.At(c).MoveCost
		}
	}
	m.pathComputed = true
}

// clearPath drops a stale path overlay after the target moves.
func (m *ExplorerModel) clearPath() {
	m.path = nil
	m.pathSet = nil
	m.pathCost = 0
	m.pathComputed = false
}

// nearestPort finds the closest port cell to the cursor, or nil when the
// world has no ports.
func (m *ExplorerModel) nearestPort() *hex.Coord {
	var best *hex.Coord
	bestDist := 0
	for _, c := range m.grid.Coords() {
		cell := m.grid.At(c)
		if cell == nil || cell.Terrain != "port" {
			continue
		}
		d := m.cursor.Distance(c)
		if best == nil || d < bestDist || (d == bestDist && lessZX(c, *best)) {
			cc := c
			best, bestDist = &cc, d
		}
	}
	return best
}

// View renders the explorer.
func (m ExplorerModel) View() string {
	if m.quitting {
		return ""
	}

	drawWorld(m.canvas, m.grid, m.view, viewState{
		cursor:     m.cursor,
		target:     m.target,
		path:       m.pathSet,
		showCoords: m.showCoords,
	})
	mapStr := RenderCanvas(m.canvas)

	main := mapStr
	if m.showSidebar() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, mapStr, " ", m.renderSidebar())
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return titleStyle.Render(m.titleLine()) + "\n" + main + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// titleLine shows the world name and the active input mode.
func (m ExplorerModel) titleLine() string {
	mode := "camera"
	if m.cursorMode {
		mode = "cursor"
	}
	return centerText(fmt.Sprintf("%s  [%s]", m.name, mode), m.width)
}

// renderSidebar renders the info panel for the cursor cell.
func (m ExplorerModel) renderSidebar() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", m.name)
	fmt.Fprintf(&b, "cells: %d\n\n", m.grid.Len())

	q, r := m.cursor.Axial()
	col, row := m.cursor.Offset(m.grid.Layout().Orientation)
	fmt.Fprintf(&b, "cube   %s\n", m.cursor)
	fmt.Fprintf(&b, "axial  (%d, %d)\n", q, r)
	fmt.Fprintf(&b, "offset (%d, %d)\n", col, row)

	if cell := m.grid.At(m.cursor); cell != nil {
		fmt.Fprintf(&b, "\nterrain %s\n", cell.Terrain)
		fmt.Fprintf(&b, "cost    %.1f\n", cell.MoveCost)
		if cell.BlocksSight {
			b.WriteString("sight   blocked\n")
		}
		for _, k := range sortedKeys(cell.Meta) {
			fmt.Fprintf(&b, "%s: %s\n", k, cell.Meta[k])
		}
	}

	if m.target != nil {
		fmt.Fprintf(&b, "\ntarget %s\n", *m.target)
		visible := "yes"
		if !m.cursor.LineOfSight(*m.target, m.blockers) {
			visible = "no"
		}
		fmt.Fprintf(&b, "visible %s\n", visible)
		if m.pathComputed {
			if len(m.path) == 0 {
				b.WriteString("path   unreachable\n")
			} else {
				fmt.Fprintf(&b, "path   %d steps, cost %.1f\n", len(m.path)-1, m.pathCost)
			}
		}
	}

	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// showSidebar returns true when the terminal is wide enough for the panel.
func (m ExplorerModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// mapWidth returns the canvas width for the current terminal size.
func (m ExplorerModel) mapWidth() int {
	w := m.width
	if m.showSidebar() {
		w -= sidebarWidth + 1
	}
	return max(w, 1)
}

// mapHeight returns the canvas height, leaving room for title and help.
func (m ExplorerModel) mapHeight() int {
	return max(m.height-2, 1)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m ExplorerModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if the user wants to return to the browser.
func (m ExplorerModel) IsGoingBack() bool {
	return m.back
}

// startCursor picks the initial cursor cell: the origin when stored,
// otherwise the first cell in reading order.
func startCursor(g *world.Grid) hex.Coord {
	origin := hex.Coord{}
	if g.Contains(origin) {
		return origin
	}
	var best hex.Coord
	found := false
	for _, c := range g.Coords() {
		if !found || lessZX(c, best) {
			best, found = c, true
		}
	}
	return best
}

// buildBlockers collects the sight-blocking cells once per world.
func buildBlockers(g *world.Grid) map[hex.Coord]bool {
	blockers := make(map[hex.Coord]bool)
	for _, c := range g.Coords() {
		if cell := g.At(c); cell != nil && cell.BlocksSight {
			blockers[c] = true
		}
	}
	return blockers
}

// lessZX orders coordinates by (Z, X), the reading order of the map.
func lessZX(a, b hex.Coord) bool {
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	return a.X < b.X
}

// sortedKeys returns metadata keys in stable display order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunExplorer opens the explorer over the given world in the local terminal.
// Returns true if the user wants to go back to the browser, false if quitting.
func RunExplorer(g *world.Grid, name string, cfg config.ExplorerConfig, width, height int) (goBack bool, err error) {
	model := NewExplorerModel(g, name, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ExplorerModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
