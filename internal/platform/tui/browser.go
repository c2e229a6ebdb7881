package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hextide/internal/config"
	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/storage"
	"github.com/vovakirdan/hextide/internal/world"
	"github.com/vovakirdan/hextide/internal/worldgen"
)

// BrowserModel is the Bubble Tea model for the saved-world list.
type BrowserModel struct {
	store   *storage.Store
	cfg     config.Config
	entries []storage.WorldEntry
	table   table.Model
	help    help.Model
	keys    BrowserKeyMap
	status  string

	width    int
	height   int
	quitting bool

	opened   bool
	openName string
	openGrid *world.Grid
}

// NewBrowserModel creates a browser over the saved worlds. A nil store is
// tolerated; the browser can still generate and open throwaway worlds.
func NewBrowserModel(store *storage.Store, cfg config.Config, width, height int) BrowserModel {
	m := BrowserModel{
		store:  store,
		cfg:    cfg,
		keys:   DefaultBrowserKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.loadEntries()
	return m
}

// createTable creates the world list table.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Generator", Width: 10},
		{Title: "Cells", Width: 7},
		{Title: "Updated", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadEntries refreshes the world list from storage.
func (m *BrowserModel) loadEntries() {
	if m.store == nil {
		m.entries = nil
		m.updateTableRows()
		return
	}

	entries, err := m.store.ListWorlds()
	if err != nil {
		m.entries = nil
		m.status = fmt.Sprintf("cannot list worlds: %v", err)
	} else {
		m.entries = entries
	}
	m.updateTableRows()
}

// updateTableRows rebuilds the table from the current entries.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.Name,
			e.Generator,
			fmt.Sprintf("%d", e.Cells),
			e.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			return m.openSelected()

		case key.Matches(msg, m.keys.New):
			return m.generateNew()

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openSelected loads the world under the cursor and hands it to the caller.
func (m BrowserModel) openSelected() (tea.Model, tea.Cmd) {
	if len(m.entries) == 0 || m.store == nil {
		return m, nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return m, nil
	}
	name := m.entries[idx].Name

	g, err := m.store.LoadWorld(name)
	if err != nil {
		m.status = fmt.Sprintf("cannot load %s: %v", name, err)
		return m, nil
	}
	if g == nil {
		m.status = fmt.Sprintf("world %s no longer exists", name)
		m.loadEntries()
		return m, nil
	}

	m.opened = true
	m.openName = name
	m.openGrid = g
	return m, tea.Quit
}

// generateNew builds a fresh island, saves it when storage is available,
// and opens it.
func (m BrowserModel) generateNew() (tea.Model, tea.Cmd) {
	gen, err := worldgen.Create("island")
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	name := "island-" + time.Now().Format("20060102-150405")
	g := gen.Generate(generatorOptions(m.cfg), time.Now().UnixNano())

	if m.store != nil {
		if _, err := m.store.SaveWorld(name, gen.ID(), g); err != nil {
			m.status = fmt.Sprintf("cannot save %s: %v", name, err)
		}
	}

	m.opened = true
	m.openName = name
	m.openGrid = g
	return m, tea.Quit
}

// deleteSelected removes the world under the cursor.
func (m *BrowserModel) deleteSelected() {
	if len(m.entries) == 0 || m.store == nil {
		return
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return
	}
	name := m.entries[idx].Name

	deleted, err := m.store.DeleteWorld(name)
	if err != nil {
		m.status = fmt.Sprintf("cannot delete %s: %v", name, err)
		return
	}
	if deleted {
		m.status = fmt.Sprintf("deleted %s", name)
	}
	m.loadEntries()
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.opened {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  H E X T I D E  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Saved worlds", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
		b.WriteString(statusStyle.Render(centerText(m.status, m.width)))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty-state message.
func (m BrowserModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No worlds saved yet.\nPress n to generate an island!")
	}

	return m.table.View()
}

// Opened returns true when the user picked a world to explore.
func (m BrowserModel) Opened() bool {
	return m.opened
}

// OpenedName returns the name of the world chosen for exploring.
func (m BrowserModel) OpenedName() string {
	return m.openName
}

// OpenedGrid returns the grid chosen for exploring.
func (m BrowserModel) OpenedGrid() *world.Grid {
	return m.openGrid
}

// IsQuitting returns true if the user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// BrowserResult is what the browser session ended with.
type BrowserResult struct {
	Name string
	Grid *world.Grid
	Quit bool
}

// RunBrowser runs the world browser in the local terminal and reports
// which world, if any, the user opened.
func RunBrowser(store *storage.Store, cfg config.Config, width, height int) (BrowserResult, error) {
	model := NewBrowserModel(store, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return BrowserResult{Quit: true}, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok || !m.Opened() {
		return BrowserResult{Quit: true}, nil
	}

	return BrowserResult{Name: m.OpenedName(), Grid: m.OpenedGrid()}, nil
}

// generatorOptions maps the application config onto generator tunables.
func generatorOptions(cfg config.Config) worldgen.Options {
	orientation, _ := hex.ParseOrientation(cfg.World.Orientation)
	return worldgen.Options{
		Layout: hex.Layout{
			Orientation: orientation,
			Size:        cfg.World.HexSize,
			OriginX:     cfg.World.OriginX,
			OriginY:     cfg.World.OriginY,
		},
		Radius:        cfg.Island.Radius,
		SeaLevel:      cfg.Island.SeaLevel,
		MountainLevel: cfg.Island.MountainLevel,
		Ports:         cfg.Island.Ports,
	}
}
