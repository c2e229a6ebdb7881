package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// ExplorerKeyMap defines the key bindings for the world explorer.
type ExplorerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Mode    key.Binding
	Target  key.Binding
	Path    key.Binding
	Coords  key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Center  key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ExplorerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Target, k.Path, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ExplorerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Mode, k.Target, k.Path, k.Coords},
		{k.ZoomIn, k.ZoomOut, k.Center},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultExplorerKeyMap returns default key bindings for the explorer.
func DefaultExplorerKeyMap() ExplorerKeyMap {
	return ExplorerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "camera/cursor"),
		),
		Target: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set target"),
		),
		Path: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "find path"),
		),
		Coords: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "coordinates"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		Center: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "center on cursor"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserKeyMap defines the key bindings for the world browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	New    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.New, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.New, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings for the browser.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "explore"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new island"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
