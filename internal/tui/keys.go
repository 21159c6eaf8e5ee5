package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Sort       key.Binding
	Shorten    key.Binding
	Counts     key.Binding
	ReadAll    key.Binding
	Disconnect key.Binding
	Reconnect  key.Binding
	Destroy    key.Binding
	Pause      key.Binding
	Command    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Sort, k.ReadAll, k.Command, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Next, k.Prev},
		{k.Sort, k.Shorten, k.Counts, k.ReadAll, k.Pause},
		{k.Disconnect, k.Reconnect, k.Destroy},
		{k.Command, k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open channel"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "ctrl+n"),
		key.WithHelp("n", "next active"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "ctrl+p"),
		key.WithHelp("p", "prev active"),
	),
	Sort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "cycle sort"),
	),
	Shorten: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "cycle shortening"),
	),
	Counts: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle counts"),
	),
	ReadAll: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "mark all read"),
	),
	Disconnect: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "drop connection"),
	),
	Reconnect: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reconnect"),
	),
	Destroy: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "destroy channel"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause feed"),
	),
	Command: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "command"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "ctrl+q"),
		key.WithHelp("q", "quit"),
	),
}
