package showcase

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Action      key.Binding
	CopyInstall key.Binding
	CopySnippet key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Action: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "interact"),
		),
		CopyInstall: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy install"),
		),
		CopySnippet: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy code"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Action, k.CopyInstall, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter, k.ClearFilter},
		{k.Action, k.CopyInstall, k.CopySnippet},
		{k.Help, k.Quit},
	}
}
