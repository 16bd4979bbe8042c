package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit      key.Binding
	Redraw    key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	FocusUp   key.Binding
	FocusDown key.Binding
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "Quit"),
	),
	Redraw: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "Redraw screen"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "Previous tab"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "Next tab"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "Scroll help up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "Scroll help down"),
	),
	FocusUp: key.NewBinding(
		key.WithKeys("ctrl+up"),
		key.WithHelp("ctrl+↑", "Focus bar above"),
	),
	FocusDown: key.NewBinding(
		key.WithKeys("ctrl+down"),
		key.WithHelp("ctrl+↓", "Focus bar below"),
	),
}

// Bindings lists the bindings in the order they are shown in the help pane.
func (m Map) Bindings() []key.Binding {
	return []key.Binding{m.Left, m.Right, m.FocusUp, m.FocusDown, m.Up, m.Down, m.Redraw, m.Quit}
}
