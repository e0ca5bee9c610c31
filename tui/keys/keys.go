package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the graph browser.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Raw        key.Binding
	Help       key.Binding
	Escape     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "previous graph")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next graph")),
	Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first graph")),
	Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last graph")),
	ScrollUp:   key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup/K", "scroll definition up")),
	ScrollDown: key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn/J", "scroll definition down")),
	Raw:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle raw definition")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Bindings lists the key bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.ScrollUp, k.ScrollDown, k.Raw, k.Help, k.Quit}
}
