package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the playground key bindings.
type keyMap struct {
	Success key.Binding
	Error   key.Binding
	Info    key.Binding
	Burst   key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Error:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Burst:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "burst of three")),
		Dismiss: key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HelpBindings returns the bindings shown in the help block, in display order.
func (k keyMap) HelpBindings() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Info, k.Burst, k.Dismiss, k.Quit}
}
