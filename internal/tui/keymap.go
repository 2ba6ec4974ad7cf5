// Package tui provides the terminal user interface for the back office.
package tui

import "github.com/charmbracelet/bubbles/key"

// Keymap contains the application-level key bindings. Table navigation
// lives in components.TableKeyMap.
type Keymap struct {
	NextTab key.Binding
	PrevTab key.Binding
	GoTo    key.Binding

	Refresh key.Binding
	Delete  key.Binding
	Action  key.Binding
	Copy    key.Binding
	Export  key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeymap returns the default bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous page")),
		GoTo:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "jump to page")),

		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Action:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "page action")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy IDs")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export CSV")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
