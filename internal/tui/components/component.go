// Package components provides the widgets the back-office pages are built
// from: the data table and the help overlay.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a sub-model owned by the app. It is updated in place, so
// Update returns the receiver.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable components draw their cursor only while focused.
type Focusable interface {
	Component
	Focus()
	Blur()
	Focused() bool
}

// DataReceiver components render data they do not own.
type DataReceiver[T any] interface {
	SetData(data T)
}
