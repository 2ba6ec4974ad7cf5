package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/backoffice-tui/internal/table"
)

// IntentMsg carries a view-state change requested by a DataTable. The page
// that owns the table.State applies it and hands the result back.
type IntentMsg struct {
	Intent table.Intent
}

// CloseHelpMsg is emitted when the help overlay is dismissed.
type CloseHelpMsg struct{}

func emit(i table.Intent) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Intent: i}
	}
}
