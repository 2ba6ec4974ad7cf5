package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/backoffice-tui/internal/logger"
)

var notify = beeep.Notify

// notifyCmd raises a desktop notification when notifications are enabled.
// Failures are logged and otherwise ignored.
func (a *App) notifyCmd(title, message string) tea.Cmd {
	if !a.config.UI.Notifications {
		return nil
	}
	return func() tea.Msg {
		if err := notify(title, message, ""); err != nil {
			logger.Warn("failed to send notification", "err", err)
		}
		return nil
	}
}
