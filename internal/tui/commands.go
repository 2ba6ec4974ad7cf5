package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/backoffice-tui/internal/logger"
	"github.com/hy4ri/backoffice-tui/internal/table"
)

type errMsg struct{ err error }
type statusMsg struct{ msg string }

// Swapped in tests.
var (
	writeClipboard = clipboard.WriteAll
	now            = time.Now
)

// copyIDsCmd copies record ids to the clipboard, one per line.
func copyIDsCmd(ids []string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(strings.Join(ids, "\n")); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		if len(ids) == 1 {
			return statusMsg{msg: "Copied id " + ids[0]}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %d ids", len(ids))}
	}
}

// exportCmd writes rows as CSV to <dir>/<page>-<timestamp>.csv.
func exportCmd(page string, cols []table.Column, rows []table.Record, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := exportCSV(page, cols, rows, dir)
		if err != nil {
			return errMsg{fmt.Errorf("export failed: %w", err)}
		}
		logger.Info("exported", "page", page, "rows", len(rows), "path", path)
		return statusMsg{msg: fmt.Sprintf("Exported %d rows to %s", len(rows), path)}
	}
}

func exportCSV(page string, cols []table.Column, rows []table.Record, dir string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	name := fmt.Sprintf("%s-%s.csv", page, now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := table.WriteCSV(f, cols, rows); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
