package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/backoffice-tui/internal/tui/styles"
)

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpModel renders the help overlay with keyboard shortcuts.
type HelpModel struct {
	width, height int
	sections      []HelpSection
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.sections) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("⌨️  Keyboard Shortcuts"))
	b.WriteString("\n\n")

	// Alternate sections between two columns.
	var col1, col2 strings.Builder
	keyStyle := styles.HelpKey.Copy().Width(12).Align(lipgloss.Right).PaddingRight(2)

	for i, section := range h.sections {
		col := &col1
		if i%2 == 1 {
			col = &col2
		}
		col.WriteString("\n" + styles.SectionHeader.Render(" "+section.Title+" ") + "\n")
		for _, binding := range section.Bindings {
			help := binding.Help()
			if help.Key == "" {
				continue
			}
			col.WriteString(keyStyle.Render(help.Key) + styles.HelpDesc.Render(help.Desc) + "\n")
		}
	}

	colWidth := h.width / 2
	if colWidth > 50 {
		colWidth = 50
	}
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(col1.String()),
		columnStyle.Render(col2.String()),
	))
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer))

	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetSections sets the help content.
func (h *HelpModel) SetSections(sections []HelpSection) {
	h.sections = sections
}
