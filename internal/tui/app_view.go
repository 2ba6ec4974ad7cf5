package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/hy4ri/backoffice-tui/internal/tui/styles"
	"github.com/hy4ri/backoffice-tui/internal/tui/views"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if a.mode == ModeHelp {
		return a.helpComp.View()
	}

	if a.mode == ModeConfirm && a.pending != nil {
		dialog := overlay.New(
			staticView(a.renderConfirmDialog),
			staticView(a.renderScreen),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return dialog.View()
	}

	return a.renderScreen()
}

// staticView adapts a render function to tea.Model for the overlay, which
// composites two models' views.
type staticView func() string

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return v() }

func (a *App) renderScreen() string {
	tabBar := a.renderTabBar()
	main := a.renderMainView()
	statusBar := a.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, main, statusBar)
}

func (a *App) renderConfirmDialog() string {
	p := a.pending.page
	n := len(a.pending.targets)

	content := styles.StatusBarError.Render(fmt.Sprintf("⚠️ Delete %d %s?", n, noun(p, n))) + "\n\n" +
		styles.HelpDesc.Render("This cannot be undone.") + "\n\n" +
		styles.HelpDesc.Render("y: confirm • n/Esc: cancel")

	return styles.Dialog.Width(44).Render(content)
}

func (a *App) renderTabBar() string {
	// Full: "👤 Users", short: "👤 Usr", minimal: icon only
	useShortLabels := a.width < 80
	useMinimalLabels := a.width < 50

	current := a.coord.Current()
	var tabStrs []string
	for i, p := range a.coord.Registry().Pages() {
		var label string
		switch {
		case useMinimalLabels:
			label = p.Icon
		case useShortLabels:
			label = fmt.Sprintf("%s %s", p.Icon, p.ShortName)
		default:
			label = fmt.Sprintf("%d %s %s", i+1, p.Icon, p.Title)
		}

		if p == current {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")

	maxWidth := a.width - 4
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	return styles.TabBar.Width(a.width).Render(tabLine)
}

func (a *App) renderMainView() string {
	p := a.coord.Current()
	if p == nil {
		return styles.App.Render(styles.Muted.Render("No page selected"))
	}

	title := styles.Title.Render(p.Title)
	if u := a.session.User(); u != nil {
		title += styles.Muted.Render("  signed in as " + u.Name)
	}
	if a.expired {
		title += "  " + styles.BadgeDanger.Render("session expired")
	}

	var body string
	switch {
	case !p.Loaded && p.Loading:
		body = a.spinner.View() + " Loading " + strings.ToLower(p.Title) + "..."
	case !p.Loaded && p.Err != nil:
		body = styles.StatusBarError.Render("Could not load "+strings.ToLower(p.Title)+".") +
			"\n" + styles.HelpDesc.Render("Press r to retry.")
	default:
		body = p.Table.View()
	}

	content := title + "\n" + body
	if line := a.renderPromptLine(p); line != "" {
		content += "\n" + line
	}
	return styles.App.Render(content)
}

// renderPromptLine shows the input line for an action that takes an
// argument.
func (a *App) renderPromptLine(p *views.Page) string {
	if a.pending == nil || a.mode != ModePrompt || p.Action == nil {
		return ""
	}
	n := len(a.pending.targets)
	return styles.PromptContainer.Render(
		styles.PromptLabel.Render(fmt.Sprintf("%s (%d)", p.Action.Label, n)) + " " + a.prompt.View(),
	)
}

func (a *App) renderStatusBar() string {
	left := ""
	switch {
	case a.err != nil:
		errStr := strings.ReplaceAll(a.err.Error(), "\n", " ")
		left = styles.StatusBarError.Render("Error: " + errStr)
	case a.warning != "":
		left = styles.StatusBarWarning.Render(a.warning)
	case a.statusMsg != "":
		left = styles.StatusBarSuccess.Render(strings.ReplaceAll(a.statusMsg, "\n", " "))
	}
	if a.loading {
		left = a.spinner.View() + " " + left
	}

	hints := []string{
		styles.StatusBarKey.Render("/") + styles.StatusBarText.Render(":search"),
		styles.StatusBarKey.Render("d") + styles.StatusBarText.Render(":delete"),
	}
	if p := a.coord.Current(); p != nil && p.Action != nil {
		hints = append(hints, styles.StatusBarKey.Render("x")+styles.StatusBarText.Render(":"+p.Action.Label))
	}
	hints = append(hints, styles.StatusBarKey.Render("?")+styles.StatusBarText.Render(":help"))
	right := strings.Join(hints, " ")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	maxLeftWidth := a.width - rightWidth - padding - 4
	if leftWidth > maxLeftWidth && maxLeftWidth > 10 {
		left = lipgloss.NewStyle().MaxWidth(maxLeftWidth).Render(left)
		leftWidth = lipgloss.Width(left)
	}

	gap := a.width - leftWidth - rightWidth - padding
	if gap < 1 {
		// Narrow terminal: drop the hints.
		right = ""
		gap = 1
		left = lipgloss.NewStyle().MaxWidth(a.width - padding).Render(left)
	}

	return styles.StatusBar.Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}
