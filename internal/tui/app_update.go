package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/logger"
	"github.com/hy4ri/backoffice-tui/internal/table"
	"github.com/hy4ri/backoffice-tui/internal/tui/components"
	"github.com/hy4ri/backoffice-tui/internal/tui/views"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case components.IntentMsg:
		a.coord.Apply(msg.Intent)
		return a, nil

	case components.CloseHelpMsg:
		a.mode = ModeNormal
		return a, nil

	case views.PageLoadedMsg:
		return a, a.handlePageLoaded(msg)

	case views.ActionDoneMsg:
		return a, a.handleActionDone(msg)

	case errMsg:
		a.loading = false
		return a, a.fail(msg.err)

	case statusMsg:
		a.statusMsg = msg.msg
		a.err = nil
		return a, nil
	}

	// Forward anything else (cursor blink) to the active input.
	if a.mode == ModePrompt {
		var cmd tea.Cmd
		a.prompt, cmd = a.prompt.Update(msg)
		return a, cmd
	}
	if p := a.coord.Current(); p != nil && p.Table.Searching() {
		_, cmd := p.Table.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) resize() {
	// tab bar (2) + title (1) + status bar (1) + prompt line (1)
	bodyHeight := a.height - 5
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	bodyWidth := a.width - 2
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	for _, p := range a.coord.Registry().Pages() {
		p.Table.SetSize(bodyWidth, bodyHeight)
	}
	a.helpComp.SetSize(a.width, a.height)
}

func (a *App) handlePageLoaded(msg views.PageLoadedMsg) tea.Cmd {
	p := a.coord.HandleLoaded(msg)
	a.loading = a.anyLoading()

	if msg.Err == nil {
		if p == a.coord.Current() {
			a.err = nil
			a.warning = ""
		}
		return nil
	}

	if errors.Is(msg.Err, api.ErrUnexpectedShape) {
		a.warning = fmt.Sprintf("%s: server sent an unexpected payload, showing nothing", msg.Page)
		return nil
	}
	return a.fail(msg.Err)
}

func (a *App) handleActionDone(msg views.ActionDoneMsg) tea.Cmd {
	a.loading = false
	p, _ := a.coord.Registry().Get(msg.Page)

	var cmds []tea.Cmd
	if msg.Count > 0 {
		a.statusMsg = fmt.Sprintf("%d %s %s", msg.Count, noun(p, msg.Count), msg.Verb)
		if p != nil {
			if p == a.coord.Current() {
				a.coord.Apply(table.ClearSelection{})
			}
			cmds = append(cmds, a.coord.Load(p))
			a.loading = true
		}
	}
	if msg.Err != nil {
		cmds = append(cmds, a.fail(msg.Err))
	} else {
		a.err = nil
	}
	return tea.Batch(cmds...)
}

// fail records err for the status bar, raises a notification, and ends the
// session when the API rejected the token.
func (a *App) fail(err error) tea.Cmd {
	a.err = err
	if views.IsUnauthorized(err) {
		a.session.Dispose()
		return a.notifyCmd("Session expired", "Log in again to continue.")
	}
	return a.notifyCmd("Back office error", err.Error())
}

func (a *App) anyLoading() bool {
	for _, p := range a.coord.Registry().Pages() {
		if p.Loading {
			return true
		}
	}
	return false
}

func noun(p *views.Page, n int) string {
	if p == nil {
		return "records"
	}
	name := strings.ToLower(p.Title)
	if n == 1 {
		if strings.HasSuffix(name, "ies") {
			return strings.TrimSuffix(name, "ies") + "y"
		}
		return strings.TrimSuffix(name, "s")
	}
	return name
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, a.shutdown()
	}

	switch a.mode {
	case ModeHelp:
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	case ModeConfirm:
		return a, a.handleConfirmKey(msg)
	case ModePrompt:
		return a, a.handlePromptKey(msg)
	}

	p := a.coord.Current()
	if p == nil {
		if key.Matches(msg, a.keymap.Quit) {
			return a, a.shutdown()
		}
		return a, nil
	}

	// The filter box owns the keyboard while it is open.
	if p.Table.Searching() {
		_, cmd := p.Table.Update(msg)
		return a, cmd
	}

	if a.expired && !key.Matches(msg, a.keymap.Quit) {
		a.statusMsg = "Session expired. Press q and log in again."
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, a.shutdown()

	case key.Matches(msg, a.keymap.Help):
		a.mode = ModeHelp
		return a, nil

	case key.Matches(msg, a.keymap.NextTab):
		return a, a.switchPage(a.coord.Next)
	case key.Matches(msg, a.keymap.PrevTab):
		return a, a.switchPage(a.coord.Prev)
	case key.Matches(msg, a.keymap.GoTo):
		names := a.coord.Registry().Names()
		idx := int(msg.Runes[0] - '1')
		if idx < 0 || idx >= len(names) {
			return a, nil
		}
		return a, a.switchPage(func() (tea.Cmd, error) { return a.coord.Enter(names[idx]) })

	case key.Matches(msg, a.keymap.Refresh):
		a.loading = true
		a.statusMsg = "Refreshing " + strings.ToLower(p.Title) + "..."
		return a, tea.Batch(a.spinner.Tick, a.coord.Load(p))

	case key.Matches(msg, a.keymap.Delete):
		return a, a.beginDelete(p)
	case key.Matches(msg, a.keymap.Action):
		return a, a.beginAction(p)

	case key.Matches(msg, a.keymap.Copy):
		ids := targetIDs(p.Targets())
		if len(ids) == 0 {
			a.statusMsg = "Nothing to copy"
			return a, nil
		}
		return a, copyIDsCmd(ids)

	case key.Matches(msg, a.keymap.Export):
		return a, exportCmd(p.Name, p.Columns, p.Derived(), a.config.UI.ExportDir)
	}

	_, cmd := p.Table.Update(msg)
	return a, cmd
}

func (a *App) switchPage(move func() (tea.Cmd, error)) tea.Cmd {
	cmd, err := move()
	if err != nil {
		return a.fail(err)
	}
	a.focusCurrent()
	a.err = nil
	a.warning = ""
	a.statusMsg = ""
	if cmd != nil {
		a.loading = true
		return tea.Batch(a.spinner.Tick, cmd)
	}
	return nil
}

func (a *App) beginDelete(p *views.Page) tea.Cmd {
	targets := p.Targets()
	if len(targets) == 0 {
		a.statusMsg = "Nothing to delete"
		return nil
	}
	a.pending = &pendingOp{page: p, targets: targets, delete: true}
	a.mode = ModeConfirm
	return nil
}

func (a *App) beginAction(p *views.Page) tea.Cmd {
	if p.Action == nil {
		return nil
	}
	targets := p.Targets()
	if len(targets) == 0 {
		a.statusMsg = "Nothing selected"
		return nil
	}
	a.pending = &pendingOp{page: p, targets: targets}

	if p.Action.Prompt != "" {
		a.mode = ModePrompt
		a.prompt.Prompt = p.Action.Prompt + ": "
		a.prompt.SetValue("")
		return a.prompt.Focus()
	}

	a.mode = ModeNormal
	return a.runPending("")
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		a.mode = ModeNormal
		return a.runPending("")
	case "n", "N", "esc", "q":
		a.cancelPending()
	}
	return nil
}

func (a *App) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		a.prompt.Blur()
		a.cancelPending()
		return nil
	case tea.KeyEnter:
		value := strings.TrimSpace(a.prompt.Value())
		a.prompt.Blur()
		if value == "" {
			a.cancelPending()
			return nil
		}
		a.mode = ModeNormal
		return a.runPending(value)
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return cmd
}

func (a *App) cancelPending() {
	a.pending = nil
	a.mode = ModeNormal
	a.statusMsg = "Cancelled"
}

func (a *App) runPending(input string) tea.Cmd {
	op := a.pending
	a.pending = nil
	if op == nil {
		return nil
	}

	var cmd tea.Cmd
	if op.delete {
		logger.Info("deleting", "page", op.page.Name, "count", len(op.targets))
		cmd = a.coord.RunDelete(op.page, op.targets)
	} else {
		cmd = a.coord.RunAction(op.page, op.targets, input)
	}
	if cmd == nil {
		return nil
	}
	a.loading = true
	return tea.Batch(a.spinner.Tick, cmd)
}

func targetIDs(records []table.Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if id := r.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
