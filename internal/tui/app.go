package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/config"
	"github.com/hy4ri/backoffice-tui/internal/logger"
	"github.com/hy4ri/backoffice-tui/internal/session"
	"github.com/hy4ri/backoffice-tui/internal/table"
	"github.com/hy4ri/backoffice-tui/internal/tui/components"
	"github.com/hy4ri/backoffice-tui/internal/tui/styles"
	"github.com/hy4ri/backoffice-tui/internal/tui/views"
)

// Mode is what the keyboard currently drives.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeConfirm      // y/n on a destructive operation
	ModePrompt       // text input for an action argument
	ModeHelp
)

// pendingOp is an operation waiting for confirmation or input.
type pendingOp struct {
	page    *views.Page
	targets []table.Record
	delete  bool
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	client  *api.Client
	config  *config.Config
	session *session.Session
	coord   *views.Coordinator

	startPage string

	// UI state
	mode      Mode
	pending   *pendingOp
	loading   bool
	err       error
	warning   string
	statusMsg string
	expired   bool
	width     int
	height    int

	// Components
	keymap   Keymap
	spinner  spinner.Model
	prompt   textinput.Model
	helpComp *components.HelpModel
}

// NewApp creates a new App instance. The app takes over the caller's
// reference on sess and releases it on quit.
func NewApp(client *api.Client, sess *session.Session, cfg *config.Config, startPage string) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	prompt := textinput.New()
	prompt.CharLimit = 64
	prompt.Width = 30
	prompt.PromptStyle = styles.PromptLabel
	prompt.TextStyle = styles.PromptInput

	if startPage == "" {
		startPage = cfg.UI.StartPage
	}

	reg := views.DefaultRegistry(cfg.UI.RowsPerPage, cfg.UI.NarrowBreakpoint)
	if _, ok := reg.Get(startPage); !ok {
		if startPage != "" {
			logger.Warn("unknown start page, using first tab", "page", startPage)
		}
		startPage = reg.Names()[0]
	}

	a := &App{
		client:    client,
		config:    cfg,
		session:   sess,
		coord:     views.NewCoordinator(reg, sess, client),
		startPage: startPage,
		keymap:    DefaultKeymap(),
		spinner:   s,
		prompt:    prompt,
		helpComp:  components.NewHelp(),
	}
	a.helpComp.SetSections(a.helpSections())

	sess.OnDispose(func() {
		a.expired = true
	})

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmd, err := a.coord.Enter(a.startPage)
	if err != nil {
		a.err = err
		return nil
	}
	a.focusCurrent()
	a.loading = cmd != nil
	return tea.Batch(a.spinner.Tick, cmd)
}

// Mode returns the current input mode.
func (a *App) Mode() Mode {
	return a.mode
}

// CurrentPage returns the page on screen.
func (a *App) CurrentPage() *views.Page {
	return a.coord.Current()
}

func (a *App) focusCurrent() {
	current := a.coord.Current()
	for _, p := range a.coord.Registry().Pages() {
		if p == current {
			p.Table.Focus()
		} else {
			p.Table.Blur()
		}
	}
}

// shutdown releases the page reference and the app's root reference.
func (a *App) shutdown() tea.Cmd {
	a.coord.Leave()
	a.session.Release()
	logger.Info("tui exiting")
	return tea.Quit
}

// helpSections builds the help overlay from the live key bindings.
func (a *App) helpSections() []components.HelpSection {
	k := a.keymap
	t := components.DefaultTableKeyMap()
	return []components.HelpSection{
		{Title: "Pages", Bindings: []key.Binding{k.NextTab, k.PrevTab, k.GoTo, k.Refresh}},
		{Title: "Table", Bindings: t.Bindings()},
		{Title: "Actions", Bindings: []key.Binding{k.Action, k.Delete, k.Copy, k.Export}},
		{Title: "General", Bindings: []key.Binding{k.Help, k.Quit}},
	}
}
