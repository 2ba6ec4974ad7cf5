package views

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/logger"
	"github.com/hy4ri/backoffice-tui/internal/session"
	"github.com/hy4ri/backoffice-tui/internal/table"
)

// PageLoadedMsg reports the result of a page load.
type PageLoadedMsg struct {
	Page    string
	Records []table.Record
	Err     error
}

// ActionDoneMsg reports the result of a delete or page action.
type ActionDoneMsg struct {
	Page  string
	Verb  string
	Count int
	Err   error
}

// Coordinator switches between pages, keeps the session acquired for the
// page on screen and applies table intents to the current page's state.
type Coordinator struct {
	registry *Registry
	session  *session.Session
	client   *api.Client
	current  int
	held     bool
}

// NewCoordinator creates a new page coordinator. No page is entered yet.
func NewCoordinator(reg *Registry, sess *session.Session, client *api.Client) *Coordinator {
	return &Coordinator{
		registry: reg,
		session:  sess,
		client:   client,
		current:  -1,
	}
}

// Registry returns the page registry.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// Current returns the page on screen, or nil before the first Enter.
func (c *Coordinator) Current() *Page {
	pages := c.registry.Pages()
	if c.current < 0 || c.current >= len(pages) {
		return nil
	}
	return pages[c.current]
}

// Enter switches to the named page, loading it on first visit.
func (c *Coordinator) Enter(name string) (tea.Cmd, error) {
	idx := c.registry.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("unknown page %q (available: %s)", name, strings.Join(c.registry.Names(), ", "))
	}
	return c.enterIndex(idx)
}

// Next moves to the following tab, wrapping around.
func (c *Coordinator) Next() (tea.Cmd, error) {
	n := len(c.registry.Pages())
	return c.enterIndex((c.current + 1) % n)
}

// Prev moves to the preceding tab, wrapping around.
func (c *Coordinator) Prev() (tea.Cmd, error) {
	n := len(c.registry.Pages())
	return c.enterIndex((c.current - 1 + n) % n)
}

func (c *Coordinator) enterIndex(idx int) (tea.Cmd, error) {
	if idx == c.current && c.held {
		return nil, nil
	}

	c.Leave()
	if err := c.session.Acquire(); err != nil {
		return nil, fmt.Errorf("failed to enter page: %w", err)
	}
	c.held = true
	c.current = idx

	p := c.Current()
	logger.Debug("page entered", "page", p.Name, "refs", c.session.Refs())

	if !p.Loaded && !p.Loading {
		return c.Load(p), nil
	}
	return nil, nil
}

// Leave releases the session reference held for the current page.
func (c *Coordinator) Leave() {
	if c.held {
		c.session.Release()
		c.held = false
	}
}

// Load fetches p's records in the background. The session is held for the
// duration of the request.
func (c *Coordinator) Load(p *Page) tea.Cmd {
	name, load, client := p.Name, p.Load, c.client

	if err := c.session.Acquire(); err != nil {
		return func() tea.Msg {
			return PageLoadedMsg{Page: name, Err: err}
		}
	}
	p.Loading = true
	sess := c.session

	return func() tea.Msg {
		defer sess.Release()
		records, err := load(client)
		return PageLoadedMsg{Page: name, Records: records, Err: err}
	}
}

// HandleLoaded stores a load result on its page. A payload of the wrong
// shape still replaces the records (with an empty set) so the table renders;
// any other failure keeps what was loaded before.
func (c *Coordinator) HandleLoaded(msg PageLoadedMsg) *Page {
	p, ok := c.registry.Get(msg.Page)
	if !ok {
		return nil
	}
	p.Loading = false
	p.Err = msg.Err

	switch {
	case msg.Err == nil:
		logger.Debug("page loaded", "page", p.Name, "records", len(msg.Records))
	case errors.Is(msg.Err, api.ErrUnexpectedShape):
		logger.Warn("page loaded with unexpected shape", "page", p.Name, "err", msg.Err)
	default:
		logger.Warn("page load failed", "page", p.Name, "err", msg.Err)
		return p
	}

	records := msg.Records
	if records == nil {
		records = []table.Record{}
	}
	p.Loaded = true
	p.setRecords(records)
	return p
}

// Apply applies a table intent to the current page.
func (c *Coordinator) Apply(i table.Intent) {
	p := c.Current()
	if p == nil || i == nil {
		return
	}
	p.apply(i)
	logger.Debug("intent applied", "page", p.Name, "intent", fmt.Sprintf("%T", i))
}

// RunAction runs p's page action on targets.
func (c *Coordinator) RunAction(p *Page, targets []table.Record, input string) tea.Cmd {
	if p.Action == nil {
		return nil
	}
	action := p.Action
	return c.runEach(p.Name, action.Done, targets, func(client *api.Client, rec table.Record) error {
		return action.Run(client, rec, input)
	})
}

// RunDelete deletes targets.
func (c *Coordinator) RunDelete(p *Page, targets []table.Record) tea.Cmd {
	if p.Delete == nil {
		return nil
	}
	remove := p.Delete
	return c.runEach(p.Name, "deleted", targets, func(client *api.Client, rec table.Record) error {
		return remove(client, rec.ID())
	})
}

// runEach applies fn to every target in order, stopping at the first error.
func (c *Coordinator) runEach(page, verb string, targets []table.Record, fn func(*api.Client, table.Record) error) tea.Cmd {
	if len(targets) == 0 {
		return nil
	}
	if err := c.session.Acquire(); err != nil {
		return func() tea.Msg {
			return ActionDoneMsg{Page: page, Verb: verb, Err: err}
		}
	}
	client, sess := c.client, c.session

	return func() tea.Msg {
		defer sess.Release()

		done := 0
		for _, rec := range targets {
			if err := fn(client, rec); err != nil {
				logger.Warn("action failed", "page", page, "verb", verb, "id", rec.ID(), "err", err)
				return ActionDoneMsg{Page: page, Verb: verb, Count: done, Err: err}
			}
			done++
		}
		logger.Info("action done", "page", page, "verb", verb, "count", done)
		return ActionDoneMsg{Page: page, Verb: verb, Count: done}
	}
}

// IsUnauthorized reports whether err means the session's token was rejected.
func IsUnauthorized(err error) bool {
	if errors.Is(err, session.ErrDisposed) {
		return true
	}
	apiErr, ok := api.IsAPIError(err)
	return ok && apiErr.IsUnauthorized()
}
