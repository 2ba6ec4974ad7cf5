package views

import (
	"github.com/hy4ri/backoffice-tui/internal/table"
	"github.com/hy4ri/backoffice-tui/internal/tui/components"
)

// Registry holds all registered pages in tab order.
type Registry struct {
	pages  []*Page
	byName map[string]*Page
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Page),
	}
}

// Register adds a page as the last tab.
func (r *Registry) Register(p *Page) {
	r.pages = append(r.pages, p)
	r.byName[p.Name] = p
}

// Get returns a page by name.
func (r *Registry) Get(name string) (*Page, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Index returns the tab position of name, or -1.
func (r *Registry) Index(name string) int {
	for i, p := range r.pages {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Pages returns all registered pages in tab order.
func (r *Registry) Pages() []*Page {
	return r.pages
}

// Names returns the registered page names in tab order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.pages))
	for i, p := range r.pages {
		names[i] = p.Name
	}
	return names
}

// DefaultRegistry creates a registry with every resource page. Each page
// starts sorted by its first sortable column.
func DefaultRegistry(rowsPerPage, breakpoint int) *Registry {
	r := NewRegistry()

	for _, p := range []*Page{
		usersPage(),
		restaurantsPage(),
		ordersPage(),
		deliveriesPage(),
		auctionsPage(),
		tendersPage(),
		billsPage(),
	} {
		p.State = table.NewState(rowsPerPage, firstSortable(p.Columns))
		p.Table = components.NewDataTable(p.Columns, p.State, breakpoint)
		r.Register(p)
	}

	return r
}

func firstSortable(cols []table.Column) string {
	for _, c := range cols {
		if c.Sortable && c.ID != "" {
			return c.ID
		}
	}
	return ""
}
