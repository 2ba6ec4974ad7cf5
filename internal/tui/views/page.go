package views

import (
	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/table"
	"github.com/hy4ri/backoffice-tui/internal/tui/components"
)

// LoadFunc fetches every record a page lists.
type LoadFunc func(c *api.Client) ([]table.Record, error)

// Action is a page-specific operation run against the targeted records.
type Action struct {
	// Label describes the action in help and the status bar.
	Label string

	// Done is the past tense used in status messages ("blocked/unblocked").
	Done string

	// Prompt, when set, asks the operator for a value before running.
	Prompt string

	Run func(c *api.Client, rec table.Record, input string) error
}

// Page is one resource tab: its columns, how to load it, what can be done
// with its rows, and the view state of its table.
type Page struct {
	Name      string
	Title     string
	Icon      string
	ShortName string
	Columns   []table.Column

	Load   LoadFunc
	Delete func(c *api.Client, id string) error
	Action *Action

	State   table.State
	Table   *components.DataTable
	Records []table.Record
	Loaded  bool
	Loading bool
	Err     error
}

// Targets returns the records an action applies to: the selected ones, or
// the cursor row when nothing is selected.
func (p *Page) Targets() []table.Record {
	ids := p.State.SelectedIDs(p.Records)
	if len(ids) > 0 {
		byID := make(map[string]table.Record, len(p.Records))
		for _, rec := range p.Records {
			byID[rec.ID()] = rec
		}
		out := make([]table.Record, 0, len(ids))
		for _, id := range ids {
			out = append(out, byID[id])
		}
		return out
	}

	if rec, ok := p.Table.CursorRecord(); ok {
		return []table.Record{rec}
	}
	return nil
}

// Derived returns every record that survives the current sort and filter,
// across all pages of the table.
func (p *Page) Derived() []table.Record {
	return p.State.Derive(p.Records, p.Columns)
}

// apply hands an intent's result to the table.
func (p *Page) apply(i table.Intent) {
	p.State = i.Apply(p.State)
	p.Table.SetState(p.State)
}

func (p *Page) setRecords(records []table.Record) {
	p.Records = records
	p.Table.SetData(records)
}

// recordLoader adapts a typed list getter to a LoadFunc.
func recordLoader[T table.Recorder](get func(*api.Client) ([]T, error)) LoadFunc {
	return func(c *api.Client) ([]table.Record, error) {
		items, err := get(c)
		return table.Records(items), err
	}
}
