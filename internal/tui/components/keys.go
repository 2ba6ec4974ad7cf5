package components

import "github.com/charmbracelet/bubbles/key"

// TableKeyMap holds the bindings a DataTable reacts to.
type TableKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Search      key.Binding
	SearchField key.Binding
	Sort        key.Binding
	Reverse     key.Binding
	Select      key.Binding
	SelectAll   key.Binding
	Clear       key.Binding
	Expand      key.Binding
	MoreRows    key.Binding
	FewerRows   key.Binding
}

// DefaultTableKeyMap returns the Vim-style table bindings.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		PrevPage:    key.NewBinding(key.WithKeys("h", "left", "pgup"), key.WithHelp("h/←", "previous page")),
		NextPage:    key.NewBinding(key.WithKeys("l", "right", "pgdown"), key.WithHelp("l/→", "next page")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		SearchField: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle search field")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by next column")),
		Reverse:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "reverse sort")),
		Select:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
		SelectAll:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "select page")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Expand:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand card")),
		MoreRows:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		FewerRows:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
	}
}

// Bindings lists every binding in help order.
func (k TableKeyMap) Bindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.PrevPage, k.NextPage,
		k.Search, k.SearchField, k.Sort, k.Reverse,
		k.Select, k.SelectAll, k.Clear, k.Expand,
		k.MoreRows, k.FewerRows,
	}
}
