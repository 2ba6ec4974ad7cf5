package table

// State is the caller-owned view state for one table.
type State struct {
	Page        int
	RowsPerPage int
	Order       Order
	OrderBy     string
	FilterName  string

	// SearchFields limits filtering to these paths. Empty means every
	// search-field option of the table's columns.
	SearchFields []string

	// Selected holds record IDs.
	Selected map[string]bool
}

// NewState returns a state on the first page sorted ascending by orderBy.
func NewState(rowsPerPage int, orderBy string) State {
	if rowsPerPage <= 0 {
		rowsPerPage = 10
	}
	return State{
		RowsPerPage: rowsPerPage,
		Order:       Asc,
		OrderBy:     orderBy,
		Selected:    map[string]bool{},
	}
}

// Fields returns the effective search fields for cols.
func (s State) Fields(cols []Column) []string {
	if len(s.SearchFields) > 0 {
		return s.SearchFields
	}
	return SearchFieldIDs(cols)
}

// Derive returns every record that survives sorting and filtering.
func (s State) Derive(records []Record, cols []Column) []Record {
	return Derive(records, BuildComparator(s.Order, s.OrderBy), s.FilterName, s.Fields(cols))
}

// Window derives records and slices out the current page. It also returns
// the derived total so callers can render page counts and padding.
func (s State) Window(records []Record, cols []Column) ([]Record, int) {
	derived := s.Derive(records, cols)
	return Paginate(derived, s.Page, s.RowsPerPage), len(derived)
}

// SelectedIDs returns the selected IDs in the order they appear in records.
func (s State) SelectedIDs(records []Record) []string {
	var ids []string
	for _, r := range records {
		if id := r.ID(); id != "" && s.Selected[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Intent is a request to change view state. Tables emit intents; the page
// that owns the state applies them.
type Intent interface {
	Apply(s State) State
}

// RequestSort asks to sort by Column. Repeating the request on the current
// ascending column flips it to descending; non-sortable columns are ignored.
type RequestSort struct {
	Column Column
}

func (r RequestSort) Apply(s State) State {
	if !r.Column.Sortable || r.Column.ID == "" {
		return s
	}
	if s.OrderBy == r.Column.ID && s.Order == Asc {
		s.Order = Desc
	} else {
		s.Order = Asc
	}
	s.OrderBy = r.Column.ID
	return s
}

// RequestPage moves to Page. Pages past the end are allowed and render empty.
type RequestPage struct {
	Page int
}

func (r RequestPage) Apply(s State) State {
	s.Page = r.Page
	if s.Page < 0 {
		s.Page = 0
	}
	return s
}

// RequestRowsPerPage changes the page size and returns to the first page.
type RequestRowsPerPage struct {
	RowsPerPage int
}

func (r RequestRowsPerPage) Apply(s State) State {
	if r.RowsPerPage <= 0 {
		return s
	}
	s.RowsPerPage = r.RowsPerPage
	s.Page = 0
	return s
}

// RequestFilter replaces the free-text filter and returns to the first page.
type RequestFilter struct {
	Text string
}

func (r RequestFilter) Apply(s State) State {
	s.FilterName = r.Text
	s.Page = 0
	return s
}

// RequestSearchField restricts filtering to Field. An empty Field searches
// every option.
type RequestSearchField struct {
	Field string
}

func (r RequestSearchField) Apply(s State) State {
	if r.Field == "" {
		s.SearchFields = nil
	} else {
		s.SearchFields = []string{r.Field}
	}
	s.Page = 0
	return s
}

// ToggleSelect flips the selection of one record.
type ToggleSelect struct {
	ID string
}

func (r ToggleSelect) Apply(s State) State {
	if r.ID == "" {
		return s
	}
	sel := copySelection(s.Selected)
	if sel[r.ID] {
		delete(sel, r.ID)
	} else {
		sel[r.ID] = true
	}
	s.Selected = sel
	return s
}

// SelectAll selects IDs, or clears the selection when all of them are
// already selected.
type SelectAll struct {
	IDs []string
}

func (r SelectAll) Apply(s State) State {
	all := len(r.IDs) > 0
	for _, id := range r.IDs {
		if !s.Selected[id] {
			all = false
			break
		}
	}

	sel := copySelection(s.Selected)
	for _, id := range r.IDs {
		if all {
			delete(sel, id)
		} else {
			sel[id] = true
		}
	}
	s.Selected = sel
	return s
}

// ClearSelection drops every selected ID.
type ClearSelection struct{}

func (ClearSelection) Apply(s State) State {
	s.Selected = map[string]bool{}
	return s
}

func copySelection(sel map[string]bool) map[string]bool {
	out := make(map[string]bool, len(sel)+1)
	for k, v := range sel {
		if v {
			out[k] = v
		}
	}
	return out
}
