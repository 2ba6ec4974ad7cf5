package table

// Column describes one table column: the field it reads, its header and
// whether it takes part in sorting and searching.
type Column struct {
	// ID is a dotted field path. Empty for non-data columns such as actions.
	ID    string
	Label string

	// Searchable defaults to true when nil.
	Searchable *bool
	Sortable   bool
	AlignRight bool

	// Width is the preferred cell width in the wide layout; 0 lets the
	// renderer decide.
	Width int
}

// Flag is a helper for setting Column.Searchable inline.
func Flag(b bool) *bool { return &b }

// IsSearchable reports whether the column may be offered as a search field.
func (c Column) IsSearchable() bool {
	if c.ID == "" {
		return false
	}
	return c.Searchable == nil || *c.Searchable
}

// SearchFieldOptions returns the columns offered by the search-field
// selector: those explicitly marked searchable, or every searchable data
// column when none is explicitly marked.
func SearchFieldOptions(cols []Column) []Column {
	var marked []Column
	for _, c := range cols {
		if c.ID != "" && c.Searchable != nil && *c.Searchable {
			marked = append(marked, c)
		}
	}
	if len(marked) > 0 {
		return marked
	}

	var all []Column
	for _, c := range cols {
		if c.IsSearchable() {
			all = append(all, c)
		}
	}
	return all
}

// SearchFieldIDs returns the field paths of SearchFieldOptions.
func SearchFieldIDs(cols []Column) []string {
	opts := SearchFieldOptions(cols)
	ids := make([]string, len(opts))
	for i, c := range opts {
		ids[i] = c.ID
	}
	return ids
}

// FindColumn looks a column up by ID.
func FindColumn(cols []Column, id string) (Column, bool) {
	for _, c := range cols {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// CardFields splits data columns for the narrow card layout: the first two
// search-field options are always shown, every other data column sits
// behind the card's expand toggle.
func CardFields(cols []Column) (summary, details []Column) {
	opts := SearchFieldOptions(cols)
	if len(opts) > 2 {
		opts = opts[:2]
	}
	shown := make(map[string]bool, len(opts))
	for _, c := range opts {
		shown[c.ID] = true
	}

	for _, c := range cols {
		if c.ID == "" || shown[c.ID] {
			continue
		}
		details = append(details, c)
	}
	return opts, details
}
