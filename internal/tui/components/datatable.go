package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/hy4ri/backoffice-tui/internal/table"
	"github.com/hy4ri/backoffice-tui/internal/tui/styles"
	"github.com/hy4ri/backoffice-tui/internal/tui/utils"
)

// DataTable renders the current window of a page's records, either as a
// column-headed table or as a stack of cards on narrow terminals.
//
// It never changes the view state itself. Sorting, paging, filtering and
// selection are emitted as IntentMsg; the owning page applies them and calls
// SetState with the result. The cursor, the search box and the expanded
// cards are the only state the table keeps on its own.
type DataTable struct {
	columns []table.Column
	records []table.Record
	state   table.State

	window []table.Record
	total  int

	cursor     int
	expanded   map[string]bool
	breakpoint int
	layout     table.Layout
	width      int
	height     int
	focused    bool
	searching  bool

	search textinput.Model
	pager  paginator.Model
	keys   TableKeyMap
}

var (
	_ Focusable                    = (*DataTable)(nil)
	_ DataReceiver[[]table.Record] = (*DataTable)(nil)
	_ Component                    = (*HelpModel)(nil)
)

// NewDataTable creates a table for cols. breakpoint is the terminal width
// below which cards are used; 0 selects table.DefaultBreakpoint.
func NewDataTable(cols []table.Column, state table.State, breakpoint int) *DataTable {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "filter..."
	search.CharLimit = 100
	search.Width = 40
	search.PromptStyle = styles.PromptLabel
	search.TextStyle = styles.PromptInput
	search.PlaceholderStyle = styles.PromptPlaceholder

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = styles.Title.Render("•")
	pager.InactiveDot = styles.Muted.Render("•")

	t := &DataTable{
		columns:    cols,
		state:      state,
		expanded:   map[string]bool{},
		breakpoint: breakpoint,
		layout:     table.LayoutWide,
		search:     search,
		pager:      pager,
		keys:       DefaultTableKeyMap(),
	}
	t.refresh()
	return t
}

// Init implements Component.
func (t *DataTable) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (t *DataTable) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if t.searching {
			var cmd tea.Cmd
			t.search, cmd = t.search.Update(msg)
			return t, cmd
		}
		return t, nil
	}

	if t.searching {
		return t.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, t.keys.Up):
		t.moveCursor(-1)
	case key.Matches(keyMsg, t.keys.Down):
		t.moveCursor(1)

	case key.Matches(keyMsg, t.keys.PrevPage):
		if t.state.Page > 0 {
			return t, emit(table.RequestPage{Page: t.state.Page - 1})
		}
	case key.Matches(keyMsg, t.keys.NextPage):
		if t.state.Page+1 < table.PageCount(t.total, t.state.RowsPerPage) {
			return t, emit(table.RequestPage{Page: t.state.Page + 1})
		}

	case key.Matches(keyMsg, t.keys.Search):
		t.searching = true
		t.search.SetValue(t.state.FilterName)
		t.search.CursorEnd()
		return t, t.search.Focus()
	case key.Matches(keyMsg, t.keys.SearchField):
		return t, emit(table.RequestSearchField{Field: t.nextSearchField()})

	case key.Matches(keyMsg, t.keys.Sort):
		if col, ok := t.nextSortColumn(); ok {
			return t, emit(table.RequestSort{Column: col})
		}
	case key.Matches(keyMsg, t.keys.Reverse):
		if col, ok := table.FindColumn(t.columns, t.state.OrderBy); ok {
			return t, emit(table.RequestSort{Column: col})
		}

	case key.Matches(keyMsg, t.keys.Select):
		if rec, ok := t.CursorRecord(); ok && rec.ID() != "" {
			return t, emit(table.ToggleSelect{ID: rec.ID()})
		}
	case key.Matches(keyMsg, t.keys.SelectAll):
		ids := make([]string, 0, len(t.window))
		for _, rec := range t.window {
			if id := rec.ID(); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			return t, emit(table.SelectAll{IDs: ids})
		}
	case key.Matches(keyMsg, t.keys.Clear):
		if len(t.state.Selected) > 0 {
			return t, emit(table.ClearSelection{})
		}

	case key.Matches(keyMsg, t.keys.Expand):
		if t.layout == table.LayoutNarrow {
			if rec, ok := t.CursorRecord(); ok {
				k := cardKey(rec, t.cursor)
				t.expanded[k] = !t.expanded[k]
			}
		}

	case key.Matches(keyMsg, t.keys.MoreRows):
		return t, emit(table.RequestRowsPerPage{RowsPerPage: t.state.RowsPerPage + rowsStep})
	case key.Matches(keyMsg, t.keys.FewerRows):
		if t.state.RowsPerPage > rowsStep {
			return t, emit(table.RequestRowsPerPage{RowsPerPage: t.state.RowsPerPage - rowsStep})
		}
	}

	return t, nil
}

const rowsStep = 5

func (t *DataTable) updateSearch(msg tea.KeyMsg) (Component, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		t.searching = false
		t.search.Blur()
		t.search.SetValue("")
		if t.state.FilterName != "" {
			return t, emit(table.RequestFilter{Text: ""})
		}
		return t, nil
	case tea.KeyEnter:
		t.searching = false
		t.search.Blur()
		return t, nil
	}

	var cmd tea.Cmd
	t.search, cmd = t.search.Update(msg)
	if v := t.search.Value(); v != t.state.FilterName {
		return t, tea.Batch(cmd, emit(table.RequestFilter{Text: v}))
	}
	return t, cmd
}

// nextSortColumn cycles through sortable columns starting after the current
// sort column.
func (t *DataTable) nextSortColumn() (table.Column, bool) {
	var sortable []table.Column
	for _, c := range t.columns {
		if c.Sortable && c.ID != "" {
			sortable = append(sortable, c)
		}
	}
	if len(sortable) == 0 {
		return table.Column{}, false
	}
	for i, c := range sortable {
		if c.ID == t.state.OrderBy {
			return sortable[(i+1)%len(sortable)], true
		}
	}
	return sortable[0], true
}

// cardKey identifies a card's expand state. Records without an id fall back
// to their position in the window.
func cardKey(rec table.Record, i int) string {
	if id := rec.ID(); id != "" {
		return id
	}
	return "#" + strconv.Itoa(i)
}

// nextSearchField cycles all fields → each option → all fields.
func (t *DataTable) nextSearchField() string {
	opts := table.SearchFieldIDs(t.columns)
	if len(opts) == 0 || len(t.state.SearchFields) == 0 {
		if len(opts) == 0 {
			return ""
		}
		return opts[0]
	}
	current := t.state.SearchFields[0]
	for i, id := range opts {
		if id == current && i+1 < len(opts) {
			return opts[i+1]
		}
	}
	return ""
}

func (t *DataTable) moveCursor(delta int) {
	t.cursor += delta
	if t.cursor >= len(t.window) {
		t.cursor = len(t.window) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// SetData implements DataReceiver.
func (t *DataTable) SetData(records []table.Record) {
	t.records = records
	t.refresh()
}

// SetState replaces the view state after the owner applied an intent.
// Expanded cards are collapsed when the filter changes.
func (t *DataTable) SetState(s table.State) {
	if s.FilterName != t.state.FilterName {
		t.expanded = map[string]bool{}
	}
	t.state = s
	t.refresh()
}

// State returns the view state the table is currently rendering.
func (t *DataTable) State() table.State {
	return t.state
}

func (t *DataTable) refresh() {
	t.window, t.total = t.state.Window(t.records, t.columns)

	t.pager.PerPage = t.state.RowsPerPage
	t.pager.SetTotalPages(t.total)
	t.pager.Page = t.state.Page

	t.moveCursor(0)
}

// CursorRecord returns the record under the cursor.
func (t *DataTable) CursorRecord() (table.Record, bool) {
	if t.cursor < 0 || t.cursor >= len(t.window) {
		return nil, false
	}
	return t.window[t.cursor], true
}

// Window returns the records currently on screen.
func (t *DataTable) Window() []table.Record {
	return t.window
}

// Total returns the number of records that survive the filter.
func (t *DataTable) Total() int {
	return t.total
}

// Layout returns the layout selected by the last SetSize.
func (t *DataTable) Layout() table.Layout {
	return t.layout
}

// Searching reports whether the filter box has focus. The host should route
// every key to the table while it does.
func (t *DataTable) Searching() bool {
	return t.searching
}

// Keys returns the table's key bindings for help rendering.
func (t *DataTable) Keys() TableKeyMap {
	return t.keys
}

// SetSize implements Component.
func (t *DataTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.layout = table.SelectLayout(width, t.breakpoint)
}

// Focus implements Focusable.
func (t *DataTable) Focus() { t.focused = true }

// Blur implements Focusable.
func (t *DataTable) Blur() { t.focused = false }

// Focused implements Focusable.
func (t *DataTable) Focused() bool { return t.focused }

// View implements Component.
func (t *DataTable) View() string {
	var b strings.Builder

	b.WriteString(t.renderSearchLine())
	b.WriteString("\n")

	if t.total == 0 {
		msg := "No records"
		if strings.TrimSpace(t.state.FilterName) != "" {
			msg = fmt.Sprintf("No records match %q", t.state.FilterName)
		}
		b.WriteString(styles.Muted.Render(msg))
		b.WriteString("\n")
	} else if t.layout == table.LayoutNarrow {
		b.WriteString(t.renderCards())
	} else {
		b.WriteString(t.renderTable())
		b.WriteString("\n")
	}

	b.WriteString(t.renderFooter())
	return b.String()
}

func (t *DataTable) renderSearchLine() string {
	field := "all fields"
	if len(t.state.SearchFields) > 0 {
		field = t.state.SearchFields[0]
		if col, ok := table.FindColumn(t.columns, field); ok {
			field = col.Label
		}
	}
	scope := styles.Muted.Render("in " + field)

	if t.searching {
		return t.search.View() + "  " + scope
	}
	if t.state.FilterName != "" {
		return styles.PromptLabel.Render("/ ") + styles.PromptInput.Render(t.state.FilterName) + "  " + scope
	}
	return styles.Muted.Render("/ to filter, f to pick field (" + field + ")")
}

func dataColumns(cols []table.Column) []table.Column {
	out := make([]table.Column, 0, len(cols))
	for _, c := range cols {
		if c.ID != "" {
			out = append(out, c)
		}
	}
	return out
}

func (t *DataTable) mark(rec table.Record) string {
	if t.state.Selected[rec.ID()] {
		return styles.CheckboxChecked
	}
	return styles.CheckboxUnchecked
}

func (t *DataTable) headerLabel(c table.Column) string {
	if c.ID == t.state.OrderBy {
		return c.Label + " " + t.state.Order.Arrow()
	}
	return c.Label
}

func (t *DataTable) renderTable() string {
	cols := dataColumns(t.columns)

	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "")
	for _, c := range cols {
		headers = append(headers, t.headerLabel(c))
	}

	rows := make([][]string, 0, t.state.RowsPerPage)
	for _, rec := range t.window {
		row := make([]string, 0, len(cols)+1)
		row = append(row, t.mark(rec))
		for _, c := range cols {
			cell := utils.FormatCell(rec, c.ID)
			if c.Width > 0 {
				cell = utils.TruncateString(cell, c.Width)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	// Pad the last page so the footer does not jump between pages.
	for i := 0; i < table.EmptyRows(t.state.Page, t.state.RowsPerPage, t.total); i++ {
		rows = append(rows, make([]string, len(cols)+1))
	}

	tbl := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorder).
		Wrap(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == ltable.HeaderRow:
				s = styles.TableHeader
			case row == t.cursor && t.focused:
				s = styles.TableCursor
			case row < len(t.window) && t.state.Selected[t.window[row].ID()]:
				s = styles.TableSelected
			default:
				s = styles.TableCell
			}
			if col > 0 && col-1 < len(cols) && cols[col-1].AlignRight {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	if t.width > 0 {
		tbl = tbl.Width(t.width)
	}

	return tbl.Render()
}

func (t *DataTable) renderCards() string {
	summary, details := table.CardFields(t.columns)
	width := t.width
	if width <= 0 {
		width = 40
	}

	var b strings.Builder
	for i, rec := range t.window {
		open := t.expanded[cardKey(rec, i)]

		toggle := styles.ExpandClosed
		if open {
			toggle = styles.ExpandOpen
		}
		if len(details) == 0 {
			toggle = " "
		}

		parts := make([]string, 0, len(summary))
		for _, c := range summary {
			parts = append(parts, utils.FormatCell(rec, c.ID))
		}
		line := fmt.Sprintf("%s %s %s", t.mark(rec), toggle, strings.Join(parts, " · "))
		line = utils.TruncateString(line, width-3)

		var card strings.Builder
		card.WriteString(line)
		if open {
			for _, c := range details {
				card.WriteString("\n")
				label := styles.CardLabel.Render(utils.PadRight(c.Label, 12))
				value := styles.CardValue.Render(utils.TruncateString(utils.FormatCell(rec, c.ID), width-18))
				card.WriteString("    " + label + value)
			}
		}

		style := styles.Card
		if i == t.cursor && t.focused {
			style = styles.CardCursor
		}
		b.WriteString(style.Render(card.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (t *DataTable) renderFooter() string {
	pages := table.PageCount(t.total, t.state.RowsPerPage)

	info := fmt.Sprintf("page %d/%d · %d of %d · %d per page",
		t.state.Page+1, pages, len(t.window), t.total, t.state.RowsPerPage)
	if n := len(t.state.SelectedIDs(t.records)); n > 0 {
		info += fmt.Sprintf(" · %d selected", n)
	}
	if t.state.OrderBy != "" {
		label := t.state.OrderBy
		if col, ok := table.FindColumn(t.columns, t.state.OrderBy); ok {
			label = col.Label
		}
		info += fmt.Sprintf(" · sorted by %s %s", label, t.state.Order.Arrow())
	}

	if pages > 1 {
		return t.pager.View() + "  " + styles.Muted.Render(info)
	}
	return styles.Muted.Render(info)
}
