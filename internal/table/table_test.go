package table

import (
	"bytes"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreRecords() []Record {
	return []Record{
		{"id": "1", "name": "Alice", "score": 0},
		{"id": "2", "name": "Bob", "score": 5},
		{"id": "3", "name": "Carl", "score": 0},
	}
}

func names(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i], _ = r["name"].(string)
	}
	return out
}

func TestResolve(t *testing.T) {
	rec := Record{
		"name":  "Pizza Place",
		"order": Record{"orderId": 42, "customer": map[string]any{"email": "a@b.c"}},
		"empty": nil,
		"flat":  "x",
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{"top level", "name", "Pizza Place"},
		{"nested record", "order.orderId", 42},
		{"nested plain map", "order.customer.email", "a@b.c"},
		{"missing leaf", "order.missing", nil},
		{"missing intermediate", "restaurant.name", nil},
		{"nil intermediate", "empty.x.y", nil},
		{"non-map intermediate", "flat.x", nil},
		{"empty path", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(rec, tt.path))
		})
	}
}

func TestResolveNullIntermediateDoesNotPanic(t *testing.T) {
	rec := Record{"a": nil}
	assert.NotPanics(t, func() {
		assert.Nil(t, Resolve(rec, "a.b.c"))
	})
	assert.Nil(t, Resolve(nil, "a.b"))
}

func TestBuildComparator(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"mixed numeric kinds", int64(3), 2.5, 1},
		{"strings", "b", "a", 1},
		{"times", t1, t2, -1},
		{"bools", false, true, -1},
		{"equal", "x", "x", 0},
		{"nil left", nil, 1, 0},
		{"mismatched kinds", "1", 1, 0},
		{"wide int64", int64(1<<53 + 1), int64(1 << 53), 1},
		{"wide uint64", uint64(math.MaxUint64), uint64(math.MaxUint64 - 1), 1},
		{"negative vs uint64", -1, uint64(0), -1},
		{"uint64 vs int", uint64(math.MaxUint64), math.MaxInt64, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asc := BuildComparator(Asc, "v")
			desc := BuildComparator(Desc, "v")
			a, b := Record{"v": tt.a}, Record{"v": tt.b}
			assert.Equal(t, tt.want, asc(a, b))
			assert.Equal(t, -tt.want, desc(a, b))
		})
	}
}

func TestBuildComparatorEmptyOrderByIsNoop(t *testing.T) {
	cmp := BuildComparator(Asc, "")
	assert.Equal(t, 0, cmp(Record{"a": 1}, Record{"a": 2}))
}

func TestStableSortScenario(t *testing.T) {
	recs := scoreRecords()

	asc := StableSort(recs, BuildComparator(Asc, "score"))
	assert.Equal(t, []string{"Alice", "Carl", "Bob"}, names(asc))

	desc := StableSort(recs, BuildComparator(Desc, "score"))
	assert.Equal(t, []string{"Bob", "Alice", "Carl"}, names(desc))

	// Input untouched.
	assert.Equal(t, []string{"Alice", "Bob", "Carl"}, names(recs))
}

func TestStableSortManyDuplicateKeys(t *testing.T) {
	var recs []Record
	for i := 0; i < 200; i++ {
		recs = append(recs, Record{"name": fmt.Sprintf("r%03d", i), "status": i % 3})
	}
	cmp := BuildComparator(Asc, "status")

	first := StableSort(recs, cmp)
	for i := 0; i < 5; i++ {
		assert.Equal(t, names(first), names(StableSort(recs, cmp)))
	}

	// Within each status the original order survives.
	last := map[int]string{}
	for _, r := range first {
		s := r["status"].(int)
		n := r["name"].(string)
		assert.Less(t, last[s], n)
		last[s] = n
	}
}

func TestDerive(t *testing.T) {
	recs := scoreRecords()
	cmp := BuildComparator(Asc, "score")

	t.Run("zero score matches query 0", func(t *testing.T) {
		got := Derive(recs, cmp, "0", []string{"score"})
		assert.Equal(t, []string{"Alice", "Carl"}, names(got))
	})

	t.Run("empty query keeps everything", func(t *testing.T) {
		got := Derive(recs, cmp, "   ", []string{"score"})
		assert.Equal(t, []string{"Alice", "Carl", "Bob"}, names(got))
	})

	t.Run("no search fields keeps everything", func(t *testing.T) {
		got := Derive(recs, cmp, "zzz", nil)
		assert.Len(t, got, 3)
	})

	t.Run("case insensitive trimmed", func(t *testing.T) {
		got := Derive(recs, cmp, "  aLi ", []string{"name"})
		assert.Equal(t, []string{"Alice"}, names(got))
	})

	t.Run("any field matches", func(t *testing.T) {
		got := Derive(recs, cmp, "5", []string{"name", "score"})
		assert.Equal(t, []string{"Bob"}, names(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Derive(recs, cmp, "a", []string{"name"})
		twice := Derive(once, cmp, "a", []string{"name"})
		assert.Equal(t, names(once), names(twice))
		assert.Equal(t, names(once), names(Derive(recs, cmp, "a", []string{"name"})))
	})
}

func TestMatchesFalsyValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
		query string
	}{
		{"zero int", 0, "0"},
		{"zero float", 0.0, "0"},
		{"false bool", false, "false"},
		{"false bool partial", false, "fal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Matches(Record{"v": tt.value}, tt.query, []string{"v"}))
		})
	}

	t.Run("empty string is present", func(t *testing.T) {
		recs := []Record{{"name": "a", "note": ""}, {"name": "b"}}
		got := Derive(recs, nil, "", []string{"note"})
		assert.Len(t, got, 2)
		assert.False(t, Matches(Record{"name": "b"}, "x", []string{"note"}))
	})

	t.Run("nil is absent", func(t *testing.T) {
		assert.False(t, Matches(Record{"v": nil}, "nil", []string{"v"}))
		assert.False(t, Matches(Record{"v": nil}, "<nil>", []string{"v"}))
	})
}

func TestStringify(t *testing.T) {
	ts := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "5", Stringify(5.0))
	assert.Equal(t, "2.5", Stringify(2.5))
	assert.Equal(t, "12", Stringify(uint16(12)))
	assert.Equal(t, "18446744073709551615", Stringify(uint64(math.MaxUint64)))
	assert.Equal(t, "9007199254740993", Stringify(int64(1<<53+1)))
	assert.Equal(t, "-7", Stringify(int8(-7)))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "2024-03-05T10:00:00Z", Stringify(ts))
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "[a b]", Stringify([]string{"a", "b"}))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	assert.Equal(t, []int{3}, Paginate(items, 1, 2))
	assert.Empty(t, Paginate(items, -1, 2))
	assert.Empty(t, Paginate(items, 0, 0))
	assert.Empty(t, Paginate([]int{}, 0, 5))

	for _, page := range []int{PageCount(len(items), 2), 9, math.MaxInt/2 + 1, math.MaxInt} {
		assert.NotPanics(t, func() {
			got := Paginate(items, page, 2)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestPaginateAfterSort(t *testing.T) {
	sorted := StableSort(scoreRecords(), BuildComparator(Asc, "score"))
	assert.Equal(t, []string{"Bob"}, names(Paginate(sorted, 1, 2)))
}

func TestPageCountAndEmptyRows(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 1, PageCount(10, 10))

	assert.Equal(t, 0, EmptyRows(0, 10, 25))
	assert.Equal(t, 5, EmptyRows(2, 10, 25))
	assert.Equal(t, 10, EmptyRows(7, 10, 25))
	assert.Equal(t, 0, EmptyRows(0, 0, 25))
	assert.Equal(t, 10, EmptyRows(math.MaxInt/2+1, 10, 25))
	assert.Equal(t, 10, EmptyRows(0, 10, 0))
}

func TestColumns(t *testing.T) {
	cols := []Column{
		{ID: "name", Label: "Name", Sortable: true},
		{ID: "email", Label: "Email"},
		{ID: "role", Label: "Role", Searchable: Flag(false)},
		{ID: "phone", Label: "Phone"},
		{ID: "", Label: "Actions"},
	}

	assert.Equal(t, []string{"name", "email", "phone"}, SearchFieldIDs(cols))

	summary, details := CardFields(cols)
	require.Len(t, summary, 2)
	assert.Equal(t, "name", summary[0].ID)
	assert.Equal(t, "email", summary[1].ID)
	require.Len(t, details, 2)
	assert.Equal(t, "role", details[0].ID)
	assert.Equal(t, "phone", details[1].ID)

	cols[3].Searchable = Flag(true)
	assert.Equal(t, []string{"phone"}, SearchFieldIDs(cols))
}

func TestIntents(t *testing.T) {
	sortable := Column{ID: "score", Sortable: true}
	plain := Column{ID: "name"}

	s := NewState(2, "name")
	s.Page = 3

	t.Run("sort toggles on same column", func(t *testing.T) {
		s1 := RequestSort{Column: sortable}.Apply(s)
		assert.Equal(t, "score", s1.OrderBy)
		assert.Equal(t, Asc, s1.Order)

		s2 := RequestSort{Column: sortable}.Apply(s1)
		assert.Equal(t, Desc, s2.Order)

		s3 := RequestSort{Column: sortable}.Apply(s2)
		assert.Equal(t, Asc, s3.Order)
	})

	t.Run("non-sortable header is a no-op", func(t *testing.T) {
		assert.Equal(t, s, RequestSort{Column: plain}.Apply(s))
	})

	t.Run("filter resets page", func(t *testing.T) {
		s1 := RequestFilter{Text: "al"}.Apply(s)
		assert.Equal(t, 0, s1.Page)
		assert.Equal(t, "al", s1.FilterName)
	})

	t.Run("rows per page resets page", func(t *testing.T) {
		s1 := RequestRowsPerPage{RowsPerPage: 25}.Apply(s)
		assert.Equal(t, 0, s1.Page)
		assert.Equal(t, 25, s1.RowsPerPage)
		assert.Equal(t, s, RequestRowsPerPage{RowsPerPage: 0}.Apply(s))
	})

	t.Run("page clamps negatives only", func(t *testing.T) {
		assert.Equal(t, 0, RequestPage{Page: -4}.Apply(s).Page)
		assert.Equal(t, 99, RequestPage{Page: 99}.Apply(s).Page)
	})

	t.Run("search field", func(t *testing.T) {
		s1 := RequestSearchField{Field: "score"}.Apply(s)
		assert.Equal(t, []string{"score"}, s1.SearchFields)
		assert.Nil(t, RequestSearchField{}.Apply(s1).SearchFields)
	})

	t.Run("selection does not alias", func(t *testing.T) {
		s1 := ToggleSelect{ID: "1"}.Apply(s)
		assert.True(t, s1.Selected["1"])
		assert.False(t, s.Selected["1"])

		s2 := ToggleSelect{ID: "1"}.Apply(s1)
		assert.False(t, s2.Selected["1"])

		s3 := SelectAll{IDs: []string{"1", "2"}}.Apply(s)
		assert.Len(t, s3.Selected, 2)
		s4 := SelectAll{IDs: []string{"1", "2"}}.Apply(s3)
		assert.Empty(t, s4.Selected)

		assert.Empty(t, ClearSelection{}.Apply(s3).Selected)
	})
}

func TestStateWindow(t *testing.T) {
	cols := []Column{
		{ID: "name", Label: "Name", Sortable: true},
		{ID: "score", Label: "Score", Sortable: true, AlignRight: true},
	}
	s := NewState(2, "score")
	s.Page = 1

	window, total := s.Window(scoreRecords(), cols)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"Bob"}, names(window))

	s = RequestFilter{Text: "0"}.Apply(s)
	s = RequestSearchField{Field: "score"}.Apply(s)
	window, total = s.Window(scoreRecords(), cols)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"Alice", "Carl"}, names(window))

	s.Page = 5
	window, _ = s.Window(nil, cols)
	assert.Empty(t, window)

	s = ToggleSelect{ID: "3"}.Apply(s)
	s = ToggleSelect{ID: "1"}.Apply(s)
	assert.Equal(t, []string{"1", "3"}, s.SelectedIDs(scoreRecords()))
}

func TestSelectLayout(t *testing.T) {
	assert.Equal(t, LayoutNarrow, SelectLayout(60, 100))
	assert.Equal(t, LayoutWide, SelectLayout(100, 100))
	assert.Equal(t, LayoutNarrow, SelectLayout(99, 0))
	assert.Equal(t, "wide", LayoutWide.String())
}

func TestWriteCSV(t *testing.T) {
	cols := []Column{
		{ID: "name", Label: "Name"},
		{ID: "order.total", Label: "Total"},
		{Label: "Actions"},
	}
	rows := []Record{
		{"name": "Alice", "order": Record{"total": 12.5}},
		{"name": "Bob, Jr."},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cols, rows))
	assert.Equal(t, "Name,Total\nAlice,12.5\n\"Bob, Jr.\",\n", buf.String())
}
