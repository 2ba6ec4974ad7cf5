package table

import (
	"sort"
	"strings"
)

type indexed struct {
	rec   Record
	index int
}

// StableSort returns a sorted copy of records. Records that compare equal keep
// their original relative order, which keeps pagination deterministic when
// many rows share a key. A nil comparator preserves input order.
func StableSort(records []Record, cmp Comparator) []Record {
	decorated := make([]indexed, len(records))
	for i, r := range records {
		decorated[i] = indexed{rec: r, index: i}
	}

	if cmp != nil {
		sort.Slice(decorated, func(i, j int) bool {
			if c := cmp(decorated[i].rec, decorated[j].rec); c != 0 {
				return c < 0
			}
			return decorated[i].index < decorated[j].index
		})
	}

	out := make([]Record, len(decorated))
	for i, d := range decorated {
		out[i] = d.rec
	}
	return out
}

// Derive produces the ordered, filtered projection of records: a stable sort
// by cmp followed by keeping records that match query in any of fields. An
// empty query or field list disables filtering.
func Derive(records []Record, cmp Comparator, query string, fields []string) []Record {
	sorted := StableSort(records, cmp)
	if strings.TrimSpace(query) == "" || len(fields) == 0 {
		return sorted
	}

	out := make([]Record, 0, len(sorted))
	for _, r := range sorted {
		if Matches(r, query, fields) {
			out = append(out, r)
		}
	}
	return out
}
