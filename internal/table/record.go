// Package table implements the tabular view engine shared by every list page:
// field-path resolution, stable sorting, free-text filtering, pagination and
// the view-state intents a page applies to itself.
//
// Nothing in this package performs I/O or keeps state between calls. Callers
// own both the records and the view state and recompute the window on every
// change.
package table

import "strings"

// Record is one row of domain data keyed by field name. Values may be nested
// records, which are addressed with dotted paths such as "order.orderId".
type Record map[string]any

// Recorder is implemented by typed domain values that can project themselves
// onto a Record for display, sorting and searching.
type Recorder interface {
	Record() Record
}

// Records converts a slice of typed values into records, preserving order.
func Records[T Recorder](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item.Record()
	}
	return out
}

// Resolve reads a dotted field path out of rec. It returns nil as soon as a
// segment is missing or an intermediate value is not a record. An empty path
// resolves to nil.
func Resolve(rec Record, path string) any {
	if path == "" {
		return nil
	}

	var cur any = rec
	for _, seg := range strings.Split(path, ".") {
		switch m := cur.(type) {
		case Record:
			if m == nil {
				return nil
			}
			cur = m[seg]
		case map[string]any:
			if m == nil {
				return nil
			}
			cur = m[seg]
		default:
			return nil
		}
		if isNil(cur) {
			return nil
		}
	}
	return cur
}

func isNil(v any) bool {
	switch m := v.(type) {
	case nil:
		return true
	case Record:
		return m == nil
	case map[string]any:
		return m == nil
	}
	return false
}

// ID returns the record's "id" field as a string, or "" when absent.
func (r Record) ID() string {
	v := Resolve(r, "id")
	if v == nil {
		return ""
	}
	return Stringify(v)
}
