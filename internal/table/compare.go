package table

import (
	"strings"
	"time"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Toggle returns the opposite direction.
func (o Order) Toggle() Order {
	if o == Asc {
		return Desc
	}
	return Asc
}

// Arrow returns the header indicator for the direction.
func (o Order) Arrow() string {
	if o == Desc {
		return "▼"
	}
	return "▲"
}

// Comparator orders two records, returning -1, 0 or 1.
type Comparator func(a, b Record) int

// BuildComparator returns a comparator over the field at orderBy.
//
// Values compare natively: numbers numerically regardless of Go kind, strings
// lexically, times chronologically and bools false before true. Missing values
// and mismatched kinds compare equal, so the caller's tie-break decides. Desc
// negates the ascending result instead of swapping operands.
func BuildComparator(order Order, orderBy string) Comparator {
	if orderBy == "" {
		return func(a, b Record) int { return 0 }
	}

	asc := func(a, b Record) int {
		return compareValues(Resolve(a, orderBy), Resolve(b, orderBy))
	}
	if order == Desc {
		return func(a, b Record) int { return -asc(a, b) }
	}
	return asc
}

func compareValues(a, b any) int {
	if a == nil || b == nil {
		return 0
	}

	if c, ok := compareInts(a, b); ok {
		return c
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return 0
		}
		return sign(fa < fb, fa > fb)
	}

	switch va := a.(type) {
	case string:
		vb, ok := b.(string)
		if !ok {
			return 0
		}
		return strings.Compare(va, vb)
	case time.Time:
		vb, ok := b.(time.Time)
		if !ok {
			return 0
		}
		return sign(va.Before(vb), va.After(vb))
	case bool:
		vb, ok := b.(bool)
		if !ok {
			return 0
		}
		return sign(!va && vb, va && !vb)
	}
	return 0
}

func sign(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}

// compareInts compares two integer values exactly, so wide int64 and uint64
// values keep their order past float64 precision.
func compareInts(a, b any) (int, bool) {
	sa, ua, aSigned, ok := toInt(a)
	if !ok {
		return 0, false
	}
	sb, ub, bSigned, ok := toInt(b)
	if !ok {
		return 0, false
	}

	switch {
	case aSigned && bSigned:
		return sign(sa < sb, sa > sb), true
	case !aSigned && !bSigned:
		return sign(ua < ub, ua > ub), true
	case aSigned:
		if sa < 0 {
			return -1, true
		}
		return sign(uint64(sa) < ub, uint64(sa) > ub), true
	default:
		if sb < 0 {
			return 1, true
		}
		return sign(ua < uint64(sb), ua > uint64(sb)), true
	}
}

func toInt(v any) (int64, uint64, bool, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), 0, true, true
	case int8:
		return int64(n), 0, true, true
	case int16:
		return int64(n), 0, true, true
	case int32:
		return int64(n), 0, true, true
	case int64:
		return n, 0, true, true
	case uint:
		return 0, uint64(n), false, true
	case uint8:
		return 0, uint64(n), false, true
	case uint16:
		return 0, uint64(n), false, true
	case uint32:
		return 0, uint64(n), false, true
	case uint64:
		return 0, n, false, true
	}
	return 0, 0, false, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
