package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Matches reports whether at least one of fields resolves to a present value
// whose string form contains query, case-insensitively. Zero numbers, false
// and empty strings count as present; only nil is skipped.
func Matches(rec Record, query string, fields []string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, field := range fields {
		v := Resolve(rec, field)
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(Stringify(v)), q) {
			return true
		}
	}
	return false
}

// Stringify renders a resolved value in its default string form.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}

	if i, u, signed, ok := toInt(v); ok {
		if signed {
			return strconv.FormatInt(i, 10)
		}
		return strconv.FormatUint(u, 10)
	}
	return fmt.Sprint(v)
}
