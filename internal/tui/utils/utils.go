// Package utils provides shared utility functions for the TUI.
package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/backoffice-tui/internal/table"
)

// Placeholder is shown for values that resolve to nothing.
const Placeholder = "-"

// TruncateString truncates a string to a given display width and adds an
// ellipsis if truncated. Wide runes (CJK, emoji) count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to exactly width cells, truncating if needed.
func PadRight(s string, width int) string {
	s = TruncateString(s, width)
	return runewidth.FillRight(s, width)
}

// FormatValue renders a resolved record value for display. It differs from
// table.Stringify only in presentation: times are shortened, money-like
// floats get two decimals, bools read as yes/no and nil shows a placeholder.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return Placeholder
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case time.Time:
		return val.Local().Format("2006-01-02 15:04")
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', 2, 64)
	case string:
		if val == "" {
			return Placeholder
		}
		return strings.ReplaceAll(val, "_", " ")
	}
	return table.Stringify(v)
}

// FormatCell resolves path on rec and formats the result.
func FormatCell(rec table.Record, path string) string {
	return FormatValue(table.Resolve(rec, path))
}
