package table

// Layout selects how a window of records is presented.
type Layout int

const (
	// LayoutWide renders a column-headed table.
	LayoutWide Layout = iota
	// LayoutNarrow renders one summary card per record.
	LayoutNarrow
)

// DefaultBreakpoint is the terminal width below which the narrow layout is
// used.
const DefaultBreakpoint = 100

// SelectLayout picks the layout for a viewport width.
func SelectLayout(width, breakpoint int) Layout {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width < breakpoint {
		return LayoutNarrow
	}
	return LayoutWide
}

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutNarrow:
		return "narrow"
	case LayoutWide:
		return "wide"
	default:
		return "unknown"
	}
}
