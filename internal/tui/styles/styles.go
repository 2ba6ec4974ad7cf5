// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#990000"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	rowBackground = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"}
	barBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(0, 1)

	// Title is the style for page titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Muted is for counts, hints and empty-state text
	Muted = lipgloss.NewStyle().
		Foreground(Subtle).
		Faint(true)
)

// Table styles (wide layout)
var (
	TableBorder = lipgloss.NewStyle().
			Foreground(Subtle)

	// TableHeader is for column headings; the sorted column gets an arrow.
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Padding(0, 1)

	TableCell = lipgloss.NewStyle().
			Padding(0, 1)

	// TableCursor is the row under the cursor
	TableCursor = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Background(rowBackground)

	// TableSelected marks rows picked for bulk actions
	TableSelected = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Highlight)
)

// Card styles (narrow layout)
var (
	Card = lipgloss.NewStyle().
		PaddingLeft(2)

	CardCursor = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(rowBackground)

	CardLabel = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true).
			Width(12)

	CardValue = lipgloss.NewStyle().
			PaddingLeft(1)
)

// Selection marks
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
	ExpandClosed      = "▸"
	ExpandOpen        = "▾"
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(barBackground).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(barBackground)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(barBackground)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(barBackground).
			Bold(true)

	// StatusBarWarning is for recoverable problems such as malformed payloads
	StatusBarWarning = lipgloss.NewStyle().
				Foreground(WarningColor).
				Background(barBackground).
				Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(barBackground).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)

// Input styles
var (
	// Input is the style for text inputs
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for focused inputs
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)
)

var Spinner = lipgloss.NewStyle().
	Foreground(Highlight)

// Tab bar styles
var (
	// TabBar is the container for the tab bar
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	// Tab is for inactive tabs
	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	// TabActive is for the active tab
	TabActive = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)

// Status badges used by cell formatting
var (
	BadgeOK      = lipgloss.NewStyle().Foreground(SuccessColor)
	BadgeWarn    = lipgloss.NewStyle().Foreground(WarningColor)
	BadgeDanger  = lipgloss.NewStyle().Foreground(ErrorColor)
	BadgeNeutral = lipgloss.NewStyle().Foreground(Subtle)
)
