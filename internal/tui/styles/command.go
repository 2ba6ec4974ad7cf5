package styles

import "github.com/charmbracelet/lipgloss"

var (
	// PromptLabel is the style for the prompt text ("Courier ID:", "/").
	PromptLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC00")).
			Bold(true)

	// PromptInput is the style for the active input text.
	PromptInput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// PromptPlaceholder is the style for placeholder text.
	PromptPlaceholder = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))

	// PromptContainer is the container for the prompt line.
	PromptContainer = lipgloss.NewStyle().
			Padding(0, 1)
)
