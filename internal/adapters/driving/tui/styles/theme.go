// Package styles provides colour themes and styling for the chat TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

// Theme is the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color // titles and the user speaker
	Secondary  lipgloss.Color // the assistant speaker
	Foreground lipgloss.Color
	Muted      lipgloss.Color // hints and notices
	Error      lipgloss.Color // failed turns
	Border     lipgloss.Color
	Bar        lipgloss.Color // status bar background
}

// DefaultTheme is a dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#7C3AED",
		Secondary:  "#06B6D4",
		Foreground: "#CDD6F4",
		Muted:      "#6C7086",
		Error:      "#F38BA8",
		Border:     "#45475A",
		Bar:        "#181825",
	}
}

// Styles are the lipgloss styles the views render with.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// UserLabel and AssistantLabel prefix each transcript entry.
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
}

// NewStyles builds styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		theme:  theme,
		Title:  fg(theme.Primary).Bold(true),
		Normal: fg(theme.Foreground),
		Muted:  fg(theme.Muted),
		Error:  fg(theme.Error),
		Help:   fg(theme.Muted),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar:      fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		UserLabel:      fg(theme.Primary).Bold(true),
		AssistantLabel: fg(theme.Secondary).Bold(true),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette behind these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Speaker returns the transcript label for a message author along with its
// style. System messages are never shown and fall back to Muted.
func (s *Styles) Speaker(role domain.Role) (string, lipgloss.Style) {
	switch role {
	case domain.RoleUser:
		return "You: ", s.UserLabel
	case domain.RoleAssistant:
		return "Assistant: ", s.AssistantLabel
	default:
		return "", s.Muted
	}
}
