package tui

import "github.com/charmbracelet/lipgloss"

// Title is the fixed heading above the list. It has no state beyond its
// label and always renders the same output.
type Title struct {
	label string
	style lipgloss.Style
}

// NewTitle returns a Title rendering label with style.
func NewTitle(label string, style lipgloss.Style) Title {
	return Title{label: label, style: style}
}

// View renders the heading.
func (t Title) View() string {
	return t.style.Render(t.label)
}
