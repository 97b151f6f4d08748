package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/calvinalkan/agent-todo/internal/config"
)

// Styles is the set of Lip Gloss styles derived from a theme.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Button       lipgloss.Style
	Header       lipgloss.Style
	FilterActive lipgloss.Style
	Filter       lipgloss.Style
	Row          lipgloss.Style
	RowDone      lipgloss.Style
	Cursor       lipgloss.Style
	Muted        lipgloss.Style
}

// NewStyles builds styles from theme.
func NewStyles(theme config.Theme) Styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 4).
			MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(muted),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1),
		Header:       lipgloss.NewStyle().Bold(true),
		FilterActive: lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		Filter:       lipgloss.NewStyle().Foreground(muted),
		Row:          lipgloss.NewStyle(),
		RowDone: lipgloss.NewStyle().
			Strikethrough(true).
			Background(lipgloss.Color(theme.DoneBackground)).
			Foreground(lipgloss.Color("#333333")),
		Cursor: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
