package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/budgetboard/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a flash message, or the storage location, on the right.
func RenderStatusBar(width int, hints, flash, location string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width).
		MaxHeight(1)

	left := " " + hints
	right := location + " "
	if flash != "" {
		right = lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render(flash) + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
