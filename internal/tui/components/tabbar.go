package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/budgetboard/internal/model"
	"github.com/theirongolddev/budgetboard/internal/tui/theme"
)

// RenderCategoryTabs renders one tab per category; each inactive tab shows
// its number shortcut.
func RenderCategoryTabs(active model.Category) string {
	t := theme.Active

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	parts := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		if c == active {
			parts[i] = lipgloss.NewStyle().
				Foreground(t.CategoryColor(c)).
				Bold(true).
				Underline(true).
				Render(c.Title())
			continue
		}
		keyStyle := lipgloss.NewStyle().Foreground(t.CategoryColor(c)).Bold(true)
		parts[i] = dimKeyStyle.Render("[") + keyStyle.Render(strconv.Itoa(i+1)) + dimKeyStyle.Render("]") +
			inactiveStyle.Render(c.Title())
	}

	return " " + strings.Join(parts, "  ")
}

// CategoryByKey returns the category bound to a number key.
func CategoryByKey(key string) (model.Category, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(model.Categories) {
		return "", false
	}
	return model.Categories[n-1], true
}
