package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/budgetboard/internal/tui/theme"
)

// ColorForProgress returns the bar color for a percent in [0, 100].
// Complete items are green; the rest share the category accent.
func ColorForProgress(pct float64, accent lipgloss.Color) lipgloss.Color {
	if pct >= 100 {
		return theme.Active.Green
	}
	return accent
}

// ProgressBar renders a solid bar for pct in [0, 100] followed by the
// rounded percentage.
func ProgressBar(pct float64, width int, accent lipgloss.Color) string {
	t := theme.Active
	pct = min(max(pct, 0), 100)
	color := ColorForProgress(pct, accent)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(pct >= 100)
	return bar.ViewAs(pct/100) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
