package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/budgetboard/internal/tui/theme"
)

// Segment is one labelled share of a SplitBar.
type Segment struct {
	Label string
	Value string // pre-formatted legend value
	Share float64
	Color lipgloss.Color
}

// SplitBar renders a horizontal bar divided between segments by share,
// with a legend line below. Shares are clamped to [0, 1]; the last
// segment absorbs rounding so the bar is always exactly width cells.
func SplitBar(segments []Segment, width int) string {
	t := theme.Active
	if len(segments) == 0 || width <= 0 {
		return ""
	}

	var bar strings.Builder
	used := 0
	for i, s := range segments {
		n := int(min(max(s.Share, 0), 1) * float64(width))
		if i == len(segments)-1 {
			n = width - used
		}
		n = min(n, width-used)
		used += n
		bar.WriteString(lipgloss.NewStyle().Foreground(s.Color).Render(strings.Repeat("█", n)))
	}
	if used < width {
		bar.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", width-used)))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	legend := make([]string, len(segments))
	for i, s := range segments {
		dot := lipgloss.NewStyle().Foreground(s.Color).Render("●")
		legend[i] = fmt.Sprintf("%s %s %s", dot, labelStyle.Render(s.Label), s.Value)
	}

	return bar.String() + "\n" + strings.Join(legend, "   ")
}
