package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/budgetboard/internal/model"
	"github.com/theirongolddev/budgetboard/internal/pipeline"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	moneyStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// separatorRow marks a horizontal rule inside Table.Rows.
const separatorRow = "---"

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. A row holding only "---" draws a
// separator; the first column is left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}
	widths := columnWidths(t, numCols)

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule(widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == separatorRow {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := range numCols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := padRight(cell, widths[i])
			if i > 0 {
				pad = padLeft(cell, widths[i])
			}
			b.WriteString(valueStyle.Render(" " + pad + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

func columnWidths(t Table, numCols int) []int {
	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == separatorRow {
			continue
		}
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

func rule(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
	return b.String()
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-lipgloss.Width(s))) + s
}

// RenderProgressBar renders a text bar for a percent in [0, 100].
func RenderProgressBar(pct float64, width int) string {
	pct = min(max(pct, 0), 100)
	filled := min(int(pct/100*float64(width)), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := fmt.Sprintf("%3.0f%%", pct)
	if pct >= 100 {
		return moneyStyle.Render(bar) + " " + moneyStyle.Render(label)
	}
	return mutedStyle.Render(bar) + " " + label
}

// RenderSummary renders the four category cards, the amount-left figure
// and the spent/remaining legend.
func RenderSummary(p model.Period, s model.Summary) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Budget Dashboard · " + p.String()))
	b.WriteString("\n\n")

	label := func(name string) string { return mutedStyle.Render(fmt.Sprintf("  %-12s", name)) }
	for _, row := range []struct {
		name  string
		value string
	}{
		{"Income", FormatMoney(s.Income)},
		{"Expenses", FormatMoney(s.Expenses)},
		{"Bills", FormatMoney(s.Bills)},
		{"Savings", FormatMoney(s.Savings)},
	} {
		b.WriteString(label(row.name))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(label("Amount Left"))
	b.WriteString(moneyStyle.Render(FormatMoney(s.Remaining())))
	if s.Overspent() {
		b.WriteString("  ")
		b.WriteString(warnStyle.Render("overspent by " + FormatMoney(s.AmountLeft.Neg())))
	}
	b.WriteString("\n")

	for _, sl := range pipeline.ChartSlices(s) {
		b.WriteString(label(sl.Name))
		b.WriteString(valueStyle.Render(FormatMoney(sl.Value)))
		b.WriteString("\n")
	}
	b.WriteString(label(""))
	b.WriteString(RenderProgressBar(pipeline.SpentShare(s)*100, 30))
	b.WriteString(mutedStyle.Render(" spent"))
	b.WriteString("\n")

	return b.String()
}

// CategoryTable builds the per-category totals table.
func CategoryTable(s model.Summary) Table {
	t := Table{
		Title:   "Categories",
		Headers: []string{"Category", "Planned", "Actual", "Completion"},
	}
	for _, ct := range s.Categories {
		t.Rows = append(t.Rows, []string{
			ct.Category.Title(),
			FormatMoney(ct.Planned),
			FormatMoney(ct.Actual),
			FormatPercent(ct.Completion),
		})
	}
	return t
}

// ItemTable builds one category's item table with a TOTAL footer.
func ItemTable(ct model.CategoryTotals) Table {
	t := Table{
		Title:   ct.Category.Title(),
		Headers: []string{"Item", "ID", "Done", "Planned", "Actual", "Progress"},
	}
	for _, ip := range ct.Items {
		t.Rows = append(t.Rows, []string{
			ip.Item.Name,
			fmt.Sprintf("%d", ip.Item.ID),
			FormatCheck(ip.Item.Checked),
			FormatMoney(ip.Item.Planned),
			FormatMoney(ip.Item.Actual),
			RenderProgressBar(ip.Progress, 10),
		})
	}
	t.Rows = append(t.Rows,
		[]string{separatorRow},
		[]string{
			"TOTAL",
			"",
			"",
			FormatMoney(ct.Planned),
			FormatMoney(ct.Actual),
			FormatPercent(ct.Completion),
		},
	)
	return t
}
