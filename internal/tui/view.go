package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/budgetboard/internal/cli"
	"github.com/theirongolddev/budgetboard/internal/model"
	"github.com/theirongolddev/budgetboard/internal/pipeline"
	"github.com/theirongolddev/budgetboard/internal/tui/components"
	"github.com/theirongolddev/budgetboard/internal/tui/theme"
)

const keyHints = "[1-4]category  [space]toggle  [n/p/a]edit  [m/y]period  [R]eset  [?]help  [q]uit"

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.resetForm != nil {
		return a.viewReset()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  budgetboard needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewReset() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Red).
		Bold(true)

	card := cardStyle.Render(titleStyle.Render("◈ Reset Budget") + "\n\n" + a.resetForm.View())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3 4", "Income / Expenses / Bills / Savings"},
			{"tab ← →", "Previous / Next category"},
			{"j k", "Move between items"},
			{"g G", "First / Last item"},
		}},
		{"Editing", []struct{ key, desc string }{
			{"space", "Toggle checked"},
			{"n p a", "Edit name / planned / actual"},
			{"enter esc", "Save / Cancel edit"},
		}},
		{"Period", []struct{ key, desc string }{
			{"m M", "Next / Previous month"},
			{"y Y", "Next / Previous year"},
		}},
		{"Other", []struct{ key, desc string }{
			{"R", "Reset all data"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := a.renderHeader(cw)
	statusBar := components.RenderStatusBar(w, keyHints, a.renderFlash(), a.location)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var b strings.Builder
	b.WriteString(a.renderSummaryCards(cw))
	b.WriteString("\n")
	b.WriteString(a.renderAmountLeft(cw))
	b.WriteString("\n")
	b.WriteString(components.RenderCategoryTabs(a.category))
	b.WriteString("\n")
	b.WriteString(a.renderItemTable(cw))
	if a.edit.active {
		b.WriteString("\n ")
		b.WriteString(a.edit.input.View())
	}

	content := padHeight(truncateHeight(b.String(), contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) renderFlash() string {
	if a.flash == "" || !a.flashErr {
		return a.flash
	}
	return lipgloss.NewStyle().Foreground(theme.Active.Red).Render(a.flash)
}

func (a App) renderHeader(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	periodStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	savingStyle := lipgloss.NewStyle().Foreground(t.Green)

	left := " " + titleStyle.Render("◈ Budget Dashboard") +
		mutedStyle.Render("  ‹m› ") + periodStyle.Render(a.snap.Period.String()) + mutedStyle.Render(" ‹y›")
	right := savingStyle.Render("● Auto-saving") + " "

	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (a App) renderSummaryCards(cw int) string {
	t := theme.Active
	s := a.snap.Summary

	cards := make([]components.Metric, 0, len(model.Categories))
	for _, c := range model.Categories {
		ct, _ := s.Totals(c)
		cards = append(cards, components.Metric{
			Label: c.Title(),
			Value: cli.FormatMoney(ct.Actual),
			Note:  "of " + cli.FormatMoney(ct.Planned) + " planned",
			Color: t.CategoryColor(c),
		})
	}
	return components.MetricCardRow(cards, cw)
}

func (a App) renderAmountLeft(cw int) string {
	t := theme.Active
	s := a.snap.Summary

	valueColor := t.Green
	if s.Overspent() {
		valueColor = t.Red
	}
	value := lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(cli.FormatMoney(s.Remaining()))
	if s.Overspent() {
		value += lipgloss.NewStyle().Foreground(t.Orange).Render("  overspent by " + cli.FormatMoney(s.AmountLeft.Neg()))
	}

	share := pipeline.SpentShare(s)
	slices := pipeline.ChartSlices(s)
	segments := []components.Segment{
		{Label: slices[0].Name, Value: cli.FormatMoney(slices[0].Value), Share: share, Color: t.Orange},
		{Label: slices[1].Name, Value: cli.FormatMoney(slices[1].Value), Share: 1 - share, Color: t.Green},
	}
	if share == 0 && s.Spent.IsZero() && s.Remaining().IsZero() {
		segments[1].Share = 0
	}

	body := value + "\n" + components.SplitBar(segments, components.CardInnerWidth(cw))
	return components.ContentCard("Amount Left", body, cw)
}

func (a App) renderItemTable(cw int) string {
	t := theme.Active
	accent := t.CategoryColor(a.category)
	ct, _ := a.snap.Summary.Totals(a.category)

	headerStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	const (
		checkW = 4
		moneyW = 13
	)
	barW := max(min(cw/5, 24), 6)
	nameW := max(cw-checkW-2*moneyW-(barW+5)-6, 8)

	var b strings.Builder
	fmt.Fprintf(&b, " %s %s %s %s %s\n",
		headerStyle.Render(fmt.Sprintf("%-*s", checkW, "")),
		headerStyle.Render(fmt.Sprintf("%-*s", nameW, "Item")),
		headerStyle.Render(fmt.Sprintf("%*s", moneyW, "Planned")),
		headerStyle.Render(fmt.Sprintf("%*s", moneyW, "Actual")),
		headerStyle.Render("Progress"))
	b.WriteString(mutedStyle.Render(" " + strings.Repeat("─", cw-2)))
	b.WriteString("\n")

	if len(ct.Items) == 0 {
		b.WriteString(mutedStyle.Render("  No items"))
		b.WriteString("\n")
	}

	for i, ip := range ct.Items {
		style := rowStyle
		if i == a.cursor {
			style = selectedStyle
		}
		line := fmt.Sprintf("%-*s %-*s %*s %*s",
			checkW, cli.FormatCheck(ip.Item.Checked),
			nameW, truncStr(ip.Item.Name, nameW),
			moneyW, cli.FormatMoney(ip.Item.Planned),
			moneyW, cli.FormatMoney(ip.Item.Actual))
		marker := " "
		if i == a.cursor {
			marker = lipgloss.NewStyle().Foreground(accent).Render("▌")
		}
		b.WriteString(marker)
		b.WriteString(style.Render(line))
		b.WriteString(" ")
		b.WriteString(components.ProgressBar(ip.Progress, barW, accent))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(" " + strings.Repeat("─", cw-2)))
	b.WriteString("\n")
	footer := fmt.Sprintf(" %-*s %-*s %*s %*s %s",
		checkW, "",
		nameW, "TOTAL",
		moneyW, cli.FormatMoney(ct.Planned),
		moneyW, cli.FormatMoney(ct.Actual),
		cli.FormatPercent(ct.Completion)+" complete")
	b.WriteString(totalStyle.Render(footer))

	return b.String()
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
