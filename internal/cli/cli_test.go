package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/budgetboard/internal/budget"
	"github.com/theirongolddev/budgetboard/internal/model"
	"github.com/theirongolddev/budgetboard/internal/pipeline"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"999.999", "$1,000.00"},
		{"16500", "$16,500.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-12.5", "-$12.50"},
		{"-6060", "-$6,060.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "-1,234,567", FormatNumber(-1234567))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "93.3%", FormatPercent(93.3333))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "120.0%", FormatPercent(120))
}

func TestRenderProgressBar_Clamps(t *testing.T) {
	full := RenderProgressBar(250, 10)
	assert.Contains(t, full, strings.Repeat("█", 10))
	assert.Contains(t, full, "100%")

	empty := RenderProgressBar(-5, 10)
	assert.Contains(t, empty, strings.Repeat("░", 10))
	assert.Contains(t, empty, "0%")
}

func TestItemTable_TotalFooter(t *testing.T) {
	s := pipeline.Aggregate(budget.Default())
	bills, ok := s.Totals(model.CategoryBills)
	require.True(t, ok)

	out := RenderTable(ItemTable(bills))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "  Bills", lines[0])
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "[x]")

	footer := lines[len(lines)-2]
	assert.Contains(t, footer, "TOTAL")
	assert.Contains(t, footer, "$1,860.00")
	assert.Contains(t, footer, "$1,845.00")
	assert.Contains(t, footer, "99.2%")

	// every row of a bordered table has the same display width
	for _, l := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(l), l)
	}
}

func TestRenderSummary(t *testing.T) {
	doc := budget.Default()
	s := pipeline.Aggregate(doc)
	out := RenderSummary(model.DefaultPeriod(), s)

	assert.Contains(t, out, "September 2024")
	assert.Contains(t, out, "$16,500.00")
	assert.Contains(t, out, "$6,095.00")
	assert.Contains(t, out, "$6,060.00")
	assert.NotContains(t, out, "overspent")
}

func TestRenderSummary_Overspent(t *testing.T) {
	doc := budget.UpdateActual(budget.Default(), model.CategoryBills, 5, "8000")
	s := pipeline.Aggregate(doc)
	require.True(t, s.Overspent())

	out := RenderSummary(model.DefaultPeriod(), s)
	assert.Contains(t, out, "Amount Left $0.00")
	assert.Contains(t, out, "overspent by $740.00")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}
