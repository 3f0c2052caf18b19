package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/budgetboard/internal/config"
	"github.com/theirongolddev/budgetboard/internal/dashboard"
	"github.com/theirongolddev/budgetboard/internal/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETBOARD_DATA_FILE", "")
	t.Setenv("BUDGETBOARD_LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestSummaryIsDefaultCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	out := run(t, "-f", db)
	assert.Contains(t, out, "September 2024")
	assert.Contains(t, out, "$16,500.00")
	assert.Contains(t, out, "$6,060.00")
	assert.Contains(t, out, "Completion")
}

func TestEditsPersistAcrossRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	out := run(t, "actual", "-f", db, "bills", "5", "1300")
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "Amount left: $5,960.00")

	run(t, "rename", "-f", db, "bills", "5", "Apartment")
	run(t, "toggle", "savings", "5", "-f", db)

	out = run(t, "items", "bills", "savings", "-f", db)
	assert.Contains(t, out, "Apartment")
	assert.Contains(t, out, "$1,300.00")
	assert.Contains(t, out, "[ ]")
	assert.NotContains(t, out, "Income")
}

func TestEditNegativeAmount(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	out := run(t, "actual", "-f", db, "expenses", "1", "-5")
	assert.Contains(t, out, "-$5.00 actual")

	out = run(t, "planned", "-f", db, "expenses", "1", "-12.50")
	assert.Contains(t, out, "-$12.50 planned")

	out = run(t, "rename", "-f", db, "expenses", "1", "-refund-")
	assert.Contains(t, out, "-refund-")
}

func TestEditUnknownItem(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	_, err := execute(t, "toggle", "bills", "42", "-f", db)
	assert.ErrorIs(t, err, dashboard.ErrItemNotFound)

	_, err = execute(t, "toggle", "groceries", "1", "-f", db)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestPeriodCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	out := run(t, "period", "--month", "mar", "--year", "2026", "-f", db)
	assert.Contains(t, out, "March 2026")

	_, err := execute(t, "period", "--year", "2031", "-f", db)
	assert.ErrorIs(t, err, model.ErrUnknownYear)
}

func TestResetYes(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	run(t, "actual", "-f", db, "income", "1", "1")
	out := run(t, "reset", "--yes", "-f", db)
	assert.Contains(t, out, dashboard.ResetMessage)

	out = run(t, "export", "--format", "json", "-f", db)
	assert.Contains(t, out, `"actual": 8000`)
}

func TestExportFormats(t *testing.T) {
	db := filepath.Join(t.TempDir(), "budget.db")

	out := run(t, "export", "--format", "yaml", "-f", db)
	assert.Contains(t, out, "name: Paycheck 1")

	_, err := execute(t, "export", "--format", "xml", "-f", db)
	assert.Error(t, err)
}

func TestParseItemRef(t *testing.T) {
	c, id, err := parseItemRef("Bills", "5")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryBills, c)
	assert.Equal(t, 5, id)

	_, _, err = parseItemRef("bills", "five")
	assert.Error(t, err)
}

func TestConfigSetTheme(t *testing.T) {
	t.Cleanup(func() { configCmd.Flags().Lookup("theme").Changed = false })
	db := filepath.Join(t.TempDir(), "budget.db")

	out := run(t, "config", "--theme", "catppuccin-mocha", "-f", db)
	assert.Contains(t, out, "Theme set to catppuccin-mocha")
	assert.Contains(t, out, "Theme: catppuccin-mocha")

	require.FileExists(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "budgetboard", "config.toml"))
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)

	_, err = execute(t, "config", "--theme", "neon", "-f", db)
	assert.ErrorContains(t, err, "unknown theme")
}
