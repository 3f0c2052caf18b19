// Package cmd implements the budgetboard CLI commands.
package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/cli"
	"github.com/theirongolddev/budgetboard/internal/config"
	"github.com/theirongolddev/budgetboard/internal/store"
	"github.com/theirongolddev/budgetboard/internal/tui/theme"
)

var flagTheme string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long:  "Show the effective configuration. With --theme, store the TUI theme in the config file first.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagTheme, "theme", "", "Save the TUI theme to the config file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("theme") {
		if !slices.Contains(theme.Names(), flagTheme) {
			return fmt.Errorf("unknown theme %q (available: %v)", flagTheme, theme.Names())
		}
		cfg.Appearance.Theme = flagTheme
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "  Theme set to %s\n\n", flagTheme)
	}

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	dataFile := flagDataFile
	if dataFile == "" {
		dataFile = config.DataFile(cfg)
	}
	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Data file: %s\n", dataFile)
	if v := os.Getenv(config.EnvDataFile); v != "" {
		fmt.Fprintf(out, "    (from %s)\n", config.EnvDataFile)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", theme.ByName(cfg.Appearance.Theme).Name)
	fmt.Fprintf(out, "    Available: %v\n", theme.Names())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Level:  %s\n", config.LogLevel(cfg))
	fmt.Fprintf(out, "    Format: %s\n", cfg.Log.Format)
	fmt.Fprintf(out, "    Output: %s\n", cfg.Log.Output)
	fmt.Fprintln(out)

	if _, err := os.Stat(dataFile); err != nil {
		fmt.Fprintln(out, "  No budget saved yet.")
		return nil
	}
	db, err := store.Open(dataFile)
	if err != nil {
		return fmt.Errorf("opening budget store: %w", err)
	}
	defer db.Close()

	entries, err := db.Entries()
	if err != nil {
		return err
	}
	t := cli.Table{
		Title:   "Stored keys",
		Headers: []string{"Key", "Bytes", "Updated"},
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			e.Key,
			cli.FormatNumber(int64(e.Size)),
			e.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	if len(t.Rows) == 0 {
		fmt.Fprintln(out, "  Store is empty.")
		return nil
	}
	fmt.Fprint(out, cli.RenderTable(t))
	return nil
}
