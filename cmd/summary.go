package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Category totals and amount left",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.dash.Snapshot()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderSummary(snap.Period, snap.Summary))
	fmt.Fprint(out, cli.RenderTable(cli.CategoryTable(snap.Summary)))
	return nil
}
