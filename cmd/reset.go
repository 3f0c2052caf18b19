package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/dashboard"
	"github.com/theirongolddev/budgetboard/internal/tui"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default budget and period",
	Long:  "Replace all items with the built-in defaults, select September 2024 and clear stored data.",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

// assumeYes confirms without asking.
type assumeYes struct{}

func (assumeYes) Confirm(_ context.Context, _ string) (bool, error) { return true, nil }

func runReset(cmd *cobra.Command, _ []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	var confirmer dashboard.Confirmer = tui.Confirmer{Input: cmd.InOrStdin(), Output: cmd.ErrOrStderr()}
	if flagYes {
		confirmer = assumeYes{}
	}

	done, err := s.dash.Reset(cmd.Context(), confirmer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !done {
		fmt.Fprintln(out, "  Reset cancelled.")
		return nil
	}
	fmt.Fprintf(out, "  %s\n", dashboard.ResetMessage)
	return nil
}
