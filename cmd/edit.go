package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/cli"
	"github.com/theirongolddev/budgetboard/internal/dashboard"
	"github.com/theirongolddev/budgetboard/internal/model"
)

var actualCmd = &cobra.Command{
	Use:   "actual [flags] <category> <id> <amount>",
	Short: "Set an item's actual amount",
	Long: `Set an item's actual amount. Input that does not start with a number is stored as 0.
Flags go before the category so negative amounts such as -5 are read as values.`,
	Args:  cobra.ExactArgs(3),
	RunE: editRunner(func(d *dashboard.Dashboard, c model.Category, id int, args []string) error {
		return d.UpdateActual(c, id, args[0])
	}),
}

var plannedCmd = &cobra.Command{
	Use:   "planned [flags] <category> <id> <amount>",
	Short: "Set an item's planned amount",
	Long:  "Set an item's planned amount. Flags go before the category so negative amounts are read as values.",
	Args:  cobra.ExactArgs(3),
	RunE: editRunner(func(d *dashboard.Dashboard, c model.Category, id int, args []string) error {
		return d.UpdatePlanned(c, id, args[0])
	}),
}

var renameCmd = &cobra.Command{
	Use:   "rename [flags] <category> <id> <name>",
	Short: "Rename an item",
	Args:  cobra.ExactArgs(3),
	RunE: editRunner(func(d *dashboard.Dashboard, c model.Category, id int, args []string) error {
		return d.UpdateName(c, id, args[0])
	}),
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <category> <id>",
	Short: "Flip an item's checked flag",
	Long:  "Flip an item's checked flag. Only checked items count toward actual totals.",
	Args:  cobra.ExactArgs(2),
	RunE: editRunner(func(d *dashboard.Dashboard, c model.Category, id int, _ []string) error {
		return d.ToggleChecked(c, id)
	}),
}

func init() {
	// values may start with "-"
	for _, c := range []*cobra.Command{actualCmd, plannedCmd, renameCmd} {
		c.Flags().SetInterspersed(false)
	}
	rootCmd.AddCommand(actualCmd, plannedCmd, renameCmd, toggleCmd)
}

type editFunc func(d *dashboard.Dashboard, c model.Category, id int, rest []string) error

// editRunner parses <category> <id>, applies fn, and prints the item and
// the new amount left.
func editRunner(fn editFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, id, err := parseItemRef(args[0], args[1])
		if err != nil {
			return err
		}

		s, err := openSession(false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := fn(s.dash, c, id, args[2:]); err != nil {
			return err
		}

		snap := s.dash.Snapshot()
		it, _ := snap.Document.FindItem(c, id)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %s #%d %s  %s planned  %s actual  %s\n",
			c.Title(), it.ID, it.Name,
			cli.FormatMoney(it.Planned),
			cli.FormatMoney(it.Actual),
			cli.FormatCheck(it.Checked))
		fmt.Fprintf(out, "  Amount left: %s\n", cli.FormatMoney(snap.Summary.Remaining()))
		return nil
	}
}
