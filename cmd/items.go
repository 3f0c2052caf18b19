package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/cli"
	"github.com/theirongolddev/budgetboard/internal/model"
)

var itemsCmd = &cobra.Command{
	Use:   "items [category...]",
	Short: "Line items with planned, actual and progress",
	Long:  "Show the item table for each named category (income, expenses, bills, savings), or all of them.",
	RunE:  runItems,
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}

func runItems(cmd *cobra.Command, args []string) error {
	cats := model.Categories
	if len(args) > 0 {
		cats = make([]model.Category, 0, len(args))
		for _, arg := range args {
			c, err := model.ParseCategory(arg)
			if err != nil {
				return err
			}
			cats = append(cats, c)
		}
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	summary := s.dash.Summary()
	out := cmd.OutOrStdout()
	for _, c := range cats {
		ct, _ := summary.Totals(c)
		fmt.Fprintln(out)
		fmt.Fprint(out, cli.RenderTable(cli.ItemTable(ct)))
	}
	return nil
}
