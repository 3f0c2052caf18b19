package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/model"
)

var (
	flagMonth string
	flagYear  string
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Show or select the budget month and year",
	Args:  cobra.NoArgs,
	RunE:  runPeriod,
}

func init() {
	periodCmd.Flags().StringVar(&flagMonth, "month", "", "Month name or three-letter abbreviation")
	periodCmd.Flags().StringVar(&flagYear, "year", "", "Year, 2024-2028")
	rootCmd.AddCommand(periodCmd)
}

func runPeriod(cmd *cobra.Command, _ []string) error {
	var (
		month model.Month
		year  model.Year
		err   error
	)
	setMonth := cmd.Flags().Changed("month")
	setYear := cmd.Flags().Changed("year")
	if setMonth {
		if month, err = model.ParseMonth(flagMonth); err != nil {
			return err
		}
	}
	if setYear {
		if year, err = model.ParseYear(flagYear); err != nil {
			return err
		}
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	if setMonth {
		s.dash.SetMonth(month)
	}
	if setYear {
		s.dash.SetYear(year)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", s.dash.Period())
	return nil
}
