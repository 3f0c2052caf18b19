package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/budget"
)

var flagFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the budget document",
	Long:  "Print the budget document as JSON (the stored format) or YAML.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagFormat, "format", "json", "Output format: json or yaml")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	var data []byte
	doc := s.dash.Document()
	switch flagFormat {
	case "json":
		data, err = budget.EncodeIndent(doc)
	case "yaml", "yml":
		data, err = budget.EncodeYAML(doc)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", flagFormat)
	}
	if err != nil {
		return fmt.Errorf("exporting budget: %w", err)
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}
