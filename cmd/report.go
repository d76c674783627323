package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/export"
	"github.com/theirongolddev/payreal/internal/scenario"

	"github.com/spf13/cobra"
)

var (
	flagFormat = "table"
	flagOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Monthly salary reality report (default command)",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table, json, yaml or csv")
	reportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to a file; format follows the extension (.json, .yaml, .csv, .pdf)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	scenarios, err := loadScenarios(cmd)
	if err != nil {
		return err
	}
	reports := compute(scenarios)

	if flagOutput != "" {
		return writeOutput(flagOutput, reports)
	}

	if flagFormat == "" || flagFormat == "table" {
		for i, rp := range reports {
			if len(reports) > 1 {
				if i > 0 {
					fmt.Println()
				}
				fmt.Printf("  %s\n", rp.Name)
			}
			fmt.Print(cli.RenderReport(rp.Result))
		}
		return nil
	}

	f, err := export.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if f == export.FormatPDF {
		return errors.New("pdf output needs --output FILE.pdf")
	}
	return export.Write(os.Stdout, f, reports)
}

// compute runs the engine once per scenario.
func compute(scenarios []scenario.Scenario) []export.Report {
	reports := make([]export.Report, len(scenarios))
	for i, s := range scenarios {
		reports[i] = export.Report{Name: s.Name, Result: engine.ComputeBudget(s.Input)}
	}
	return reports
}

func writeOutput(path string, reports []export.Report) error {
	abs, err := export.WriteFile(path, reports)
	if err != nil {
		return err
	}
	fmt.Printf("  Wrote %d report(s) to %s\n", len(reports), abs)
	return nil
}
