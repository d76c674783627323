package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/scenario"

	"github.com/spf13/cobra"
)

var (
	flagAllCities     bool
	flagCompareOutput string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare scenarios side by side",
	Long: "Compare the scenarios in an --input file, or one input across every city\n" +
		"with --all-cities.",
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&flagAllCities, "all-cities", false, "Vary only the city")
	compareCmd.Flags().StringVarP(&flagCompareOutput, "output", "o", "", "Write the comparison to a file (.json, .yaml, .csv, .pdf)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	scenarios, err := loadScenarios(cmd)
	if err != nil {
		return err
	}

	if flagAllCities {
		if len(scenarios) > 1 {
			return errors.New("--all-cities compares one input; use an --input file with a single scenario")
		}
		scenarios = acrossCities(scenarios[0].Input)
	} else if len(scenarios) < 2 {
		return errors.New("compare needs an --input file with several scenarios, or --all-cities")
	}

	reports := compute(scenarios)
	if flagCompareOutput != "" {
		return writeOutput(flagCompareOutput, reports)
	}

	results := make([]engine.BudgetResult, len(reports))
	for i, rp := range reports {
		results[i] = rp.Result
	}
	fmt.Print(cli.RenderComparison(scenario.Names(scenarios), results))
	return nil
}

// acrossCities copies in once per known city.
func acrossCities(in engine.BudgetInput) []scenario.Scenario {
	cities := engine.Cities()
	out := make([]scenario.Scenario, len(cities))
	for i, c := range cities {
		in.City = c
		out[i] = scenario.Scenario{Name: string(c), Input: in}
	}
	return out
}
