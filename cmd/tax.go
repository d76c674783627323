package cmd

import (
	"fmt"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"

	"github.com/spf13/cobra"
)

var taxCmd = &cobra.Command{
	Use:   "tax [GROSS]",
	Short: "PAYE breakdown for an annual gross salary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTax,
}

func init() {
	rootCmd.AddCommand(taxCmd)
}

func runTax(cmd *cobra.Command, args []string) error {
	var gross float64
	if len(args) == 1 {
		v, err := cli.ParseAmount(args[0])
		if err != nil {
			return err
		}
		gross = v
	} else {
		in, err := baseInput(cmd)
		if err != nil {
			return err
		}
		gross = in.GrossAnnual
	}

	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYE  %s/yr", cli.FormatNaira(gross))))
	fmt.Println()
	fmt.Print(cli.RenderTaxTable(engine.ComputeTax(gross)))
	fmt.Println()
	fmt.Printf("  %s\n", cli.TaxCaption)
	return nil
}
