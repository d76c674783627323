package cmd

import (
	"fmt"

	"github.com/theirongolddev/payreal/internal/cli"

	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List city transport and housing profiles",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(cli.RenderCityTable())
		fmt.Println()
		fmt.Println("  Any other city uses the Other profile. Walking to work drops transport to ₦0.")
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
