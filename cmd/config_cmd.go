// Package cmd implements the payreal CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	d := cfg.Defaults
	walks := "no"
	if d.WalksToWork {
		walks = "yes"
	}
	fmt.Println("  [Defaults]")
	fmt.Printf("    Gross annual:    %s\n", cli.FormatNaira(d.GrossAnnual))
	fmt.Printf("    City:            %s\n", d.City)
	fmt.Printf("    Walks to work:   %s\n", walks)
	fmt.Printf("    Family support:  %s\n", cli.FormatNaira(d.FamilySupport))
	fmt.Printf("    House upkeep:    %s\n", cli.FormatNaira(d.HouseUpkeep))
	fmt.Printf("    Savings goal:    %s\n", cli.FormatNaira(d.GoalAmount))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s%s\n", cfg.Server.Addr, envNote(config.EnvAddr))
	fmt.Println()

	fmt.Println("  [Log]")
	level := cfg.Log.Level
	if level == "" {
		level = "default (warn; info for serve)"
	}
	fmt.Printf("    Level: %s%s\n", level, envNote(config.EnvLogLevel))
	fmt.Println()

	fmt.Println("  Run `payreal setup` to reconfigure.")
	return nil
}

func envNote(key string) string {
	if os.Getenv(key) != "" {
		return fmt.Sprintf(" (from %s)", key)
	}
	return ""
}
