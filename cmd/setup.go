package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/payreal/internal/config"
	"github.com/theirongolddev/payreal/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Save your default salary, city and theme",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file alone so env overrides are not written back.
	fileCfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	vals := tui.NewFormValues(fileCfg.Defaults.Input())
	vals.Theme = fileCfg.Appearance.Theme

	fmt.Println()
	fmt.Println("  Welcome to payreal!")
	fmt.Println("  These answers become the defaults for every command.")
	fmt.Println()

	if err := tui.NewInputForm(vals, true).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled; nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	in, err := vals.Input()
	if err != nil {
		return err
	}
	fileCfg.Defaults = config.FromInput(in)
	fileCfg.Appearance.Theme = vals.Theme

	if err := config.Save(fileCfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `payreal setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
