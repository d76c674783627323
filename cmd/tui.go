package cmd

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/payreal/internal/tui"
	"github.com/theirongolddev/payreal/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagNoForm bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagNoForm, "no-form", false, "Skip the input form and open the dashboard")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	scenarios, err := loadScenarios(cmd)
	if err != nil {
		return err
	}
	if len(scenarios) > 1 {
		slog.Warn("tui shows one scenario; using the first", "name", scenarios[0].Name)
	}

	if theme.ByName(cfg.Appearance.Theme).Name != cfg.Appearance.Theme {
		slog.Warn("unknown theme, using default", "theme", cfg.Appearance.Theme)
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Log lines would tear the alt screen.
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.DiscardHandler))
	defer slog.SetDefault(prev)

	app := tui.NewApp(scenarios[0].Input)
	if flagNoForm {
		app = tui.NewResultApp(scenarios[0].Input)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
