package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/config"
	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/logging"
	"github.com/theirongolddev/payreal/internal/scenario"

	"github.com/spf13/cobra"
)

var (
	flagSalary   string
	flagCity     string
	flagWalk     bool
	flagFamily   string
	flagUpkeep   string
	flagGoal     string
	flagInput    string
	flagLogLevel string
)

// cfg is the effective configuration, loaded before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "payreal",
	Short: "What does your Nigerian salary really buy?",
	Long: "Estimate PAYE, pension and NHF deductions, subtract city living costs and\n" +
		"family obligations, and see how long a savings goal will take.",
	PersistentPreRunE: setup,
	RunE:              runReport,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagSalary, "salary", "s", "", "Annual gross salary (e.g. 2985762, 3m)")
	pf.StringVarP(&flagCity, "city", "c", "", "City: Lagos, Ibadan, Abeokuta, Port Harcourt or Other")
	pf.BoolVarP(&flagWalk, "walk", "w", false, "You walk to work (no transport cost)")
	pf.StringVar(&flagFamily, "family", "", "Monthly family support")
	pf.StringVar(&flagUpkeep, "upkeep", "", "Monthly house upkeep (food, utilities, toiletries)")
	pf.StringVar(&flagGoal, "goal", "", "Savings goal amount")
	pf.StringVarP(&flagInput, "input", "i", "", "Scenario file (.toml, .yaml, .yml or .json)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// setup loads .env, the config file and the logger. Long-running commands
// log at info by default, everything else at warn.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	fallback := slog.LevelWarn
	if cmd.Name() == serveCmd.Name() {
		fallback = slog.LevelInfo
	}
	name := cfg.Log.Level
	if flagLogLevel != "" {
		name = flagLogLevel
	}
	level, err := logging.ParseLevel(name, fallback)
	if err != nil {
		return err
	}
	logging.SetupWithLevel(level)

	slog.Debug("config loaded", "path", config.Path(), "exists", config.Exists())
	return nil
}

// baseInput is the config defaults with any input flags applied on top.
func baseInput(cmd *cobra.Command) (engine.BudgetInput, error) {
	in := cfg.Defaults.Input()
	flags := cmd.Flags()

	amounts := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"salary", flagSalary, &in.GrossAnnual},
		{"family", flagFamily, &in.FamilySupport},
		{"upkeep", flagUpkeep, &in.HouseUpkeep},
		{"goal", flagGoal, &in.GoalAmount},
	}
	for _, a := range amounts {
		if !flags.Changed(a.name) {
			continue
		}
		v, err := cli.ParseAmount(a.raw)
		if err != nil {
			return in, fmt.Errorf("--%s: %w", a.name, err)
		}
		*a.dst = v
	}

	if flags.Changed("city") {
		in.City = engine.City(flagCity)
		if !in.City.Known() && in.City != engine.CityOther {
			slog.Warn("unknown city, using the Other profile", "city", flagCity)
		}
	}
	if flags.Changed("walk") {
		in.WalksToWork = flagWalk
	}
	return in, in.Validate()
}

// loadScenarios returns the scenarios from --input, or a single scenario
// built from flags and config defaults.
func loadScenarios(cmd *cobra.Command) ([]scenario.Scenario, error) {
	base, err := baseInput(cmd)
	if err != nil {
		return nil, err
	}
	if flagInput == "" {
		return []scenario.Scenario{{Input: base}}, nil
	}

	scenarios, err := scenario.Load(flagInput, base)
	if err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, errors.New("scenario file holds no scenarios")
	}
	slog.Debug("scenarios loaded", "file", flagInput, "count", len(scenarios))
	return scenarios, nil
}
