package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/payreal/internal/engine"
)

// Environment variables that override the config file.
const (
	EnvAddr     = "PAYREAL_ADDR"
	EnvLogLevel = "LOG_LEVEL"
)

// Config holds all payreal configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Log        LogConfig        `toml:"log"`
}

// DefaultsConfig holds the inputs used when a flag or scenario field is unset.
type DefaultsConfig struct {
	GrossAnnual   float64 `toml:"gross_annual"`
	City          string  `toml:"city"`
	WalksToWork   bool    `toml:"walks_to_work"`
	FamilySupport float64 `toml:"family_support"`
	HouseUpkeep   float64 `toml:"house_upkeep"`
	GoalAmount    float64 `toml:"goal_amount"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig holds logging settings. An empty level lets each command pick.
type LogConfig struct {
	Level string `toml:"level,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			GrossAnnual:   2_985_762,
			City:          string(engine.CityLagos),
			FamilySupport: 40_000,
			HouseUpkeep:   50_000,
			GoalAmount:    250_000,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8787",
		},
	}
}

// Input converts the defaults section to engine input.
func (d DefaultsConfig) Input() engine.BudgetInput {
	return engine.BudgetInput{
		GrossAnnual:   d.GrossAnnual,
		City:          engine.City(d.City),
		WalksToWork:   d.WalksToWork,
		FamilySupport: d.FamilySupport,
		HouseUpkeep:   d.HouseUpkeep,
		GoalAmount:    d.GoalAmount,
	}
}

// FromInput is the inverse of Input, used when saving the setup form.
func FromInput(in engine.BudgetInput) DefaultsConfig {
	return DefaultsConfig{
		GrossAnnual:   in.GrossAnnual,
		City:          string(in.City),
		WalksToWork:   in.WalksToWork,
		FamilySupport: in.FamilySupport,
		HouseUpkeep:   in.HouseUpkeep,
		GoalAmount:    in.GoalAmount,
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "payreal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "payreal")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied last.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg), nil
}

// LoadFile reads the config file without environment overrides. setup uses
// it so that saving does not persist PAYREAL_ADDR or LOG_LEVEL.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", Path(), err)
	}
	if err := cfg.Defaults.Input().Validate(); err != nil {
		return cfg, fmt.Errorf("config defaults: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays PAYREAL_ADDR and LOG_LEVEL onto cfg.
func ApplyEnv(cfg Config) Config {
	if addr := os.Getenv(EnvAddr); addr != "" {
		cfg.Server.Addr = addr
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
