package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/payreal/internal/engine"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func TestPathUsesXDG(t *testing.T) {
	dir := withConfigHome(t)
	want := filepath.Join(dir, "payreal", "config.toml")
	if got := Path(); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	withConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true before Save")
	}

	in := cfg.Defaults.Input()
	if in.GrossAnnual != 2_985_762 || in.City != engine.CityLagos || in.GoalAmount != 250_000 {
		t.Fatalf("default input = %+v", in)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withConfigHome(t)

	cfg := DefaultConfig()
	cfg.Defaults = FromInput(engine.BudgetInput{
		GrossAnnual: 6_000_000,
		City:        engine.CityPortHarcourt,
		WalksToWork: true,
		HouseUpkeep: 20_000,
		GoalAmount:  1_000_000,
	})
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Log.Level = "debug"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	withConfigHome(t)
	writeConfig(t, "[defaults]\ncity = \"Ibadan\"\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.City != "Ibadan" {
		t.Errorf("city = %q, want Ibadan", cfg.Defaults.City)
	}
	if cfg.Defaults.GrossAnnual != 2_985_762 {
		t.Errorf("gross = %v, want default", cfg.Defaults.GrossAnnual)
	}
	if cfg.Server.Addr != DefaultConfig().Server.Addr {
		t.Errorf("addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadMalformed(t *testing.T) {
	withConfigHome(t)
	writeConfig(t, "[defaults\ncity = ")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsNegativeDefaults(t *testing.T) {
	withConfigHome(t)
	writeConfig(t, "[defaults]\nfamily_support = -1\n")

	_, err := Load()
	if !errors.Is(err, engine.ErrInvalidAmount) {
		t.Fatalf("Load err = %v, want ErrInvalidAmount", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	withConfigHome(t)
	writeConfig(t, "[server]\naddr = \"127.0.0.1:9000\"\n[log]\nlevel = \"warn\"\n")
	t.Setenv(EnvAddr, ":8080")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Log.Level)
	}

	file, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if file.Server.Addr != "127.0.0.1:9000" || file.Log.Level != "warn" {
		t.Errorf("LoadFile applied env overrides: %+v", file)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv with no .env: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvAddr, "")
	os.Unsetenv(EnvAddr)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvAddr+"=:7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvAddr); got != ":7000" {
		t.Fatalf("%s = %q, want :7000", EnvAddr, got)
	}
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}
