package commands

import (
	"strings"
	"testing"

	"github.com/mbrandao/shipchat/internal/config"
	"github.com/mbrandao/shipchat/internal/render"
	"github.com/mbrandao/shipchat/internal/storage"
)

func TestSetConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name:  "api-url",
			key:   "api-url",
			value: "http://other-host:9000",
			check: func(t *testing.T, cfg config.Config) {
				if cfg.APIBaseURL != "http://other-host:9000" {
					t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
				}
			},
		},
		{
			name:  "theme",
			key:   "theme",
			value: "light",
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Theme != "light" {
					t.Errorf("Theme = %q", cfg.Theme)
				}
			},
		},
		{
			name:  "periods",
			key:   "periods",
			value: "30",
			check: func(t *testing.T, cfg config.Config) {
				if cfg.ForecastPeriods != 30 {
					t.Errorf("ForecastPeriods = %d", cfg.ForecastPeriods)
				}
			},
		},
		{
			name:  "clipboard",
			key:   "clipboard",
			value: "true",
			check: func(t *testing.T, cfg config.Config) {
				if !cfg.CopyToClipboard {
					t.Error("CopyToClipboard = false")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := setConfig(tt.key, tt.value); err != nil {
				t.Fatalf("setConfig failed: %v", err)
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestSetConfig_Validation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "color", "blue"},
		{"invalid theme", "theme", "neon"},
		{"non-numeric periods", "periods", "soon"},
		{"zero periods", "periods", "0"},
		{"negative periods", "periods", "-5"},
		{"non-bool clipboard", "clipboard", "yes please"},
		{"non-bool verbose", "verbose", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := setConfig(tt.key, tt.value); err == nil {
				t.Errorf("setConfig(%q, %q) should fail", tt.key, tt.value)
			}
		})
	}
}

func TestSetConfig_InvalidValueNotPersisted(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := setConfig("theme", "light"); err != nil {
		t.Fatal(err)
	}
	if err := setConfig("theme", "neon"); err == nil {
		t.Fatal("invalid theme should fail")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, rejected value must not be persisted", cfg.Theme)
	}
}

func TestSetThemeAffectsRestoredTheme(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { render.SetTheme("dark") })

	if err := setConfig("theme", "light"); err != nil {
		t.Fatalf("setConfig failed: %v", err)
	}

	buildDeps()
	if render.GetTheme().Name != "light" {
		t.Errorf("restored theme = %q, want the configured light", render.GetTheme().Name)
	}
}

func TestStateStoreThemeWinsOverConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { render.SetTheme("dark") })

	if err := setConfig("theme", "light"); err != nil {
		t.Fatalf("setConfig failed: %v", err)
	}

	// Simulate a prior in-app toggle persisted through the state store.
	deps := buildDeps()
	deps.store.Set(storage.KeyTheme, "dark")

	buildDeps()
	if render.GetTheme().Name != "dark" {
		t.Errorf("restored theme = %q, state store must win over config", render.GetTheme().Name)
	}
}

func TestConfigCommandHelp(t *testing.T) {
	if !strings.Contains(configCmd.Long, "config set") {
		t.Error("config help should document the set subcommand")
	}

	found := false
	for _, c := range configCmd.Commands() {
		if c.Name() == "set" {
			found = true
		}
	}
	if !found {
		t.Error("set subcommand not registered under config")
	}
}
