package commands

import (
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "shipchat [question]" {
		t.Errorf("Use = %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if rootCmd.Args == nil {
		t.Error("Args validation should be configured")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"chat", "upload", "dashboards", "config", "status"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("api-url") == nil {
		t.Error("--api-url persistent flag missing")
	}
	for _, name := range []string{"output", "file", "raw", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag missing", name)
		}
	}
}
