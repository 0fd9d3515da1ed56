package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mbrandao/shipchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change shipchat settings.

  shipchat config                      Show current settings
  shipchat config set api-url <url>    Point at another service instance
  shipchat config set theme dark       Switch theme (light or dark)
  shipchat config set periods 7        Forecast horizon in days
  shipchat config set clipboard true   Copy one-shot answers to clipboard
  shipchat config set verbose true     Debug-level diagnostics logging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func showConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("api-url:    %s\n", config.ResolveBaseURL("", cfg))
	fmt.Printf("theme:      %s\n", cfg.Theme)
	fmt.Printf("periods:    %d\n", cfg.ForecastPeriods)
	fmt.Printf("clipboard:  %t\n", cfg.CopyToClipboard)
	fmt.Printf("verbose:    %t\n", cfg.Verbose)
	fmt.Printf("charts-dir: %s\n", cfg.ChartsDir)
	return nil
}

func setConfig(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "api-url":
		cfg.APIBaseURL = value

	case "theme":
		if !config.ValidTheme(value) {
			return fmt.Errorf("unknown theme %q (expected light or dark)", value)
		}
		cfg.Theme = value

	case "periods":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("periods must be a positive number")
		}
		cfg.ForecastPeriods = n

	case "clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("clipboard must be true or false")
		}
		cfg.CopyToClipboard = b

	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = b

	case "charts-dir":
		cfg.ChartsDir = value

	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("%s set to %s\n", key, value)
	return nil
}
