package commands

import (
	"github.com/spf13/cobra"

	"github.com/mbrandao/shipchat/internal/config"
	"github.com/mbrandao/shipchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat",
	Long: `Start the interactive chat against the shipment analysis service.

Upload a CSV with /upload <path>, then ask questions about the data.
/dashboards opens the saved dashboard browser and ctrl+t toggles the
light/dark theme. Type 'exit', 'quit', or press Ctrl+C to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	deps := buildDeps()

	chartsDir, err := config.GetChartsDir(deps.cfg)
	if err != nil {
		chartsDir = "."
	}

	return tui.RunChat(deps.client, deps.history, deps.store, chartsDir, deps.cfg.ForecastPeriods)
}
