package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the analysis service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus()
	},
}

func runStatus() error {
	deps := buildDeps()

	spin := newSpinner("Checking " + deps.client.BaseURL())
	spin.start()

	if err := deps.client.Health(); err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Service unreachable"))
		return fmt.Errorf("service unreachable: %w", err)
	}

	spin.stopWithSuccess("Service is up at " + deps.client.BaseURL())
	return nil
}
