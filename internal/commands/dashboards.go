package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbrandao/shipchat/internal/dashboard"
	"github.com/mbrandao/shipchat/internal/tui"
)

var dashboardsListFlag bool

var dashboardsCmd = &cobra.Command{
	Use:   "dashboards",
	Short: "Browse saved dashboards",
	Long: `Browse the saved dashboards: every successfully answered question is
recorded with its answer and chart, up to the most recent ` + fmt.Sprint(dashboard.MaxEntries) + `.

Entries are read-only; older ones are evicted automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dashboardsListFlag {
			return listDashboards()
		}
		return runDashboards()
	},
}

func init() {
	dashboardsCmd.Flags().BoolVarP(&dashboardsListFlag, "list", "l", false, "Print entries to stdout instead of opening the browser")
}

func runDashboards() error {
	deps := buildDeps()
	return tui.RunDashboardBrowser(deps.history, deps.store)
}

// listDashboards prints a plain listing for scripts and narrow terminals
func listDashboards() error {
	deps := buildDeps()

	entries := deps.history.List()
	if len(entries) == 0 {
		fmt.Println("No saved dashboards.")
		return nil
	}

	for _, e := range entries {
		title := e.Question
		if title == "" {
			title = "(no question)"
		}
		fmt.Printf("%s  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.ID, title)
	}
	return nil
}
