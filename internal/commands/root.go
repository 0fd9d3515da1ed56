package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	apiURLFlag string
	outputFlag string
	fileFlag   string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shipchat [question]",
	Short: "Terminal client for the AI Shipment Analysis API",
	Long: `shipchat is a terminal client for the shipment-data analysis service.
Upload a shipment CSV, ask natural-language questions about it, and
browse previously answered questions as saved dashboards.

Examples:
  shipchat chat                            Start the interactive chat
  shipchat upload shipments.csv            Upload a CSV for analysis
  shipchat "total quantity shipped"        Ask a single question
  shipchat -f question.txt                 Read the question from a file
  cat question.txt | shipchat              Read the question from stdin
  shipchat dashboards                      Browse saved dashboards
  shipchat "forecast next week" -o out.md  Save the answer to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("shipchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runAsk(string(data), rawFlag)
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runAsk(string(data), rawFlag)
		}

		if len(args) > 0 {
			return runAsk(args[0], rawFlag)
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Base URL of the analysis service (default: $SHIPCHAT_API_URL or config)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save answer to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print only the raw answer text")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(dashboardsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(statusCmd)
}
