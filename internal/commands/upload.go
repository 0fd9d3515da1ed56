package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.csv>",
	Short: "Upload a shipment CSV for analysis",
	Long: `Upload a shipment CSV to the analysis service.

The service ingests the file and reports the row count and column names.
Questions asked afterwards run against this dataset.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(args[0])
	},
}

func runUpload(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	deps := buildDeps()

	spin := newSpinner("Uploading CSV")
	spin.start()

	result, err := deps.client.UploadFile(path)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Upload failed"))
		return fmt.Errorf("upload failed: %w", err)
	}

	spin.stopWithSuccess(result.Summary())
	return nil
}
