package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mbrandao/shipchat/internal/config"
	apierrors "github.com/mbrandao/shipchat/internal/errors"
	"github.com/mbrandao/shipchat/internal/render"
)

// Styles matching the chat TUI
var (
	answerLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	answerBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)

	chartPathStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Underline(true)
)

// runAsk executes a single question and outputs the answer.
// If rawOutput is true, only the raw answer text is printed.
func runAsk(question string, rawOutput bool) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}

	deps := buildDeps()

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Asking the analysis service")
		spin.start()
	}

	result, err := deps.client.Ask(question, deps.cfg.ForecastPeriods)
	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Ask failed"))
		}
		return fmt.Errorf("ask failed: %w", err)
	}
	if !rawOutput {
		spin.stopWithSuccess("Answered")
	}

	// Fetch the chart when the answer carries one; a failed download
	// still leaves the textual answer usable.
	chartPath := ""
	if result.HasImage() {
		if !rawOutput {
			spin = newSpinner("Downloading chart")
			spin.start()
		}

		dir, derr := config.GetChartsDir(deps.cfg)
		if derr == nil {
			chartPath, derr = deps.client.DownloadChart(*result.ImageURL, dir)
		}
		if !rawOutput {
			if derr != nil {
				spin.stopWithError()
				fmt.Fprintf(os.Stderr, "Warning: failed to download chart: %v\n", derr)
			} else {
				spin.stopWithSuccess("Chart saved")
			}
		}
	}

	// Every successful answer becomes a dashboard entry
	if !result.Empty() {
		deps.history.Record(question, result.Text, chartPath)
	}

	text := result.Text

	if rawOutput {
		if outputFlag != "" {
			if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Print(text)
		return nil
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Answer saved to %s\n", outputFlag)
		return nil
	}

	if deps.cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err == nil {
			fmt.Fprintln(os.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}

	printAnswer(text, chartPath)
	return nil
}

// printAnswer renders the answer as markdown sized to the terminal
func printAnswer(text, chartPath string) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w - 4
	}

	fmt.Println(answerLabelStyle.Render("⛴ Analyst"))

	rendered, err := render.MarkdownWithWidth(text, width-4)
	if err != nil {
		rendered = text
	}
	rendered = strings.TrimRight(rendered, "\n")

	if chartPath != "" {
		rendered += "\n\n" + chartPathStyle.Render("▨ chart: "+chartPath)
	}

	fmt.Println(answerBubbleStyle.Width(width).Render(rendered))
}

// formatErrorMessage formats an error with structured detail for the terminal
func formatErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorFailure).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %s: %s", fallback, apierrors.UserMessage(err, err.Error()))))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}
	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}
	if apierrors.IsNetworkError(err) {
		sb.WriteString(dimStyle.Render("\n  💡 Is the analysis service running? Check `shipchat status`"))
	}

	return sb.String()
}
