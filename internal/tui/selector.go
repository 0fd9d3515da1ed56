package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbrandao/shipchat/internal/dashboard"
)

// updateSelection handles updates while the dashboard selector is open
func (m Model) updateSelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.selecting = false
			m.selCursor = 0
			m.selFilter = ""

		case "up", "k":
			if len(m.filteredEntries()) > 0 {
				m.selCursor--
				if m.selCursor < 0 {
					m.selCursor = len(m.filteredEntries()) - 1
				}
			}

		case "down", "j":
			if len(m.filteredEntries()) > 0 {
				m.selCursor++
				if m.selCursor >= len(m.filteredEntries()) {
					m.selCursor = 0
				}
			}

		case "enter":
			filtered := m.filteredEntries()
			if len(filtered) > 0 && m.selCursor < len(filtered) {
				m.selectDashboard(filtered[m.selCursor].ID)
				m.selecting = false
				m.selCursor = 0
				m.selFilter = ""
				m.updateViewport()
			}

		case "backspace":
			if len(m.selFilter) > 0 {
				m.selFilter = m.selFilter[:len(m.selFilter)-1]
				m.selCursor = 0
			}

		default:
			// Printable characters narrow the filter
			if len(msg.String()) == 1 {
				r := []rune(msg.String())[0]
				if r >= ' ' && r <= '~' {
					m.selFilter += msg.String()
					m.selCursor = 0
				}
			}
		}
	}

	return m, nil
}

// filteredEntries returns dashboard entries matching the current filter
func (m Model) filteredEntries() []dashboard.Entry {
	entries := m.history.List()
	if m.selFilter == "" {
		return entries
	}

	filter := strings.ToLower(m.selFilter)
	var filtered []dashboard.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Question), filter) ||
			strings.Contains(strings.ToLower(e.Answer), filter) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// renderSelector renders the dashboard selection overlay
func (m Model) renderSelector() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	var content strings.Builder

	content.WriteString(menuTitleStyle.Render("▦ Saved Dashboards"))
	content.WriteString("\n\n")

	if m.selFilter != "" {
		filterLine := inputLabelStyle.Render("⌕ ") + m.selFilter + "_"
		content.WriteString(filterLine)
		content.WriteString("\n\n")
	}

	entries := m.history.List()
	if len(entries) == 0 {
		content.WriteString(hintStyle.Render("  No saved dashboards yet"))
	} else {
		filtered := m.filteredEntries()
		if len(filtered) == 0 {
			content.WriteString(hintStyle.Render("  No dashboards match filter"))
		} else {
			maxItems := 8
			startIdx := 0
			if m.selCursor >= maxItems {
				startIdx = m.selCursor - maxItems + 1
			}
			endIdx := startIdx + maxItems
			if endIdx > len(filtered) {
				endIdx = len(filtered)
			}

			if startIdx > 0 {
				content.WriteString(hintStyle.Render("  ↑ more above"))
				content.WriteString("\n")
			}

			for i := startIdx; i < endIdx; i++ {
				content.WriteString(m.renderSelectorItem(filtered[i], i == m.selCursor, width))
				content.WriteString("\n")
			}

			if endIdx < len(filtered) {
				content.WriteString(hintStyle.Render("  ↓ more below"))
				content.WriteString("\n")
			}
		}
	}

	content.WriteString("\n")

	shortcuts := []string{
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
		statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Replay"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Cancel"),
	}
	content.WriteString(strings.Join(shortcuts, "  │  "))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(content.String())
}

// renderSelectorItem renders one dashboard entry line
func (m Model) renderSelectorItem(e dashboard.Entry, selected bool, width int) string {
	cursor := "  "
	style := menuItemStyle
	if selected {
		cursor = menuCursorStyle.Render("▸ ")
		style = menuSelectedStyle
	}

	title := e.Question
	if title == "" {
		title = firstLine(e.Answer)
	}
	if maxTitle := width - 24; maxTitle > 10 {
		title = truncateTitle(title, maxTitle)
	}

	line := fmt.Sprintf("%s%s", cursor, style.Render(title))
	if e.Image != "" {
		line += menuValueStyle.Render(" ▨")
	}
	line += hintStyle.Render(" - " + relativeTime(e.CreatedAt))

	return line
}

// truncateTitle shortens text to max characters, slicing on runes so
// multibyte titles are never cut mid-sequence.
func truncateTitle(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}

// firstLine returns the first non-empty line of text
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return text
}

// relativeTime formats a timestamp relative to now
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}
