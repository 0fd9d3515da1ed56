package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbrandao/shipchat/internal/dashboard"
	"github.com/mbrandao/shipchat/internal/render"
	"github.com/mbrandao/shipchat/internal/storage"
)

// browser modes
type browserMode int

const (
	modeList browserMode = iota
	modeReplay
)

// DashboardBrowserModel is the read-only dashboard history browser used
// by the dashboards command. Entries can be replayed but not edited or
// deleted.
type DashboardBrowserModel struct {
	history *dashboard.History

	// Data
	entries []dashboard.Entry

	// Navigation
	cursor int
	mode   browserMode

	// Replay state
	active  dashboard.Entry
	missing bool

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewDashboardBrowserModel creates a browser over the persisted history.
// The persisted theme is applied before styles are used.
func NewDashboardBrowserModel(history *dashboard.History, store storage.Store) DashboardBrowserModel {
	if theme, ok := store.Get(storage.KeyTheme); ok {
		render.SetTheme(theme)
	}
	UpdateTheme()

	return DashboardBrowserModel{
		history: history,
		entries: history.List(),
		mode:    modeList,
	}
}

// Init initializes the model
func (m DashboardBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m DashboardBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc", "q":
			if m.mode == modeReplay {
				m.mode = modeList
				m.missing = false
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			if m.mode == modeList && len(m.entries) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.entries) - 1
				}
			}

		case "down", "j":
			if m.mode == modeList && len(m.entries) > 0 {
				m.cursor++
				if m.cursor >= len(m.entries) {
					m.cursor = 0
				}
			}

		case "home", "g":
			m.cursor = 0

		case "end", "G":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
			}

		case "enter":
			if m.mode == modeList && len(m.entries) > 0 && m.cursor < len(m.entries) {
				m.replay(m.entries[m.cursor].ID)
			}
		}
	}

	return m, nil
}

// replay switches to the detail view for the entry with the given id.
// The list snapshot can be stale, so a missing id is tolerated.
func (m *DashboardBrowserModel) replay(id string) {
	m.mode = modeReplay
	entry, err := m.history.Find(id)
	if err != nil {
		m.missing = true
		m.active = dashboard.Entry{}
		return
	}
	m.missing = false
	m.active = entry
}

// View renders the TUI through the fallible render wrapper.
func (m DashboardBrowserModel) View() string {
	return safeRender(m.renderView)
}

func (m DashboardBrowserModel) renderView() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	header := headerStyle.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			titleStyle.Render("▦ Dashboards"),
			hintStyle.Render("  •  "),
			subtitleStyle.Render(fmt.Sprintf("%d saved", len(m.entries))),
		),
	)
	sections = append(sections, header)

	if m.mode == modeReplay {
		sections = append(sections, m.renderDetail(contentWidth))
	} else {
		sections = append(sections, m.renderEntryList(contentWidth))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderEntryList renders the list of saved dashboards
func (m DashboardBrowserModel) renderEntryList(width int) string {
	var items []string

	if len(m.entries) == 0 {
		items = append(items, hintStyle.Render("  No saved dashboards"))
	} else {
		availableHeight := m.height - 12
		maxItems := availableHeight
		if maxItems < 5 {
			maxItems = 5
		}

		scrollOffset := 0
		if m.cursor >= maxItems {
			scrollOffset = m.cursor - maxItems + 1
		}

		endIdx := scrollOffset + maxItems
		if endIdx > len(m.entries) {
			endIdx = len(m.entries)
		}

		if scrollOffset > 0 {
			items = append(items, hintStyle.Render("  ..."))
		}

		for i := scrollOffset; i < endIdx; i++ {
			e := m.entries[i]

			cursor := "  "
			style := menuItemStyle
			if i == m.cursor {
				cursor = menuCursorStyle.Render("> ")
				style = menuSelectedStyle
			}

			title := e.Question
			if title == "" {
				title = firstLine(e.Answer)
			}
			if width > 40 {
				title = truncateTitle(title, width-30)
			}

			line := fmt.Sprintf("%s%s", cursor, style.Render(title))
			if e.Image != "" {
				line += menuValueStyle.Render(" ▨")
			}
			line += hintStyle.Render(" - " + relativeTime(e.CreatedAt))
			items = append(items, line)
		}

		if endIdx < len(m.entries) {
			items = append(items, hintStyle.Render("  ..."))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return menuPanelStyle.Width(width).Render(content)
}

// renderDetail renders the replayed question, answer and chart reference
func (m DashboardBrowserModel) renderDetail(width int) string {
	if m.missing {
		return menuPanelStyle.Width(width).Render(
			hintStyle.Render("  Dashboard not found. It may have been evicted from history."),
		)
	}

	bubbleWidth := width - 8
	var content strings.Builder

	if m.active.Question != "" {
		content.WriteString(userLabelStyle.Render("⬤ You") + "\n")
		content.WriteString(userBubbleStyle.Width(bubbleWidth).Render(m.active.Question) + "\n\n")
	}

	rendered, err := render.MarkdownWithWidth(m.active.Answer, bubbleWidth-4)
	if err != nil {
		rendered = m.active.Answer
	}
	rendered = strings.TrimRight(rendered, "\n")

	if m.active.Image != "" {
		rendered += "\n\n" + chartLinkStyle.Render("▨ chart: "+m.active.Image)
	}

	content.WriteString(assistantLabelStyle.Render("⛴ Analyst") + "\n")
	content.WriteString(assistantBubbleStyle.Width(bubbleWidth).Render(rendered) + "\n\n")
	content.WriteString(hintStyle.Render("saved " + m.active.CreatedAt.Format("Jan 2 2006 15:04")))

	return menuPanelStyle.Width(width).Render(content.String())
}

// renderStatusBar renders the bottom status bar
func (m DashboardBrowserModel) renderStatusBar(width int) string {
	var shortcuts []string
	if m.mode == modeReplay {
		shortcuts = []string{
			statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Back"),
		}
	} else {
		shortcuts = []string{
			statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
			statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Replay"),
			statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Quit"),
		}
	}

	bar := strings.Join(shortcuts, "  │  ")
	return menuStatusStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// RunDashboardBrowser starts the dashboard browser TUI
func RunDashboardBrowser(history *dashboard.History, store storage.Store) error {
	m := NewDashboardBrowserModel(history, store)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
