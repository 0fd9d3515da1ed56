package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mbrandao/shipchat/internal/api"
	"github.com/mbrandao/shipchat/internal/dashboard"
	apierrors "github.com/mbrandao/shipchat/internal/errors"
	"github.com/mbrandao/shipchat/internal/models"
	"github.com/mbrandao/shipchat/internal/render"
	"github.com/mbrandao/shipchat/internal/storage"
)

// Generic fallback texts when the server provides no detail
const (
	genericAskError    = "Something went wrong answering that question. Please try again."
	genericUploadError = "Upload failed. Please check the file and try again."
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	uploadDoneMsg struct {
		result *models.UploadResult
		err    error
	}
	askDoneMsg struct {
		question  string
		result    *models.AskResult
		imagePath string
		err       error
	}
)

// Model represents the chat TUI state
type Model struct {
	client    api.ClientInterface
	history   *dashboard.History
	store     storage.Store
	chartsDir string
	periods   int

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	messages       []models.Message
	uploading      bool
	asking         bool
	ready          bool
	err            error
	animationFrame int

	// Dashboard selection state
	selecting bool
	selCursor int
	selFilter string

	// Replay state: when activeID is set the viewport shows the saved
	// entry instead of the live conversation. A missing id is a valid,
	// non-fatal state.
	activeID      string
	activeEntry   dashboard.Entry
	activeMissing bool

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model. The persisted theme is
// applied before any styles are used.
func NewChatModel(client api.ClientInterface, history *dashboard.History, store storage.Store, chartsDir string, periods int) Model {
	if theme, ok := store.Get(storage.KeyTheme); ok {
		render.SetTheme(theme)
	}
	UpdateTheme()

	ta := textarea.New()
	ta.Placeholder = "Ask about your shipment data..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:    client,
		history:   history,
		store:     store,
		chartsDir: chartsDir,
		periods:   periods,
		textarea:  ta,
		spinner:   s,
		messages:  []models.Message{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// busy reports whether a request is in flight.
func (m Model) busy() bool {
	return m.uploading || m.asking
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	// Request completions and progress ticks are handled before the
	// selector overlay gets a chance to consume them; a completion that
	// arrives while the overlay is open must still clear the busy flag
	// and record its outcome.
	switch msg := msg.(type) {
	case uploadDoneMsg:
		m.uploading = false
		m.appendUploadResult(msg)
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, nil

	case askDoneMsg:
		m.asking = false
		m.appendAskResult(msg)
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case animationTickMsg:
		if m.busy() {
			m.animationFrame++
			return m, animationTick()
		}
		return m, nil
	}

	if m.selecting {
		return m.updateSelection(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+t":
			m.toggleTheme()
			m.updateViewport()

		case "esc":
			if m.activeID != "" {
				// Leave replay mode, back to the live conversation
				m.clearReplay()
				m.updateViewport()
			} else if !m.busy() {
				return m, tea.Quit
			}

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				break
			}

			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			if input == "/dashboards" {
				m.textarea.Reset()
				m.clearReplay()
				m.selecting = true
				m.selCursor = 0
				m.selFilter = ""
				break
			}

			if input == "/theme" {
				m.textarea.Reset()
				m.toggleTheme()
				m.updateViewport()
				break
			}

			if path, ok := strings.CutPrefix(input, "/upload "); ok {
				if m.uploading {
					break
				}
				m.textarea.Reset()
				m.clearReplay()
				m.uploading = true
				m.err = nil
				m.animationFrame = 0
				return m, tea.Batch(
					m.sendUpload(strings.TrimSpace(path)),
					m.spinner.Tick,
					animationTick(),
				)
			}

			if m.asking {
				break
			}

			// Optimistic user message; kept even if the request fails
			m.clearReplay()
			m.messages = append(m.messages, models.Message{
				ID:   uuid.New().String(),
				Role: models.RoleUser,
				Text: input,
			})
			m.updateViewport()
			m.viewport.GotoBottom()

			m.asking = true
			m.err = nil
			m.animationFrame = 0
			m.textarea.Reset()

			return m, tea.Batch(
				m.sendAsk(input),
				m.spinner.Tick,
				animationTick(),
			)
		}

	}

	// Only pass KeyMsg to the textarea to prevent escape sequence leaks
	if !m.asking {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// toggleTheme flips light/dark, rebuilds styles and persists the choice.
func (m *Model) toggleTheme() {
	name := render.ToggleTheme()
	UpdateTheme()
	m.store.Set(storage.KeyTheme, name)
}

// clearReplay returns the viewport to the live conversation.
func (m *Model) clearReplay() {
	m.activeID = ""
	m.activeEntry = dashboard.Entry{}
	m.activeMissing = false
}

// selectDashboard switches the main view to replay the entry with the
// given id. A missing id yields the "not found" display state.
func (m *Model) selectDashboard(id string) {
	m.activeID = id
	entry, err := m.history.Find(id)
	if err != nil {
		m.activeMissing = true
		m.activeEntry = dashboard.Entry{}
	} else {
		m.activeMissing = false
		m.activeEntry = entry
	}
}

// appendUploadResult converts an upload outcome into an assistant message.
func (m *Model) appendUploadResult(msg uploadDoneMsg) {
	text := ""
	if msg.err != nil {
		text = apierrors.UserMessage(msg.err, genericUploadError)
	} else {
		text = msg.result.Summary()
	}
	m.messages = append(m.messages, models.Message{
		ID:   uuid.New().String(),
		Role: models.RoleAssistant,
		Text: text,
	})
}

// appendAskResult converts an ask outcome into an assistant message and,
// on success, records a dashboard entry. Failures record nothing.
func (m *Model) appendAskResult(msg askDoneMsg) {
	if msg.err != nil {
		m.messages = append(m.messages, models.Message{
			ID:   uuid.New().String(),
			Role: models.RoleAssistant,
			Text: apierrors.UserMessage(msg.err, genericAskError),
		})
		return
	}

	m.messages = append(m.messages, models.Message{
		ID:        uuid.New().String(),
		Role:      models.RoleAssistant,
		Text:      msg.result.Text,
		ImagePath: msg.imagePath,
	})

	if !msg.result.Empty() {
		m.history.Record(msg.question, msg.result.Text, msg.imagePath)
	}
}

// sendUpload creates a command that uploads a CSV file.
func (m Model) sendUpload(path string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.UploadFile(path)
		return uploadDoneMsg{result: result, err: err}
	}
}

// sendAsk creates a command that submits a question. When the answer
// carries a chart, it is downloaded into the local charts directory;
// a failed download keeps the textual answer.
func (m Model) sendAsk(question string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Ask(question, m.periods)
		if err != nil {
			return askDoneMsg{question: question, err: err}
		}

		imagePath := ""
		if result.HasImage() {
			if p, derr := m.client.DownloadChart(*result.ImageURL, m.chartsDir); derr == nil {
				imagePath = p
			}
		}
		return askDoneMsg{question: question, result: result, imagePath: imagePath}
	}
}

// View renders the TUI through the fallible render wrapper. A render
// failure is sticky: the fallback stays up for the rest of the session.
func (m Model) View() string {
	return safeRender(m.renderView)
}

// renderView builds the full screen layout.
func (m Model) renderView() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.selecting {
		return m.renderSelector()
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("⛴ Shipment Analysis"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.BaseURL()),
	}
	if m.activeID != "" {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			menuValueStyle.Render("replaying dashboard"),
		)
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	header := headerStyle.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	// Messages area
	var messagesContent string
	if m.activeID == "" && len(m.messages) == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	// Input area. Only the in-flight operation's control is disabled:
	// an upload keeps the question input usable.
	var inputContent string
	if m.asking {
		inputContent = m.renderLoadingAnimation()
	} else {
		label := inputLabelStyle.Render("You")
		if m.uploading {
			label = lipgloss.JoinHorizontal(lipgloss.Center, label, hintStyle.Render("  "+m.renderLoadingAnimation()))
		}
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			label,
			m.textarea.View(),
		)
	}

	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("⚠ Error: %v", m.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("⛴")
	title := welcomeTitleStyle.Width(width).Render("Shipment Analysis Chat")
	subtitle := welcomeStyle.Width(width).Render("Upload a CSV with /upload <path>, then ask questions about it")
	hints := welcomeStyle.Width(width).Render("/dashboards browses saved answers  •  ctrl+t toggles the theme")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		hints,
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)

		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	label := " Analyzing "
	if m.uploading {
		label = " Uploading CSV "
	}
	text := lipgloss.NewStyle().Foreground(colorText).Render(label)

	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	return fmt.Sprintf("%s %s %s %s", spin, bar.String(), text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Ask"},
		{"Ctrl+T", "Theme"},
		{"↑↓", "Scroll"},
	}
	if m.activeID != "" {
		shortcuts = append(shortcuts, struct{ key, desc string }{"Esc", "Back"})
	} else {
		shortcuts = append(shortcuts, struct{ key, desc string }{"Esc", "Quit"})
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content: either the replayed
// dashboard entry or the live conversation.
func (m *Model) updateViewport() {
	if m.activeID != "" {
		m.viewport.SetContent(m.renderReplay())
		m.viewport.GotoTop()
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.messages {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("⛴ Analyst")
			content.WriteString(label + "\n")

			rendered, err := render.MarkdownWithWidth(msg.Text, bubbleWidth-4)
			if err != nil {
				rendered = msg.Text
			}
			rendered = strings.TrimRight(rendered, "\n")

			if msg.ImagePath != "" {
				chart := chartLinkStyle.Render("▨ chart: " + msg.ImagePath)
				rendered = rendered + "\n\n" + chart
			}

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderReplay renders a saved dashboard entry, or the not-found notice
// when the entry has been evicted.
func (m Model) renderReplay() string {
	bubbleWidth := m.viewport.Width - 6

	if m.activeMissing {
		return hintStyle.Render("  Dashboard not found. It may have been evicted from history.")
	}

	var content strings.Builder

	if m.activeEntry.Question != "" {
		label := userLabelStyle.Render("⬤ You")
		bubble := userBubbleStyle.Width(bubbleWidth).Render(m.activeEntry.Question)
		content.WriteString(label + "\n" + bubble + "\n\n")
	}

	label := assistantLabelStyle.Render("⛴ Analyst")
	rendered, err := render.MarkdownWithWidth(m.activeEntry.Answer, bubbleWidth-4)
	if err != nil {
		rendered = m.activeEntry.Answer
	}
	rendered = strings.TrimRight(rendered, "\n")

	if m.activeEntry.Image != "" {
		chart := chartLinkStyle.Render("▨ chart: " + m.activeEntry.Image)
		rendered = rendered + "\n\n" + chart
	}

	bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
	content.WriteString(label + "\n" + bubble + "\n")

	content.WriteString("\n" + hintStyle.Render(fmt.Sprintf("  saved %s", m.activeEntry.CreatedAt.Format("Jan 2 15:04"))))

	return content.String()
}

// RunChat starts the chat TUI
func RunChat(client api.ClientInterface, history *dashboard.History, store storage.Store, chartsDir string, periods int) error {
	m := NewChatModel(client, history, store, chartsDir, periods)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
