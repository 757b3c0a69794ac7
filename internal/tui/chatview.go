package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/fraude/realm/internal/api"
	"codeberg.org/fraude/realm/internal/chat"
)

const sidebarWidth = 32

// chat page: session sidebar, conversation viewport, input line
type ChatModel struct {
	client    *api.Client
	state     chat.State
	theme     Theme
	saveTheme func(name string)

	input     textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	formatter *formatter

	width  int
	height int
	ready  bool

	// one submission in flight at a time; the input stays disabled
	// until the outcome lands
	sending    bool
	sendEvents chan chat.Event

	selected      int
	confirmDelete string // session id awaiting y/n, empty when none
	status        string // status-line alert for list/create/delete failures
}

// returns a new chat page
func NewChatModel(client *api.Client, theme Theme, saveTheme func(string)) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = theme.Placeholder
	ti.Focus()
	ti.CharLimit = 0
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return &ChatModel{
		client:    client,
		theme:     theme,
		saveTheme: saveTheme,
		input:     ti,
		spinner:   sp,
		formatter: newFormatter(72),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(loadSessionsCmd(m.client), m.spinner.Tick)
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-sidebarWidth-8)

		vpWidth := max(20, msg.Width-sidebarWidth-6)
		vpHeight := max(5, msg.Height-7)
		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.formatter = newFormatter(max(20, vpWidth-4))
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.sending {
			m.refreshViewport()
		}
		return m, cmd

	case SessionsLoadedMsg:
		if msg.err != nil {
			if cmd, expired := m.authCheck(msg.err); expired {
				return m, cmd
			}
			// listing failures leave the prior list untouched
			m.status = msg.err.Error()
			return m, nil
		}
		m.state.ApplySessions(msg.sessions)
		m.clampSelection()
		return m, nil

	case SessionCreatedMsg:
		if msg.err != nil {
			if cmd, expired := m.authCheck(msg.err); expired {
				return m, cmd
			}
			m.status = msg.err.Error()
			return m, nil
		}
		m.state.Select(msg.session.ID, msg.session.Title)
		m.refreshViewport()
		return m, loadSessionsCmd(m.client)

	case SessionDeletedMsg:
		if msg.err != nil {
			if cmd, expired := m.authCheck(msg.err); expired {
				return m, cmd
			}
			// surfaced as an alert; the list stays as it was
			m.status = msg.err.Error()
			return m, nil
		}
		if m.state.ApplyDeletion(msg.id) {
			m.refreshViewport()
		}
		return m, loadSessionsCmd(m.client)

	case MessagesLoadedMsg:
		if msg.err != nil {
			if cmd, expired := m.authCheck(msg.err); expired {
				return m, cmd
			}
			m.status = msg.err.Error()
			return m, nil
		}
		if msg.sessionID != m.state.CurrentID {
			// stale fetch for a session no longer selected
			return m, nil
		}
		m.state.Entries = nil
		for _, stored := range msg.messages {
			kind := chat.EntryBot
			if stored.Sender == "user" {
				kind = chat.EntryUser
			}
			m.state.Append(chat.Entry{Kind: kind, Content: stored.Content, Mode: stored.Mode})
		}
		m.refreshViewport()
		return m, nil

	case SendEventMsg:
		chat.Apply(&m.state, msg.event)
		m.refreshViewport()

		var cmds []tea.Cmd
		if _, ok := msg.event.(chat.SessionEnsured); ok {
			// the implicit session exists now; re-list right away so
			// the sidebar picks it up
			cmds = append(cmds, loadSessionsCmd(m.client))
		}
		if m.sendEvents != nil {
			cmds = append(cmds, waitSendEvent(m.sendEvents))
		}
		return m, tea.Batch(cmds...)

	case SendOutcomeMsg:
		// the channel is closed before the outcome is emitted, so any
		// effects still queued can be drained synchronously
		for ev := range m.sendEvents {
			chat.Apply(&m.state, ev)
		}
		m.sendEvents = nil
		m.sending = false

		// guaranteed cleanup on every exit path
		m.input.SetValue("")
		m.input.Focus()

		if msg.outcome.NewTitle != "" {
			m.state.Title = msg.outcome.NewTitle
		}
		m.refreshViewport()

		if cmd, expired := m.authCheck(msg.outcome.Err); expired {
			return m, cmd
		}

		if msg.outcome.RefreshSessions {
			// fire and forget: the list reflects the latest fetch
			return m, loadSessionsCmd(m.client)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) updateKey(msg tea.KeyMsg) (*ChatModel, tea.Cmd) {
	// a pending delete confirmation captures the next key
	if m.confirmDelete != "" {
		id := m.confirmDelete
		m.confirmDelete = ""
		m.status = ""
		if msg.String() == "y" {
			return m, deleteSessionCmd(m.client, id)
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if m.sending {
			return m, nil
		}
		content := strings.TrimSpace(m.input.Value())
		if content == "" {
			return m, nil
		}

		m.input.SetValue("")
		m.input.Blur()
		m.sending = true
		m.status = ""

		orch := chat.NewOrchestrator(m.client, m.theme.Phrasing)
		m.sendEvents = make(chan chat.Event, 64)
		req := chat.SendRequest{
			Content:   content,
			SessionID: m.state.CurrentID,
			Mode:      m.theme.Name,
		}
		return m, submitCmd(orch, req, m.sendEvents)

	case "ctrl+n":
		title := "New Chat " + time.Now().Format("1/2/2006 3:04 PM")
		return m, createSessionCmd(m.client, title)

	case "ctrl+t":
		m.theme = nextTheme(m.theme)
		m.input.Placeholder = m.theme.Placeholder
		m.spinner.Style = lipgloss.NewStyle().Foreground(m.theme.Accent)
		if m.saveTheme != nil {
			m.saveTheme(m.theme.Name)
		}
		m.refreshViewport()
		return m, nil

	case "ctrl+k":
		if m.selected > 0 {
			m.selected--
			return m, m.selectSession()
		}
		return m, nil

	case "ctrl+j":
		if m.selected < len(m.state.Sessions)-1 {
			m.selected++
			return m, m.selectSession()
		}
		return m, nil

	case "ctrl+x":
		if s := m.selectedSession(); s != nil {
			m.confirmDelete = s.ID
			m.status = "Delete this chat session? (y/n)"
		}
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// loads the highlighted session's stored messages
func (m *ChatModel) selectSession() tea.Cmd {
	s := m.selectedSession()
	if s == nil {
		return nil
	}

	title := s.Title
	if title == "" {
		title = "Default Session"
	}

	m.state.Select(s.ID, title)
	m.refreshViewport()
	return loadMessagesCmd(m.client, s.ID)
}

func (m *ChatModel) selectedSession() *api.Session {
	if m.selected < 0 || m.selected >= len(m.state.Sessions) {
		return nil
	}
	return &m.state.Sessions[m.selected]
}

func (m *ChatModel) clampSelection() {
	if m.selected >= len(m.state.Sessions) {
		m.selected = len(m.state.Sessions) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// routes credential rejections to the login surface
func (m *ChatModel) authCheck(err error) (tea.Cmd, bool) {
	if err == nil || !api.IsAuthError(err) {
		return nil, false
	}

	return func() tea.Msg { return AuthExpiredMsg{} }, true
}

// rebuilds the viewport from the entry sequence
func (m *ChatModel) refreshViewport() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, e := range m.state.Entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if e.Kind == chat.EntryPending {
			b.WriteString(m.spinner.View() + " " + pendingStyle.Render(e.Content))
			continue
		}
		b.WriteString(m.formatter.formatEntry(e, m.theme))
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *ChatModel) View() string {
	if !m.ready {
		return "\n  " + infoStyle.Render("summoning the realm...")
	}

	title := m.state.Title
	if title == "" {
		title = "Select a chat"
	}

	sidebar := m.viewSidebar()

	header := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render(m.theme.Title) +
		"  " + infoStyle.Render(title)

	inputBox := inputBoxStyle.
		Width(max(20, m.width-sidebarWidth-6)).
		Render(m.input.View())

	statusLine := ""
	if m.status != "" {
		statusLine = alertStyle.Render(m.status)
	}

	help := helpStyle.Render("[Enter: Send] [Ctrl+N: New] [Ctrl+J/K: Pick] [Ctrl+X: Delete] [Ctrl+T: Theme] [Ctrl+G: Admin] [Ctrl+O: Logout] [Ctrl+C: Quit]")

	main := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewport.View(),
		inputBox,
		statusLine,
		help,
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
}

// renders the session list column
func (m *ChatModel) viewSidebar() string {
	var b strings.Builder

	b.WriteString(labelStyle.Bold(true).Render("Chats"))
	b.WriteString("\n\n")

	if len(m.state.Sessions) == 0 {
		b.WriteString(infoStyle.Render("no sessions yet"))
	}

	for i, s := range m.state.Sessions {
		title := s.Title
		if title == "" {
			title = "Default Session"
		}

		style := sessionStyle
		if i == m.selected {
			style = sessionSelectedStyle
		}
		if s.ID == m.state.CurrentID {
			title = "● " + title
		}

		b.WriteString(style.Render(truncate(title, sidebarWidth-4)))
		b.WriteString("\n")
		b.WriteString(sessionDateStyle.Render(formatSessionDate(s.CreatedAt)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(max(5, m.height-2)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(colorDarkGray).
		Render(b.String())
}
