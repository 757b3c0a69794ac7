package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/fraude/realm/internal/api"
	"codeberg.org/fraude/realm/internal/auth"
	"codeberg.org/fraude/realm/internal/config"
	"codeberg.org/fraude/realm/internal/logger"
)

// main TUI application model
type Model struct {
	state AppState

	client *api.Client
	creds  *auth.Store
	guard  *auth.Guard
	states *config.Store

	login    *LoginModel
	register *RegisterModel
	chat     *ChatModel
	admin    *AdminModel

	width  int
	height int
}

// assembles the application. The guard runs before anything else: with
// no usable credential the protected views never initialize.
func NewApp(client *api.Client, creds *auth.Store, guard *auth.Guard, states *config.Store) *Model {
	m := &Model{
		state:    StateLogin,
		client:   client,
		creds:    creds,
		guard:    guard,
		states:   states,
		login:    NewLoginModel(),
		register: NewRegisterModel(),
	}

	if guard.Check() == auth.StatusOK {
		m.state = StateChat
		m.chat = m.newChat()
	}

	return m
}

// builds a chat page with the persisted theme
func (m *Model) newChat() *ChatModel {
	state, _ := m.states.Load()
	theme := themeByName(state.Theme)

	return NewChatModel(m.client, theme, m.persistTheme)
}

func (m *Model) persistTheme(name string) {
	state, err := m.states.Load()
	if err != nil {
		return
	}
	state.Theme = name
	if err := m.states.Save(state); err != nil {
		logger.ErrorErr(err, "failed to persist theme selection")
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{authTickCmd()}

	if m.state == StateChat {
		cmds = append(cmds, m.chat.Init())
	}

	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+g":
			if m.state == StateChat && !m.chat.sending {
				m.state = StateAdmin
				m.admin = NewAdminModel(m.client)
				return m, m.admin.Init()
			}

		case "esc":
			if m.state == StateAdmin {
				m.state = StateChat
				return m, nil
			}

		case "ctrl+o":
			if m.state == StateChat || m.state == StateAdmin {
				return m, logoutCmd(m.client, m.guard)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// every view tracks the window
		m.login, _ = m.login.Update(msg)
		if m.chat != nil {
			m.chat, _ = m.chat.Update(msg)
		}
		if m.admin != nil {
			m.admin, _ = m.admin.Update(msg)
		}
		return m, nil

	case AuthTickMsg:
		// the credential can vanish or expire while the app is open
		// (another process logging out, token past its exp claim)
		if m.state != StateLogin && m.state != StateRegister && m.guard.Check() != auth.StatusOK {
			logger.Info("credential expired during session, returning to login")
			return m, tea.Batch(authTickCmd(), func() tea.Msg { return AuthExpiredMsg{} })
		}
		return m, authTickCmd()

	case AuthExpiredMsg:
		m.guard.Logout(nil, nil) // local wipe only; the server already said no
		return m.toLogin()

	case LoggedOutMsg:
		return m.toLogin()

	case EnterRegisterMsg:
		m.state = StateRegister
		m.register = NewRegisterModel()
		return m, nil

	case EnterLoginMsg:
		return m.toLogin()

	case submitLoginMsg:
		return m, loginCmd(m.client, msg.email, msg.password)

	case submitRegisterMsg:
		return m, registerCmd(m.client, msg.email, msg.username, msg.password, msg.confirm)

	case LoginResultMsg:
		if msg.err == nil {
			if err := m.creds.SetToken(msg.token); err != nil {
				logger.ErrorErr(err, "failed to persist credential")
			}
			m.state = StateChat
			m.chat = m.newChat()
			return m, m.chat.Init()
		}
		return m.updateLogin(msg)

	case RegisterResultMsg:
		return m.updateRegister(msg)
	}

	switch m.state {
	case StateLogin:
		return m.updateLogin(msg)

	case StateRegister:
		return m.updateRegister(msg)

	case StateChat:
		return m.updateChat(msg)

	case StateAdmin:
		return m.updateAdmin(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	switch m.state {
	case StateLogin:
		return m.login.View()

	case StateRegister:
		return m.register.View()

	case StateChat:
		return m.chat.View()

	case StateAdmin:
		return m.admin.View()

	default:
		return "Unknown state"
	}
}

// routes back to a fresh login form
func (m *Model) toLogin() (tea.Model, tea.Cmd) {
	m.state = StateLogin
	m.login = NewLoginModel()
	m.chat = nil
	m.admin = nil
	return m, nil
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

func (m *Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.register, cmd = m.register.Update(msg)
	return m, cmd
}

func (m *Model) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m *Model) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.admin, cmd = m.admin.Update(msg)
	return m, cmd
}
