package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// login form: email and password
type LoginModel struct {
	inputs  []textinput.Model
	focused int
	busy    bool
	alert   string
	width   int
}

// returns a new login form
func NewLoginModel() *LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Prompt = "  "
	email.CharLimit = 0
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "  "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &LoginModel{inputs: []textinput.Model{email, password}}
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.cycleFocus(msg.String() == "tab" || msg.String() == "down")
			return m, nil

		case "enter":
			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.alert = "Email and password required"
				return m, nil
			}

			m.busy = true
			m.alert = ""
			return m, func() tea.Msg { return submitLoginMsg{email: email, password: password} }

		case "ctrl+r":
			return m, func() tea.Msg { return EnterRegisterMsg{} }
		}

	case LoginResultMsg:
		m.busy = false
		if msg.err != nil {
			// server error field shown inline under the form
			m.alert = msg.err.Error()
			m.inputs[1].SetValue("")
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// internal handoff so the root model, which owns the API client, runs
// the actual request
type submitLoginMsg struct {
	email    string
	password string
}

func (m *LoginModel) cycleFocus(forward bool) {
	m.inputs[m.focused].Blur()
	if forward {
		m.focused = (m.focused + 1) % len(m.inputs)
	} else {
		m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
	}
	m.inputs[m.focused].Focus()
}

func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("enter the magical realm"))
	b.WriteString("\n\n")

	for _, in := range m.inputs {
		b.WriteString(inputBoxStyle.Width(44).Render(in.View()))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("signing in..."))
	}

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[Enter: Sign in] [Tab: Next field] [Ctrl+R: Register] [Ctrl+C: Quit]"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
