package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// registration form: email, username, password, confirmation
type RegisterModel struct {
	inputs  []textinput.Model
	focused int
	busy    bool
	alert   string
	notice  string
}

// returns a new registration form
func NewRegisterModel() *RegisterModel {
	fields := []struct {
		placeholder string
		secret      bool
	}{
		{"email", false},
		{"username", false},
		{"password", true},
		{"confirm password", true},
	}

	inputs := make([]textinput.Model, 0, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Prompt = "  "
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		if i == 0 {
			in.Focus()
		}
		inputs = append(inputs, in)
	}

	return &RegisterModel{inputs: inputs}
}

// internal handoff to the root model
type submitRegisterMsg struct {
	email    string
	username string
	password string
	confirm  string
}

func (m *RegisterModel) Update(msg tea.Msg) (*RegisterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			m.cycleFocus(true)
			return m, nil

		case "shift+tab", "up":
			m.cycleFocus(false)
			return m, nil

		case "enter":
			email := strings.TrimSpace(m.inputs[0].Value())
			username := strings.TrimSpace(m.inputs[1].Value())
			password := m.inputs[2].Value()
			confirm := m.inputs[3].Value()

			if email == "" || username == "" || password == "" {
				m.alert = "Email, username, and password required"
				return m, nil
			}

			// checked locally before any request goes out
			if password != confirm {
				m.alert = "Passwords do not match."
				return m, nil
			}

			m.busy = true
			m.alert = ""
			return m, func() tea.Msg {
				return submitRegisterMsg{email: email, username: username, password: password, confirm: confirm}
			}

		case "esc":
			return m, func() tea.Msg { return EnterLoginMsg{} }
		}

	case RegisterResultMsg:
		m.busy = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.notice = "Registration successful! You can now log in."
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *RegisterModel) cycleFocus(forward bool) {
	m.inputs[m.focused].Blur()
	if forward {
		m.focused = (m.focused + 1) % len(m.inputs)
	} else {
		m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
	}
	m.inputs[m.focused].Focus()
}

func (m *RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("join the magical realm"))
	b.WriteString("\n\n")

	for _, in := range m.inputs {
		b.WriteString(inputBoxStyle.Width(44).Render(in.View()))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("creating account..."))
	}

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(m.notice + " Press Esc to sign in."))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[Enter: Create account] [Tab: Next field] [Esc: Back to login]"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
