package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/fraude/realm/internal/api"
)

const adminPageLimit = 10

// admin session browser: a paginated, read-only table over every
// user's sessions. The server decides who may see it; a 403 here is
// surfaced like any other server rejection.
type AdminModel struct {
	client    *api.Client
	pager     paginator.Model
	sessions  []api.Session
	page      int
	total     int
	loading   bool
	alert     string
	width     int
	height    int
}

// returns a new admin browser
func NewAdminModel(client *api.Client) *AdminModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(colorWhite).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(colorDarkGray).Render("•")

	return &AdminModel{client: client, pager: p, page: 1, loading: true}
}

func (m *AdminModel) Init() tea.Cmd {
	return adminPageCmd(m.client, m.page, adminPageLimit)
}

func (m *AdminModel) Update(msg tea.Msg) (*AdminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.page > 1 && !m.loading {
				m.page--
				m.loading = true
				return m, adminPageCmd(m.client, m.page, adminPageLimit)
			}
			return m, nil

		case "right", "l":
			if m.page < m.total && !m.loading {
				m.page++
				m.loading = true
				return m, adminPageCmd(m.client, m.page, adminPageLimit)
			}
			return m, nil
		}

	case AdminPageMsg:
		m.loading = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.alert = ""
		m.sessions = msg.page.Sessions
		m.page = msg.page.Page
		m.total = msg.page.TotalPages
		m.pager.SetTotalPages(max(1, m.total))
		m.pager.Page = max(0, m.page-1)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *AdminModel) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("ADMIN — ALL SESSIONS"))
	b.WriteString("\n\n")

	switch {
	case m.alert != "":
		b.WriteString(alertStyle.Render(m.alert))
	case m.loading:
		b.WriteString(infoStyle.Render("loading sessions..."))
	case len(m.sessions) == 0:
		b.WriteString(infoStyle.Render("no sessions"))
	default:
		for _, s := range m.sessions {
			active := "No"
			if s.IsActive {
				active = "Yes"
			}
			title := s.Title
			if title == "" {
				title = "N/A"
			}

			line := fmt.Sprintf("%s  %s  %s  active: %s",
				labelStyle.Render(s.ID),
				lipgloss.NewStyle().Foreground(colorWhite).Render(s.Username),
				sessionStyle.Render(truncate(title, 40)),
				active,
			)
			b.WriteString(line)
			b.WriteString("\n")
			b.WriteString(sessionDateStyle.Render(formatSessionDate(s.CreatedAt)))
			b.WriteString("\n\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.pager.View())
	b.WriteString("  ")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Page %d of %d", m.page, max(1, m.total))))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[←/→: Page] [Esc: Back to chat]"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
