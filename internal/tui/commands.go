package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/fraude/realm/internal/api"
	"codeberg.org/fraude/realm/internal/auth"
	"codeberg.org/fraude/realm/internal/chat"
)

// ceiling for the quick list/create/delete calls; the send path manages
// its own per-attempt deadline
const uiRequestTimeout = 15 * time.Second

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		token, err := client.Login(ctx, email, password)
		return LoginResultMsg{token: token, err: err}
	}
}

func registerCmd(client *api.Client, email, username, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		err := client.Register(ctx, email, username, password, confirm)
		return RegisterResultMsg{err: err}
	}
}

func logoutCmd(client *api.Client, guard *auth.Guard) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		guard.Logout(ctx, client.Logout)
		return LoggedOutMsg{}
	}
}

func loadSessionsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		sessions, err := client.ListSessions(ctx)
		return SessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func createSessionCmd(client *api.Client, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		session, err := client.CreateSession(ctx, title)
		return SessionCreatedMsg{session: session, err: err}
	}
}

func deleteSessionCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		err := client.DeleteSession(ctx, id)
		return SessionDeletedMsg{id: id, err: err}
	}
}

func loadMessagesCmd(client *api.Client, sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		messages, err := client.ListMessages(ctx, sessionID, 100)
		return MessagesLoadedMsg{sessionID: sessionID, messages: messages, err: err}
	}
}

func adminPageCmd(client *api.Client, page, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uiRequestTimeout)
		defer cancel()

		result, err := client.AdminSessions(ctx, page, limit)
		return AdminPageMsg{page: result, err: err}
	}
}

// periodic credential liveness check
func authTickCmd() tea.Cmd {
	return tea.Tick(auth.CheckInterval, func(time.Time) tea.Msg {
		return AuthTickMsg{}
	})
}

// runs a submission through the orchestrator. The orchestrator reports
// display effects through a channel while it works; drainSendEvents
// keeps pulling them into the update loop until the channel closes,
// and the outcome message arrives only after the channel is closed, so
// no effect is lost.
func submitCmd(orch *chat.Orchestrator, req chat.SendRequest, events chan chat.Event) tea.Cmd {
	run := func() tea.Msg {
		outcome := orch.Send(context.Background(), req, func(ev chat.Event) {
			events <- ev
		})
		close(events)
		return SendOutcomeMsg{outcome: outcome}
	}

	return tea.Batch(run, waitSendEvent(events))
}

// delivers the next orchestration effect, if any
func waitSendEvent(events chan chat.Event) tea.Cmd {
	if events == nil {
		return nil
	}

	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return SendEventMsg{event: ev}
	}
}
