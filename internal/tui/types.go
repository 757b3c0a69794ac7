package tui

import (
	"codeberg.org/fraude/realm/internal/api"
	"codeberg.org/fraude/realm/internal/chat"
)

// represents the current state of the TUI
type AppState int

const (
	StateLogin AppState = iota
	StateRegister
	StateChat
	StateAdmin
)

// messages shared across views

// sent when a login round-trip completes
type LoginResultMsg struct {
	token string
	err   error
}

// sent when a registration round-trip completes
type RegisterResultMsg struct {
	err error
}

// sent to switch to the registration form
type EnterRegisterMsg struct{}

// sent to switch to the login form, after cleanup
type EnterLoginMsg struct{}

// sent by the periodic credential re-check
type AuthTickMsg struct{}

// sent when a protected call came back 401 or the credential vanished
type AuthExpiredMsg struct{}

// sent when the session list was fetched
type SessionsLoadedMsg struct {
	sessions []api.Session
	err      error
}

// sent when an explicit session creation completes
type SessionCreatedMsg struct {
	session *api.Session
	err     error
}

// sent when a session deletion completes
type SessionDeletedMsg struct {
	id  string
	err error
}

// sent when stored messages for a selected session arrive
type MessagesLoadedMsg struct {
	sessionID string
	messages  []api.Message
	err       error
}

// sent for each orchestration effect during a submission
type SendEventMsg struct {
	event chat.Event
}

// sent once per submission when the orchestrator settles
type SendOutcomeMsg struct {
	outcome chat.Outcome
}

// sent when an admin listing page arrives
type AdminPageMsg struct {
	page *api.AdminPage
	err  error
}

// sent after the logout round-trip (best-effort) and local wipe
type LoggedOutMsg struct{}
