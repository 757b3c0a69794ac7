// Package chat holds the client-side conversation state and the
// message send orchestration. Nothing here touches the terminal: the
// UI applies emitted events to the state and draws from it.
package chat

import (
	"codeberg.org/fraude/realm/internal/api"
)

// display entry kinds
type EntryKind int

const (
	EntryUser EntryKind = iota
	EntryBot
	// transient indicator while a reply is awaited
	EntryPending
	// inline failure entry left in place of an exhausted send
	EntryError
)

// Entry is one element of the conversation display.
type Entry struct {
	ID      string
	Kind    EntryKind
	Content string
	Mode    string
}

// State is the client's view of the chat page: the advisory current
// session reference, the last session list snapshot, and the in-memory
// entries of the active session. The server owns the real data; this
// object only ever reflects it.
type State struct {
	CurrentID string
	Title     string
	Sessions  []api.Session
	Entries   []Entry
}

// makes the given session current and discards displayed entries.
// The entry sequence is per-session and never persisted client-side.
func (s *State) Select(id, title string) {
	s.CurrentID = id
	s.Title = title
	s.Entries = nil
}

// drops the current session reference and the display
func (s *State) ClearCurrent() {
	s.CurrentID = ""
	s.Title = ""
	s.Entries = nil
}

// replaces the session list snapshot
func (s *State) ApplySessions(sessions []api.Session) {
	s.Sessions = sessions
}

// reconciles a confirmed server-side deletion. Returns true when the
// deleted session was current, in which case the reference and display
// were cleared.
func (s *State) ApplyDeletion(id string) bool {
	if id != s.CurrentID {
		return false
	}

	s.ClearCurrent()
	return true
}

// appends a display entry
func (s *State) Append(e Entry) {
	s.Entries = append(s.Entries, e)
}

// rewrites the content of the entry with the given id, if present
func (s *State) UpdateEntry(id, content string) {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			s.Entries[i].Content = content
			return
		}
	}
}

// removes the entry with the given id, if present
func (s *State) RemoveEntry(id string) {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return
		}
	}
}

// reports whether a pending indicator is on display
func (s *State) HasPending() bool {
	for _, e := range s.Entries {
		if e.Kind == EntryPending {
			return true
		}
	}

	return false
}
