package chat

import (
	"codeberg.org/fraude/realm/internal/api"
)

// orchestration phases, in submission order
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseOptimisticallyDisplayed
	PhaseEnsuringSession
	PhaseSending
	PhaseRetrying
	PhaseSettledSuccess
	PhaseSettledError
)

// Event is a single orchestration effect. The UI applies each one to
// its State as it arrives; tests record them.
type Event interface {
	event()
}

// a display entry was produced
type EntryAppended struct {
	Entry Entry
}

// an existing entry's text changed (retry phrasing on the pending one)
type EntryUpdated struct {
	ID      string
	Content string
}

// an entry left the display (the pending indicator on settle)
type EntryRemoved struct {
	ID string
}

// the orchestration moved to a new phase
type PhaseChanged struct {
	Phase Phase
}

// a session was lazily created before the send
type SessionEnsured struct {
	Session api.Session
}

func (EntryAppended) event()  {}
func (EntryUpdated) event()   {}
func (EntryRemoved) event()   {}
func (PhaseChanged) event()   {}
func (SessionEnsured) event() {}

// Apply folds an event into the state. The UI and the tests share this
// so the displayed sequence is exactly what the orchestrator dictated.
func Apply(s *State, ev Event) {
	switch ev := ev.(type) {
	case EntryAppended:
		s.Append(ev.Entry)
	case EntryUpdated:
		s.UpdateEntry(ev.ID, ev.Content)
	case EntryRemoved:
		s.RemoveEntry(ev.ID)
	case SessionEnsured:
		s.CurrentID = ev.Session.ID
		s.Title = ev.Session.Title
	}
}
