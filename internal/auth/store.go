package auth

import (
	"fmt"
	"os"

	"codeberg.org/fraude/realm/internal/config"
)

// Store holds the bearer credential across runs. Reads fall back to
// the FRAUDE_TOKEN environment variable: honored when present, never
// written to.
type Store struct {
	state *config.Store
}

// returns a credential store over the given state store
func NewStore(state *config.Store) *Store {
	return &Store{state: state}
}

// returns the current credential, or "" when logged out
func (s *Store) Token() string {
	state, err := s.state.Load()
	if err == nil && state.Token != "" {
		return state.Token
	}

	return os.Getenv("FRAUDE_TOKEN")
}

// persists a credential obtained at login
func (s *Store) SetToken(token string) error {
	state, err := s.state.Load()
	if err != nil {
		return err
	}

	state.Token = token

	if err := s.state.Save(state); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	return nil
}

// drops the credential, keeping unrelated state
func (s *Store) ClearToken() error {
	state, err := s.state.Load()
	if err != nil {
		return err
	}

	state.Token = ""

	return s.state.Save(state)
}

// wipes everything the client remembers: credential, theme, the lot.
// Used at logout and when a dead credential is detected.
func (s *Store) ClearAll() error {
	return s.state.Clear()
}
