package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists client-local state between runs. A missing file reads
// as empty state; writes go through a temp file and rename so a crash
// mid-write cannot leave truncated JSON behind.
type Store struct {
	path string
}

// returns a store rooted at the user config directory
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}

	return NewStoreAt(filepath.Join(dir, "fraude", "state.json")), nil
}

// returns a store backed by an explicit file path
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// reads the persisted state
func (s *Store) Load() (State, error) {
	var state State

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		// corrupt state file is treated as logged-out, not fatal
		return State{}, nil
	}

	return state, nil
}

// writes the persisted state
func (s *Store) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}

// removes all persisted state
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear state file: %w", err)
	}

	return nil
}
