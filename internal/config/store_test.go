package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileReadsAsEmptyState(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "state.json"))

	state, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, state.Token)
	assert.Empty(t, state.Theme)
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "state.json"))

	require.NoError(t, store.Save(State{Token: "tok", Theme: "lucifer"}))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", state.Token)
	assert.Equal(t, "lucifer", state.Theme)
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "nested", "dir", "state.json"))

	require.NoError(t, store.Save(State{Theme: "eren"}))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "eren", state.Theme)
}

func TestStore_ClearRemovesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStoreAt(path)
	require.NoError(t, store.Save(State{Token: "tok", Theme: "fraude"}))

	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Token)
}

func TestStore_ClearOnMissingFileIsNoop(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "state.json"))

	assert.NoError(t, store.Clear())
}

func TestStore_CorruptFileReadsAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	state, err := NewStoreAt(path).Load()

	require.NoError(t, err)
	assert.Empty(t, state.Token)
}
