package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fraude.log")

	Setup("development", path)
	defer Setup("", "")

	Info("entered the realm", "theme", "fraude")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "entered the realm")
	assert.Contains(t, string(data), "theme=fraude")
}

func TestSetup_ProductionEmitsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fraude.log")

	Setup("production", path)
	defer Setup("", "")

	Info("entered the realm")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"entered the realm"`)
}

func TestLogging_WithoutSinkDoesNotPanic(t *testing.T) {
	Setup("", "")

	Info("nowhere to go")
	Warn("still nowhere")
}
