package tui

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/fraude/realm/internal/api"
	"codeberg.org/fraude/realm/internal/auth"
	"codeberg.org/fraude/realm/internal/config"
)

func testHarness(t *testing.T) (*config.Store, *auth.Store, *auth.Guard, *api.Client, *int64) {
	t.Helper()
	t.Setenv("FRAUDE_TOKEN", "")

	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"sessions":[]}`)) //nolint:errcheck
	}))
	t.Cleanup(server.Close)

	states := config.NewStoreAt(filepath.Join(t.TempDir(), "state.json"))
	creds := auth.NewStore(states)
	guard := auth.NewGuard(creds)
	client := api.NewClient(server.URL, creds)

	return states, creds, guard, client, &hits
}

func TestNewApp_NoCredentialStaysOnLoginWithoutNetworkCalls(t *testing.T) {
	states, creds, guard, client, hits := testHarness(t)

	app := NewApp(client, creds, guard, states)
	_ = app.Init()

	assert.Equal(t, StateLogin, app.state)
	assert.Nil(t, app.chat, "protected view must not initialize without a credential")
	assert.Zero(t, atomic.LoadInt64(hits), "no protected call before the guard passes")
}

func TestNewApp_ValidCredentialOpensChat(t *testing.T) {
	states, creds, guard, client, _ := testHarness(t)

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, creds.SetToken(token))

	app := NewApp(client, creds, guard, states)

	assert.Equal(t, StateChat, app.state)
	require.NotNil(t, app.chat)
}

func TestNewApp_ExpiredCredentialStaysOnLogin(t *testing.T) {
	states, creds, guard, client, _ := testHarness(t)

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, creds.SetToken(token))

	app := NewApp(client, creds, guard, states)

	assert.Equal(t, StateLogin, app.state)
}

func TestThemeByName_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "fraude", themeByName("").Name)
	assert.Equal(t, "fraude", themeByName("sauron").Name)
	assert.Equal(t, "lucifer", themeByName("lucifer").Name)
	assert.Equal(t, "eren", themeByName("eren").Name)
}

func TestNextTheme_Cycles(t *testing.T) {
	start := themeByName("fraude")

	second := nextTheme(start)
	third := nextTheme(second)
	wrapped := nextTheme(third)

	assert.Equal(t, "lucifer", second.Name)
	assert.Equal(t, "eren", third.Name)
	assert.Equal(t, "fraude", wrapped.Name)
}

func TestTruncate_KeepsShortStrings(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))
	assert.Equal(t, "longer th…", truncate("longer than limit", 10))
}

func TestFormatSessionDate_UnparseableValuesPassThrough(t *testing.T) {
	assert.Equal(t, "N/A", formatSessionDate(""))
	assert.Equal(t, "yesterday-ish", formatSessionDate("yesterday-ish"))
	assert.Equal(t, "4/1/2025 10:30 AM", formatSessionDate("2025-04-01T10:30:00Z"))
}
