package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/fraude/realm/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("FRAUDE_TOKEN", "")

	return NewStore(config.NewStoreAt(filepath.Join(t.TempDir(), "state.json")))
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := Claims{
		UserID: "user-123",
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)
	return token
}

func TestGuard_MissingCredential(t *testing.T) {
	store := newTestStore(t)

	guard := NewGuard(store)

	assert.Equal(t, StatusMissing, guard.Check())
}

func TestGuard_ValidCredential(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(30*time.Minute))))

	guard := NewGuard(store)

	assert.Equal(t, StatusOK, guard.Check())
}

func TestGuard_ExpiredCredential(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(-time.Hour))))

	guard := NewGuard(store)

	assert.Equal(t, StatusExpired, guard.Check())
}

func TestGuard_OpaqueTokenDefersToServer(t *testing.T) {
	// a token the client cannot read is still sent; the server is the
	// authority on validity
	store := newTestStore(t)
	require.NoError(t, store.SetToken("not-a-jwt"))

	guard := NewGuard(store)

	assert.Equal(t, StatusOK, guard.Check())
}

func TestGuard_EnvFallbackIsReadOnly(t *testing.T) {
	store := newTestStore(t)
	t.Setenv("FRAUDE_TOKEN", "env-token")

	assert.Equal(t, "env-token", store.Token())
	assert.Equal(t, StatusOK, NewGuard(store).Check())
}

func TestLogout_WipesStateEvenWhenServerFails(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))

	guard := NewGuard(store)
	guard.Logout(context.Background(), func(ctx context.Context) error {
		return errors.New("server unreachable")
	})

	assert.Equal(t, StatusMissing, guard.Check())
}

func TestLogout_SkipsServerCallWhenLoggedOut(t *testing.T) {
	store := newTestStore(t)
	called := false

	NewGuard(store).Logout(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.False(t, called, "no credential, nothing to invalidate server-side")
}
