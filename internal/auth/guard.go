package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"codeberg.org/fraude/realm/internal/logger"
)

// how often the running client re-checks that its credential is still
// present and unexpired
const CheckInterval = 5 * time.Minute

// LogoutFunc performs the server-side half of a logout. Failures are
// tolerated: the guard's cleanup runs either way.
type LogoutFunc func(ctx context.Context) error

// Guard decides whether the protected views may run. It checks only
// what the client can know locally: credential presence and the exp
// claim. The server remains the authority; a 401 on any protected call
// overrides a passing guard.
type Guard struct {
	store *Store
	now   func() time.Time
}

// returns a guard over the given credential store
func NewGuard(store *Store) *Guard {
	return &Guard{store: store, now: time.Now}
}

// evaluates the credential
func (g *Guard) Check() Status {
	token := g.store.Token()
	if token == "" {
		return StatusMissing
	}

	// unverified parse: only the exp claim is read here, signature
	// verification stays with the server
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		// opaque or malformed token: let the server judge it
		return StatusOK
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(g.now()) {
		return StatusExpired
	}

	return StatusOK
}

// best-effort server logout followed by an unconditional local wipe
func (g *Guard) Logout(ctx context.Context, serverLogout LogoutFunc) {
	if serverLogout != nil && g.store.Token() != "" {
		if err := serverLogout(ctx); err != nil {
			logger.Warn("logout request failed, continuing with local cleanup", "error", err)
		}
	}

	if err := g.store.ClearAll(); err != nil {
		logger.ErrorErr(err, "failed to clear local auth state")
	}
}
