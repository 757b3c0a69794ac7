package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors what the Fraude service puts in its tokens. The client
// never verifies the signature; it only reads the expiry locally.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// guard verdicts
type Status int

const (
	// no credential present
	StatusMissing Status = iota
	// credential present but its exp claim has passed
	StatusExpired
	// credential present and locally plausible
	StatusOK
)
