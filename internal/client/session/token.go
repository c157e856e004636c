package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Folldix/GameStore-Frontend/internal/common"
)

// TokenExpiry extracts the expiry timestamp embedded in a JWT payload.
// The signature is not verified: the client only needs the self-contained
// expiry claim, the server remains the authority on the token itself.
// Returns common.ErrInvalidToken for malformed tokens or tokens without an
// expiry claim.
func TokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return exp.Time, nil
}

// IsTokenValid reports whether token is present and its embedded expiry is
// after now. Malformed tokens count as expired.
func IsTokenValid(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	return exp.After(now)
}
