package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session describes the locally stored credential.
// Claims are decoded without verifying the signature: the server is the
// only authority, these fields are for display.
type Session struct {
	ExpiresAt     time.Time // zero when the token carries no exp claim
	Subject       string    // sub or user id claim, if present
	Authenticated bool      // a token is stored
	Opaque        bool      // the token is not a JWT
}

// Expired reports whether the token carries an expiry in the past
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// DescribeToken builds a Session from a raw token
func DescribeToken(token string) Session {
	if token == "" {
		return Session{}
	}

	sess := Session{Authenticated: true}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		sess.Opaque = true
		return sess
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		sess.Subject = sub
	} else {
		for _, key := range []string{"userId", "user_id", "id", "_id"} {
			if v, ok := claims[key].(string); ok && v != "" {
				sess.Subject = v
				break
			}
		}
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
	}

	return sess
}
