// Package token signs and verifies the self-contained bearer tokens
// used for authentication. Tokens are stateless: validity is a
// function of the HMAC signature and the expiry claim only, so any
// process holding the shared secret can verify them.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrMalformed        = errors.New("token malformed")
	ErrUnsupported      = errors.New("token format unsupported")
)

// Claims is the payload carried by every issued token. The subject is
// the username; identity details (id, role) are resolved from the
// store on each request so stale role data never outlives a lookup.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec issues and verifies HS512-signed tokens with a fixed TTL.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the given subject, valid from now
// until now+ttl.
func (c *Codec) Issue(username string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the claims.
// Failures collapse into the package sentinels; callers must not
// surface the distinction to clients.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnsupported
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, ErrUnsupported), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrUnsupported
		default:
			return nil, ErrMalformed
		}
	}
	if !t.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}
