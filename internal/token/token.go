// Package token isolates session-token issuance and verification behind a
// narrow interface so the signing primitive is swappable without touching
// the services that consume it.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/cinescope/apiserver/types"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by a session token.
type Claims struct {
	Email string     `json:"email"`
	Role  types.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject the token was issued for.
func (c Claims) UserID() string {
	return c.Subject
}

// Issuer signs and verifies session tokens.
type Issuer interface {
	// Issue returns a signed token asserting the given identity until TTL
	// elapses.
	Issue(userID, email string, role types.Role) (string, error)

	// Verify checks signature and time bounds and returns the claims.
	Verify(raw string) (Claims, error)
}

// JWTIssuer issues HS256-signed JWTs with a fixed TTL.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (i *JWTIssuer) Issue(userID, email string, role types.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

func (i *JWTIssuer) Verify(raw string) (Claims, error) {
	claims := Claims{}
	tok, err := jwt.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !tok.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, errors.New("missing subject")
	}
	return claims, nil
}
