// Package token issues and verifies the bearer tokens the API authenticates
// with. Tokens are HS256-signed and carry the username and admin flag; the
// audience and issuer claims pin them to this API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// Audience and Issuer are fixed claims checked on every verification.
	Audience = "https://api.educahub.app/"
	Issuer   = "https://api.educahub.app/"

	// Validity is how long an issued token stays usable.
	Validity = 28 * 24 * time.Hour
)

// ErrInvalidToken is returned by Verify for every failure mode: bad signature,
// wrong algorithm, wrong audience or issuer, expired, malformed. Callers treat
// it uniformly as an authentication failure.
var ErrInvalidToken = errors.New("token: invalid token")

// Claims is the identity assertion embedded in a token.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a single symmetric secret.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec. An empty secret is a configuration error and must
// abort startup, so it is rejected here rather than per request.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is not configured")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue produces a signed token asserting the given identity.
func (c *Codec) Issue(username string, isAdmin bool) (string, error) {
	if username == "" {
		return "", errors.New("token: username is empty")
	}
	now := time.Now()
	claims := Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{Audience},
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Validity)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns its claims. The
// signing method is pinned to HMAC so a token signed with any other algorithm
// is rejected regardless of its payload.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyAudience(Audience, true) {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(Issuer, true) {
		return nil, ErrInvalidToken
	}
	if claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
