// Package middleware holds the gin middleware: bearer-token authentication
// and redis-backed rate limiting.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/token"
)

// claimsKey is where Auth stores the verified claims in the gin context.
const claimsKey = "auth_claims"

// ErrMissingAuthHeader indicates the Authorization header was absent.
var ErrMissingAuthHeader = errors.New("missing Authorization header")

// Auth returns a middleware that verifies the bearer token and attaches its
// claims to the request context. It never resolves the user against storage;
// handlers do that, so ownership checks always compare stored identifiers.
func Auth(codec *token.Codec) gin.HandlerFunc {
	if codec == nil {
		panic("token codec cannot be nil for Auth middleware")
	}

	return func(c *gin.Context) {
		raw, err := extractToken(c)
		if err != nil {
			if errors.Is(err, ErrMissingAuthHeader) {
				logrus.Debug("Auth middleware: missing Authorization header")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			} else {
				logrus.WithError(err).Debug("Auth middleware: malformed Authorization header")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			}
			c.Abort()
			return
		}

		claims, err := codec.Verify(raw)
		if err != nil {
			logrus.WithError(err).Debug("Auth middleware: invalid token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Claims returns the claims Auth attached to the context, or nil when the
// route ran without the Auth middleware.
func Claims(c *gin.Context) *token.Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header is not a bearer token")
	}
	return parts[1], nil
}
