package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key holding the authenticated user id.
	ContextUserID = "userID"
	// CookieName is the cookie carrying a CookieToken.
	CookieName = "token"
)

// ErrUnauthenticated is what an Authenticator returns for any rejected token.
var ErrUnauthenticated = errors.New("unauthenticated")

// Authenticator resolves a token to a live user id.
// Implementations return ErrUnauthenticated for every token-related failure.
type Authenticator interface {
	AuthenticateAccessToken(ctx context.Context, token string) (string, error)
	AuthenticateCookieToken(ctx context.Context, token string) (string, error)
}

// AuthRequired returns a Gin middleware that accepts either a bearer access
// token or the session cookie and rejects everything else with 401.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			userID string
			err    error
		)
		if header := c.GetHeader("Authorization"); header != "" {
			if !strings.HasPrefix(header, "Bearer ") {
				abortUnauthenticated(c)
				return
			}
			userID, err = auth.AuthenticateAccessToken(ctx, strings.TrimPrefix(header, "Bearer "))
		} else if cookie, cookieErr := c.Cookie(CookieName); cookieErr == nil && cookie != "" {
			userID, err = auth.AuthenticateCookieToken(ctx, cookie)
		} else {
			abortUnauthenticated(c)
			return
		}

		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				abortUnauthenticated(c)
				return
			}
			slog.Error("authentication lookup failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
}
