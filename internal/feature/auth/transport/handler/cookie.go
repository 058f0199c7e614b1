package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	jwtmw "greenthumb_backend/internal/platform/jwt"
)

// CookieOptions controls the attributes of cookies the auth handlers set.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) set(c *gin.Context, name, value string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", o.Secure, true)
}

func (o CookieOptions) clear(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", o.Secure, true)
}

func (o CookieOptions) setSessionToken(c *gin.Context, token string, expires time.Time) {
	o.set(c, jwtmw.CookieName, token, expires)
}
