package handler

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

const (
	stateCookie = "oauth_state"
	stateTTL    = 10 * time.Minute
)

// Provider is one configured identity provider.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (entity.ExternalProfile, error)
}

// FederatedUsecase links provider identities to users and opens cookie sessions.
type FederatedUsecase interface {
	FederatedLogin(ctx context.Context, profile entity.ExternalProfile) (*entity.User, error)
	StartCookieSession(ctx context.Context, userID, userAgent, ip string) (string, *entity.Session, error)
}

// OAuthHandler drives the redirect handshake with identity providers.
type OAuthHandler struct {
	providers map[string]Provider
	auth      FederatedUsecase
	clientURL string
	cookies   CookieOptions
}

// NewOAuthHandler creates an OAuthHandler for the given providers.
// Successful sign-ins land on clientURL/social-login-success, failures on clientURL/login.
func NewOAuthHandler(auth FederatedUsecase, clientURL string, cookies CookieOptions, providers ...Provider) *OAuthHandler {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &OAuthHandler{providers: byName, auth: auth, clientURL: clientURL, cookies: cookies}
}

// Begin handles GET /api/auth/social/:provider.
func (h *OAuthHandler) Begin(c *gin.Context) {
	p, ok := h.providers[c.Param("provider")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		return
	}

	state, err := newState()
	if err != nil {
		slog.Error("failed to generate oauth state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	h.cookies.set(c, stateCookie, state, time.Now().Add(stateTTL))
	c.Redirect(http.StatusFound, p.AuthCodeURL(state))
}

// Callback handles GET /api/auth/social/:provider/callback.
func (h *OAuthHandler) Callback(c *gin.Context) {
	p, ok := h.providers[c.Param("provider")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		return
	}

	expected, _ := c.Cookie(stateCookie)
	h.cookies.clear(c, stateCookie)
	got := c.Query("state")
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		slog.Warn("oauth state mismatch", "provider", p.Name(), "remote_addr", c.ClientIP())
		h.fail(c)
		return
	}
	if errParam := c.Query("error"); errParam != "" || c.Query("code") == "" {
		slog.Warn("oauth consent not granted", "provider", p.Name(), "error", errParam, "remote_addr", c.ClientIP())
		h.fail(c)
		return
	}

	ctx := c.Request.Context()
	profile, err := p.Exchange(ctx, c.Query("code"))
	if err != nil {
		slog.Error("oauth exchange failed", "provider", p.Name(), "error", err, "remote_addr", c.ClientIP())
		h.fail(c)
		return
	}
	user, err := h.auth.FederatedLogin(ctx, profile)
	if err != nil {
		slog.Warn("federated login failed", "provider", p.Name(), "error", err, "remote_addr", c.ClientIP())
		h.fail(c)
		return
	}
	token, session, err := h.auth.StartCookieSession(ctx, user.ID, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Error("failed to start session", "user_id", user.ID, "error", err)
		h.fail(c)
		return
	}

	h.cookies.setSessionToken(c, token, session.ExpiresAt)
	slog.Info("federated login successful", "provider", p.Name(), "user_id", user.ID, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, h.clientURL+"/social-login-success")
}

func (h *OAuthHandler) fail(c *gin.Context) {
	c.Redirect(http.StatusFound, h.clientURL+"/login")
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
