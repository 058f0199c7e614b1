// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"time"

	authadapters "greenthumb_backend/internal/feature/auth/adapters"
	authhandler "greenthumb_backend/internal/feature/auth/transport/handler"
	"greenthumb_backend/internal/platform/config"
	infrahttp "greenthumb_backend/internal/platform/http"
)

const oauthTimeout = 10 * time.Second

// NewOAuthProviders builds the identity providers that have credentials configured.
func NewOAuthProviders(cfg *config.Config) []authhandler.Provider {
	client := infrahttp.NewHTTPClient(oauthTimeout)

	var providers []authhandler.Provider
	if cfg.GoogleClientID != "" {
		providers = append(providers, authadapters.NewGoogleProvider(
			cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL, client))
	} else {
		slog.Info("google sign-in disabled: GOOGLE_CLIENT_ID not set")
	}
	if cfg.FacebookClientID != "" {
		providers = append(providers, authadapters.NewFacebookProvider(
			cfg.FacebookClientID, cfg.FacebookClientSecret, cfg.FacebookCallbackURL, client))
	} else {
		slog.Info("facebook sign-in disabled: FACEBOOK_CLIENT_ID not set")
	}
	return providers
}
