package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	facebookMeURL     = "https://graph.facebook.com/me?fields=id,email,first_name,last_name"

	maxProfileBytes = 1 << 20
)

// OAuthProvider runs the authorization code flow against one identity provider
// and turns the provider's profile into an entity.ExternalProfile.
type OAuthProvider struct {
	name       string
	config     *oauth2.Config
	profileURL string
	client     *http.Client
	decode     func(body []byte) (entity.ExternalProfile, error)
}

// NewGoogleProvider configures sign-in with Google.
func NewGoogleProvider(clientID, clientSecret, callbackURL string, client *http.Client) *OAuthProvider {
	return &OAuthProvider{
		name: entity.ProviderGoogle,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     endpoints.Google,
			Scopes:       []string{"openid", "email", "profile"},
		},
		profileURL: googleUserInfoURL,
		client:     client,
		decode:     decodeGoogleProfile,
	}
}

// NewFacebookProvider configures sign-in with Facebook.
func NewFacebookProvider(clientID, clientSecret, callbackURL string, client *http.Client) *OAuthProvider {
	return &OAuthProvider{
		name: entity.ProviderFacebook,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     endpoints.Facebook,
			Scopes:       []string{"email"},
		},
		profileURL: facebookMeURL,
		client:     client,
		decode:     decodeFacebookProfile,
	}
}

// Name returns the provider key used in routes and on User.Provider.
func (p *OAuthProvider) Name() string {
	return p.name
}

// AuthCodeURL returns the consent page URL carrying state.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token and fetches the profile with it.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (entity.ExternalProfile, error) {
	if p.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return entity.ExternalProfile{}, fmt.Errorf("%s: code exchange failed: %w", p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return entity.ExternalProfile{}, err
	}
	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return entity.ExternalProfile{}, fmt.Errorf("%s: profile request failed: %w", p.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return entity.ExternalProfile{}, fmt.Errorf("%s: failed to read profile: %w", p.name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return entity.ExternalProfile{}, fmt.Errorf("%s: profile request returned %d", p.name, resp.StatusCode)
	}

	profile, err := p.decode(body)
	if err != nil {
		return entity.ExternalProfile{}, fmt.Errorf("%s: %w", p.name, err)
	}
	profile.Provider = p.name
	return profile, nil
}

func decodeGoogleProfile(body []byte) (entity.ExternalProfile, error) {
	var v struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return entity.ExternalProfile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return entity.ExternalProfile{ExternalID: v.ID, Email: v.Email, GivenName: v.GivenName, FamilyName: v.FamilyName}, nil
}

func decodeFacebookProfile(body []byte) (entity.ExternalProfile, error) {
	var v struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return entity.ExternalProfile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return entity.ExternalProfile{ExternalID: v.ID, Email: v.Email, GivenName: v.FirstName, FamilyName: v.LastName}, nil
}
