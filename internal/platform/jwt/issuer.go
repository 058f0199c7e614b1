// Package jwtmw issues and verifies the signed session tokens.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the HMAC secret.
const EnvKeyJWTSecret = "JWT_SECRET"

const issuerName = "greenthumb"

// TokenClass separates token lifetimes. A token of one class never
// validates as another.
type TokenClass string

const (
	// AccessToken is returned by interactive login and sent as a bearer header.
	AccessToken TokenClass = "access"
	// CookieToken is set as an HttpOnly cookie and bound to a stored session.
	CookieToken TokenClass = "cookie"
)

// ErrInvalidToken covers every parse failure: signature, expiry, class or shape.
var ErrInvalidToken = errors.New("invalid token")

// Issuer signs and parses HS256 tokens.
type Issuer struct {
	secret []byte
	ttl    map[TokenClass]time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer with one lifetime per token class.
func NewIssuer(secret string, accessTTL, cookieTTL time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl: map[TokenClass]time.Duration{
			AccessToken: accessTTL,
			CookieToken: cookieTTL,
		},
		now: time.Now,
	}
}

// IssueAccessToken signs an access token for userID.
func (i *Issuer) IssueAccessToken(userID string) (string, error) {
	token, _, err := i.issue(AccessToken, userID, "")
	return token, err
}

// IssueCookieToken signs a cookie token for userID bound to sessionID.
// It also returns the absolute expiry so the caller can align the cookie and session.
func (i *Issuer) IssueCookieToken(userID, sessionID string) (string, time.Time, error) {
	return i.issue(CookieToken, userID, sessionID)
}

// ParseAccessToken returns the user id embedded in a valid access token.
func (i *Issuer) ParseAccessToken(token string) (string, error) {
	claims, err := i.parse(AccessToken, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ParseCookieToken returns the user id and session id of a valid cookie token.
func (i *Issuer) ParseCookieToken(token string) (string, string, error) {
	claims, err := i.parse(CookieToken, token)
	if err != nil {
		return "", "", err
	}
	if claims.ID == "" {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.ID, nil
}

func (i *Issuer) issue(class TokenClass, userID, jti string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("user id is required")
	}
	now := i.now()
	exp := now.Add(i.ttl[class])

	claims := jwt.RegisteredClaims{
		Issuer:    issuerName,
		Subject:   userID,
		Audience:  jwt.ClaimStrings{string(class)},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
		ID:        jti,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

func (i *Issuer) parse(class TokenClass, tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithAudience(string(class)),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
