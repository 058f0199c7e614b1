package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

// StartCookieSession persists a session and returns the cookie token bound to it.
func (u *authUsecase) StartCookieSession(ctx context.Context, userID, userAgent, ip string) (string, *entity.Session, error) {
	sessionID := uuid.NewString()
	token, expires, err := u.tokens.IssueCookieToken(userID, sessionID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &entity.Session{
		ID:        sessionID,
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ip,
		CreatedAt: u.now(),
		ExpiresAt: expires,
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}
	return token, session, nil
}

// Logout revokes the session behind a cookie token. Unknown or invalid tokens are ignored.
func (u *authUsecase) Logout(ctx context.Context, cookieToken string) error {
	if cookieToken == "" {
		return nil
	}
	_, sessionID, err := u.tokens.ParseCookieToken(cookieToken)
	if err != nil {
		return nil
	}
	if err := u.sessions.Revoke(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// AuthenticateAccessToken resolves a bearer token to a live user id.
func (u *authUsecase) AuthenticateAccessToken(ctx context.Context, token string) (string, error) {
	userID, err := u.tokens.ParseAccessToken(token)
	if err != nil {
		return "", ErrUnauthenticated
	}
	return u.resolveLiveUser(ctx, userID)
}

// AuthenticateCookieToken resolves a cookie token to a live user id.
// The session must exist, belong to the same user, and be neither revoked nor expired.
func (u *authUsecase) AuthenticateCookieToken(ctx context.Context, token string) (string, error) {
	userID, sessionID, err := u.tokens.ParseCookieToken(token)
	if err != nil {
		return "", ErrUnauthenticated
	}

	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", ErrUnauthenticated
		}
		return "", fmt.Errorf("failed to find session: %w", err)
	}
	if session.UserID != userID || !session.IsValid() {
		return "", ErrUnauthenticated
	}
	return u.resolveLiveUser(ctx, userID)
}

func (u *authUsecase) resolveLiveUser(ctx context.Context, userID string) (string, error) {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			slog.Debug("token for missing user", "user_id", userID)
			return "", ErrUnauthenticated
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	return userID, nil
}

// GetUser returns a user by id.
func (u *authUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}
