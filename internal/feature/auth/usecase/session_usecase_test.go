package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifiedAlice(t *testing.T, env *testEnv) string {
	t.Helper()
	ctx := context.Background()
	user, err := env.uc.Signup(ctx, aliceSignup())
	require.NoError(t, err)
	require.NoError(t, env.uc.VerifyCode(ctx, "a@x.com", env.mailer.lastCode("a@x.com")))
	return user.ID
}

func TestAuthUsecase_CookieSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := verifiedAlice(t, env)

	token, session, err := env.uc.StartCookieSession(ctx, userID, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	got, err := env.uc.AuthenticateCookieToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// A cookie token is not an access token.
	_, err = env.uc.AuthenticateAccessToken(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	require.NoError(t, env.uc.Logout(ctx, token))
	_, err = env.uc.AuthenticateCookieToken(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthUsecase_Logout_IgnoresUnknownTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.NoError(t, env.uc.Logout(ctx, ""))
	assert.NoError(t, env.uc.Logout(ctx, "garbage"))

	orphan, _, err := env.issuer.IssueCookieToken("user-1", "missing-session")
	require.NoError(t, err)
	assert.NoError(t, env.uc.Logout(ctx, orphan))
}

func TestAuthUsecase_AuthenticateAccessToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := verifiedAlice(t, env)

	token, _, err := env.uc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	got, err := env.uc.AuthenticateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = env.uc.AuthenticateAccessToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = env.uc.AuthenticateCookieToken(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	env.users.delete(userID)
	_, err = env.uc.AuthenticateAccessToken(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthUsecase_CookieSessionOfAnotherUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := verifiedAlice(t, env)

	_, session, err := env.uc.StartCookieSession(ctx, userID, "", "")
	require.NoError(t, err)

	forged, _, err := env.issuer.IssueCookieToken("someone-else", session.ID)
	require.NoError(t, err)

	_, err = env.uc.AuthenticateCookieToken(ctx, forged)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthUsecase_GetUser(t *testing.T) {
	env := newTestEnv(t)
	userID := verifiedAlice(t, env)

	user, err := env.uc.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = env.uc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
