package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(now time.Time) *Issuer {
	i := NewIssuer("test-secret", 24*time.Hour, 7*24*time.Hour)
	i.now = func() time.Time { return now }
	return i
}

func TestIssuer_AccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	i := newTestIssuer(time.Now())
	token, err := i.IssueAccessToken("user-1")
	require.NoError(t, err)

	userID, err := i.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestIssuer_CookieTokenRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	i := newTestIssuer(now)
	token, exp, err := i.IssueCookieToken("user-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(7*24*time.Hour), exp)

	userID, sessionID, err := i.ParseCookieToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "sess-1", sessionID)
}

func TestIssuer_ClassesAreNotInterchangeable(t *testing.T) {
	t.Parallel()

	i := newTestIssuer(time.Now())
	access, err := i.IssueAccessToken("user-1")
	require.NoError(t, err)
	cookie, _, err := i.IssueCookieToken("user-1", "sess-1")
	require.NoError(t, err)

	_, _, err = i.ParseCookieToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = i.ParseAccessToken(cookie)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Expiry(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-48 * time.Hour)
	i := newTestIssuer(issued)
	access, err := i.IssueAccessToken("user-1")
	require.NoError(t, err)
	cookie, _, err := i.IssueCookieToken("user-1", "sess-1")
	require.NoError(t, err)

	i.now = time.Now
	_, err = i.ParseAccessToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken, "access token lives one day")

	_, _, err = i.ParseCookieToken(cookie)
	assert.NoError(t, err, "cookie token lives seven days")
}

func TestIssuer_RejectsForeignTokens(t *testing.T) {
	t.Parallel()

	i := newTestIssuer(time.Now())
	claims := jwt.RegisteredClaims{
		Issuer:    issuerName,
		Subject:   "user-1",
		Audience:  jwt.ClaimStrings{string(AccessToken)},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	noExp := claims
	noExp.ExpiresAt = nil
	unbounded, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExp).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", otherSecret},
		{"wrong algorithm", hs512},
		{"no expiry", unbounded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := i.ParseAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestIssuer_RequiresUserID(t *testing.T) {
	t.Parallel()

	_, err := newTestIssuer(time.Now()).IssueAccessToken("")
	assert.Error(t, err)
}
