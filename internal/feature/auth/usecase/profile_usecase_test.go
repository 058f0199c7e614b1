package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestAuthUsecase_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	aliceID := verifiedAlice(t, env)

	bob := aliceSignup()
	bob.Email, bob.Username = "b@x.com", "bob"
	bobUser, err := env.uc.Signup(ctx, bob)
	require.NoError(t, err)

	t.Run("owner updates", func(t *testing.T) {
		user, err := env.uc.UpdateProfile(ctx, aliceID, aliceID, ProfilePatch{
			FirstName: ptr(" Alicia "),
			Username:  ptr("alicia"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", user.FirstName)
		assert.Equal(t, "alicia", user.Username)
		assert.Equal(t, "Liddell", user.LastName)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := env.uc.UpdateProfile(ctx, bobUser.ID, aliceID, ProfilePatch{FirstName: ptr("x")})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("taken username", func(t *testing.T) {
		_, err := env.uc.UpdateProfile(ctx, aliceID, aliceID, ProfilePatch{Username: ptr("bob")})
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
	})

	t.Run("blank username", func(t *testing.T) {
		_, err := env.uc.UpdateProfile(ctx, aliceID, aliceID, ProfilePatch{Username: ptr("  ")})
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := env.uc.UpdateProfile(ctx, "ghost", "ghost", ProfilePatch{})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
