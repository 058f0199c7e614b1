package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

// ProfilePatch lists the user fields that may be edited. Nil means unchanged.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Username  *string
}

// UpdateProfile applies patch to targetID on behalf of actorID.
func (u *authUsecase) UpdateProfile(ctx context.Context, actorID, targetID string, patch ProfilePatch) (*entity.User, error) {
	if actorID != targetID {
		return nil, ErrForbidden
	}

	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		user.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Username != nil {
		name := strings.TrimSpace(*patch.Username)
		if name == "" {
			return nil, ErrInvalidProfile
		}
		user.Username = name
	}

	if err := u.users.Save(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateIdentity) {
			return nil, ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}
