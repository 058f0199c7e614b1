package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

// FederatedLogin maps a completed provider handshake to a local user,
// creating it on first sight. Repeated calls for the same (provider, id)
// return the same record.
func (u *authUsecase) FederatedLogin(ctx context.Context, p entity.ExternalProfile) (*entity.User, error) {
	if p.Provider == "" || p.ExternalID == "" {
		return nil, ErrIncompleteProfile
	}

	existing, err := u.users.FindByProvider(ctx, p.Provider, p.ExternalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find federated user: %w", err)
	}

	email := normalizeEmail(p.Email)
	username := "user_" + p.ExternalID
	if email == "" {
		email = fmt.Sprintf("no-email-%s@%s.com", p.ExternalID, p.Provider)
	} else if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		username = local
	}

	providerID := p.ExternalID
	user := &entity.User{
		ID:         uuid.NewString(),
		FirstName:  strings.TrimSpace(p.GivenName),
		LastName:   strings.TrimSpace(p.FamilyName),
		Username:   username,
		Email:      email,
		Provider:   p.Provider,
		ProviderID: &providerID,
	}

	if err := u.users.Create(ctx, user); err != nil {
		if !errors.Is(err, ErrDuplicateIdentity) {
			return nil, fmt.Errorf("failed to create federated user: %w", err)
		}
		// A concurrent first callback may have won the (provider, id) index.
		if winner, findErr := u.users.FindByProvider(ctx, p.Provider, p.ExternalID); findErr == nil {
			return winner, nil
		}
		return nil, ErrDuplicateIdentity
	}
	return user, nil
}
