// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"greenthumb_backend/internal/feature/auth/domain/entity"
	"greenthumb_backend/internal/feature/auth/usecase"
	"greenthumb_backend/internal/platform/db"
)

// userGorm is the GORM implementation of UserRepository.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts a user. Any unique index violation maps to usecase.ErrDuplicateIdentity.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

// Save updates every column of an existing user.
func (r *userGorm) Save(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userGorm) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	return r.first(ctx, "email = ? OR username = ?", email, username)
}

func (r *userGorm) FindByProvider(ctx context.Context, provider, providerID string) (*entity.User, error) {
	return r.first(ctx, "provider = ? AND provider_id = ?", provider, providerID)
}

func (r *userGorm) first(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
