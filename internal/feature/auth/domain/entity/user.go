// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Identity providers a User can originate from.
const (
	ProviderLocal    = "local"
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// User is a registered account, local or federated.
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Username  string `gorm:"uniqueIndex;size:100;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is set only for local accounts.
	PasswordHash *string `gorm:"size:255"`

	// Provider and ProviderID together identify a federated account.
	Provider   string  `gorm:"size:20;not null;default:local;uniqueIndex:idx_users_provider_identity"`
	ProviderID *string `gorm:"size:191;uniqueIndex:idx_users_provider_identity"`

	EmailVerified bool `gorm:"not null;default:false"`

	// VerificationCode and CodeExpires are set and cleared together.
	VerificationCode *string `gorm:"size:6"`
	CodeExpires      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLocal reports whether the account signs in with a password.
func (u *User) IsLocal() bool {
	return u.Provider == ProviderLocal
}

// SetVerificationCode stores a fresh outstanding code, replacing any previous one.
func (u *User) SetVerificationCode(code string, expiresAt time.Time) {
	u.VerificationCode = &code
	u.CodeExpires = &expiresAt
}

// MarkVerified flips the account to verified and drops the outstanding code.
func (u *User) MarkVerified() {
	u.EmailVerified = true
	u.VerificationCode = nil
	u.CodeExpires = nil
}

// DisplayName is the name used in greetings.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
