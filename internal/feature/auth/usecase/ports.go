package usecase

import (
	"context"
	"time"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. A uniqueness violation returns ErrDuplicateIdentity.
	Create(ctx context.Context, user *entity.User) error
	// FindByID returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByEmailOrUsername returns any user holding either value.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)
	// FindByProvider looks up a federated account.
	FindByProvider(ctx context.Context, provider, providerID string) (*entity.User, error)
	// Save writes every field of an existing user.
	Save(ctx context.Context, user *entity.User) error
}

// SessionRepository stores the sessions behind cookie tokens.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindByID returns ErrSessionNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	Revoke(ctx context.Context, id string) error
}

// PasswordHasher hashes and checks local passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false for a wrong password and for a malformed hash.
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs and parses the two token classes.
type TokenIssuer interface {
	IssueAccessToken(userID string) (string, error)
	IssueCookieToken(userID, sessionID string) (string, time.Time, error)
	ParseAccessToken(token string) (string, error)
	ParseCookieToken(token string) (userID, sessionID string, err error)
}

// VerificationMailer delivers account emails. Callers do not wait on it.
type VerificationMailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
	SendWelcome(ctx context.Context, to, name string) error
}
