package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

// dummyHash is compared against when the account has no usable hash, so that
// an unknown email costs the same bcrypt work as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// MaxPasswordBytes is the longest password bcrypt accepts, counted in bytes.
const MaxPasswordBytes = 72

// mailTimeout bounds each background mail send.
const mailTimeout = 15 * time.Second

// SignupInput is the registration form.
type SignupInput struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// authUsecase implements signup, verification, login and session handling.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	mailer   VerificationMailer

	now     func() time.Time
	newCode func(now time.Time) (string, time.Time, error)
	// dispatch runs a mail send without blocking the request.
	dispatch func(func())
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(
	users UserRepository,
	sessions SessionRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	mailer VerificationMailer,
) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		now:      time.Now,
		newCode:  entity.NewVerificationCode,
		dispatch: func(f func()) { go f() },
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an unverified local account and mails its verification code.
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	if _, err := u.users.FindByEmailOrUsername(ctx, email, username); err == nil {
		return nil, ErrDuplicateIdentity
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	code, expires, err := u.newCode(u.now())
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Username:     username,
		Email:        email,
		PasswordHash: &hashed,
		Provider:     entity.ProviderLocal,
	}
	user.SetVerificationCode(code, expires)

	// The pre-check above can race; the unique indexes settle it.
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateIdentity) {
			return nil, ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	u.sendCode(ctx, user.Email, code)
	return user, nil
}

// VerifyCode checks existence, then verified state, then code, then expiry.
func (u *authUsecase) VerifyCode(ctx context.Context, email, code string) error {
	user, err := u.findLocal(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}
	if user.VerificationCode == nil || *user.VerificationCode != code {
		return ErrInvalidCode
	}
	if user.CodeExpires == nil || !u.now().Before(*user.CodeExpires) {
		return ErrCodeExpired
	}

	user.MarkVerified()
	if err := u.users.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	to, name := user.Email, user.DisplayName()
	u.sendAsync(ctx, "welcome", to, func(ctx context.Context) error {
		return u.mailer.SendWelcome(ctx, to, name)
	})
	return nil
}

// ResendCode replaces the outstanding code with a fresh one and mails it.
func (u *authUsecase) ResendCode(ctx context.Context, email string) error {
	user, err := u.findLocal(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	code, expires, err := u.newCode(u.now())
	if err != nil {
		return err
	}
	user.SetVerificationCode(code, expires)
	if err := u.users.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	u.sendCode(ctx, user.Email, code)
	return nil
}

// Login authenticates a local account and returns an access token.
// Runs a bcrypt comparison even when the user does not exist to prevent timing attacks.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if user != nil && user.PasswordHash != nil {
		passwordHash = *user.PasswordHash
	}
	matched := u.hasher.Verify(password, passwordHash)

	// A federated account has no hash, so it lands here too.
	if user == nil || user.PasswordHash == nil || !matched {
		return "", nil, ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}

	token, err := u.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// findLocal resolves email to a local account. Federated accounts never
// take part in code verification, so they read as not found.
func (u *authUsecase) findLocal(ctx context.Context, email string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if !user.IsLocal() {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) sendCode(ctx context.Context, to, code string) {
	u.sendAsync(ctx, "verification", to, func(ctx context.Context) error {
		return u.mailer.SendVerificationCode(ctx, to, code)
	})
}

// sendAsync fires a mail send detached from the request lifetime.
// Failures are logged and never reach the caller.
func (u *authUsecase) sendAsync(ctx context.Context, kind, to string, send func(ctx context.Context) error) {
	if u.mailer == nil {
		return
	}
	base := context.WithoutCancel(ctx)
	u.dispatch(func() {
		ctx, cancel := context.WithTimeout(base, mailTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			slog.Error("failed to send email", "kind", kind, "error", err, "to", to)
		}
	})
}
