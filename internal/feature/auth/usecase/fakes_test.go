package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"greenthumb_backend/internal/feature/auth/domain/entity"
	jwtmw "greenthumb_backend/internal/platform/jwt"
	"greenthumb_backend/internal/platform/password"
)

// fakeUserStore is an in-memory UserRepository enforcing the same unique keys as the table.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]entity.User

	// CreateFunc, when set, replaces Create.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindErr, when set, is returned by every lookup.
	FindErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]entity.User{}}
}

func (s *fakeUserStore) conflicts(u *entity.User) bool {
	for id, other := range s.users {
		if id == u.ID {
			continue
		}
		if other.Email == u.Email || other.Username == u.Username {
			return true
		}
		if u.ProviderID != nil && other.ProviderID != nil &&
			other.Provider == u.Provider && *other.ProviderID == *u.ProviderID {
			return true
		}
	}
	return false
}

func (s *fakeUserStore) Create(ctx context.Context, u *entity.User) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, u)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflicts(u) {
		return ErrDuplicateIdentity
	}
	s.users[u.ID] = *u
	return nil
}

func (s *fakeUserStore) Save(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrUserNotFound
	}
	if s.conflicts(u) {
		return ErrDuplicateIdentity
	}
	s.users[u.ID] = *u
	return nil
}

func (s *fakeUserStore) find(match func(entity.User) bool) (*entity.User, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if match(u) {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*entity.User, error) {
	return s.find(func(u entity.User) bool { return u.ID == id })
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.find(func(u entity.User) bool { return u.Email == email })
}

func (s *fakeUserStore) FindByEmailOrUsername(_ context.Context, email, username string) (*entity.User, error) {
	return s.find(func(u entity.User) bool { return u.Email == email || u.Username == username })
}

func (s *fakeUserStore) FindByProvider(_ context.Context, provider, providerID string) (*entity.User, error) {
	return s.find(func(u entity.User) bool {
		return u.Provider == provider && u.ProviderID != nil && *u.ProviderID == providerID
	})
}

func (s *fakeUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *fakeUserStore) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// fakeSessionStore is an in-memory SessionRepository.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]entity.Session{}}
}

func (s *fakeSessionStore) Create(_ context.Context, sess *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *fakeSessionStore) FindByID(_ context.Context, id string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *fakeSessionStore) Revoke(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	now := time.Now()
	sess.RevokedAt = &now
	s.sessions[id] = sess
	return nil
}

// recordingMailer captures every message.
type recordingMailer struct {
	mu       sync.Mutex
	codes    map[string][]string
	welcomed []string
	err      error
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{codes: map[string][]string{}}
}

func (m *recordingMailer) SendVerificationCode(_ context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[to] = append(m.codes[to], code)
	return m.err
}

func (m *recordingMailer) SendWelcome(_ context.Context, to, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomed = append(m.welcomed, to)
	return m.err
}

func (m *recordingMailer) lastCode(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.codes[to]
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}

// failingHasher fails every Hash call.
type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hash failed") }
func (failingHasher) Verify(string, string) bool  { return false }

type testEnv struct {
	uc       *authUsecase
	users    *fakeUserStore
	sessions *fakeSessionStore
	mailer   *recordingMailer
	issuer   *jwtmw.Issuer
	clock    *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	mailer := newRecordingMailer()
	issuer := jwtmw.NewIssuer("test-secret", 24*time.Hour, 7*24*time.Hour)

	uc := NewAuthUsecase(users, sessions, password.NewHasher(bcrypt.MinCost), issuer, mailer)
	clock := time.Now().Truncate(time.Second)
	uc.now = func() time.Time { return clock }
	uc.dispatch = func(f func()) { f() }

	return &testEnv{uc: uc, users: users, sessions: sessions, mailer: mailer, issuer: issuer, clock: &clock}
}

func (e *testEnv) advance(d time.Duration) {
	*e.clock = e.clock.Add(d)
}

func aliceSignup() SignupInput {
	return SignupInput{
		FirstName:       "Alice",
		LastName:        "Liddell",
		Username:        "alice",
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}
