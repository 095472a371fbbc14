package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"Parlor/internal/core/users"
	"Parlor/internal/mail"
	"Parlor/internal/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepo is an in-memory users.UserRepository
type memoryUserRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*users.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byID: make(map[uuid.UUID]*users.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, u *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Username, u.Username) {
			return nil, users.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return nil, users.ErrEmailTaken
		}
	}
	cp := *u
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	r.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memoryUserRepo) find(pred func(*users.User) bool) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if pred(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*users.User, error) {
	return r.find(func(u *users.User) bool { return u.ID == id })
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	return r.find(func(u *users.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (*users.User, error) {
	return r.find(func(u *users.User) bool { return u.Username == username })
}

func (r *memoryUserRepo) GetByRefreshToken(_ context.Context, hash string) (*users.User, error) {
	return r.find(func(u *users.User) bool { return hash != "" && u.RefreshTokenHash == hash })
}

func (r *memoryUserRepo) List(context.Context, int, int) ([]*users.User, error) { return nil, nil }

func (r *memoryUserRepo) Update(_ context.Context, u *users.User) (*users.User, error) { return u, nil }

func (r *memoryUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *memoryUserRepo) GetProfileStats(context.Context, uuid.UUID) (*users.ProfileStats, error) {
	return &users.ProfileStats{}, nil
}

func (r *memoryUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return users.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *memoryUserRepo) SetRefreshToken(_ context.Context, id uuid.UUID, hash string, expiresAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return users.ErrUserNotFound
	}
	u.RefreshTokenHash = hash
	u.RefreshTokenExpiresAt = expiresAt
	return nil
}

// memoryResetStore ignores ttl; expiry is covered by the redis store tests
type memoryResetStore struct {
	tokens map[string]string
}

func (m *memoryResetStore) Save(_ context.Context, token, email string, _ time.Duration) error {
	m.tokens[token] = email
	return nil
}

func (m *memoryResetStore) Consume(_ context.Context, token string) (string, error) {
	email, ok := m.tokens[token]
	if !ok {
		return "", ErrInvalidResetToken
	}
	delete(m.tokens, token)
	return email, nil
}

type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

type fixture struct {
	service Service
	repo    *memoryUserRepo
	resets  *memoryResetStore
	mailer  *recordingMailer
	tokens  *security.JWTProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newMemoryUserRepo()
	tokens, err := security.NewJWTProvider("test-secret", "parlor-test", time.Hour, 24*time.Hour)
	require.NoError(t, err)

	f := &fixture{
		repo:   repo,
		resets: &memoryResetStore{tokens: map[string]string{}},
		mailer: &recordingMailer{},
		tokens: tokens,
	}
	hasher := security.NewArgon2Hasher(&security.Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	f.service = NewAuthService(users.NewUserService(repo, nil), repo, hasher, tokens, f.resets, f.mailer, nil,
		Config{ResetURLBase: "https://parlor.example/reset"}, nil)
	return f
}

func (f *fixture) register(t *testing.T, username, email, password string) *AuthResponse {
	t.Helper()
	resp, err := f.service.Register(context.Background(), RegisterRequest{Username: username, Email: email, Password: password})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	resp := f.register(t, "alice", "Alice@Example.com", "password123")
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Tokens.AccessToken)

	stored, err := f.repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))
	assert.Equal(t, security.HashToken(resp.Tokens.RefreshToken), stored.RefreshTokenHash)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "alice@example.com", f.mailer.sent[0].To)
}

func TestRegister_Failures(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "alice@example.com", "password123")

	_, err := f.service.Register(context.Background(), RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "short"})
	assert.True(t, IsValidationError(err))

	_, err = f.service.Register(context.Background(), RegisterRequest{Username: "alice", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, users.ErrUsernameTaken)

	_, err = f.service.Register(context.Background(), RegisterRequest{Username: "alice2", Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestRegister_WelcomeEmailFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")

	resp, err := f.service.Register(context.Background(), RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotNil(t, resp.User)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "alice@example.com", "password123")
	ctx := context.Background()

	resp, err := f.service.Login(ctx, LoginRequest{Email: " ALICE@example.com", Password: "password123"})
	require.NoError(t, err)

	id, err := f.tokens.ValidateAccess(resp.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id)

	_, err = f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.service.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsUnauthorized(err))
}

func TestRefresh_RotatesToken(t *testing.T) {
	f := newFixture(t)
	first := f.register(t, "alice", "alice@example.com", "password123")
	ctx := context.Background()

	second, err := f.service.Refresh(ctx, first.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.Tokens.RefreshToken, second.Tokens.RefreshToken)

	// the rotated-out token no longer works
	_, err = f.service.Refresh(ctx, first.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = f.service.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefresh_ExpiredStoredToken(t *testing.T) {
	f := newFixture(t)
	resp := f.register(t, "alice", "alice@example.com", "password123")

	past := time.Now().Add(-time.Minute)
	require.NoError(t, f.repo.SetRefreshToken(context.Background(), resp.User.ID, security.HashToken(resp.Tokens.RefreshToken), &past))

	_, err := f.service.Refresh(context.Background(), resp.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogout_RevokesRefresh(t *testing.T) {
	f := newFixture(t)
	resp := f.register(t, "alice", "alice@example.com", "password123")
	ctx := context.Background()

	require.NoError(t, f.service.Logout(ctx, resp.User.ID))

	_, err := f.service.Refresh(ctx, resp.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func tokenFromMail(t *testing.T, msg mail.Message) string {
	t.Helper()
	idx := strings.Index(msg.Body, "https://parlor.example/reset?")
	require.GreaterOrEqual(t, idx, 0)
	line := msg.Body[idx:]
	line = line[:strings.IndexByte(line, '\n')]
	u, err := url.Parse(line)
	require.NoError(t, err)
	return u.Query().Get("token")
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "alice@example.com", "password123")
	ctx := context.Background()

	require.NoError(t, f.service.ForgotPassword(ctx, "alice@example.com"))
	require.Len(t, f.mailer.sent, 2)
	token := tokenFromMail(t, f.mailer.sent[1])
	assert.Len(t, token, 43)

	require.NoError(t, f.service.ResetPassword(ctx, ResetPasswordRequest{Email: "alice@example.com", Token: token, NewPassword: "new-password-1"}))

	_, err := f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "new-password-1"})
	require.NoError(t, err)

	// single use
	err = f.service.ResetPassword(ctx, ResetPasswordRequest{Email: "alice@example.com", Token: token, NewPassword: "another-pass"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_EmailMismatchBurnsToken(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "alice@example.com", "password123")
	f.register(t, "mallory", "mallory@example.com", "password123")
	ctx := context.Background()

	require.NoError(t, f.service.ForgotPassword(ctx, "alice@example.com"))
	token := tokenFromMail(t, f.mailer.sent[len(f.mailer.sent)-1])

	err := f.service.ResetPassword(ctx, ResetPasswordRequest{Email: "mallory@example.com", Token: token, NewPassword: "hijacked!!"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	err = f.service.ResetPassword(ctx, ResetPasswordRequest{Email: "alice@example.com", Token: token, NewPassword: "legit-pass"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	f := newFixture(t)
	err := f.service.ForgotPassword(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	assert.Empty(t, f.mailer.sent)
}
