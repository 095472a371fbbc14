package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"Parlor/internal/core/users"
	"Parlor/internal/events"
	"Parlor/internal/mail"
	"Parlor/internal/security"

	"github.com/google/uuid"
)

const (
	// MinPasswordLength is the shortest accepted password
	MinPasswordLength = 8
	// MaxPasswordLength bounds hashing cost for hostile input
	MaxPasswordLength = 128

	// DefaultResetTokenTTL is how long a reset link stays valid
	DefaultResetTokenTTL = time.Hour
	resetTokenBytes      = 32
)

// Config holds the auth flow settings
type Config struct {
	// ResetURLBase is the page that receives ?token=...&email=...
	ResetURLBase  string
	ResetTokenTTL time.Duration
}

type authService struct {
	users     users.UserService
	userRepo  users.UserRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	resets    ResetTokenStore
	mailer    mail.Mailer
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
	cfg       Config
}

// NewAuthService creates the auth service
func NewAuthService(
	userService users.UserService,
	userRepo users.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	resets ResetTokenStore,
	mailer mail.Mailer,
	publisher events.Publisher,
	cfg Config,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if mailer == nil {
		mailer = mail.NewLogMailer(logger)
	}
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = DefaultResetTokenTTL
	}
	return &authService{
		users:     userService,
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		resets:    resets,
		mailer:    mailer,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		cfg:       cfg,
	}
}

// Register creates the account, signs the user in and sends a welcome email
// The welcome email is best effort
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validatePassword("password", req.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, users.CreateUserRequest{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Bio:          req.Bio,
		AvatarURL:    req.AvatarURL,
		IsPrivate:    req.IsPrivate,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, mail.WelcomeMessage(user.Email, user.Username)); err != nil {
		s.logger.Warn("welcome email failed", "user_id", user.ID, "error", err)
	}
	events.PublishBestEffort(ctx, s.publisher, s.logger, events.SubjectUserRegistered, map[string]any{
		"userId":   user.ID,
		"username": user.Username,
	})

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return resp, nil
}

// Login verifies email and password and issues a fresh token pair
func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, users.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// Refresh rotates the refresh token. The presented token must be the one
// currently stored for its subject and must not be expired.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	subject, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByRefreshToken(ctx, security.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load refresh token owner: %w", err)
	}
	if user.ID != subject {
		return nil, ErrInvalidRefreshToken
	}
	if user.RefreshTokenExpiresAt == nil || !user.RefreshTokenExpiresAt.After(s.now()) {
		return nil, ErrInvalidRefreshToken
	}

	return s.issue(ctx, user)
}

// Logout revokes the stored refresh token
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrInvalidCredentials
	}
	return s.userRepo.SetRefreshToken(ctx, userID, "", nil)
}

// ForgotPassword stores a single-use reset token and emails the link
// Returns users.ErrUserNotFound for unknown emails
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = users.NormalizeEmail(email)
	if email == "" {
		return NewValidationError("email", "email is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := security.RandomToken(resetTokenBytes)
	if err != nil {
		return err
	}
	if err := s.resets.Save(ctx, token, user.Email, s.cfg.ResetTokenTTL); err != nil {
		return err
	}

	link := s.resetLink(token, user.Email)
	if err := s.mailer.Send(ctx, mail.PasswordResetMessage(user.Email, link, s.cfg.ResetTokenTTL.String())); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

// ResetPassword consumes the token and replaces the password.
// The token is consumed even when the email does not match.
// All sessions are revoked on success.
func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.Token == "" {
		return NewValidationError("token", "token is required")
	}
	if err := validatePassword("newPassword", req.NewPassword); err != nil {
		return err
	}
	email := users.NormalizeEmail(req.Email)

	storedEmail, err := s.resets.Consume(ctx, req.Token)
	if err != nil {
		return err
	}
	if storedEmail != email {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	if err := s.userRepo.SetRefreshToken(ctx, user.ID, "", nil); err != nil {
		return err
	}

	s.logger.Info("password reset", "user_id", user.ID)
	return nil
}

// issue creates a token pair and stores the hashed refresh token
func (s *authService) issue(ctx context.Context, user *users.User) (*AuthResponse, error) {
	pair, err := s.tokens.GenerateTokens(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	expires := pair.RefreshExpiresAt
	if err := s.userRepo.SetRefreshToken(ctx, user.ID, security.HashToken(pair.RefreshToken), &expires); err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Tokens: pair}, nil
}

func (s *authService) resetLink(token, email string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("email", email)
	if s.cfg.ResetURLBase == "" {
		return "?" + q.Encode()
	}
	return s.cfg.ResetURLBase + "?" + q.Encode()
}

func validatePassword(field, password string) error {
	if len(password) < MinPasswordLength {
		return NewValidationError(field, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if len(password) > MaxPasswordLength {
		return NewValidationError(field, fmt.Sprintf("password must be at most %d characters", MaxPasswordLength))
	}
	return nil
}
