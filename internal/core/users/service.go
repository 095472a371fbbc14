package users

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"

	"Parlor/internal/core/policy"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

const (
	// MaxUsernameLength is the column width of users.username
	MaxUsernameLength = 50
	// MaxEmailLength is the column width of users.email
	MaxEmailLength = 100
	// MaxBioLength is measured in grapheme clusters
	MaxBioLength = 500
	// MaxListLimit caps ListUsers page size
	MaxListLimit = 100
)

// Usernames are ASCII letters, digits, underscores, dots and hyphens
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

type userService struct {
	userRepo UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser validates and persists a new user
// Duplicate username/email are reported by the repository
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = NormalizeEmail(req.Email)

	if err := ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Bio != nil {
		if err := validateBio(*req.Bio); err != nil {
			return nil, err
		}
	}
	if req.PasswordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	user := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		AvatarURL:    req.AvatarURL,
		Bio:          req.Bio,
		IsPrivate:    req.IsPrivate,
	}

	return s.userRepo.Create(ctx, user)
}

// GetUserByID retrieves a user by id
func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	if id == uuid.Nil {
		return nil, NewValidationError("id", "user id is required")
	}
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by their (normalized) email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, NewValidationError("email", "email is required")
	}
	return s.userRepo.GetByEmail(ctx, email)
}

// ListUsers returns users ordered by creation time
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]*User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the non-nil fields of req to the user
func (s *userService) UpdateProfile(ctx context.Context, actorID, id uuid.UUID, req UpdateProfileRequest) (*User, error) {
	if !policy.CanModify(actorID, id) {
		return nil, ErrNotAuthorized
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if err := ValidateUsername(username); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if req.Bio != nil {
		if err := validateBio(*req.Bio); err != nil {
			return nil, err
		}
		// Empty bio clears the field
		if *req.Bio == "" {
			user.Bio = nil
		} else {
			bio := *req.Bio
			user.Bio = &bio
		}
	}
	if req.AvatarURL != nil {
		if *req.AvatarURL == "" {
			user.AvatarURL = nil
		} else {
			avatar := *req.AvatarURL
			user.AvatarURL = &avatar
		}
	}
	if req.IsPrivate != nil {
		user.IsPrivate = *req.IsPrivate
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", id)
	return updated, nil
}

// DeleteAccount removes the actor's own account
func (s *userService) DeleteAccount(ctx context.Context, actorID, id uuid.UUID) error {
	if !policy.CanModify(actorID, id) {
		return ErrNotAuthorized
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("account deleted", "user_id", id)
	return nil
}

// GetProfile retrieves a user's public profile with stats
// A stats failure degrades to a profile without stats
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		IsPrivate: user.IsPrivate,
		CreatedAt: user.CreatedAt,
	}

	stats, err := s.userRepo.GetProfileStats(ctx, id)
	if err != nil {
		s.logger.Warn("failed to load profile stats", "user_id", id, "error", err)
		return view, nil
	}
	view.Stats = stats

	return view, nil
}

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateUsername checks length and character set
func ValidateUsername(username string) error {
	if username == "" {
		return NewValidationError("username", "username is required")
	}
	if len(username) > MaxUsernameLength {
		return NewValidationError("username", fmt.Sprintf("username must be at most %d characters", MaxUsernameLength))
	}
	if !usernameRegex.MatchString(username) {
		return NewValidationError("username", "username may contain only letters, digits, '_', '.' and '-'")
	}
	return nil
}

// ValidateEmail checks the email is a bare, well-formed address
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "email is required")
	}
	if len(email) > MaxEmailLength {
		return NewValidationError("email", fmt.Sprintf("email must be at most %d characters", MaxEmailLength))
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return NewValidationError("email", "invalid email address")
	}
	return nil
}

func validateBio(bio string) error {
	if uniseg.GraphemeClusterCount(bio) > MaxBioLength {
		return NewValidationError("bio", fmt.Sprintf("bio must be at most %d characters", MaxBioLength))
	}
	return nil
}
