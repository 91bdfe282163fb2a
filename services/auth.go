package services

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"academy/config"
	"academy/models"
	"academy/utils"
)

// AuthService couples identity and profile: whenever an identity is
// created, its profile row is created in the same step.
type AuthService struct {
	users  *UserService
	cfg    *config.Config
	logger *log.Logger
}

func NewAuthService(users *UserService, cfg *config.Config, logger *log.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, logger: logger}
}

// SignUp registers a new student account and returns the profile with a
// signed token.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (models.Profile, string, error) {
	return s.create(ctx, name, email, password, models.RoleStudent)
}

// CreateUser provisions an account with an explicit role. Used by the admin
// user panel.
func (s *AuthService) CreateUser(ctx context.Context, name, email, password string, role models.Role) (models.Profile, string, error) {
	if !role.Valid() {
		role = models.RoleStudent
	}
	return s.create(ctx, name, email, password, role)
}

func (s *AuthService) create(ctx context.Context, name, email, password string, role models.Role) (models.Profile, string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.Profile{}, "", ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, "", err
	}

	profile, err := s.users.Save(ctx, models.Profile{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Avatar:       models.DefaultAvatar,
		Status:       models.UserActive,
	})
	if err != nil {
		return models.Profile{}, "", err
	}

	token, err := utils.GenerateJWTToken(profile, s.cfg)
	if err != nil {
		return models.Profile{}, "", err
	}
	return profile, token, nil
}

// SignIn checks credentials against the synced profile collection, so a
// user who signed in before can still sign in while the backend is down.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (models.Profile, string, error) {
	profile, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return models.Profile{}, "", ErrInvalidCredentials
	}
	if profile.Status == models.UserInactive {
		return models.Profile{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return models.Profile{}, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(profile, s.cfg)
	if err != nil {
		return models.Profile{}, "", err
	}
	return profile, token, nil
}

// CurrentUser resolves the authenticated profile. If the profile row is
// missing (identity exists, insert lagged), a minimal placeholder is
// returned instead of failing the session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string, role models.Role) models.Profile {
	profile, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.Profile{
			ID:     userID,
			Name:   "User",
			Role:   role,
			Avatar: models.DefaultAvatar,
			Status: models.UserActive,
		}
	}
	return profile
}

// EnsureDefaultAdmin creates the bootstrap admin account on first start.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) {
	if _, err := s.users.FindByEmail(ctx, s.cfg.AdminEmail); err == nil {
		return
	} else if !errors.Is(err, ErrNotFound) {
		return
	}

	if _, _, err := s.create(ctx, "Administrator", s.cfg.AdminEmail, s.cfg.AdminPassword, models.RoleAdmin); err != nil {
		s.logger.Printf("default admin setup failed: %v", err)
		return
	}
	s.logger.Printf("default admin account created for %s", s.cfg.AdminEmail)
}
