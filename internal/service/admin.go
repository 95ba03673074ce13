// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/petsparadise/petsparadise/internal/auth"
	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/repository"
)

// Admin service errors.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrAdminNotFound      = errors.New("admin not found")
)

// AdminStore is the persistence surface the admin service depends on.
type AdminStore interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) error
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*model.Admin, error)
	UpdateAdminPassword(ctx context.Context, id, passwordHash string) error
}

// AdminService manages administrator credentials.
type AdminService struct {
	store  AdminStore
	logger *slog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(store AdminStore, logger *slog.Logger) *AdminService {
	return &AdminService{store: store, logger: logger}
}

// Register creates a new administrator account. The username is
// normalized to lowercase so identity is case-insensitive.
func (s *AdminService) Register(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	admin := &model.Admin{
		ID:           newID(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// Login verifies credentials and returns the matching administrator.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	admin, err := s.store.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !auth.VerifyPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// Profile returns the administrator record for the given ID.
func (s *AdminService) Profile(ctx context.Context, id string) (*model.Admin, error) {
	admin, err := s.store.GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin profile: %w", err)
	}
	return admin, nil
}

// ChangePassword replaces the stored hash after verifying the current
// password.
func (s *AdminService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrMissingCredentials
	}

	admin, err := s.store.GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to load admin: %w", err)
	}

	if !auth.VerifyPassword(currentPassword, admin.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.UpdateAdminPassword(ctx, id, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// EnsureDefaultAdmin creates the configured bootstrap administrator if it
// does not already exist. A no-op when either value is empty.
func (s *AdminService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	username = strings.ToLower(strings.TrimSpace(username))
	if _, err := s.store.GetAdminByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return fmt.Errorf("failed to check default admin: %w", err)
	}

	if _, err := s.Register(ctx, username, password); err != nil {
		// Lost a race with another instance creating the same account.
		if errors.Is(err, ErrUsernameTaken) {
			return nil
		}
		return err
	}

	s.logger.Info("default admin user created", slog.String("username", username))
	return nil
}

// newID returns a lexicographically sortable unique entity ID.
func newID() string {
	return ulid.Make().String()
}
