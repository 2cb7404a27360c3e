package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/admin"
)

// AdminService manages admin panel accounts
type AdminService struct {
	client *ent.Client
}

// NewAdminService creates a new AdminService
func NewAdminService(client *ent.Client) *AdminService {
	return &AdminService{client: client}
}

// HashPassword returns the SHA-256 hex digest under which passwords are
// stored and compared.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// BootstrapAdmin ensures the base admin account from config exists. Safe to
// call on every startup; an existing account is left untouched.
func (s *AdminService) BootstrapAdmin(ctx context.Context, email, password string) (*ent.Admin, error) {
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if password == "" {
		return nil, NewValidationError("password", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	a, err := s.client.Admin.Create().
		SetEmail(email).
		SetPassword(HashPassword(password)).
		Save(ctx)
	if err == nil {
		return a, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	a, err = s.client.Admin.Query().
		Where(admin.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing admin: %w", err)
	}

	return a, nil
}

// GetAdminByEmail returns the admin with the given email, or nil without
// error when no such account exists.
func (s *AdminService) GetAdminByEmail(ctx context.Context, email string) (*ent.Admin, error) {
	if email == "" {
		return nil, NewValidationError("email", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	a, err := s.client.Admin.Query().
		Where(admin.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}

// Authenticate verifies a login attempt. Unknown emails and wrong passwords
// both come back as ErrInvalidCredentials.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (*ent.Admin, error) {
	a, err := s.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}

	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(a.Password), []byte(digest)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return a, nil
}
