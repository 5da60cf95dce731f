package account

import (
	"context"
	"errors"

	accountRepo "vaxsched/database/repository/account"
	"vaxsched/models"
)

var (
	// ErrWeakPassword means the password fails the strength policy.
	ErrWeakPassword = errors.New("password does not meet the strength requirements")
	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; login failures are deliberately uniform.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// DirectoryService authenticates actors and hands out session values. It is
// the only component that ever sees a plain-text password.
type DirectoryService interface {
	Register(ctx context.Context, username, password string, role models.Role) error
	Login(ctx context.Context, username, password string) (*models.Session, error)
}

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Repo accountRepo.AccountRepository
}
