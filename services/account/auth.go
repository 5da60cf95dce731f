package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	accountRepo "vaxsched/database/repository/account"
	"vaxsched/models"
	"vaxsched/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// passwordSymbols are the special characters the strength policy accepts.
const passwordSymbols = "!@#?"

// verifyPasswordComplexity checks that the password is at least 8 characters
// and contains an uppercase letter, a lowercase letter, a digit, and one of
// the accepted symbols.
func verifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, c := range pw {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new patient or caregiver account with a bcrypt-hashed
// password.
func (s *DefaultDirectoryService) Register(ctx context.Context, username, password string, role models.Role) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}
	if err := verifyPasswordComplexity(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}

	acct := &models.Account{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, acct); err != nil {
		if errors.Is(err, accountRepo.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		utils.GetLogger().Error("Failed to create account", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	return nil
}

// Login verifies the credentials and returns a fresh session value carrying
// the actor's identity and role.
func (s *DefaultDirectoryService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	acct, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, accountRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Failed to load account for login", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &models.Session{
		Token:      uuid.New().String(),
		Username:   acct.Username,
		Role:       acct.Role,
		LoggedInAt: time.Now(),
	}, nil
}
