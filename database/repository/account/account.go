package accountRepo

import (
	"context"
	"errors"
	"fmt"

	"vaxsched/database"
	"vaxsched/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no account exists with the given username.
	ErrNotFound = errors.New("account not found")
	// ErrUsernameTaken means an account with this username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

// GormAccountRepo implements AccountRepository using GORM.
type GormAccountRepo struct{}

func NewGormAccountRepo() *GormAccountRepo {
	return &GormAccountRepo{}
}

// Create inserts a new account record. The username primary key rejects
// duplicates, including a racing registration of the same name.
func (repo *GormAccountRepo) Create(ctx context.Context, account *models.Account) error {
	err := database.DB.WithContext(ctx).Create(account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create account %q: %w", account.Username, err)
	}
	return nil
}

// GetByUsername retrieves an account by username.
func (repo *GormAccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	err := database.DB.WithContext(ctx).First(&account, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve account %q: %w", username, err)
	}
	return &account, nil
}
