package inventoryRepo

import (
	"context"
	"errors"
	"fmt"

	"vaxsched/database"
	"vaxsched/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrVaccineNotFound means no vaccine row exists for the given name.
	ErrVaccineNotFound = errors.New("vaccine not found")
	// ErrInsufficientDoses means the vaccine exists but has zero doses left.
	ErrInsufficientDoses = errors.New("insufficient doses")
)

// InventoryRepository owns vaccine dose counts. Each mutation is a single
// guarded statement, so two concurrent callers can never both take the last
// dose and the count can never go negative.
type InventoryRepository interface {
	CheckAndReserveDose(ctx context.Context, vaccineName string) error
	RestoreDose(ctx context.Context, vaccineName string) error
	AddDoses(ctx context.Context, vaccineName string, count int) error
	GetDoses(ctx context.Context, vaccineName string) (int, error)
}

// GormInventoryRepo implements InventoryRepository using GORM.
type GormInventoryRepo struct{}

func NewGormInventoryRepo() *GormInventoryRepo {
	return &GormInventoryRepo{}
}

// CheckAndReserveDose atomically decrements the dose count by one. The
// doses > 0 guard makes the check and the decrement a single unit of work.
func (repo *GormInventoryRepo) CheckAndReserveDose(ctx context.Context, vaccineName string) error {
	res := database.DB.WithContext(ctx).
		Model(&models.Vaccine{}).
		Where("name = ? AND doses > 0", vaccineName).
		UpdateColumn("doses", gorm.Expr("doses - 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to reserve dose for %q: %w", vaccineName, res.Error)
	}
	if res.RowsAffected == 0 {
		// Distinguish an unknown vaccine from exhausted stock.
		var count int64
		if err := database.DB.WithContext(ctx).
			Model(&models.Vaccine{}).
			Where("name = ?", vaccineName).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up vaccine %q: %w", vaccineName, err)
		}
		if count == 0 {
			return ErrVaccineNotFound
		}
		return ErrInsufficientDoses
	}
	return nil
}

// RestoreDose atomically increments the dose count by one.
func (repo *GormInventoryRepo) RestoreDose(ctx context.Context, vaccineName string) error {
	res := database.DB.WithContext(ctx).
		Model(&models.Vaccine{}).
		Where("name = ?", vaccineName).
		UpdateColumn("doses", gorm.Expr("doses + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to restore dose for %q: %w", vaccineName, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrVaccineNotFound
	}
	return nil
}

// AddDoses creates the vaccine with the given count, or atomically adds the
// count to the existing row. Callers validate that count is non-negative.
func (repo *GormInventoryRepo) AddDoses(ctx context.Context, vaccineName string, count int) error {
	vaccine := models.Vaccine{Name: vaccineName, Doses: count}
	err := database.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"doses": gorm.Expr("doses + ?", count)}),
		}).
		Create(&vaccine).Error
	if err != nil {
		return fmt.Errorf("failed to add doses for %q: %w", vaccineName, err)
	}
	return nil
}

// GetDoses returns the current dose count for a vaccine.
func (repo *GormInventoryRepo) GetDoses(ctx context.Context, vaccineName string) (int, error) {
	var vaccine models.Vaccine
	err := database.DB.WithContext(ctx).First(&vaccine, "name = ?", vaccineName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrVaccineNotFound
		}
		return 0, fmt.Errorf("failed to retrieve vaccine %q: %w", vaccineName, err)
	}
	return vaccine.Doses, nil
}
