package availabilityRepo

import (
	"context"
	"errors"
	"fmt"

	"vaxsched/database"
	"vaxsched/models"

	"gorm.io/gorm"
)

var (
	// ErrAlreadyPublished means the caregiver already opened this date.
	ErrAlreadyPublished = errors.New("availability already published")
	// ErrNoneAvailable means no caregiver is free on the requested date.
	ErrNoneAvailable = errors.New("no caregiver available")
)

// AvailabilityRepository owns caregiver-by-date availability records.
type AvailabilityRepository interface {
	Publish(ctx context.Context, caregiverUsername, date string) error
	FindAvailableCaregiver(ctx context.Context, date string) (string, error)
	Schedule(ctx context.Context, date string) ([]models.ScheduleRow, error)
}

// GormAvailabilityRepo implements AvailabilityRepository using GORM.
type GormAvailabilityRepo struct{}

func NewGormAvailabilityRepo() *GormAvailabilityRepo {
	return &GormAvailabilityRepo{}
}

// Publish registers that the caregiver is open on the given date. Publishing
// twice for the same (caregiver, date) pair is rejected, not treated as a
// no-op; the composite primary key enforces this.
func (repo *GormAvailabilityRepo) Publish(ctx context.Context, caregiverUsername, date string) error {
	record := models.CaregiverAvailability{CaregiverUsername: caregiverUsername, Date: date}
	err := database.DB.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyPublished
		}
		return fmt.Errorf("failed to publish availability for %q on %s: %w", caregiverUsername, date, err)
	}
	return nil
}

// FindAvailableCaregiver returns the lexicographically first caregiver with
// published availability on the date and no appointment booked for it. The
// deterministic ordering keeps caregiver selection reproducible and fair.
func (repo *GormAvailabilityRepo) FindAvailableCaregiver(ctx context.Context, date string) (string, error) {
	var username string
	err := database.DB.WithContext(ctx).
		Table("caregiver_availabilities AS av").
		Select("av.caregiver_username").
		Joins("LEFT JOIN appointments ap ON ap.caregiver_username = av.caregiver_username AND ap.date = av.date").
		Where("av.date = ? AND ap.id IS NULL", date).
		Order("av.caregiver_username ASC").
		Limit(1).
		Scan(&username).Error
	if err != nil {
		return "", fmt.Errorf("failed to find available caregiver on %s: %w", date, err)
	}
	if username == "" {
		return "", ErrNoneAvailable
	}
	return username, nil
}

// Schedule returns the cross join of caregivers publishing for the date
// against all known vaccines, ordered by caregiver then vaccine name.
func (repo *GormAvailabilityRepo) Schedule(ctx context.Context, date string) ([]models.ScheduleRow, error) {
	var rows []models.ScheduleRow
	err := database.DB.WithContext(ctx).
		Table("caregiver_availabilities AS av").
		Select("av.caregiver_username AS caregiver_username, ap.id IS NULL AS available, v.name AS vaccine_name, v.doses AS doses").
		Joins("CROSS JOIN vaccines v").
		Joins("LEFT JOIN appointments ap ON ap.caregiver_username = av.caregiver_username AND ap.date = av.date").
		Where("av.date = ?", date).
		Order("av.caregiver_username ASC, v.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule for %s: %w", date, err)
	}
	return rows, nil
}
