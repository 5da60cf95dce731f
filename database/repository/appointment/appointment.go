package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"vaxsched/database"
	"vaxsched/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no appointment exists with the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrCaregiverBooked means the caregiver already has an appointment on
	// that date; a racing reservation claimed the slot first.
	ErrCaregiverBooked = errors.New("caregiver already booked on this date")
)

// AppointmentRepository owns the appointment records.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	Delete(ctx context.Context, id uint) (string, error)
	ListForActor(ctx context.Context, username string, role models.Role) ([]models.Appointment, error)
}

// GormAppointmentRepo implements AppointmentRepository using GORM.
type GormAppointmentRepo struct{}

func NewGormAppointmentRepo() *GormAppointmentRepo {
	return &GormAppointmentRepo{}
}

// Create durably stores the appointment and fills in its generated id. The
// unique (caregiver, date) index makes the insert itself the double-booking
// check: the race between lookup and insert collapses into ErrCaregiverBooked.
func (repo *GormAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	err := database.DB.WithContext(ctx).Create(appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCaregiverBooked
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by id.
func (repo *GormAppointmentRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := database.DB.WithContext(ctx).First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve appointment %d: %w", id, err)
	}
	return &appt, nil
}

// Delete removes the appointment and returns the vaccine name of the deleted
// record so the caller can restore the dose it consumed. A concurrent double
// cancel resolves to ErrNotFound for the loser.
func (repo *GormAppointmentRepo) Delete(ctx context.Context, id uint) (string, error) {
	var appt models.Appointment
	err := database.DB.WithContext(ctx).First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to retrieve appointment %d: %w", id, err)
	}
	res := database.DB.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return "", fmt.Errorf("failed to delete appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return "", ErrNotFound
	}
	return appt.VaccineName, nil
}

// ListForActor returns the actor's appointments ordered by id ascending.
func (repo *GormAppointmentRepo) ListForActor(ctx context.Context, username string, role models.Role) ([]models.Appointment, error) {
	column := "patient_username"
	if role == models.RoleCaregiver {
		column = "caregiver_username"
	}
	var appts []models.Appointment
	err := database.DB.WithContext(ctx).
		Where(column+" = ?", username).
		Order("id ASC").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for %q: %w", username, err)
	}
	return appts, nil
}
