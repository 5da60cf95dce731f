package booking

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "vaxsched/database/repository/availability"
	"vaxsched/models"
)

// PublishAvailability opens a date for bookings against the calling
// caregiver. Publishing the same date twice is rejected.
func (e *DefaultBookingEngine) PublishAvailability(ctx context.Context, sess *models.Session, date string) error {
	if err := requireRole(sess, models.RoleCaregiver); err != nil {
		return err
	}
	err := e.Availability.Publish(ctx, sess.Username, date)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAlreadyPublished) {
			return fmt.Errorf("availability for %s: %w", date, ErrConflict)
		}
		return fmt.Errorf("availability publish failed: %w", err)
	}
	return nil
}

// AddDoses adds count doses to the named vaccine, creating it on first use.
func (e *DefaultBookingEngine) AddDoses(ctx context.Context, sess *models.Session, vaccineName string, count int) error {
	if err := requireRole(sess, models.RoleCaregiver); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("dose count must be non-negative: %w", ErrInvalidArgument)
	}
	if err := e.Inventory.AddDoses(ctx, vaccineName, count); err != nil {
		return fmt.Errorf("adding doses failed: %w", err)
	}
	return nil
}

// Schedule lists every caregiver publishing availability for the date
// against every known vaccine.
func (e *DefaultBookingEngine) Schedule(ctx context.Context, sess *models.Session, date string) ([]models.ScheduleRow, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	rows, err := e.Availability.Schedule(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("schedule lookup failed: %w", err)
	}
	return rows, nil
}

// Appointments lists the calling actor's appointments, oldest id first.
func (e *DefaultBookingEngine) Appointments(ctx context.Context, sess *models.Session) ([]models.Appointment, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	appts, err := e.Registry.ListForActor(ctx, sess.Username, sess.Role)
	if err != nil {
		return nil, fmt.Errorf("appointment listing failed: %w", err)
	}
	return appts, nil
}
