package booking

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "vaxsched/database/repository/appointment"
	"vaxsched/models"
	"vaxsched/utils"

	"go.uber.org/zap"
)

// Cancel removes an appointment and restores the dose it consumed. Only the
// appointment's patient or caregiver may cancel it.
func (e *DefaultBookingEngine) Cancel(ctx context.Context, sess *models.Session, appointmentID uint) error {
	if err := requireSession(sess); err != nil {
		return err
	}

	appt, err := e.Registry.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return fmt.Errorf("appointment %d: %w", appointmentID, ErrNotFound)
		}
		return fmt.Errorf("appointment lookup failed: %w", err)
	}
	if sess.Username != appt.PatientUsername && sess.Username != appt.CaregiverUsername {
		return ErrForbidden
	}

	vaccineName, err := e.Registry.Delete(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			// A concurrent cancel got there first.
			return fmt.Errorf("appointment %d: %w", appointmentID, ErrNotFound)
		}
		return fmt.Errorf("%w: %v", ErrCancellationFailed, err)
	}

	// The appointment is gone; the dose it consumed must come back. A
	// failure here leaves a dose permanently lost, which is a broken
	// invariant, not an ordinary user error.
	if err := e.Inventory.RestoreDose(ctx, vaccineName); err != nil {
		utils.GetLogger().Error("dose restore failed after cancellation; a dose is lost",
			zap.Uint("appointmentID", appointmentID),
			zap.String("vaccine", vaccineName),
			zap.Error(err))
		return fmt.Errorf("appointment %d deleted but dose not restored: %w", appointmentID, ErrConsistencyViolation)
	}
	return nil
}
