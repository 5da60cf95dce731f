package booking

import (
	"context"

	appointmentRepo "vaxsched/database/repository/appointment"
	availabilityRepo "vaxsched/database/repository/availability"
	inventoryRepo "vaxsched/database/repository/inventory"
	"vaxsched/models"
)

// Reservation is the result of a successful Reserve call.
type Reservation struct {
	AppointmentID uint   `json:"appointment_id"`
	Caregiver     string `json:"caregiver"`
}

// Engine defines the interface for the booking engine. Every call takes the
// authenticated actor session explicitly; a nil session is rejected.
type Engine interface {
	Reserve(ctx context.Context, sess *models.Session, date, vaccineName string) (*Reservation, error)
	Cancel(ctx context.Context, sess *models.Session, appointmentID uint) error
	PublishAvailability(ctx context.Context, sess *models.Session, date string) error
	AddDoses(ctx context.Context, sess *models.Session, vaccineName string, count int) error
	Schedule(ctx context.Context, sess *models.Session, date string) ([]models.ScheduleRow, error)
	Appointments(ctx context.Context, sess *models.Session) ([]models.Appointment, error)
}

// DefaultBookingEngine orchestrates the three stores. It is the sole writer
// of appointments and the sole trigger of dose mutation; the stores never
// call each other, so cross-entity consistency is reasoned about here and
// nowhere else.
type DefaultBookingEngine struct {
	Inventory    inventoryRepo.InventoryRepository
	Availability availabilityRepo.AvailabilityRepository
	Registry     appointmentRepo.AppointmentRepository

	// MaxReserveAttempts bounds the optimistic retry loop in Reserve.
	// Zero means the default.
	MaxReserveAttempts int
}

const defaultMaxReserveAttempts = 3

func (e *DefaultBookingEngine) maxAttempts() int {
	if e.MaxReserveAttempts > 0 {
		return e.MaxReserveAttempts
	}
	return defaultMaxReserveAttempts
}

func requireSession(sess *models.Session) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	return nil
}

func requireRole(sess *models.Session, role models.Role) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if sess.Role != role {
		return ErrForbidden
	}
	return nil
}
