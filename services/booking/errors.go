package booking

import "errors"

// Error taxonomy for the booking engine. Callers branch with errors.Is; user
// surfaces translate these into single-line plain-text messages.
var (
	// ErrNotFound covers an absent entity: unknown vaccine, unknown
	// appointment id.
	ErrNotFound = errors.New("not found")

	// ErrConflict is the double-booking race: a concurrent reservation
	// claimed the caregiver between lookup and insert.
	ErrConflict = errors.New("caregiver already booked")

	// ErrInsufficientStock means the vaccine has no doses left.
	ErrInsufficientStock = errors.New("not enough available doses")

	// ErrNoCaregiverAvailable means no caregiver is free on the date.
	ErrNoCaregiverAvailable = errors.New("no caregiver available")

	// ErrInvalidArgument covers malformed input: bad date text, negative
	// dose count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthenticated means the call carried no actor session.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrForbidden means the actor is not permitted to perform the
	// operation: wrong role, or not a party to the appointment.
	ErrForbidden = errors.New("forbidden")

	// ErrCancellationFailed means a cancellation could not complete and
	// left the appointment in place.
	ErrCancellationFailed = errors.New("cancellation failed")

	// ErrConsistencyViolation is fatal: a dose was decremented or lost
	// with no compensating restoration possible. It is logged for the
	// operator and never silently retried.
	ErrConsistencyViolation = errors.New("inventory consistency violation")
)
