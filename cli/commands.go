package cli

import (
	"context"
	"errors"
	"strconv"

	"vaxsched/models"
	"vaxsched/services/account"
	"vaxsched/services/booking"
)

func (s *Shell) createAccount(ctx context.Context, tokens []string, role models.Role) {
	if len(tokens) != 3 {
		s.printf("Failed to create user.")
		return
	}
	err := s.Directory.Register(ctx, tokens[1], tokens[2], role)
	switch {
	case err == nil:
		s.printf("Created user %s", tokens[1])
	case errors.Is(err, account.ErrWeakPassword):
		s.printf("Password does not meet the strength requirements.")
	case errors.Is(err, account.ErrUsernameTaken):
		s.printf("Username taken, try again!")
	default:
		s.printf("Failed to create user.")
	}
}

func (s *Shell) login(ctx context.Context, tokens []string, role models.Role) {
	if s.session != nil {
		s.printf("User already logged in.")
		return
	}
	if len(tokens) != 3 {
		s.printf("Login failed.")
		return
	}
	sess, err := s.Directory.Login(ctx, tokens[1], tokens[2])
	if err != nil || sess.Role != role {
		s.printf("Login failed.")
		return
	}
	s.session = sess
	s.printf("Logged in as: %s", sess.Username)
}

func (s *Shell) searchCaregiverSchedule(ctx context.Context, tokens []string) {
	if len(tokens) != 2 {
		s.printf("Please enter a valid date!")
		return
	}
	date, err := parseDate(tokens[1])
	if err != nil {
		s.printf("Please enter a valid date!")
		return
	}
	rows, err := s.Engine.Schedule(ctx, s.session, date)
	switch {
	case errors.Is(err, booking.ErrUnauthenticated):
		s.printf("Please login first!")
	case err != nil:
		s.printf("Error occurred when searching caregiver schedule")
	default:
		for _, row := range rows {
			availability := "Available"
			if !row.Available {
				availability = "Not Available"
			}
			s.printf("%s - %s - Vaccine: %s - Doses: %d",
				row.CaregiverUsername, availability, row.VaccineName, row.Doses)
		}
	}
}

func (s *Shell) reserve(ctx context.Context, tokens []string) {
	if len(tokens) != 3 {
		s.printf("Please enter a valid date and vaccine name!")
		return
	}
	date, err := parseDate(tokens[1])
	if err != nil {
		s.printf("Please enter a valid date!")
		return
	}
	res, err := s.Engine.Reserve(ctx, s.session, date, tokens[2])
	switch {
	case err == nil:
		s.printf("Appointment ID: %d, Caregiver username: %s", res.AppointmentID, res.Caregiver)
	case errors.Is(err, booking.ErrUnauthenticated):
		s.printf("Please login first!")
	case errors.Is(err, booking.ErrForbidden):
		s.printf("Please login as a patient!")
	case errors.Is(err, booking.ErrNoCaregiverAvailable):
		s.printf("No Caregiver is available!")
	case errors.Is(err, booking.ErrInsufficientStock), errors.Is(err, booking.ErrNotFound):
		s.printf("Not enough available doses!")
	case errors.Is(err, booking.ErrConsistencyViolation):
		s.printf("Reservation failed with an inventory inconsistency; please contact the operator.")
	default:
		s.printf("Error occurred when reserving appointment")
	}
}

func (s *Shell) uploadAvailability(ctx context.Context, tokens []string) {
	if len(tokens) != 2 {
		s.printf("Please try again!")
		return
	}
	date, err := parseDate(tokens[1])
	if err != nil {
		s.printf("Please enter a valid date!")
		return
	}
	err = s.Engine.PublishAvailability(ctx, s.session, date)
	switch {
	case err == nil:
		s.printf("Availability uploaded!")
	case errors.Is(err, booking.ErrUnauthenticated), errors.Is(err, booking.ErrForbidden):
		s.printf("Please login as a caregiver first!")
	case errors.Is(err, booking.ErrConflict):
		s.printf("Availability already uploaded for this date!")
	default:
		s.printf("Error occurred when uploading availability")
	}
}

func (s *Shell) cancel(ctx context.Context, tokens []string) {
	if len(tokens) != 2 {
		s.printf("Please provide the appointment ID!")
		return
	}
	id, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil {
		s.printf("Please provide the appointment ID!")
		return
	}
	err = s.Engine.Cancel(ctx, s.session, uint(id))
	switch {
	case err == nil:
		s.printf("Appointment cancelled successfully.")
	case errors.Is(err, booking.ErrUnauthenticated):
		s.printf("Please login first!")
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, booking.ErrForbidden):
		s.printf("Appointment not found or does not belong to the current user.")
	case errors.Is(err, booking.ErrConsistencyViolation):
		s.printf("Cancellation hit an inventory inconsistency; please contact the operator.")
	default:
		s.printf("Error occurred when cancelling appointment")
	}
}

func (s *Shell) addDoses(ctx context.Context, tokens []string) {
	if len(tokens) != 3 {
		s.printf("Please try again!")
		return
	}
	count, err := strconv.Atoi(tokens[2])
	if err != nil {
		s.printf("Please enter a valid number of doses!")
		return
	}
	err = s.Engine.AddDoses(ctx, s.session, tokens[1], count)
	switch {
	case err == nil:
		s.printf("Doses updated!")
	case errors.Is(err, booking.ErrUnauthenticated), errors.Is(err, booking.ErrForbidden):
		s.printf("Please login as a caregiver first!")
	case errors.Is(err, booking.ErrInvalidArgument):
		s.printf("Please enter a valid number of doses!")
	default:
		s.printf("Error occurred when adding doses")
	}
}

func (s *Shell) showAppointments(ctx context.Context) {
	appts, err := s.Engine.Appointments(ctx, s.session)
	switch {
	case errors.Is(err, booking.ErrUnauthenticated):
		s.printf("Please login first!")
	case err != nil:
		s.printf("Error occurred when showing appointments")
	default:
		for _, appt := range appts {
			otherParty := appt.CaregiverUsername
			if s.session.Role == models.RoleCaregiver {
				otherParty = appt.PatientUsername
			}
			s.printf("Appointment ID: %d, Vaccine: %s, Date: %s, With: %s",
				appt.ID, appt.VaccineName, appt.Date, otherParty)
		}
	}
}

func (s *Shell) logout() {
	if s.session == nil {
		s.printf("No user is currently logged in.")
		return
	}
	s.printf("Logged out %s: %s", s.session.Role, s.session.Username)
	s.session = nil
}
