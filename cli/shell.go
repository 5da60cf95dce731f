package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"vaxsched/models"
	"vaxsched/services/account"
	"vaxsched/services/booking"
)

const dateLayout = "2006-01-02"

// Shell is the line-oriented command surface: one terminal, at most one
// logged-in actor. All scheduling goes through the booking engine with the
// session passed explicitly.
type Shell struct {
	Engine    booking.Engine
	Directory account.DirectoryService
	In        io.Reader
	Out       io.Writer

	session *models.Session
}

func New(engine booking.Engine, directory account.DirectoryService) *Shell {
	return &Shell{
		Engine:    engine,
		Directory: directory,
		In:        os.Stdin,
		Out:       os.Stdout,
	}
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.Out, format+"\n", args...)
}

func (s *Shell) printBanner() {
	s.printf("")
	s.printf("Welcome to the Vaccine Reservation Scheduling Application!")
	s.printf("*** Please enter one of the following commands ***")
	s.printf("> create_patient <username> <password>")
	s.printf("> create_caregiver <username> <password>")
	s.printf("> login_patient <username> <password>")
	s.printf("> login_caregiver <username> <password>")
	s.printf("> search_caregiver_schedule <date>")
	s.printf("> reserve <date> <vaccine>")
	s.printf("> upload_availability <date>")
	s.printf("> cancel <appointment_id>")
	s.printf("> add_doses <vaccine> <number>")
	s.printf("> show_appointments")
	s.printf("> logout")
	s.printf("> quit")
	s.printf("")
}

// Run reads commands until quit or EOF.
func (s *Shell) Run(ctx context.Context) error {
	s.printBanner()

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			s.printf("Please try again!")
			continue
		}
		if tokens[0] == "quit" {
			s.printf("Bye!")
			return nil
		}
		s.dispatch(ctx, tokens)
	}
}

func (s *Shell) dispatch(ctx context.Context, tokens []string) {
	switch tokens[0] {
	case "create_patient":
		s.createAccount(ctx, tokens, models.RolePatient)
	case "create_caregiver":
		s.createAccount(ctx, tokens, models.RoleCaregiver)
	case "login_patient":
		s.login(ctx, tokens, models.RolePatient)
	case "login_caregiver":
		s.login(ctx, tokens, models.RoleCaregiver)
	case "search_caregiver_schedule":
		s.searchCaregiverSchedule(ctx, tokens)
	case "reserve":
		s.reserve(ctx, tokens)
	case "upload_availability":
		s.uploadAvailability(ctx, tokens)
	case "cancel":
		s.cancel(ctx, tokens)
	case "add_doses":
		s.addDoses(ctx, tokens)
	case "show_appointments":
		s.showAppointments(ctx)
	case "logout":
		s.logout()
	default:
		s.printf("Invalid operation name!")
	}
}

// parseDate validates calendar-date text; anything time.Parse rejects is
// refused before any state can be touched.
func parseDate(text string) (string, error) {
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}
