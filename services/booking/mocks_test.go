package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	appointmentRepo "vaxsched/database/repository/appointment"
	availabilityRepo "vaxsched/database/repository/availability"
	inventoryRepo "vaxsched/database/repository/inventory"
	"vaxsched/models"
)

// Compile-time checks that memStore implements every store interface the
// engine orchestrates.
var (
	_ inventoryRepo.InventoryRepository       = (*memStore)(nil)
	_ availabilityRepo.AvailabilityRepository = (*memStore)(nil)
	_ appointmentRepo.AppointmentRepository   = (*memStore)(nil)
)

// memStore is an in-memory stand-in for the three GORM repositories. Each
// method holds the mutex for its whole body, mirroring the per-statement
// atomicity of the real store; the races the engine must survive live in the
// gaps between calls, exactly as they do against MySQL.
type memStore struct {
	mu sync.Mutex

	doses        map[string]int
	availability map[string]map[string]bool // date -> caregiver set
	appointments map[uint]*models.Appointment
	byPair       map[string]uint // caregiver+date -> appointment id
	nextID       uint

	// Fault injection.
	conflictsToInject int // force Create to report a booked caregiver n times
	failRestores      int // force RestoreDose to fail n times
	restoreCalls      int
}

func newMemStore() *memStore {
	return &memStore{
		doses:        map[string]int{},
		availability: map[string]map[string]bool{},
		appointments: map[uint]*models.Appointment{},
		byPair:       map[string]uint{},
	}
}

func pairKey(caregiver, date string) string {
	return caregiver + "|" + date
}

func (m *memStore) CheckAndReserveDose(ctx context.Context, vaccineName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doses, ok := m.doses[vaccineName]
	if !ok {
		return inventoryRepo.ErrVaccineNotFound
	}
	if doses <= 0 {
		return inventoryRepo.ErrInsufficientDoses
	}
	m.doses[vaccineName] = doses - 1
	return nil
}

func (m *memStore) RestoreDose(ctx context.Context, vaccineName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restoreCalls++
	if m.failRestores > 0 {
		m.failRestores--
		return fmt.Errorf("simulated restore failure for %q", vaccineName)
	}
	if _, ok := m.doses[vaccineName]; !ok {
		return inventoryRepo.ErrVaccineNotFound
	}
	m.doses[vaccineName]++
	return nil
}

func (m *memStore) AddDoses(ctx context.Context, vaccineName string, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doses[vaccineName] += count
	return nil
}

func (m *memStore) GetDoses(ctx context.Context, vaccineName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doses, ok := m.doses[vaccineName]
	if !ok {
		return 0, inventoryRepo.ErrVaccineNotFound
	}
	return doses, nil
}

func (m *memStore) Publish(ctx context.Context, caregiverUsername, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.availability[date] == nil {
		m.availability[date] = map[string]bool{}
	}
	if m.availability[date][caregiverUsername] {
		return availabilityRepo.ErrAlreadyPublished
	}
	m.availability[date][caregiverUsername] = true
	return nil
}

func (m *memStore) FindAvailableCaregiver(ctx context.Context, date string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for caregiver := range m.availability[date] {
		if _, booked := m.byPair[pairKey(caregiver, date)]; !booked {
			names = append(names, caregiver)
		}
	}
	if len(names) == 0 {
		return "", availabilityRepo.ErrNoneAvailable
	}
	sort.Strings(names)
	return names[0], nil
}

func (m *memStore) Schedule(ctx context.Context, date string) ([]models.ScheduleRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var caregivers, vaccines []string
	for caregiver := range m.availability[date] {
		caregivers = append(caregivers, caregiver)
	}
	for vaccine := range m.doses {
		vaccines = append(vaccines, vaccine)
	}
	sort.Strings(caregivers)
	sort.Strings(vaccines)

	var rows []models.ScheduleRow
	for _, caregiver := range caregivers {
		_, booked := m.byPair[pairKey(caregiver, date)]
		for _, vaccine := range vaccines {
			rows = append(rows, models.ScheduleRow{
				CaregiverUsername: caregiver,
				Available:         !booked,
				VaccineName:       vaccine,
				Doses:             m.doses[vaccine],
			})
		}
	}
	return rows, nil
}

func (m *memStore) Create(ctx context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conflictsToInject > 0 {
		m.conflictsToInject--
		return appointmentRepo.ErrCaregiverBooked
	}
	key := pairKey(appt.CaregiverUsername, appt.Date)
	if _, exists := m.byPair[key]; exists {
		return appointmentRepo.ErrCaregiverBooked
	}
	m.nextID++
	appt.ID = m.nextID
	stored := *appt
	m.appointments[appt.ID] = &stored
	m.byPair[key] = appt.ID
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	copied := *appt
	return &copied, nil
}

func (m *memStore) Delete(ctx context.Context, id uint) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appointments[id]
	if !ok {
		return "", appointmentRepo.ErrNotFound
	}
	delete(m.appointments, id)
	delete(m.byPair, pairKey(appt.CaregiverUsername, appt.Date))
	return appt.VaccineName, nil
}

func (m *memStore) ListForActor(ctx context.Context, username string, role models.Role) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var appts []models.Appointment
	for _, appt := range m.appointments {
		if role == models.RoleCaregiver && appt.CaregiverUsername == username {
			appts = append(appts, *appt)
		}
		if role == models.RolePatient && appt.PatientUsername == username {
			appts = append(appts, *appt)
		}
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].ID < appts[j].ID })
	return appts, nil
}

func (m *memStore) appointmentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.appointments)
}

func newTestEngine(store *memStore) *DefaultBookingEngine {
	return &DefaultBookingEngine{
		Inventory:    store,
		Availability: store,
		Registry:     store,
	}
}

func patientSession(username string) *models.Session {
	return &models.Session{Token: "t-" + username, Username: username, Role: models.RolePatient}
}

func caregiverSession(username string) *models.Session {
	return &models.Session{Token: "t-" + username, Username: username, Role: models.RoleCaregiver}
}
