package booking

import (
	"context"
	"testing"

	"vaxsched/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDosesAccumulates(t *testing.T) {
	store := newMemStore()
	engine := newTestEngine(store)
	sess := caregiverSession("amy")

	require.NoError(t, engine.AddDoses(context.Background(), sess, "moderna", 10))
	require.NoError(t, engine.AddDoses(context.Background(), sess, "moderna", 5))

	doses, err := store.GetDoses(context.Background(), "moderna")
	require.NoError(t, err)
	assert.Equal(t, 15, doses)
}

func TestAddDosesRejectsNegativeCount(t *testing.T) {
	store := newMemStore()
	engine := newTestEngine(store)

	err := engine.AddDoses(context.Background(), caregiverSession("amy"), "moderna", -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = store.GetDoses(context.Background(), "moderna")
	assert.Error(t, err)
}

func TestAddDosesRequiresCaregiver(t *testing.T) {
	engine := newTestEngine(newMemStore())

	err := engine.AddDoses(context.Background(), nil, "moderna", 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	err = engine.AddDoses(context.Background(), patientSession("p1"), "moderna", 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPublishAvailabilityRejectsDuplicate(t *testing.T) {
	engine := newTestEngine(newMemStore())
	sess := caregiverSession("amy")

	require.NoError(t, engine.PublishAvailability(context.Background(), sess, "2024-06-01"))
	err := engine.PublishAvailability(context.Background(), sess, "2024-06-01")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPublishAvailabilityRequiresCaregiver(t *testing.T) {
	engine := newTestEngine(newMemStore())

	err := engine.PublishAvailability(context.Background(), nil, "2024-06-01")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	err = engine.PublishAvailability(context.Background(), patientSession("p1"), "2024-06-01")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestScheduleCrossJoinsCaregiversAndVaccines(t *testing.T) {
	store := newMemStore()
	store.doses["moderna"] = 5
	store.doses["pfizer"] = 2
	require.NoError(t, store.Publish(context.Background(), "bob", "2024-06-01"))
	require.NoError(t, store.Publish(context.Background(), "amy", "2024-06-01"))
	engine := newTestEngine(store)

	// Book amy so her rows flip to unavailable.
	reserveOne(t, engine, "p1", "2024-06-01", "moderna")

	rows, err := engine.Schedule(context.Background(), patientSession("p1"), "2024-06-01")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, models.ScheduleRow{CaregiverUsername: "amy", Available: false, VaccineName: "moderna", Doses: 4}, rows[0])
	assert.Equal(t, models.ScheduleRow{CaregiverUsername: "amy", Available: false, VaccineName: "pfizer", Doses: 2}, rows[1])
	assert.Equal(t, models.ScheduleRow{CaregiverUsername: "bob", Available: true, VaccineName: "moderna", Doses: 4}, rows[2])
	assert.Equal(t, models.ScheduleRow{CaregiverUsername: "bob", Available: true, VaccineName: "pfizer", Doses: 2}, rows[3])
}

func TestScheduleRequiresSession(t *testing.T) {
	engine := newTestEngine(newMemStore())
	_, err := engine.Schedule(context.Background(), nil, "2024-06-01")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAppointmentsListsOwnRecordsInIdOrder(t *testing.T) {
	store := newMemStore()
	store.doses["moderna"] = 5
	require.NoError(t, store.Publish(context.Background(), "amy", "2024-06-01"))
	require.NoError(t, store.Publish(context.Background(), "amy", "2024-06-02"))
	require.NoError(t, store.Publish(context.Background(), "bob", "2024-06-01"))
	engine := newTestEngine(store)

	first := reserveOne(t, engine, "p1", "2024-06-01", "moderna")
	second := reserveOne(t, engine, "p1", "2024-06-02", "moderna")
	reserveOne(t, engine, "p2", "2024-06-01", "moderna") // bob's slot

	appts, err := engine.Appointments(context.Background(), patientSession("p1"))
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, first.AppointmentID, appts[0].ID)
	assert.Equal(t, second.AppointmentID, appts[1].ID)

	appts, err = engine.Appointments(context.Background(), caregiverSession("bob"))
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "p2", appts[0].PatientUsername)
}

func TestAppointmentsRequireSession(t *testing.T) {
	engine := newTestEngine(newMemStore())
	_, err := engine.Appointments(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// Single caregiver, single dose: the first reservation takes both; the next
// request fails on the caregiver check before it ever reaches inventory.
func TestReserveScenarioSingleSlot(t *testing.T) {
	store := newMemStore()
	engine := newTestEngine(store)

	require.NoError(t, engine.PublishAvailability(context.Background(), caregiverSession("amy"), "2024-06-01"))
	require.NoError(t, engine.AddDoses(context.Background(), caregiverSession("amy"), "moderna", 1))

	res, err := engine.Reserve(context.Background(), patientSession("p1"), "2024-06-01", "moderna")
	require.NoError(t, err)
	assert.NotZero(t, res.AppointmentID)
	assert.Equal(t, "amy", res.Caregiver)

	_, err = engine.Reserve(context.Background(), patientSession("p2"), "2024-06-01", "moderna")
	assert.ErrorIs(t, err, ErrNoCaregiverAvailable)
}
