package models

// ScheduleRow is one line of the caregiver schedule listing for a date: the
// cross join of every caregiver who published availability for that date
// against every known vaccine. Available is false once the caregiver already
// has a booked appointment on the date.
type ScheduleRow struct {
	CaregiverUsername string `json:"caregiver_username"`
	Available         bool   `json:"available"`
	VaccineName       string `json:"vaccine_name"`
	Doses             int    `json:"doses"`
}
