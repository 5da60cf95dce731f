package models

import "time"

// Appointment is the booking of record linking one patient, one caregiver,
// one date and one vaccine. Its existence implies one dose was already
// decremented. The unique (caregiver, date) index is the double-booking
// guard; ids are auto-incremented and never reused.
type Appointment struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date              string    `gorm:"size:10;uniqueIndex:idx_caregiver_date,priority:2" json:"date"`
	PatientUsername   string    `gorm:"size:191;index" json:"patient_username"`
	CaregiverUsername string    `gorm:"size:191;uniqueIndex:idx_caregiver_date,priority:1" json:"caregiver_username"`
	VaccineName       string    `gorm:"size:191" json:"vaccine_name"`
	CreatedAt         time.Time `json:"created_at"`
}
