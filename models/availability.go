package models

// CaregiverAvailability records that a caregiver has opened a date for
// bookings. The composite primary key rejects duplicate publications.
// The row is not deleted when an appointment is booked against it; the
// (caregiver, date) pair simply stops matching availability queries once
// an appointment exists for it.
type CaregiverAvailability struct {
	CaregiverUsername string `gorm:"primaryKey;size:191" json:"caregiver_username"`
	Date              string `gorm:"primaryKey;size:10" json:"date"` // "2006-01-02"
}
