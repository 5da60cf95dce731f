package models

import "time"

// Role distinguishes the two kinds of actors.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
)

// Account is a registered patient or caregiver. Usernames are unique across
// both roles; passwords are stored as bcrypt hashes only.
type Account struct {
	Username     string    `gorm:"primaryKey;size:191" json:"username"`
	PasswordHash string    `gorm:"size:60;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
