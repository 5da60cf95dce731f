package models

// Vaccine tracks the dose inventory for one named vaccine.
// Doses never goes negative: every decrement is guarded at the storage layer.
type Vaccine struct {
	Name  string `gorm:"primaryKey;size:191" json:"name"`
	Doses int    `gorm:"not null" json:"doses"`
}
