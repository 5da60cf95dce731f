package models

import "time"

// Session is the authenticated actor identity passed explicitly into every
// scheduling call. One terminal session holds at most one of these; there is
// no ambient current-user state anywhere else in the process.
type Session struct {
	Token      string    `json:"token"`
	Username   string    `json:"username"`
	Role       Role      `json:"role"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
