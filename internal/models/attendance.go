package models

import "time"

// Attendance is one per-day, per-staff record. Nothing prevents duplicate
// login entries for the same staff and day.
type Attendance struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Date    string `json:"date"` // 2006-01-02

	LoginAt  time.Time  `json:"login_at"`
	LogoutAt *time.Time `json:"logout_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
