package models

import "time"

// User is an API login account, distinct from Staff (staff are payroll
// records; a user may or may not be linked to one).
//
// Records persist through the JSON table store, so the password hash must
// serialize; handlers never return User directly.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         StaffRole `json:"role"`
	StaffID      string    `json:"staff_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
