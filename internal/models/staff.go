package models

import "time"

type StaffRole string

const (
	RoleOwner        StaffRole = "owner"
	RoleManager      StaffRole = "manager"
	RoleStylist      StaffRole = "stylist"
	RoleBeautician   StaffRole = "beautician"
	RoleReceptionist StaffRole = "receptionist"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleStylist, RoleBeautician, RoleReceptionist:
		return true
	}
	return false
}

type Staff struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Role      StaffRole `json:"role"`
	Specialty []string  `json:"specialty"`
	Active    bool      `json:"active"`

	MonthlyTarget int    `json:"monthly_target,omitempty"`
	Salary        int    `json:"salary,omitempty"`
	DeviceID      string `json:"device_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
