package models

import "time"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid checks enum membership only. Transitions are deliberately
// unrestricted: any status may move to any other.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	StaffID    string `json:"staff_id"`

	// Free text, copied from the catalog at booking time so historical
	// records survive catalog edits.
	ServiceName string `json:"service_name"`

	Date        string `json:"date"` // 2006-01-02
	Time        string `json:"time"` // 15:04
	DurationMin int    `json:"duration_min"`

	Status AppointmentStatus `json:"status"`

	Price    int `json:"price"`    // post-discount, whole rupees
	Discount int `json:"discount"` // whole rupees

	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
